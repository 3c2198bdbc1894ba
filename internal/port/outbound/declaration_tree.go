package outbound

import (
	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
)

// DeclarationKind distinguishes the declaration entities the extraction core
// reacts to. Every other kind a front end may produce is mapped to
// DeclarationOther and ignored without comment.
type DeclarationKind string

const (
	// DeclarationTranslationUnit is the root of a parsed header.
	DeclarationTranslationUnit DeclarationKind = "translation_unit"
	// DeclarationNamespace is a C++ namespace node.
	DeclarationNamespace DeclarationKind = "namespace"
	// DeclarationTypeAlias is a type-alias or typedef declaration. The opaque
	// class handles of the binding grammar arrive as this kind.
	DeclarationTypeAlias DeclarationKind = "type_alias"
	// DeclarationFunction is a function declaration with an argument list and
	// a result type.
	DeclarationFunction DeclarationKind = "function"
	// DeclarationUnexposed is the structural wrapper some front ends insert
	// around extern "C" blocks; the walker recurses through it transparently.
	DeclarationUnexposed DeclarationKind = "unexposed"
	// DeclarationOther covers everything the core does not inspect.
	DeclarationOther DeclarationKind = "other"
)

// TypeHandle is the front end's view of a type: identity, display name,
// pointee, canonical form and size. The extraction core reads these fields and
// computes nothing below them.
type TypeHandle struct {
	// DisplayName is the type's spelling as written in the header.
	DisplayName string
	// Kind is the native type-kind tag.
	Kind valueobject.TypeKind
	// Pointee is the pointed-to type for pointer and reference types.
	Pointee *TypeHandle
	// Canonical is the fully resolved form of the type with aliases stripped.
	// It is nil when the type is already canonical.
	Canonical *TypeHandle
	// ByteSize is the type's size in bytes. Negative values mean the front end
	// could not determine a size (incomplete and opaque types).
	ByteSize int64
}

// Argument is one entry of a function declaration's ordered argument list.
// A nil Type means the front end could not resolve the argument's type; the
// core treats that as a structural violation.
type Argument struct {
	Name string
	Type *TypeHandle
}

// Declaration is one entity of the parsed declaration tree. The tree is
// immutable input to the extraction core; it is produced once by the front end
// and only read afterwards.
type Declaration struct {
	Kind DeclarationKind
	// Name is the declared identifier. For the binding grammar's symbols this
	// is the mangled linkage name.
	Name string
	// DisplayName is the entity's display form; it matches Name for the
	// declarations the core decodes.
	DisplayName string
	// Children holds nested declarations for translation units, namespaces and
	// unexposed wrappers.
	Children []*Declaration
	// Arguments is the ordered argument list of a function declaration. It is
	// non-nil (possibly empty) exactly for DeclarationFunction entities.
	Arguments []Argument
	// ResultType is a function declaration's return type handle, nil when the
	// front end could not resolve it.
	ResultType *TypeHandle
	// Documentation is the doc comment attached to the declaration, empty when
	// none precedes it.
	Documentation string
}

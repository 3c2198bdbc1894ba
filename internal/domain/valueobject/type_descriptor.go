package valueobject

// TypeDescriptor is an owned, serializable description of a native type as it
// appears in a generated binding header. It is built once from a front-end
// type handle and never mutated afterwards; two descriptors are considered the
// same type exactly when they are structurally equal.
type TypeDescriptor struct {
	// DisplayName is the type's spelling as written in the header.
	DisplayName string `json:"display_name"          yaml:"display_name"`
	// Kind is the native type-kind tag.
	Kind TypeKind `json:"kind"                  yaml:"kind"`
	// Pointee describes the pointed-to type for pointer and reference types.
	Pointee *TypeDescriptor `json:"pointee,omitempty"     yaml:"pointee,omitempty"`
	// Canonical describes the fully resolved form of the type. It is set only
	// when the canonical form differs structurally from the surface form, so a
	// type that is already canonical carries no self-reference.
	Canonical *TypeDescriptor `json:"canonical,omitempty"   yaml:"canonical,omitempty"`
	// ByteSize is the type's size in bytes, nil when the front end could not
	// determine one (incomplete and opaque types).
	ByteSize *uint64 `json:"byte_size,omitempty"   yaml:"byte_size,omitempty"`
}

// Equal reports structural equality between two type descriptors, including
// their pointee, canonical and size fields.
func (t TypeDescriptor) Equal(other TypeDescriptor) bool {
	if t.DisplayName != other.DisplayName || t.Kind != other.Kind {
		return false
	}
	if !equalDescriptorPtr(t.Pointee, other.Pointee) {
		return false
	}
	if !equalDescriptorPtr(t.Canonical, other.Canonical) {
		return false
	}
	return equalSizePtr(t.ByteSize, other.ByteSize)
}

// IsPointer reports whether the descriptor is a pointer or reference type.
func (t TypeDescriptor) IsPointer() bool {
	return t.Kind == TypeKindPointer || t.Kind == TypeKindLValueReference
}

// IsVoid reports whether the descriptor is the void type.
func (t TypeDescriptor) IsVoid() bool {
	return t.Kind == TypeKindVoid
}

func equalDescriptorPtr(a, b *TypeDescriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalSizePtr(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

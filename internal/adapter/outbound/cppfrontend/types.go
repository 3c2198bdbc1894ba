package cppfrontend

import (
	"strings"

	tree_sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// builtinType pairs a clang-style kind with its byte size on the LP64 targets
// the generated headers are built for. A negative size means unknown.
type builtinType struct {
	kind valueobject.TypeKind
	size int64
}

// builtinTypes maps normalized C type spellings to their kind and width.
var builtinTypes = map[string]builtinType{
	"void":               {valueobject.TypeKindVoid, -1},
	"bool":               {valueobject.TypeKindBool, 1},
	"char":               {valueobject.TypeKindChar, 1},
	"signed char":        {valueobject.TypeKindSChar, 1},
	"unsigned char":      {valueobject.TypeKindUChar, 1},
	"short":              {valueobject.TypeKindShort, 2},
	"short int":          {valueobject.TypeKindShort, 2},
	"unsigned short":     {valueobject.TypeKindUShort, 2},
	"unsigned short int": {valueobject.TypeKindUShort, 2},
	"int":                {valueobject.TypeKindInt, 4},
	"signed int":         {valueobject.TypeKindInt, 4},
	"unsigned":           {valueobject.TypeKindUInt, 4},
	"unsigned int":       {valueobject.TypeKindUInt, 4},
	"long":               {valueobject.TypeKindLong, 8},
	"long int":           {valueobject.TypeKindLong, 8},
	"unsigned long":      {valueobject.TypeKindULong, 8},
	"unsigned long int":  {valueobject.TypeKindULong, 8},
	"long long":          {valueobject.TypeKindLongLong, 8},
	"long long int":      {valueobject.TypeKindLongLong, 8},
	"unsigned long long": {valueobject.TypeKindULongLong, 8},
	"float":              {valueobject.TypeKindFloat, 4},
	"double":             {valueobject.TypeKindDouble, 8},
}

// fixedWidthAliases resolves the <cstdint> spellings that generated headers
// use without requiring their typedefs to appear in the translation unit.
var fixedWidthAliases = map[string]string{
	"int8_t":    "signed char",
	"uint8_t":   "unsigned char",
	"int16_t":   "short",
	"uint16_t":  "unsigned short",
	"int32_t":   "int",
	"uint32_t":  "unsigned int",
	"int64_t":   "long",
	"uint64_t":  "unsigned long",
	"size_t":    "unsigned long",
	"ssize_t":   "long",
	"ptrdiff_t": "long",
	"intptr_t":  "long",
	"uintptr_t": "unsigned long",
}

// maxAliasDepth bounds typedef chain resolution so a cyclic header cannot
// hang the front end.
const maxAliasDepth = 32

// typeHandle builds the type handle for a type node, applying the given
// number of pointer or reference levels from the declarator.
func (l *lowerer) typeHandle(typeNode tree_sitter.Node, pointerLevels int) *outbound.TypeHandle {
	handle := l.baseTypeHandle(typeNode)
	for range pointerLevels {
		handle = l.pointerTo(handle)
	}
	return handle
}

// baseTypeHandle builds the handle for the type specifier itself, before any
// declarator-level pointers are applied.
func (l *lowerer) baseTypeHandle(typeNode tree_sitter.Node) *outbound.TypeHandle {
	spelling := normalizeSpelling(l.text(typeNode))

	switch typeNode.Type() {
	case "primitive_type", "sized_type_specifier":
		return l.namedTypeHandle(spelling)
	case "struct_specifier", "enum_specifier", "class_specifier":
		kind := valueobject.TypeKindRecord
		if typeNode.Type() == "enum_specifier" {
			kind = valueobject.TypeKindEnum
		}
		name := spelling
		if nameNode := typeNode.ChildByFieldName("name"); !nameNode.IsNull() {
			name = l.text(nameNode)
		}
		return &outbound.TypeHandle{
			DisplayName: name,
			Kind:        kind,
			ByteSize:    -1,
		}
	case nodeTypeIdentifier:
		return l.namedTypeHandle(spelling)
	default:
		return &outbound.TypeHandle{
			DisplayName: spelling,
			Kind:        valueobject.TypeKindUnexposed,
			ByteSize:    -1,
		}
	}
}

// namedTypeHandle resolves a type spelling through the builtin table, the
// fixed-width alias table, and the typedefs collected from the translation
// unit. Unknown names lower to opaque records.
func (l *lowerer) namedTypeHandle(spelling string) *outbound.TypeHandle {
	if builtin, ok := builtinTypes[spelling]; ok {
		return &outbound.TypeHandle{
			DisplayName: spelling,
			Kind:        builtin.kind,
			ByteSize:    builtin.size,
		}
	}

	if canonical := l.resolveAlias(spelling); canonical != nil {
		return &outbound.TypeHandle{
			DisplayName: spelling,
			Kind:        valueobject.TypeKindTypedef,
			Canonical:   canonical,
			ByteSize:    canonical.ByteSize,
		}
	}

	return &outbound.TypeHandle{
		DisplayName: spelling,
		Kind:        valueobject.TypeKindRecord,
		ByteSize:    -1,
	}
}

// resolveAlias follows a typedef or alias chain to its canonical handle.
// It returns nil when the spelling is not a known alias.
func (l *lowerer) resolveAlias(spelling string) *outbound.TypeHandle {
	current := spelling
	pointers := 0

	for depth := 0; depth < maxAliasDepth; depth++ {
		if target, ok := fixedWidthAliases[current]; ok {
			current = target
			continue
		}

		target, ok := l.aliases[current]
		if !ok {
			break
		}
		pointers += target.pointers
		current = normalizeSpelling(target.baseText)
	}

	if current == spelling && pointers == 0 {
		return nil
	}

	var handle *outbound.TypeHandle
	if builtin, ok := builtinTypes[current]; ok {
		handle = &outbound.TypeHandle{
			DisplayName: current,
			Kind:        builtin.kind,
			ByteSize:    builtin.size,
		}
	} else {
		handle = &outbound.TypeHandle{
			DisplayName: current,
			Kind:        valueobject.TypeKindRecord,
			ByteSize:    -1,
		}
	}

	for range pointers {
		handle = l.pointerTo(handle)
	}
	return handle
}

// pointerTo wraps a handle one pointer level deep. The canonical form of a
// pointer is a pointer to the pointee's canonical form.
func (l *lowerer) pointerTo(pointee *outbound.TypeHandle) *outbound.TypeHandle {
	handle := &outbound.TypeHandle{
		DisplayName: pointerDisplayName(pointee.DisplayName),
		Kind:        valueobject.TypeKindPointer,
		Pointee:     pointee,
		ByteSize:    l.pointerWidth,
	}

	if pointee.Canonical != nil {
		handle.Canonical = &outbound.TypeHandle{
			DisplayName: pointerDisplayName(pointee.Canonical.DisplayName),
			Kind:        valueobject.TypeKindPointer,
			Pointee:     pointee.Canonical,
			ByteSize:    l.pointerWidth,
		}
	}

	return handle
}

func pointerDisplayName(pointee string) string {
	if strings.HasSuffix(pointee, "*") {
		return pointee + "*"
	}
	return pointee + " *"
}

// normalizeSpelling collapses whitespace and strips qualifiers that do not
// affect the binding surface.
func normalizeSpelling(spelling string) string {
	fields := strings.Fields(spelling)
	kept := fields[:0]
	for _, field := range fields {
		switch field {
		case "const", "volatile", "struct", "enum":
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}

// joinDocComments strips comment markers from a run of comment lines and
// joins the surviving text into one documentation string.
func joinDocComments(comments []string) string {
	if len(comments) == 0 {
		return ""
	}

	lines := make([]string, 0, len(comments))
	for _, comment := range comments {
		for _, line := range strings.Split(comment, "\n") {
			line = strings.TrimSpace(line)
			line = strings.TrimPrefix(line, "/**")
			line = strings.TrimPrefix(line, "/*")
			line = strings.TrimSuffix(line, "*/")
			line = strings.TrimPrefix(line, "///")
			line = strings.TrimPrefix(line, "//")
			line = strings.TrimPrefix(line, "*")
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	return strings.Join(lines, "\n")
}

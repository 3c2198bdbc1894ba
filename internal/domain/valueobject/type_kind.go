package valueobject

// TypeKind identifies the native type-kind tag attached to a type descriptor.
// The tag set mirrors the kinds a C/C++ front end reports for the types that
// can appear in a generated binding header.
type TypeKind string

const (
	TypeKindVoid            TypeKind = "Void"
	TypeKindBool            TypeKind = "Bool"
	TypeKindChar            TypeKind = "Char_S"
	TypeKindSChar           TypeKind = "SChar"
	TypeKindUChar           TypeKind = "UChar"
	TypeKindShort           TypeKind = "Short"
	TypeKindUShort          TypeKind = "UShort"
	TypeKindInt             TypeKind = "Int"
	TypeKindUInt            TypeKind = "UInt"
	TypeKindLong            TypeKind = "Long"
	TypeKindULong           TypeKind = "ULong"
	TypeKindLongLong        TypeKind = "LongLong"
	TypeKindULongLong       TypeKind = "ULongLong"
	TypeKindFloat           TypeKind = "Float"
	TypeKindDouble          TypeKind = "Double"
	TypeKindPointer         TypeKind = "Pointer"
	TypeKindLValueReference TypeKind = "LValueReference"
	TypeKindRecord          TypeKind = "Record"
	TypeKindEnum            TypeKind = "Enum"
	TypeKindTypedef         TypeKind = "Typedef"
	TypeKindUnexposed       TypeKind = "Unexposed"
)

// IsIntegral reports whether the kind is one of the integral builtin kinds.
func (k TypeKind) IsIntegral() bool {
	switch k {
	case TypeKindBool, TypeKindChar, TypeKindSChar, TypeKindUChar,
		TypeKindShort, TypeKindUShort, TypeKindInt, TypeKindUInt,
		TypeKindLong, TypeKindULong, TypeKindLongLong, TypeKindULongLong:
		return true
	default:
		return false
	}
}

// IsFloatingPoint reports whether the kind is a floating-point builtin kind.
func (k TypeKind) IsFloatingPoint() bool {
	return k == TypeKindFloat || k == TypeKindDouble
}

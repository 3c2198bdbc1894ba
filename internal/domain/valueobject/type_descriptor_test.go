package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sizePtr(v uint64) *uint64 { return &v }

func TestTypeDescriptor_Equal(t *testing.T) {
	intDesc := TypeDescriptor{DisplayName: "int", Kind: TypeKindInt, ByteSize: sizePtr(4)}

	t.Run("identical scalars are equal", func(t *testing.T) {
		other := TypeDescriptor{DisplayName: "int", Kind: TypeKindInt, ByteSize: sizePtr(4)}
		assert.True(t, intDesc.Equal(other))
	})

	t.Run("kind difference breaks equality", func(t *testing.T) {
		other := TypeDescriptor{DisplayName: "int", Kind: TypeKindUInt, ByteSize: sizePtr(4)}
		assert.False(t, intDesc.Equal(other))
	})

	t.Run("size difference breaks equality", func(t *testing.T) {
		other := TypeDescriptor{DisplayName: "int", Kind: TypeKindInt, ByteSize: sizePtr(8)}
		assert.False(t, intDesc.Equal(other))

		unknown := TypeDescriptor{DisplayName: "int", Kind: TypeKindInt}
		assert.False(t, intDesc.Equal(unknown))
	})

	t.Run("pointers compare their pointees recursively", func(t *testing.T) {
		a := TypeDescriptor{
			DisplayName: "int *",
			Kind:        TypeKindPointer,
			Pointee:     &TypeDescriptor{DisplayName: "int", Kind: TypeKindInt, ByteSize: sizePtr(4)},
			ByteSize:    sizePtr(8),
		}
		b := TypeDescriptor{
			DisplayName: "int *",
			Kind:        TypeKindPointer,
			Pointee:     &TypeDescriptor{DisplayName: "int", Kind: TypeKindInt, ByteSize: sizePtr(4)},
			ByteSize:    sizePtr(8),
		}
		assert.True(t, a.Equal(b))

		b.Pointee = &TypeDescriptor{DisplayName: "char", Kind: TypeKindChar, ByteSize: sizePtr(1)}
		assert.False(t, a.Equal(b))
	})
}

func TestTypeDescriptor_Predicates(t *testing.T) {
	pointer := TypeDescriptor{
		DisplayName: "Widget *",
		Kind:        TypeKindPointer,
		Pointee:     &TypeDescriptor{DisplayName: "Widget", Kind: TypeKindRecord},
	}
	assert.True(t, pointer.IsPointer())
	assert.False(t, pointer.IsVoid())

	void := TypeDescriptor{DisplayName: "void", Kind: TypeKindVoid}
	assert.True(t, void.IsVoid())
	assert.False(t, void.IsPointer())
}

func TestTypeKind_Predicates(t *testing.T) {
	assert.True(t, TypeKindUInt.IsIntegral())
	assert.True(t, TypeKindBool.IsIntegral())
	assert.False(t, TypeKindFloat.IsIntegral())
	assert.True(t, TypeKindFloat.IsFloatingPoint())
	assert.True(t, TypeKindDouble.IsFloatingPoint())
	assert.False(t, TypeKindRecord.IsFloatingPoint())
}

package extraction

import (
	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// BuildTypeDescriptor converts a front-end type handle into an owned type
// descriptor. The conversion is pure and recursive: the pointee is converted
// when present, and the canonical form is recorded only when it differs
// structurally from the surface type, so already-canonical types carry no
// duplicate self-description. A negative byte size from the front end is
// stored as unknown rather than propagated as an error.
func BuildTypeDescriptor(handle *outbound.TypeHandle) valueobject.TypeDescriptor {
	descriptor := valueobject.TypeDescriptor{
		DisplayName: handle.DisplayName,
		Kind:        handle.Kind,
	}

	if handle.Pointee != nil {
		pointee := BuildTypeDescriptor(handle.Pointee)
		descriptor.Pointee = &pointee
	}

	if handle.ByteSize >= 0 {
		size := uint64(handle.ByteSize)
		descriptor.ByteSize = &size
	}

	if handle.Canonical != nil {
		canonical := BuildTypeDescriptor(handle.Canonical)
		if !canonical.Equal(descriptor) {
			descriptor.Canonical = &canonical
		}
	}

	return descriptor
}

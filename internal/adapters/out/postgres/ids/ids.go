// Package ids converts identifiers between the domain and database columns.
package ids

import (
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func ToKernel(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// ToKernelPtr maps a nullable column. NULL stays nil.
func ToKernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := ToKernel(*id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func FromKernelPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

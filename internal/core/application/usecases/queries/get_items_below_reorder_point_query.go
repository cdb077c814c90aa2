package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetItemsBelowReorderPointQueryIsNotConstructed = errors.New(
	"GetItemsBelowReorderPointQuery must be created via NewGetItemsBelowReorderPointQuery constructor",
)

type GetItemsBelowReorderPointQuery struct {
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetItemsBelowReorderPointQuery scans one warehouse, or all of them when
// warehouseID is nil.
func NewGetItemsBelowReorderPointQuery(warehouseID *kernel.UUID) (GetItemsBelowReorderPointQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetItemsBelowReorderPointQuery{}, errs.NewValueIsInvalidErrorWithCause("warehouse", err)
		}
	}
	return GetItemsBelowReorderPointQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetItemsBelowReorderPointQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsBelowReorderPointQueryIsNotConstructed)
}

func (q GetItemsBelowReorderPointQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

type ReorderAlert struct {
	InventoryID     kernel.UUID
	WarehouseID     kernel.UUID
	SKU             string
	Name            string
	Quantity        int
	ReorderPoint    int
	ReorderQuantity int
}

package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetPendingShipmentsQueryIsNotConstructed = errors.New(
	"GetPendingShipmentsQuery must be created via NewGetPendingShipmentsQuery constructor",
)

// GetPendingShipmentsQuery lists the shipments still waiting for a truck at
// their origin warehouse.
type GetPendingShipmentsQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPendingShipmentsQuery(warehouseID kernel.UUID) (GetPendingShipmentsQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetPendingShipmentsQuery{}, errs.NewValueIsRequiredErrorWithCause("warehouse", err)
	}
	return GetPendingShipmentsQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPendingShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShipmentsQueryIsNotConstructed)
}

func (q GetPendingShipmentsQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetAssignmentsByWarehouseQueryIsNotConstructed = errors.New(
	"GetAssignmentsByWarehouseQuery must be created via NewGetAssignmentsByWarehouseQuery constructor",
)

type GetAssignmentsByWarehouseQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAssignmentsByWarehouseQuery(warehouseID kernel.UUID) (GetAssignmentsByWarehouseQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetAssignmentsByWarehouseQuery{}, errs.NewValueIsRequiredErrorWithCause("warehouse", err)
	}
	return GetAssignmentsByWarehouseQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignmentsByWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsByWarehouseQueryIsNotConstructed)
}

func (q GetAssignmentsByWarehouseQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// WarehouseAssignments splits a warehouse's assignments into the ones leaving
// it and the ones arriving at it.
type WarehouseAssignments struct {
	Source      []AssignmentView
	Destination []AssignmentView
}

package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetAssignmentsByTruckQueryIsNotConstructed = errors.New(
	"GetAssignmentsByTruckQuery must be created via NewGetAssignmentsByTruckQuery constructor",
)

type GetAssignmentsByTruckQuery struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAssignmentsByTruckQuery(truckID kernel.UUID) (GetAssignmentsByTruckQuery, error) {
	if err := truckID.Validate(); err != nil {
		return GetAssignmentsByTruckQuery{}, errs.NewValueIsRequiredErrorWithCause("truck", err)
	}
	return GetAssignmentsByTruckQuery{truckID: truckID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignmentsByTruckQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsByTruckQueryIsNotConstructed)
}

func (q GetAssignmentsByTruckQuery) TruckID() kernel.UUID {
	return q.truckID
}

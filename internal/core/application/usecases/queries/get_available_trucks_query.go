// Package queries contains the read side: pure reads over committed state,
// returned as read models rather than aggregates.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAvailableTrucksQueryIsNotConstructed = errors.New(
	"GetAvailableTrucksQuery must be created via one of the NewGetAvailableTrucks* constructors",
)

// GetAvailableTrucksQuery lists AVAILABLE trucks homed at a warehouse,
// optionally narrowed to trucks able to carry a load or having a driver.
//
// Example:
//
//	query, err := NewGetAvailableTrucksWithCapacityQuery(warehouseID, weight, volume)
//	if err != nil {
//	    return err
//	}
//	trucks, err := handler.Handle(ctx, query)
type GetAvailableTrucksQuery struct {
	warehouseID   kernel.UUID
	minCapacity   *kernel.Load
	requireDriver bool

	guard guard.ConstructorGuard
}

func NewGetAvailableTrucksQuery(warehouseID kernel.UUID) (GetAvailableTrucksQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetAvailableTrucksQuery{}, errs.NewValueIsRequiredErrorWithCause("warehouse", err)
	}
	return GetAvailableTrucksQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetAvailableTrucksWithCapacityQuery keeps trucks whose weight and volume
// capacity both reach the given minimums.
func NewGetAvailableTrucksWithCapacityQuery(
	warehouseID kernel.UUID,
	minWeight decimal.Decimal,
	minVolume decimal.Decimal,
) (GetAvailableTrucksQuery, error) {
	query, err := NewGetAvailableTrucksQuery(warehouseID)
	if err != nil {
		return GetAvailableTrucksQuery{}, err
	}
	load, err := kernel.NewLoad(minWeight, minVolume)
	if err != nil {
		return GetAvailableTrucksQuery{}, err
	}
	query.minCapacity = &load
	return query, nil
}

func NewGetAvailableTrucksWithDriverQuery(warehouseID kernel.UUID) (GetAvailableTrucksQuery, error) {
	query, err := NewGetAvailableTrucksQuery(warehouseID)
	if err != nil {
		return GetAvailableTrucksQuery{}, err
	}
	query.requireDriver = true
	return query, nil
}

func (q GetAvailableTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTrucksQueryIsNotConstructed)
}

func (q GetAvailableTrucksQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

func (q GetAvailableTrucksQuery) MinCapacity() *kernel.Load {
	return q.minCapacity
}

func (q GetAvailableTrucksQuery) RequireDriver() bool {
	return q.requireDriver
}

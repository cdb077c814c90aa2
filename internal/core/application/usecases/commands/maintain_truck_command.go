package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMaintainTruckCommandIsNotConstructed = errors.New(
	"MaintainTruckCommand must be created via NewMaintainTruckCommand constructor",
)

// MaintainTruckCommand takes an idle truck into the workshop, or brings it
// back when completed is set.
type MaintainTruckCommand struct { //nolint:recvcheck //using for validation
	truckID             kernel.UUID
	completed           bool
	nextMaintenanceDate *time.Time

	guard guard.ConstructorGuard
}

func NewMaintainTruckCommand(truckID kernel.UUID, completed bool, nextMaintenanceDate *time.Time) (MaintainTruckCommand, error) {
	if err := requireID("truck", truckID); err != nil {
		return MaintainTruckCommand{}, err
	}

	return MaintainTruckCommand{
		truckID:             truckID,
		completed:           completed,
		nextMaintenanceDate: nextMaintenanceDate,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c MaintainTruckCommand) Validate() error {
	return c.guard.Validate(ErrMaintainTruckCommandIsNotConstructed)
}

func (c MaintainTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c MaintainTruckCommand) Completed() bool {
	return c.completed
}

func (c MaintainTruckCommand) NextMaintenanceDate() *time.Time {
	return c.nextMaintenanceDate
}

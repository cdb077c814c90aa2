package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignTruckToShipmentCommandIsNotConstructed = errors.New(
	"AssignTruckToShipmentCommand must be created via NewAssignTruckToShipmentCommand constructor",
)

type AssignTruckToShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	truckID           kernel.UUID
	scheduledPickupAt time.Time
	notes             string
	actorID           kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignTruckToShipmentCommand(
	shipmentID kernel.UUID,
	truckID kernel.UUID,
	scheduledPickupAt time.Time,
	notes string,
	actorID kernel.UUID,
) (AssignTruckToShipmentCommand, error) {
	var pickupErr error
	if scheduledPickupAt.IsZero() {
		pickupErr = errs.NewValueIsRequiredError("scheduled pickup date")
	}

	if err := errors.Join(
		requireID("shipment", shipmentID),
		requireID("truck", truckID),
		requireID("actor", actorID),
		pickupErr,
	); err != nil {
		return AssignTruckToShipmentCommand{}, err
	}

	return AssignTruckToShipmentCommand{
		shipmentID:        shipmentID,
		truckID:           truckID,
		scheduledPickupAt: scheduledPickupAt.UTC(),
		notes:             notes,
		actorID:           actorID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c AssignTruckToShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAssignTruckToShipmentCommandIsNotConstructed)
}

func (c AssignTruckToShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c AssignTruckToShipmentCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c AssignTruckToShipmentCommand) ScheduledPickupAt() time.Time {
	return c.scheduledPickupAt
}

func (c AssignTruckToShipmentCommand) Notes() string {
	return c.notes
}

func (c AssignTruckToShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

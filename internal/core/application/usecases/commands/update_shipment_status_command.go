package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand accepts the statuses reported from outside:
// IN_TRANSIT, DELIVERED and CANCELLED. The others are reached through truck
// assignment and item processing.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	status string,
	actorID kernel.UUID,
) (UpdateShipmentStatusCommand, error) {
	parsed, statusErr := shipment.ParseStatus(strings.ToUpper(strings.TrimSpace(status)))
	if statusErr == nil {
		switch parsed {
		case shipment.InTransit, shipment.Delivered, shipment.Cancelled:
		default:
			statusErr = errs.NewValueIsInvalidErrorWithCause("shipment status",
				fmt.Errorf("%s cannot be set directly", parsed))
		}
	}

	if err := errors.Join(
		requireID("shipment", shipmentID),
		requireID("actor", actorID),
		statusErr,
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		shipmentID: shipmentID,
		status:     parsed,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewCancelShipmentCommand is the status update to CANCELLED.
func NewCancelShipmentCommand(shipmentID kernel.UUID, actorID kernel.UUID) (UpdateShipmentStatusCommand, error) {
	return NewUpdateShipmentStatusCommand(shipmentID, shipment.Cancelled.String(), actorID)
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c UpdateShipmentStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

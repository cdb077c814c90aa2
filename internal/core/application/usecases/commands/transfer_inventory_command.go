package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrTransferInventoryCommandIsNotConstructed = errors.New(
	"TransferInventoryCommand must be created via NewTransferInventoryCommand constructor",
)

type TransferInventoryCommand struct { //nolint:recvcheck //using for validation
	transferID             kernel.UUID
	sourceLineID           kernel.UUID
	destinationWarehouseID kernel.UUID
	quantity               int
	actorID                kernel.UUID

	guard guard.ConstructorGuard
}

func NewTransferInventoryCommand(
	sourceLineID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	quantity int,
	actorID kernel.UUID,
) (TransferInventoryCommand, error) {
	command := TransferInventoryCommand{
		transferID:             kernel.NewUUID(),
		sourceLineID:           sourceLineID,
		destinationWarehouseID: destinationWarehouseID,
		actorID:                actorID,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("source inventory", sourceLineID),
		requireID("destination warehouse", destinationWarehouseID),
		requireID("actor", actorID),
		command.setQuantity(quantity),
	); err != nil {
		return TransferInventoryCommand{}, err
	}

	return command, nil
}

func (c TransferInventoryCommand) Validate() error {
	return c.guard.Validate(ErrTransferInventoryCommandIsNotConstructed)
}

func (c TransferInventoryCommand) TransferID() kernel.UUID {
	return c.transferID
}

func (c TransferInventoryCommand) SourceLineID() kernel.UUID {
	return c.sourceLineID
}

func (c TransferInventoryCommand) DestinationWarehouseID() kernel.UUID {
	return c.destinationWarehouseID
}

func (c TransferInventoryCommand) Quantity() int {
	return c.quantity
}

func (c TransferInventoryCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *TransferInventoryCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	c.quantity = quantity
	return nil
}

// requireID is shared by the command constructors of this package.
func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProcessShipmentItemCommandIsNotConstructed = errors.New(
	"ProcessShipmentItemCommand must be created via NewProcessShipmentItemCommand constructor",
)

type ProcessShipmentItemCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	barcode        string
	weight         *decimal.Decimal
	status         shipment.ItemStatus
	notes          string
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessShipmentItemCommand builds a scan. An empty status means PROCESSED.
func NewProcessShipmentItemCommand(
	trackingNumber string,
	barcode string,
	weight *decimal.Decimal,
	status string,
	notes string,
	actorID kernel.UUID,
) (ProcessShipmentItemCommand, error) {
	command := ProcessShipmentItemCommand{
		trackingNumber: strings.TrimSpace(trackingNumber),
		barcode:        strings.TrimSpace(barcode),
		weight:         weight,
		status:         shipment.ItemProcessed,
		notes:          notes,
		actorID:        actorID,
		guard:          guard.NewConstructorGuard(),
	}

	var statusErr error
	if status != "" {
		command.status, statusErr = shipment.ParseItemStatus(strings.ToUpper(status))
	}

	if err := errors.Join(
		requireText("tracking number", command.trackingNumber),
		requireText("barcode", command.barcode),
		requireID("actor", actorID),
		statusErr,
	); err != nil {
		return ProcessShipmentItemCommand{}, err
	}

	return command, nil
}

func (c ProcessShipmentItemCommand) Validate() error {
	return c.guard.Validate(ErrProcessShipmentItemCommandIsNotConstructed)
}

func (c ProcessShipmentItemCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c ProcessShipmentItemCommand) Barcode() string {
	return c.barcode
}

func (c ProcessShipmentItemCommand) Weight() *decimal.Decimal {
	return c.weight
}

func (c ProcessShipmentItemCommand) Status() shipment.ItemStatus {
	return c.status
}

func (c ProcessShipmentItemCommand) Notes() string {
	return c.notes
}

func (c ProcessShipmentItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

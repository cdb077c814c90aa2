package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRegisterShipmentCommandIsNotConstructed = errors.New(
	"RegisterShipmentCommand must be created via NewRegisterShipmentCommand constructor",
)

type ShipmentItemInput struct {
	Barcode        string
	Description    string
	ExpectedWeight decimal.Decimal
}

type RegisterShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID             kernel.UUID
	transferID             kernel.UUID
	trackingNumber         string
	sourceLineID           kernel.UUID
	destinationWarehouseID kernel.UUID
	quantity               int
	totalVolume            decimal.Decimal
	estimatedDeliveryAt    *time.Time
	items                  []ShipmentItemInput
	notes                  string
	actorID                kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterShipmentCommand builds the command. An empty tracking number is
// generated when the shipment is registered.
func NewRegisterShipmentCommand(
	trackingNumber string,
	sourceLineID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	quantity int,
	totalVolume decimal.Decimal,
	estimatedDeliveryAt *time.Time,
	items []ShipmentItemInput,
	notes string,
	actorID kernel.UUID,
) (RegisterShipmentCommand, error) {
	command := RegisterShipmentCommand{
		shipmentID:             kernel.NewUUID(),
		transferID:             kernel.NewUUID(),
		trackingNumber:         strings.ToUpper(strings.TrimSpace(trackingNumber)),
		sourceLineID:           sourceLineID,
		destinationWarehouseID: destinationWarehouseID,
		quantity:               quantity,
		totalVolume:            totalVolume,
		estimatedDeliveryAt:    estimatedDeliveryAt,
		items:                  items,
		notes:                  notes,
		actorID:                actorID,
		guard:                  guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList,
		requireID("source inventory", sourceLineID),
		requireID("destination warehouse", destinationWarehouseID),
		requireID("actor", actorID),
	)
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if totalVolume.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("total volume", totalVolume.String(), 0, "unbounded"))
	}
	if len(items) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("items"))
	}

	if err := errors.Join(errList...); err != nil {
		return RegisterShipmentCommand{}, err
	}

	return command, nil
}

func (c RegisterShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipmentCommandIsNotConstructed)
}

func (c RegisterShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c RegisterShipmentCommand) TransferID() kernel.UUID {
	return c.transferID
}

func (c RegisterShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c RegisterShipmentCommand) SourceLineID() kernel.UUID {
	return c.sourceLineID
}

func (c RegisterShipmentCommand) DestinationWarehouseID() kernel.UUID {
	return c.destinationWarehouseID
}

func (c RegisterShipmentCommand) Quantity() int {
	return c.quantity
}

func (c RegisterShipmentCommand) TotalVolume() decimal.Decimal {
	return c.totalVolume
}

func (c RegisterShipmentCommand) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}

func (c RegisterShipmentCommand) Items() []ShipmentItemInput {
	out := make([]ShipmentItemInput, len(c.items))
	copy(out, c.items)
	return out
}

func (c RegisterShipmentCommand) Notes() string {
	return c.notes
}

func (c RegisterShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

package inventory

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrTransferIsNotConstructed = errors.New("Transfer must be created via NewTransfer constructor")

// Transfer records quantity of one source line moving to another warehouse.
// Direct transfers complete immediately; transfers backing a shipment stay
// open until the shipment is delivered or cancelled.
type Transfer struct {
	id                     kernel.UUID
	sourceLineID           kernel.UUID
	sourceWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	destinationLineID      *kernel.UUID
	quantity               int
	status                 TransferStatus
	initiatedBy            kernel.UUID
	initiatedAt            time.Time
	completedAt            *time.Time
	guard                  guard.ConstructorGuard
}

// NewTransfer opens a PENDING transfer out of source.
func NewTransfer(
	id kernel.UUID,
	source *Line,
	destinationWarehouseID kernel.UUID,
	quantity int,
	initiatedBy kernel.UUID,
	now time.Time,
) (*Transfer, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}

	tr := &Transfer{
		sourceLineID:      source.ID(),
		sourceWarehouseID: source.WarehouseID(),
		status:            TransferPending,
		initiatedAt:       now,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tr.setID(id),
		tr.setDestination(destinationWarehouseID),
		tr.setQuantity(quantity),
		tr.setInitiator(initiatedBy),
	); err != nil {
		return nil, err
	}

	return tr, nil
}

func RestoreTransfer(
	id kernel.UUID,
	sourceLineID kernel.UUID,
	sourceWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	destinationLineID *kernel.UUID,
	quantity int,
	status TransferStatus,
	initiatedBy kernel.UUID,
	initiatedAt time.Time,
	completedAt *time.Time,
) (*Transfer, error) {
	tr := &Transfer{
		sourceLineID:      sourceLineID,
		sourceWarehouseID: sourceWarehouseID,
		destinationLineID: destinationLineID,
		initiatedAt:       initiatedAt,
		completedAt:       completedAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tr.setID(id),
		tr.setDestination(destinationWarehouseID),
		tr.setQuantity(quantity),
		tr.setInitiator(initiatedBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	tr.status = status

	return tr, nil
}

func (t *Transfer) Validate() error {
	if t == nil {
		return ErrTransferIsNotConstructed
	}
	return t.guard.Validate(ErrTransferIsNotConstructed)
}

func (t *Transfer) ID() kernel.UUID                     { return t.id }
func (t *Transfer) SourceLineID() kernel.UUID           { return t.sourceLineID }
func (t *Transfer) SourceWarehouseID() kernel.UUID      { return t.sourceWarehouseID }
func (t *Transfer) DestinationWarehouseID() kernel.UUID { return t.destinationWarehouseID }
func (t *Transfer) DestinationLineID() *kernel.UUID     { return t.destinationLineID }
func (t *Transfer) Quantity() int                       { return t.quantity }
func (t *Transfer) Status() TransferStatus              { return t.status }
func (t *Transfer) InitiatedBy() kernel.UUID            { return t.initiatedBy }
func (t *Transfer) InitiatedAt() time.Time              { return t.initiatedAt }
func (t *Transfer) CompletedAt() *time.Time             { return t.completedAt }

func (t *Transfer) Dispatch() error {
	newStatus, err := t.status.Dispatch()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// Complete closes the transfer once quantity landed on destinationLineID.
func (t *Transfer) Complete(destinationLineID kernel.UUID, now time.Time) error {
	if err := destinationLineID.Validate(); err != nil {
		return err
	}
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}
	t.status = newStatus
	t.destinationLineID = &destinationLineID
	t.completedAt = &now
	return nil
}

func (t *Transfer) Cancel(now time.Time) error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}
	t.status = newStatus
	t.completedAt = &now
	return nil
}

func (t *Transfer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transfer) setDestination(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination warehouse", err)
	}
	if warehouseID.IsEqual(t.sourceWarehouseID) {
		return errs.NewValueIsInvalidErrorWithCause("destination warehouse",
			fmt.Errorf("%s is also the source warehouse", warehouseID))
	}
	t.destinationWarehouseID = warehouseID
	return nil
}

func (t *Transfer) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	t.quantity = quantity
	return nil
}

func (t *Transfer) setInitiator(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("initiated by", err)
	}
	t.initiatedBy = actorID
	return nil
}

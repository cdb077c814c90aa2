package inventory

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is the stock of one SKU held by one warehouse.
type Line struct {
	id              kernel.UUID
	warehouseID     kernel.UUID
	item            Item
	quantity        int
	reorderPoint    int
	reorderQuantity int
	guard           guard.ConstructorGuard
}

// NewLine also serves persistence: a line has no state beyond its fields.
func NewLine(
	id kernel.UUID,
	warehouseID kernel.UUID,
	item Item,
	quantity int,
	reorderPoint int,
	reorderQuantity int,
) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setWarehouse(warehouseID),
		line.setItem(item),
		line.setQuantity(quantity),
		line.setReorder(reorderPoint, reorderQuantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) ID() kernel.UUID          { return l.id }
func (l *Line) WarehouseID() kernel.UUID { return l.warehouseID }
func (l *Line) Item() Item               { return l.item }
func (l *Line) SKU() string              { return l.item.SKU() }
func (l *Line) Quantity() int            { return l.quantity }
func (l *Line) ReorderPoint() int        { return l.reorderPoint }
func (l *Line) ReorderQuantity() int     { return l.reorderQuantity }

func (l *Line) BelongsTo(warehouseID kernel.UUID) bool {
	return l.warehouseID.IsEqual(warehouseID)
}

func (l *Line) IsBelowReorderPoint() bool {
	return l.quantity < l.reorderPoint
}

// LoadOf is the weight and volume of quantity units of this line.
func (l *Line) LoadOf(quantity int) kernel.Load {
	return l.item.UnitLoad().Scale(quantity)
}

// Withdraw removes quantity units. The line is left unchanged on error.
func (l *Line) Withdraw(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, l.quantity)
	}
	if quantity > l.quantity {
		return errs.NewInsufficientInventoryError(l.id.String(), quantity, l.quantity)
	}
	l.quantity -= quantity
	return nil
}

func (l *Line) Deposit(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	l.quantity += quantity
	return nil
}

// Replicate opens a line for the same item in another warehouse, holding quantity units.
func (l *Line) Replicate(id kernel.UUID, warehouseID kernel.UUID, quantity int) (*Line, error) {
	if l.BelongsTo(warehouseID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("warehouse",
			fmt.Errorf("line %s already belongs to warehouse %s", l.id, warehouseID))
	}
	return NewLine(id, warehouseID, l.item, quantity, l.reorderPoint, l.reorderQuantity)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouse", err)
	}
	l.warehouseID = warehouseID
	return nil
}

func (l *Line) setItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	l.item = item
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setReorder(point, quantity int) error {
	if point < 0 || quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reorder settings",
			fmt.Errorf("point %d and quantity %d must not be negative", point, quantity))
	}
	l.reorderPoint = point
	l.reorderQuantity = quantity
	return nil
}

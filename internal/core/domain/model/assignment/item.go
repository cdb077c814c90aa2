package assignment

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Item is one inventory line placed on the truck, captured at assignment time.
type Item struct {
	inventoryID kernel.UUID
	sku         string
	name        string
	quantity    int
	load        kernel.Load
}

func NewItem(inventoryID kernel.UUID, sku, name string, quantity int, load kernel.Load) (Item, error) {
	var problems []error
	if err := inventoryID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if sku == "" {
		problems = append(problems, errs.NewValueIsRequiredError("sku"))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if err := load.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return Item{}, err
	}

	return Item{inventoryID: inventoryID, sku: sku, name: name, quantity: quantity, load: load}, nil
}

func (i Item) InventoryID() kernel.UUID { return i.inventoryID }
func (i Item) SKU() string              { return i.sku }
func (i Item) Name() string             { return i.name }
func (i Item) Quantity() int            { return i.quantity }

// Load is the weight and volume of the whole quantity.
func (i Item) Load() kernel.Load { return i.load }

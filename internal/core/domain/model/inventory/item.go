package inventory

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSKUIsRequired        = errs.NewValueIsRequiredError("sku")
	ErrItemNameIsRequired   = errs.NewValueIsRequiredError("item name")
	ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem constructor")
)

// Item is the catalog description shared by every line of the same SKU.
type Item struct { //nolint:recvcheck //using for validation
	sku         string
	name        string
	description string
	unitPrice   decimal.Decimal
	unitLoad    kernel.Load
	guard       guard.ConstructorGuard
}

func NewItem(sku, name, description string, unitPrice decimal.Decimal, unitLoad kernel.Load) (Item, error) {
	item := Item{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setSKU(sku),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setUnitLoad(unitLoad),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) SKU() string                { return i.sku }
func (i Item) Name() string               { return i.name }
func (i Item) Description() string        { return i.description }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// UnitLoad is the weight and volume of a single unit.
func (i Item) UnitLoad() kernel.Load { return i.unitLoad }

func (i *Item) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return ErrSKUIsRequired
	}
	i.sku = sku
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("unit price", price.String(), 0, "unbounded")
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setUnitLoad(load kernel.Load) error {
	if err := load.Validate(); err != nil {
		return err
	}
	i.unitLoad = load
	return nil
}

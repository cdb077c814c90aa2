package shipment

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrBarcodeIsRequired = errs.NewValueIsRequiredError("barcode")

// Item is a single scannable unit of a shipment.
type Item struct {
	id             kernel.UUID
	barcode        string
	description    string
	expectedWeight decimal.Decimal
	observedWeight *decimal.Decimal
	status         ItemStatus
	processedAt    *time.Time
	notes          string
}

func NewItem(id kernel.UUID, barcode, description string, expectedWeight decimal.Decimal) (*Item, error) {
	return RestoreItem(id, barcode, description, expectedWeight, nil, ItemPending, nil, "")
}

func RestoreItem(
	id kernel.UUID,
	barcode string,
	description string,
	expectedWeight decimal.Decimal,
	observedWeight *decimal.Decimal,
	status ItemStatus,
	processedAt *time.Time,
	notes string,
) (*Item, error) {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		problems = append(problems, ErrBarcodeIsRequired)
	}
	if !expectedWeight.IsPositive() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("expected weight", expectedWeight.String(), "0 exclusive", "unbounded"))
	}
	if err := status.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Item{
		id:             id,
		barcode:        barcode,
		description:    description,
		expectedWeight: expectedWeight,
		observedWeight: observedWeight,
		status:         status,
		processedAt:    processedAt,
		notes:          notes,
	}, nil
}

func (i *Item) ID() kernel.UUID                  { return i.id }
func (i *Item) Barcode() string                  { return i.barcode }
func (i *Item) Description() string              { return i.description }
func (i *Item) ExpectedWeight() decimal.Decimal  { return i.expectedWeight }
func (i *Item) ObservedWeight() *decimal.Decimal { return i.observedWeight }
func (i *Item) Status() ItemStatus               { return i.status }
func (i *Item) ProcessedAt() *time.Time          { return i.processedAt }
func (i *Item) Notes() string                    { return i.notes }

// record applies a scan outcome. It returns false when the item already holds
// exactly that outcome.
func (i *Item) record(status ItemStatus, weight *decimal.Decimal, notes string, now time.Time) (bool, error) {
	if i.status == ItemMissing && status != ItemMissing {
		return false, errs.NewInvalidStateErrorWithCause("item "+i.barcode, i.status.String(),
			errors.New("missing items cannot be scanned again"))
	}
	if status == ItemMissing {
		weight = nil
	}
	if i.status == status && sameWeight(i.observedWeight, weight) {
		return false, nil
	}

	i.status = status
	i.observedWeight = weight
	i.processedAt = &now
	if notes != "" {
		i.notes = notes
	}
	return true, nil
}

// scaleWeight is the observed weight when one was recorded, else the expected one.
func (i *Item) scaleWeight() decimal.Decimal {
	if i.observedWeight != nil {
		return *i.observedWeight
	}
	return i.expectedWeight
}

func sameWeight(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProcessingSummaryQueryIsNotConstructed = errors.New(
	"GetProcessingSummaryQuery must be created via NewGetProcessingSummaryQuery constructor",
)

type GetProcessingSummaryQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewGetProcessingSummaryQuery(trackingNumber string) (GetProcessingSummaryQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return GetProcessingSummaryQuery{}, errs.NewValueIsRequiredError("tracking number")
	}
	return GetProcessingSummaryQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProcessingSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessingSummaryQueryIsNotConstructed)
}

func (q GetProcessingSummaryQuery) TrackingNumber() string {
	return q.trackingNumber
}

// ProcessingSummary is the scan state of a shipment with per-item detail.
type ProcessingSummary struct {
	ShipmentID           string
	TrackingNumber       string
	ShipmentStatus       string
	TotalItems           int
	ProcessedItems       int
	MissingItems         int
	DamagedItems         int
	TotalExpectedWeight  decimal.Decimal
	TotalProcessedWeight decimal.Decimal
	AllItemsProcessed    bool
	ReadyForLoading      bool
	WeightMismatch       bool
	MissingBarcodes      []string
	LastProcessedAt      *time.Time
	Items                []ShipmentItemView
}

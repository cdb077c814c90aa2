package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery or NewGetShipmentByTrackingNumberQuery",
)

// GetShipmentQuery looks a shipment up either by id or by tracking number.
type GetShipmentQuery struct {
	shipmentID     *kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, errs.NewValueIsRequiredErrorWithCause("shipment", err)
	}
	return GetShipmentQuery{shipmentID: &shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetShipmentByTrackingNumberQuery(trackingNumber string) (GetShipmentQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("tracking number")
	}
	return GetShipmentQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID is nil when the query goes by tracking number.
func (q GetShipmentQuery) ShipmentID() *kernel.UUID {
	return q.shipmentID
}

func (q GetShipmentQuery) TrackingNumber() string {
	return q.trackingNumber
}

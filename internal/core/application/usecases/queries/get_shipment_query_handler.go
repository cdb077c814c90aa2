package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

type GetShipmentQueryHandler struct {
	reader Reader
}

func NewGetShipmentQueryHandler(reader Reader) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{reader: reader}
}

// Handle fails with a not found error for an unknown shipment.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

	var (
		s   *shipment.Shipment
		err error
	)
	repo := h.reader.ShipmentRepository()
	if id := query.ShipmentID(); id != nil {
		s, err = repo.Get(ctx, *id)
	} else {
		s, err = repo.GetByTrackingNumber(ctx, query.TrackingNumber())
	}
	if err != nil {
		return ShipmentView{}, err
	}

	return NewShipmentView(s), nil
}

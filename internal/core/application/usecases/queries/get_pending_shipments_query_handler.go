package queries

import "context"

type GetPendingShipmentsQueryHandler struct {
	reader Reader
}

func NewGetPendingShipmentsQueryHandler(reader Reader) GetPendingShipmentsQueryHandler {
	return GetPendingShipmentsQueryHandler{reader: reader}
}

func (h GetPendingShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShipmentsQuery,
) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.reader.ShipmentRepository().FindPendingByWarehouse(ctx, query.WarehouseID())
	if err != nil {
		return nil, err
	}

	views := make([]ShipmentView, 0, len(list))
	for _, s := range list {
		views = append(views, NewShipmentView(s))
	}
	return views, nil
}

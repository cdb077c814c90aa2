package queries

import "context"

type GetItemsBelowReorderPointQueryHandler struct {
	reader Reader
}

func NewGetItemsBelowReorderPointQueryHandler(reader Reader) GetItemsBelowReorderPointQueryHandler {
	return GetItemsBelowReorderPointQueryHandler{reader: reader}
}

func (h GetItemsBelowReorderPointQueryHandler) Handle(
	ctx context.Context,
	query GetItemsBelowReorderPointQuery,
) ([]ReorderAlert, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines, err := h.reader.InventoryRepository().FindBelowReorderPoint(ctx, query.WarehouseID())
	if err != nil {
		return nil, err
	}

	alerts := make([]ReorderAlert, 0, len(lines))
	for _, line := range lines {
		alerts = append(alerts, ReorderAlert{
			InventoryID:     line.ID(),
			WarehouseID:     line.WarehouseID(),
			SKU:             line.SKU(),
			Name:            line.Item().Name(),
			Quantity:        line.Quantity(),
			ReorderPoint:    line.ReorderPoint(),
			ReorderQuantity: line.ReorderQuantity(),
		})
	}
	return alerts, nil
}

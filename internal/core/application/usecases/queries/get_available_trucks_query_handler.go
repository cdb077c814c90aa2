package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

type GetAvailableTrucksQueryHandler struct {
	reader  Reader
	matcher services.CapacityMatcher
}

func NewGetAvailableTrucksQueryHandler(reader Reader, matcher services.CapacityMatcher) GetAvailableTrucksQueryHandler {
	return GetAvailableTrucksQueryHandler{reader: reader, matcher: matcher}
}

// Handle returns the matching trucks ordered by registration number. An
// unknown warehouse simply has no trucks.
func (h GetAvailableTrucksQueryHandler) Handle(ctx context.Context, query GetAvailableTrucksQuery) ([]TruckView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks, err := h.reader.TruckRepository().FindByWarehouse(ctx, query.WarehouseID())
	if err != nil {
		return nil, err
	}

	matched, err := h.matcher.Match(trucks, services.MatchCriteria{
		WarehouseID:   query.WarehouseID(),
		MinCapacity:   query.MinCapacity(),
		RequireDriver: query.RequireDriver(),
	})
	if err != nil {
		return nil, err
	}

	views := make([]TruckView, 0, len(matched))
	for _, truck := range matched {
		views = append(views, newTruckView(truck))
	}
	return views, nil
}

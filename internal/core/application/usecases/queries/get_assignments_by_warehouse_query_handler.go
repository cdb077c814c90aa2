package queries

import "context"

type GetAssignmentsByWarehouseQueryHandler struct {
	reader Reader
}

func NewGetAssignmentsByWarehouseQueryHandler(reader Reader) GetAssignmentsByWarehouseQueryHandler {
	return GetAssignmentsByWarehouseQueryHandler{reader: reader}
}

func (h GetAssignmentsByWarehouseQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsByWarehouseQuery,
) (WarehouseAssignments, error) {
	if err := query.Validate(); err != nil {
		return WarehouseAssignments{}, err
	}

	repo := h.reader.AssignmentRepository()
	outgoing, err := repo.FindBySourceWarehouse(ctx, query.WarehouseID())
	if err != nil {
		return WarehouseAssignments{}, err
	}
	incoming, err := repo.FindByDestinationWarehouse(ctx, query.WarehouseID())
	if err != nil {
		return WarehouseAssignments{}, err
	}

	return WarehouseAssignments{
		Source:      newAssignmentViews(outgoing),
		Destination: newAssignmentViews(incoming),
	}, nil
}

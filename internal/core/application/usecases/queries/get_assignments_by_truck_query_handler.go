package queries

import "context"

type GetAssignmentsByTruckQueryHandler struct {
	reader Reader
}

func NewGetAssignmentsByTruckQueryHandler(reader Reader) GetAssignmentsByTruckQueryHandler {
	return GetAssignmentsByTruckQueryHandler{reader: reader}
}

// Handle returns the truck's assignments, newest first.
func (h GetAssignmentsByTruckQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsByTruckQuery,
) ([]AssignmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.reader.AssignmentRepository().FindByTruck(ctx, query.TruckID())
	if err != nil {
		return nil, err
	}
	return newAssignmentViews(list), nil
}

package queries

import "context"

type GetAssignmentQueryHandler struct {
	reader Reader
}

func NewGetAssignmentQueryHandler(reader Reader) GetAssignmentQueryHandler {
	return GetAssignmentQueryHandler{reader: reader}
}

// Handle fails with a not found error for an unknown assignment.
func (h GetAssignmentQueryHandler) Handle(ctx context.Context, query GetAssignmentQuery) (AssignmentView, error) {
	if err := query.Validate(); err != nil {
		return AssignmentView{}, err
	}

	a, err := h.reader.AssignmentRepository().Get(ctx, query.AssignmentID())
	if err != nil {
		return AssignmentView{}, err
	}
	return NewAssignmentView(a), nil
}

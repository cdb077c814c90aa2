package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetAssignmentQueryIsNotConstructed = errors.New(
	"GetAssignmentQuery must be created via NewGetAssignmentQuery constructor",
)

type GetAssignmentQuery struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAssignmentQuery(assignmentID kernel.UUID) (GetAssignmentQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentQuery{}, errs.NewValueIsRequiredErrorWithCause("assignment", err)
	}
	return GetAssignmentQuery{assignmentID: assignmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQueryIsNotConstructed)
}

func (q GetAssignmentQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}

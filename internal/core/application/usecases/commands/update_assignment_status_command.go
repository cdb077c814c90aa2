package commands

import (
	"errors"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateAssignmentStatusCommandIsNotConstructed = errors.New(
	"UpdateAssignmentStatusCommand must be created via NewUpdateAssignmentStatusCommand constructor",
)

type UpdateAssignmentStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	status       assignment.Status

	guard guard.ConstructorGuard
}

func NewUpdateAssignmentStatusCommand(assignmentID kernel.UUID, status string) (UpdateAssignmentStatusCommand, error) {
	parsed, statusErr := assignment.ParseStatus(status)
	if err := errors.Join(requireID("assignment", assignmentID), statusErr); err != nil {
		return UpdateAssignmentStatusCommand{}, err
	}

	return UpdateAssignmentStatusCommand{
		assignmentID: assignmentID,
		status:       parsed,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAssignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentStatusCommandIsNotConstructed)
}

func (c UpdateAssignmentStatusCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c UpdateAssignmentStatusCommand) Status() assignment.Status {
	return c.status
}

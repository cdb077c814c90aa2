package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assignedWorld struct {
	*world
	truckID      kernel.UUID
	lineID       kernel.UUID
	assignmentID kernel.UUID
	handler      commands.UpdateAssignmentStatusCommandHandler
}

// newAssignedWorld loads 30 of 100 bolts onto a truck.
func newAssignedWorld(t *testing.T) assignedWorld {
	t.Helper()
	w := newWorld(t)
	truck := w.seedTruck("KA-01", "1000", "20", true)
	line := w.seedLine(w.source.ID(), "BOLT", 100, "2")

	result, err := commands.NewAssignInventoryToTruckCommandHandler(w.uow(), w.logger).Handle(t.Context(),
		assignCommand(t, w, truck.ID(), commands.AssignmentLine{InventoryID: line.ID(), Quantity: 30}))
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	return assignedWorld{
		world:        w,
		truckID:      truck.ID(),
		lineID:       line.ID(),
		assignmentID: result.AssignmentID,
		handler:      commands.NewUpdateAssignmentStatusCommandHandler(w.uow(), w.logger),
	}
}

func (a assignedWorld) update(t *testing.T, status string) (*assignment.Assignment, error) {
	t.Helper()
	cmd, err := commands.NewUpdateAssignmentStatusCommand(a.assignmentID, status)
	require.NoError(t, err)
	return a.handler.Handle(t.Context(), cmd)
}

func TestUpdateAssignmentStatus_DeliveryCreditsDestination(t *testing.T) {
	a := newAssignedWorld(t)

	updated, err := a.update(t, "IN_TRANSIT")
	require.NoError(t, err)
	assert.Equal(t, assignment.InTransit, updated.Status())
	assert.Equal(t, fleet.InTransit, a.truck(a.truckID).Status())

	updated, err = a.update(t, "DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, assignment.Delivered, updated.Status())
	assert.NotNil(t, updated.CompletedAt())

	assert.Equal(t, fleet.Available, a.truck(a.truckID).Status())
	assert.Equal(t, 70, a.line(a.lineID).Quantity())
	assert.Equal(t, 30, a.lineBySKU(a.destination.ID(), "BOLT").Quantity())
}

func TestUpdateAssignmentStatus_CancellationRestocksSource(t *testing.T) {
	a := newAssignedWorld(t)

	updated, err := a.update(t, "CANCELLED")

	require.NoError(t, err)
	assert.Equal(t, assignment.Cancelled, updated.Status())
	assert.Equal(t, fleet.Available, a.truck(a.truckID).Status())
	assert.Equal(t, 100, a.line(a.lineID).Quantity())
}

func TestUpdateAssignmentStatus_SameStatusIsNoop(t *testing.T) {
	a := newAssignedWorld(t)

	updated, err := a.update(t, "PENDING")

	require.NoError(t, err)
	assert.Equal(t, assignment.Pending, updated.Status())
	assert.Equal(t, fleet.Assigned, a.truck(a.truckID).Status())
}

func TestUpdateAssignmentStatus_TerminalIsFinal(t *testing.T) {
	a := newAssignedWorld(t)
	_, err := a.update(t, "CANCELLED")
	require.NoError(t, err)

	_, err = a.update(t, "IN_TRANSIT")

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, 100, a.line(a.lineID).Quantity())
}

func TestUpdateAssignmentStatus_DeliverFromPendingIsRejected(t *testing.T) {
	a := newAssignedWorld(t)

	_, err := a.update(t, "DELIVERED")

	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestNewUpdateAssignmentStatusCommand_Validation(t *testing.T) {
	_, err := commands.NewUpdateAssignmentStatusCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateAssignmentStatusCommand(kernel.NewUUID(), "LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateAssignmentStatusCommand(kernel.UUID{}, "DELIVERED")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateAssignmentStatus_UnknownAssignment(t *testing.T) {
	w := newWorld(t)
	cmd, err := commands.NewUpdateAssignmentStatusCommand(kernel.NewUUID(), "CANCELLED")
	require.NoError(t, err)

	_, err = commands.NewUpdateAssignmentStatusCommandHandler(w.uow(), w.logger).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateAssignmentStatus_LogsUnexpectedFailures(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateAssignmentStatusCommand(kernel.NewUUID(), "DELIVERED")
	require.NoError(t, err)
	logger, logs := capturedLogger()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewUpdateAssignmentStatusCommandHandler(factory, logger).Handle(ctx, cmd)

	require.EqualError(t, err, "connection refused")
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "component=UpdateAssignmentStatus")
	assert.Contains(t, logs.String(), "assignment_id="+cmd.AssignmentID().String())
}

func TestUpdateAssignmentStatus_LogsStatusChange(t *testing.T) {
	a := newAssignedWorld(t)
	logger, logs := capturedLogger()
	cmd, err := commands.NewUpdateAssignmentStatusCommand(a.assignmentID, "IN_TRANSIT")
	require.NoError(t, err)

	_, err = commands.NewUpdateAssignmentStatusCommandHandler(a.uow(), logger).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "assignment status changed")
	assert.NotContains(t, logs.String(), "level=ERROR")
}

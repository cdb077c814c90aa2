package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignCommand(
	t *testing.T,
	w *world,
	truckID kernel.UUID,
	lines ...commands.AssignmentLine,
) commands.AssignInventoryToTruckCommand {
	t.Helper()
	cmd, err := commands.NewAssignInventoryToTruckCommand(truckID, w.source.ID(), w.destination.ID(), lines, w.actor)
	require.NoError(t, err)
	return cmd
}

func TestAssignInventoryToTruck_Success(t *testing.T) {
	w := newWorld(t)
	truck := w.seedTruck("KA-01", "1000", "20", true)
	bolts := w.seedLine(w.source.ID(), "BOLT", 100, "2")
	nuts := w.seedLine(w.source.ID(), "NUT", 40, "1.5")
	h := commands.NewAssignInventoryToTruckCommandHandler(w.uow(), w.logger)

	result, err := h.Handle(t.Context(), assignCommand(t, w, truck.ID(),
		commands.AssignmentLine{InventoryID: bolts.ID(), Quantity: 30},
		commands.AssignmentLine{InventoryID: nuts.ID()},
	))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "KA-01", result.TruckRegistrationNumber)
	assert.Equal(t, "Central", result.OriginWarehouseName)
	assert.Equal(t, "North", result.DestinationWarehouseName)
	assert.Equal(t, assignment.Pending.String(), result.Status)
	require.Len(t, result.Items, 2)

	assert.Equal(t, 70, w.line(bolts.ID()).Quantity())
	assert.Equal(t, 0, w.line(nuts.ID()).Quantity())
	assert.Equal(t, fleet.Assigned, w.truck(truck.ID()).Status())

	stored, err := w.reader.AssignmentRepository().Get(t.Context(), result.AssignmentID)
	require.NoError(t, err)
	assert.Equal(t, "120", stored.TotalLoad().Weight().String())
}

func TestAssignInventoryToTruck_BusinessRejections(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		weight   string
		busy     bool
		want     error
	}{
		{name: "capacity exceeded", quantity: 60, weight: "20", want: errs.ErrCapacityExceeded},
		{name: "insufficient inventory", quantity: 150, weight: "1", want: errs.ErrInsufficientInventory},
		{name: "truck not available", quantity: 1, weight: "1", busy: true, want: errs.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			truck := w.seedTruck("KA-01", "1000", "20", true)
			if tt.busy {
				require.NoError(t, truck.Assign())
				require.NoError(t, w.reader.TruckRepository().Update(t.Context(), truck))
			}
			line := w.seedLine(w.source.ID(), "BOLT", 100, tt.weight)
			h := commands.NewAssignInventoryToTruckCommandHandler(w.uow(), w.logger)

			result, err := h.Handle(t.Context(), assignCommand(t, w, truck.ID(),
				commands.AssignmentLine{InventoryID: line.ID(), Quantity: tt.quantity}))

			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Contains(t, result.Message, tt.want.Error())
			assert.Equal(t, 100, w.line(line.ID()).Quantity())

			list, err := w.reader.AssignmentRepository().FindByTruck(t.Context(), truck.ID())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestAssignInventoryToTruck_NotFound(t *testing.T) {
	w := newWorld(t)
	truck := w.seedTruck("KA-01", "1000", "20", true)
	foreign := w.seedLine(w.destination.ID(), "BOLT", 100, "1")
	h := commands.NewAssignInventoryToTruckCommandHandler(w.uow(), w.logger)

	t.Run("unknown truck", func(t *testing.T) {
		_, err := h.Handle(t.Context(), assignCommand(t, w, kernel.NewUUID(),
			commands.AssignmentLine{InventoryID: foreign.ID()}))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("line stocked elsewhere", func(t *testing.T) {
		_, err := h.Handle(t.Context(), assignCommand(t, w, truck.ID(),
			commands.AssignmentLine{InventoryID: foreign.ID()}))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, fleet.Available, w.truck(truck.ID()).Status())
	})

	t.Run("unknown line", func(t *testing.T) {
		_, err := h.Handle(t.Context(), assignCommand(t, w, truck.ID(),
			commands.AssignmentLine{InventoryID: kernel.NewUUID()}))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestAssignInventoryToTruck_ConcurrentRequestsForOneTruck(t *testing.T) {
	w := newWorld(t)
	truck := w.seedTruck("KA-01", "1000", "20", true)
	line := w.seedLine(w.source.ID(), "BOLT", 100, "1")
	h := commands.NewAssignInventoryToTruckCommandHandler(w.uow(), w.logger)

	const callers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes []commands.Outcome
	)
	for range callers {
		cmd := assignCommand(t, w, truck.ID(), commands.AssignmentLine{InventoryID: line.ID(), Quantity: 5})
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := h.Handle(context.Background(), cmd)
			assert.NoError(t, err)
			mu.Lock()
			outcomes = append(outcomes, result.Outcome)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, outcomes, callers)
	var succeeded int
	for _, outcome := range outcomes {
		if outcome.Success {
			succeeded++
			continue
		}
		assert.Contains(t, outcome.Message, errs.ErrInvalidState.Error())
		assert.Contains(t, outcome.Message, "KA-01")
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 95, w.line(line.ID()).Quantity())
	assert.Equal(t, fleet.Assigned, w.truck(truck.ID()).Status())
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) TruckRepository() ports.TruckRepository {
	return m.Called().Get(0).(ports.TruckRepository)
}
func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	return m.Called().Get(0).(ports.WarehouseRepository)
}
func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}
func (m *MockUoW) TransferRepository() ports.TransferRepository {
	return m.Called().Get(0).(ports.TransferRepository)
}
func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	return m.Called().Get(0).(ports.AssignmentRepository)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func TestAssignInventoryToTruck_BeginFails(t *testing.T) {
	ctx := t.Context()
	w := newWorld(t)
	cmd := assignCommand(t, w, kernel.NewUUID(), commands.AssignmentLine{InventoryID: kernel.NewUUID()})

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignInventoryToTruckCommandHandler(factory, w.logger)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "connection refused")
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignInventoryToTruck_CommandNotConstructed(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewAssignInventoryToTruckCommandHandler(factory, newWorld(t).logger)

	_, err := h.Handle(t.Context(), commands.AssignInventoryToTruckCommand{})

	require.ErrorIs(t, err, commands.ErrAssignInventoryToTruckCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

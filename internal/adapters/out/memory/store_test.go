package memory_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTruck(t *testing.T, registration string) *fleet.Truck {
	t.Helper()
	capacity, err := kernel.NewLoad(decimal.NewFromInt(1000), decimal.NewFromInt(10))
	require.NoError(t, err)
	truck, err := fleet.NewTruck(kernel.NewUUID(), registration, "Scania R", capacity, kernel.NewUUID(), nil)
	require.NoError(t, err)
	return truck
}

func newLine(t *testing.T, warehouseID kernel.UUID, sku string, quantity int) *inventory.Line {
	t.Helper()
	unit, err := kernel.NewLoad(decimal.NewFromInt(1), decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	item, err := inventory.NewItem(sku, sku, "", decimal.NewFromInt(1), unit)
	require.NoError(t, err)
	line, err := inventory.NewLine(kernel.NewUUID(), warehouseID, item, quantity, 5, 20)
	require.NoError(t, err)
	return line
}

func TestUnitOfWork_CommitPublishes(t *testing.T) {
	store := memory.NewStore()
	reader := memory.NewReader(store)
	uow := memory.NewUnitOfWorkFactory(store).Create()
	truck := newTruck(t, "KA-01")

	require.NoError(t, uow.Begin(t.Context()))
	require.NoError(t, uow.TruckRepository().Add(t.Context(), truck))

	_, err := reader.TruckRepository().Get(t.Context(), truck.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "uncommitted writes stay private")

	require.NoError(t, uow.Commit(t.Context()))

	stored, err := reader.TruckRepository().Get(t.Context(), truck.ID())
	require.NoError(t, err)
	assert.Equal(t, "KA-01", stored.RegistrationNumber())
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	store := memory.NewStore()
	reader := memory.NewReader(store)
	truck := newTruck(t, "KA-01")
	require.NoError(t, reader.TruckRepository().Add(t.Context(), truck))

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(t.Context()))
	locked, err := uow.TruckRepository().Lock(t.Context(), truck.ID())
	require.NoError(t, err)
	require.NoError(t, locked.Assign())
	require.NoError(t, uow.TruckRepository().Update(t.Context(), locked))
	require.NoError(t, uow.Rollback(t.Context()))

	stored, err := reader.TruckRepository().Get(t.Context(), truck.ID())
	require.NoError(t, err)
	assert.Equal(t, fleet.Available, stored.Status())
	require.ErrorIs(t, uow.Rollback(t.Context()), memory.ErrNoTransaction)
	require.ErrorIs(t, uow.Commit(t.Context()), memory.ErrNoTransaction)
}

func TestUnitOfWork_BeginWaitsForOpenUnitOfWork(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	first := factory.Create()
	require.NoError(t, first.Begin(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()
	second := factory.Create()
	require.ErrorIs(t, second.Begin(ctx), context.DeadlineExceeded)

	done := make(chan error, 1)
	go func() {
		done <- second.Begin(t.Context())
	}()
	require.NoError(t, first.Commit(t.Context()))

	select {
	case err := <-done:
		require.NoError(t, err)
		require.NoError(t, second.Rollback(t.Context()))
	case <-time.After(time.Second):
		t.Fatal("second unit of work never started")
	}
}

func TestTruckRepository_DuplicateKeys(t *testing.T) {
	repo := memory.NewReader(memory.NewStore()).TruckRepository()
	truck := newTruck(t, "KA-01")
	require.NoError(t, repo.Add(t.Context(), truck))

	require.ErrorIs(t, repo.Add(t.Context(), truck), memory.ErrDuplicateKey)
	require.ErrorIs(t, repo.Add(t.Context(), newTruck(t, "ka-01")), memory.ErrDuplicateKey)

	taken, err := repo.ExistsByRegistrationNumber(t.Context(), "Ka-01")
	require.NoError(t, err)
	assert.True(t, taken)

	err = repo.Update(t.Context(), newTruck(t, "KA-02"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestInventoryRepository_LockMany(t *testing.T) {
	repo := memory.NewReader(memory.NewStore()).InventoryRepository()
	warehouseID := kernel.NewUUID()
	a := newLine(t, warehouseID, "A", 10)
	b := newLine(t, warehouseID, "B", 10)
	require.NoError(t, repo.Add(t.Context(), a))
	require.NoError(t, repo.Add(t.Context(), b))

	lines, err := repo.LockMany(t.Context(), []kernel.UUID{b.ID(), a.ID(), b.ID()})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Negative(t, lines[0].ID().Compare(lines[1].ID()))

	_, err = repo.LockMany(t.Context(), []kernel.UUID{a.ID(), kernel.NewUUID()})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, repo.Add(t.Context(), newLine(t, warehouseID, "A", 1)), memory.ErrDuplicateKey)
}

func TestInventoryRepository_FindBySKUAndReorderPoint(t *testing.T) {
	repo := memory.NewReader(memory.NewStore()).InventoryRepository()
	warehouseID := kernel.NewUUID()
	low := newLine(t, warehouseID, "LOW", 4)
	require.NoError(t, repo.Add(t.Context(), low))
	require.NoError(t, repo.Add(t.Context(), newLine(t, warehouseID, "FULL", 50)))

	found, err := repo.FindBySKU(t.Context(), warehouseID, "LOW")
	require.NoError(t, err)
	assert.Equal(t, low.ID(), found.ID())

	_, err = repo.FindBySKU(t.Context(), kernel.NewUUID(), "LOW")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	below, err := repo.FindBelowReorderPoint(t.Context(), &warehouseID)
	require.NoError(t, err)
	require.Len(t, below, 1)
	assert.Equal(t, "LOW", below[0].SKU())
}

func TestEventLog(t *testing.T) {
	log := memory.NewEventLog(slog.New(slog.DiscardHandler))

	require.NoError(t, log.Publish(t.Context(), "k1", "first"))
	require.NoError(t, log.Publish(t.Context(), "k2", "second"))

	events := log.Events()
	require.Len(t, events, 2)
	assert.Equal(t, memory.PublishedEvent{Key: "k1", Event: "first"}, events[0])

	events[0].Key = "changed"
	assert.Equal(t, "k1", log.Events()[0].Key)
}

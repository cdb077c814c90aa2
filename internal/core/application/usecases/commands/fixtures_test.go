package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type uowFactory struct{ f *memory.UnitOfWorkFactory }

func (u uowFactory) Create() commands.UoW { return u.f.Create() }

type ledgerUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (u ledgerUoWFactory) Create() commands.LedgerUoW { return u.f.Create() }

type fleetUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (u fleetUoWFactory) Create() commands.FleetUoW { return u.f.Create() }

// capturedLogger records text-formatted log output for assertions.
func capturedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

// world is a seeded memory store with two warehouses.
type world struct {
	t           *testing.T
	store       *memory.Store
	factory     *memory.UnitOfWorkFactory
	reader      memory.Reader
	events      *memory.EventLog
	logger      *slog.Logger
	source      *warehouse.Warehouse
	destination *warehouse.Warehouse
	actor       kernel.UUID
}

func newWorld(t *testing.T) *world {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.DiscardHandler)
	w := &world{
		t:       t,
		store:   store,
		factory: memory.NewUnitOfWorkFactory(store),
		reader:  memory.NewReader(store),
		events:  memory.NewEventLog(logger),
		logger:  logger,
		actor:   kernel.NewUUID(),
	}
	w.source = w.seedWarehouse("Central")
	w.destination = w.seedWarehouse("North")
	return w
}

func (w *world) uow() commands.UoWFactory             { return uowFactory{f: w.factory} }
func (w *world) ledgerUoW() commands.LedgerUoWFactory { return ledgerUoWFactory{f: w.factory} }
func (w *world) fleetUoW() commands.FleetUoWFactory   { return fleetUoWFactory{f: w.factory} }

func (w *world) seedWarehouse(name string) *warehouse.Warehouse {
	w.t.Helper()
	wh, err := warehouse.NewWarehouse(kernel.NewUUID(), name, name+" district", 10000, nil, true)
	require.NoError(w.t, err)
	require.NoError(w.t, w.reader.WarehouseRepository().Add(context.Background(), wh))
	return wh
}

func load(t *testing.T, weight, volume string) kernel.Load {
	t.Helper()
	l, err := kernel.NewLoad(decimal.RequireFromString(weight), decimal.RequireFromString(volume))
	require.NoError(t, err)
	return l
}

func (w *world) seedTruck(registration string, weight, volume string, withDriver bool) *fleet.Truck {
	w.t.Helper()
	var driver *kernel.UUID
	if withDriver {
		id := kernel.NewUUID()
		driver = &id
	}
	truck, err := fleet.NewTruck(kernel.NewUUID(), registration, "Volvo FH", load(w.t, weight, volume), w.source.ID(), driver)
	require.NoError(w.t, err)
	require.NoError(w.t, w.reader.TruckRepository().Add(context.Background(), truck))
	return truck
}

// seedLine stocks quantity units of sku weighing unitWeight kg and 0.1 m3 each.
func (w *world) seedLine(warehouseID kernel.UUID, sku string, quantity int, unitWeight string) *inventory.Line {
	w.t.Helper()
	item, err := inventory.NewItem(sku, "item "+sku, "", decimal.NewFromInt(5), load(w.t, unitWeight, "0.1"))
	require.NoError(w.t, err)
	line, err := inventory.NewLine(kernel.NewUUID(), warehouseID, item, quantity, 10, 50)
	require.NoError(w.t, err)
	require.NoError(w.t, w.reader.InventoryRepository().Add(context.Background(), line))
	return line
}

func (w *world) truck(id kernel.UUID) *fleet.Truck {
	w.t.Helper()
	truck, err := w.reader.TruckRepository().Get(context.Background(), id)
	require.NoError(w.t, err)
	return truck
}

func (w *world) line(id kernel.UUID) *inventory.Line {
	w.t.Helper()
	line, err := w.reader.InventoryRepository().Get(context.Background(), id)
	require.NoError(w.t, err)
	return line
}

func (w *world) lineBySKU(warehouseID kernel.UUID, sku string) *inventory.Line {
	w.t.Helper()
	line, err := w.reader.InventoryRepository().FindBySKU(context.Background(), warehouseID, sku)
	require.NoError(w.t, err)
	return line
}

func (w *world) shipment(trackingNumber string) *shipment.Shipment {
	w.t.Helper()
	s, err := w.reader.ShipmentRepository().GetByTrackingNumber(context.Background(), trackingNumber)
	require.NoError(w.t, err)
	return s
}

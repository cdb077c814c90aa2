package queries_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type catalog struct {
	t      *testing.T
	reader memory.Reader
	north  kernel.UUID
	south  kernel.UUID
}

func newCatalog(t *testing.T) *catalog {
	t.Helper()
	return &catalog{
		t:      t,
		reader: memory.NewReader(memory.NewStore()),
		north:  kernel.NewUUID(),
		south:  kernel.NewUUID(),
	}
}

func (c *catalog) load(weight, volume string) kernel.Load {
	c.t.Helper()
	l, err := kernel.NewLoad(decimal.RequireFromString(weight), decimal.RequireFromString(volume))
	require.NoError(c.t, err)
	return l
}

func (c *catalog) truck(registration, weight, volume string, home kernel.UUID, withDriver bool) *fleet.Truck {
	c.t.Helper()
	var driver *kernel.UUID
	if withDriver {
		id := kernel.NewUUID()
		driver = &id
	}
	truck, err := fleet.NewTruck(kernel.NewUUID(), registration, "MAN TGS", c.load(weight, volume), home, driver)
	require.NoError(c.t, err)
	require.NoError(c.t, c.reader.TruckRepository().Add(c.t.Context(), truck))
	return truck
}

func (c *catalog) line(warehouseID kernel.UUID, sku string, quantity, reorderPoint int) *inventory.Line {
	c.t.Helper()
	item, err := inventory.NewItem(sku, "item "+sku, "", decimal.NewFromInt(3), c.load("2", "0.01"))
	require.NoError(c.t, err)
	line, err := inventory.NewLine(kernel.NewUUID(), warehouseID, item, quantity, reorderPoint, 100)
	require.NoError(c.t, err)
	require.NoError(c.t, c.reader.InventoryRepository().Add(c.t.Context(), line))
	return line
}

func (c *catalog) assignment(truckID, from, to kernel.UUID, at time.Time) *assignment.Assignment {
	c.t.Helper()
	item, err := assignment.NewItem(kernel.NewUUID(), "BOLT", "bolt", 4, c.load("8", "0.04"))
	require.NoError(c.t, err)
	a, err := assignment.NewAssignment(kernel.NewUUID(), truckID, from, to, []assignment.Item{item}, kernel.NewUUID(), at)
	require.NoError(c.t, err)
	require.NoError(c.t, c.reader.AssignmentRepository().Add(c.t.Context(), a))
	return a
}

// shipment stores a PENDING shipment from north to south holding one item per
// expected weight, barcoded item1, item2 and so on.
func (c *catalog) shipment(trackingNumber string, createdAt time.Time, weights ...int64) *shipment.Shipment {
	c.t.Helper()
	items := make([]*shipment.Item, 0, len(weights))
	for i, w := range weights {
		item, err := shipment.NewItem(kernel.NewUUID(), "item"+string(rune('1'+i)), "", decimal.NewFromInt(w))
		require.NoError(c.t, err)
		items = append(items, item)
	}
	s, err := shipment.NewShipment(kernel.NewUUID(), trackingNumber, nil, c.north, c.south, decimal.NewFromInt(1),
		nil, items, "", kernel.NewUUID(), createdAt)
	require.NoError(c.t, err)
	require.NoError(c.t, c.reader.ShipmentRepository().Add(c.t.Context(), s))
	return s
}

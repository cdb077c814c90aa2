package ports

import (
	"context"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/warehouse"
)

// Repositories return errs.ObjectNotFoundError for missing aggregates.
//
// Lock* methods read an aggregate and hold a write lock on it until the unit
// of work ends. Workflows take locks in this order and never the other way
// round: shipment, assignment, transfer, truck, inventory lines (ascending id).

type TruckRepository interface {
	Add(ctx context.Context, truck *fleet.Truck) error

	Update(ctx context.Context, truck *fleet.Truck) error

	Get(ctx context.Context, id kernel.UUID) (*fleet.Truck, error)

	Lock(ctx context.Context, id kernel.UUID) (*fleet.Truck, error)

	// FindByWarehouse returns every truck homed at the warehouse, whatever its status.
	FindByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*fleet.Truck, error)

	ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error)
}

type WarehouseRepository interface {
	Add(ctx context.Context, warehouse *warehouse.Warehouse) error

	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)
}

type InventoryRepository interface {
	Add(ctx context.Context, line *inventory.Line) error

	Update(ctx context.Context, line *inventory.Line) error

	Get(ctx context.Context, id kernel.UUID) (*inventory.Line, error)

	// LockMany locks the lines in ascending id order and returns them in that
	// order. It fails with a not found error if any id is unknown.
	LockMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Line, error)

	FindBySKU(ctx context.Context, warehouseID kernel.UUID, sku string) (*inventory.Line, error)

	// FindBelowReorderPoint lists lines whose quantity is under their reorder
	// point, across all warehouses when warehouseID is nil.
	FindBelowReorderPoint(ctx context.Context, warehouseID *kernel.UUID) ([]*inventory.Line, error)
}

type TransferRepository interface {
	Add(ctx context.Context, transfer *inventory.Transfer) error

	Update(ctx context.Context, transfer *inventory.Transfer) error

	Get(ctx context.Context, id kernel.UUID) (*inventory.Transfer, error)

	Lock(ctx context.Context, id kernel.UUID) (*inventory.Transfer, error)
}

type AssignmentRepository interface {
	Add(ctx context.Context, assignment *assignment.Assignment) error

	Update(ctx context.Context, assignment *assignment.Assignment) error

	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	Lock(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	FindByTruck(ctx context.Context, truckID kernel.UUID) ([]*assignment.Assignment, error)

	FindBySourceWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*assignment.Assignment, error)

	FindByDestinationWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*assignment.Assignment, error)
}

type ShipmentRepository interface {
	Add(ctx context.Context, shipment *shipment.Shipment) error

	Update(ctx context.Context, shipment *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	Lock(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	LockByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// FindPendingByWarehouse lists PENDING shipments leaving the warehouse.
	FindPendingByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*shipment.Shipment, error)
}

package queries

import "logistics/internal/core/ports"

// Reader hands out repositories that read committed state outside any unit of
// work. Reads take no locks, so a result may be stale by the time it is used.
type Reader interface {
	TruckRepository() ports.TruckRepository
	WarehouseRepository() ports.WarehouseRepository
	InventoryRepository() ports.InventoryRepository
	AssignmentRepository() ports.AssignmentRepository
	ShipmentRepository() ports.ShipmentRepository
}

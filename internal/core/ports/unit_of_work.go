package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one workflow. Repositories obtained after Begin run inside
// the transaction; Rollback after Commit is a harmless no-op error.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	TruckRepository() TruckRepository

	WarehouseRepository() WarehouseRepository

	InventoryRepository() InventoryRepository

	TransferRepository() TransferRepository

	AssignmentRepository() AssignmentRepository

	ShipmentRepository() ShipmentRepository
}

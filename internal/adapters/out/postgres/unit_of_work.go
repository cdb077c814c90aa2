// Package postgres provides the GORM implementation of the unit of work.
// A unit of work scopes one business transaction across all repositories:
// repositories obtained after Begin run inside the transaction, repositories
// obtained before it run directly on the connection pool.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	truck, err := uow.TruckRepository().Lock(ctx, truckID)
//	if err != nil {
//	    return err
//	}
//	// change the truck
//	if err := uow.TruckRepository().Update(ctx, truck); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns one transaction; goroutines use separate instances
//   - Lock* repository methods take row locks (SELECT ... FOR UPDATE) held until Commit or Rollback
//   - Workflows lock shipment, assignment, transfer, truck and inventory lines in that order
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/assignmentrepo"
	"logistics/internal/adapters/out/postgres/inventoryrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/transferrepo"
	"logistics/internal/adapters/out/postgres/truckrepo"
	"logistics/internal/adapters/out/postgres/warehouserepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands every business operation a fresh unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again on an open unit of work does
// not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TransferRepository() ports.TransferRepository {
	return transferrepo.NewGormTransferRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the ids of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.UUID {
	out := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		out = append(out, tracked.ID)
	}
	return out
}

// Reader serves queries from the connection pool, outside any transaction.
type Reader struct {
	uow *GormUnitOfWork
}

func NewGormReader(db *gorm.DB) Reader {
	return Reader{uow: &GormUnitOfWork{db: db}}
}

func (r Reader) TruckRepository() ports.TruckRepository {
	return r.uow.TruckRepository()
}

func (r Reader) WarehouseRepository() ports.WarehouseRepository {
	return r.uow.WarehouseRepository()
}

func (r Reader) InventoryRepository() ports.InventoryRepository {
	return r.uow.InventoryRepository()
}

func (r Reader) AssignmentRepository() ports.AssignmentRepository {
	return r.uow.AssignmentRepository()
}

func (r Reader) ShipmentRepository() ports.ShipmentRepository {
	return r.uow.ShipmentRepository()
}

package memory

import (
	"context"

	"logistics/internal/core/ports"
)

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin blocks until every other unit of work on the store has ended, or ctx is done.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	st := uow.store.snapshot()
	uow.tx = &st
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	uow.store.publish(*uow.tx)
	uow.tx = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	uow.tx = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) access() access {
	if uow.tx != nil {
		return txAccess{st: uow.tx}
	}
	return directAccess{store: uow.store}
}

func (uow *UnitOfWork) TruckRepository() ports.TruckRepository {
	return &TruckRepository{access: uow.access()}
}

func (uow *UnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return &WarehouseRepository{access: uow.access()}
}

func (uow *UnitOfWork) InventoryRepository() ports.InventoryRepository {
	return &InventoryRepository{access: uow.access()}
}

func (uow *UnitOfWork) TransferRepository() ports.TransferRepository {
	return &TransferRepository{access: uow.access()}
}

func (uow *UnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return &AssignmentRepository{access: uow.access()}
}

func (uow *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return &ShipmentRepository{access: uow.access()}
}

// Reader serves queries straight from the committed state.
type Reader struct {
	uow *UnitOfWork
}

func NewReader(store *Store) Reader {
	return Reader{uow: &UnitOfWork{store: store}}
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

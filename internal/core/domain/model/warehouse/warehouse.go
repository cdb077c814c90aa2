// Package warehouse holds the Warehouse entity. Warehouses are maintained by
// the surrounding system; the engine only reads them to resolve names and to
// check that a referenced warehouse exists.
package warehouse

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrNameIsRequired            = errs.NewValueIsRequiredError("warehouse name")
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
)

type Warehouse struct {
	id        kernel.UUID
	name      string
	location  string
	capacity  int
	managerID *kernel.UUID
	active    bool
	guard     guard.ConstructorGuard
}

func NewWarehouse(id kernel.UUID, name, location string, capacity int, managerID *kernel.UUID, active bool) (*Warehouse, error) {
	w := &Warehouse{
		location:  location,
		managerID: managerID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) ID() kernel.UUID         { return w.id }
func (w *Warehouse) Name() string            { return w.name }
func (w *Warehouse) Location() string        { return w.location }
func (w *Warehouse) Capacity() int           { return w.capacity }
func (w *Warehouse) ManagerID() *kernel.UUID { return w.managerID }
func (w *Warehouse) IsActive() bool          { return w.active }

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsOutOfRangeError("warehouse capacity", capacity, 0, "unbounded")
	}
	w.capacity = capacity
	return nil
}

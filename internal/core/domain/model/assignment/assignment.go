// Package assignment models the placement of inventory lines on a truck for a
// move between two warehouses.
package assignment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrItemsAreRequired           = errs.NewValueIsRequiredError("assignment items")
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

type Assignment struct {
	id                     kernel.UUID
	truckID                kernel.UUID
	sourceWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	status                 Status
	assignedBy             kernel.UUID
	assignedAt             time.Time
	completedAt            *time.Time
	items                  []Item
	guard                  guard.ConstructorGuard
}

// NewAssignment creates a PENDING assignment. Capacity and stock checks belong
// to the workflow that creates it; the aggregate only keeps its own shape valid.
func NewAssignment(
	id kernel.UUID,
	truckID kernel.UUID,
	sourceWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	items []Item,
	assignedBy kernel.UUID,
	now time.Time,
) (*Assignment, error) {
	return RestoreAssignment(id, truckID, sourceWarehouseID, destinationWarehouseID, items, Pending, assignedBy, now, nil)
}

func RestoreAssignment(
	id kernel.UUID,
	truckID kernel.UUID,
	sourceWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	items []Item,
	status Status,
	assignedBy kernel.UUID,
	assignedAt time.Time,
	completedAt *time.Time,
) (*Assignment, error) {
	a := &Assignment{
		assignedAt:  assignedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setTruck(truckID),
		a.setRoute(sourceWarehouseID, destinationWarehouseID),
		a.setItems(items),
		a.setStatus(status),
		a.setAssignedBy(assignedBy),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) ID() kernel.UUID                     { return a.id }
func (a *Assignment) TruckID() kernel.UUID                { return a.truckID }
func (a *Assignment) SourceWarehouseID() kernel.UUID      { return a.sourceWarehouseID }
func (a *Assignment) DestinationWarehouseID() kernel.UUID { return a.destinationWarehouseID }
func (a *Assignment) Status() Status                      { return a.status }
func (a *Assignment) AssignedBy() kernel.UUID             { return a.assignedBy }
func (a *Assignment) AssignedAt() time.Time               { return a.assignedAt }
func (a *Assignment) CompletedAt() *time.Time             { return a.completedAt }

func (a *Assignment) Items() []Item {
	out := make([]Item, len(a.items))
	copy(out, a.items)
	return out
}

func (a *Assignment) TotalLoad() kernel.Load {
	total := kernel.EmptyLoad()
	for _, item := range a.items {
		total = total.Add(item.Load())
	}
	return total
}

// UpdateStatus moves the assignment to target. It returns false when target is
// already the current status, in which case nothing changes.
func (a *Assignment) UpdateStatus(target Status, now time.Time) (bool, error) {
	newStatus, changed, err := a.status.TransitionTo(target)
	if err != nil || !changed {
		return false, err
	}

	a.status = newStatus
	if newStatus.IsTerminal() {
		a.completedAt = &now
	}
	return true, nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setTruck(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truck", err)
	}
	a.truckID = truckID
	return nil
}

func (a *Assignment) setRoute(source, destination kernel.UUID) error {
	if err := errors.Join(source.Validate(), destination.Validate()); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouses", err)
	}
	if source.IsEqual(destination) {
		return errs.NewValueIsInvalidErrorWithCause("destination warehouse",
			fmt.Errorf("%s is also the source warehouse", destination))
	}
	a.sourceWarehouseID = source
	a.destinationWarehouseID = destination
	return nil
}

func (a *Assignment) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	a.items = make([]Item, len(items))
	copy(a.items, items)
	return nil
}

func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Assignment) setAssignedBy(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("assigned by", err)
	}
	a.assignedBy = actorID
	return nil
}

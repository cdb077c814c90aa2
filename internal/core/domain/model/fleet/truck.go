package fleet

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrRegistrationNumberIsRequired = errs.NewValueIsRequiredError("registration number")
	ErrModelIsRequired              = errs.NewValueIsRequiredError("model")
	ErrTruckIsNotConstructed        = errors.New("Truck must be created via NewTruck constructor")
)

// Truck is the fleet aggregate root.
//
// Business rules:
//   - registration number and model are required
//   - capacity is a valid, non-negative Load
//   - the home warehouse never changes; trucks are matched by it
//   - a truck is bound to at most one shipment or assignment, which is modelled
//     by its status alone: binding requires AVAILABLE and moves it to ASSIGNED
type Truck struct {
	id                  kernel.UUID
	registrationNumber  string
	model               string
	capacity            kernel.Load
	driverID            *kernel.UUID
	homeWarehouseID     kernel.UUID
	status              Status
	lastMaintenanceDate *time.Time
	nextMaintenanceDate *time.Time
	guard               guard.ConstructorGuard
}

// NewTruck registers a new AVAILABLE truck.
func NewTruck(
	id kernel.UUID,
	registrationNumber string,
	model string,
	capacity kernel.Load,
	homeWarehouseID kernel.UUID,
	driverID *kernel.UUID,
) (*Truck, error) {
	truck := &Truck{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		truck.setID(id),
		truck.setRegistrationNumber(registrationNumber),
		truck.setModel(model),
		truck.setCapacity(capacity),
		truck.setHomeWarehouse(homeWarehouseID),
		truck.setDriver(driverID),
	); err != nil {
		return nil, err
	}

	return truck, nil
}

// RestoreTruck rebuilds a truck from persistence.
func RestoreTruck(
	id kernel.UUID,
	registrationNumber string,
	model string,
	capacity kernel.Load,
	homeWarehouseID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	lastMaintenanceDate *time.Time,
	nextMaintenanceDate *time.Time,
) (*Truck, error) {
	truck := &Truck{
		lastMaintenanceDate: lastMaintenanceDate,
		nextMaintenanceDate: nextMaintenanceDate,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		truck.setID(id),
		truck.setRegistrationNumber(registrationNumber),
		truck.setModel(model),
		truck.setCapacity(capacity),
		truck.setHomeWarehouse(homeWarehouseID),
		truck.setDriver(driverID),
		truck.setStatus(status),
	); err != nil {
		return nil, err
	}

	return truck, nil
}

func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Truck) ID() kernel.UUID {
	return t.id
}

func (t *Truck) RegistrationNumber() string {
	return t.registrationNumber
}

func (t *Truck) Model() string {
	return t.model
}

func (t *Truck) Capacity() kernel.Load {
	return t.capacity
}

func (t *Truck) DriverID() *kernel.UUID {
	return t.driverID
}

func (t *Truck) HomeWarehouseID() kernel.UUID {
	return t.homeWarehouseID
}

func (t *Truck) Status() Status {
	return t.status
}

func (t *Truck) LastMaintenanceDate() *time.Time {
	return t.lastMaintenanceDate
}

func (t *Truck) NextMaintenanceDate() *time.Time {
	return t.nextMaintenanceDate
}

func (t *Truck) IsAvailable() bool {
	return t.status == Available
}

func (t *Truck) HasDriver() bool {
	return t.driverID != nil
}

func (t *Truck) IsHomedAt(warehouseID kernel.UUID) bool {
	return t.homeWarehouseID.IsEqual(warehouseID)
}

// CanCarry reports whether load fits the full capacity of the truck. A bound
// truck carries nothing else, so the full capacity is also what remains.
func (t *Truck) CanCarry(load kernel.Load) bool {
	return load.Fits(t.capacity)
}

// Assign binds the truck. Fails with an InvalidState error unless the truck is AVAILABLE.
func (t *Truck) Assign() error {
	newStatus, err := t.status.Assign()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

func (t *Truck) Dispatch() error {
	newStatus, err := t.status.Dispatch()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// Release makes the truck AVAILABLE again once its cargo is delivered or cancelled.
func (t *Truck) Release() error {
	newStatus, err := t.status.Release()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

func (t *Truck) SendToMaintenance(next *time.Time) error {
	newStatus, err := t.status.SendToMaintenance()
	if err != nil {
		return err
	}
	t.status = newStatus
	t.nextMaintenanceDate = next
	return nil
}

func (t *Truck) CompleteMaintenance(at time.Time, next *time.Time) error {
	newStatus, err := t.status.CompleteMaintenance()
	if err != nil {
		return err
	}
	t.status = newStatus
	t.lastMaintenanceDate = &at
	t.nextMaintenanceDate = next
	return nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setRegistrationNumber(registrationNumber string) error {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return ErrRegistrationNumberIsRequired
	}
	t.registrationNumber = registrationNumber
	return nil
}

func (t *Truck) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return ErrModelIsRequired
	}
	t.model = model
	return nil
}

func (t *Truck) setCapacity(capacity kernel.Load) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	t.capacity = capacity
	return nil
}

func (t *Truck) setHomeWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("home warehouse", err)
	}
	t.homeWarehouseID = warehouseID
	return nil
}

func (t *Truck) setDriver(driverID *kernel.UUID) error {
	if driverID == nil {
		t.driverID = nil
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver", err)
	}
	id := *driverID
	t.driverID = &id
	return nil
}

func (t *Truck) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

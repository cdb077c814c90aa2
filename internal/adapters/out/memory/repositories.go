package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"
)

type TruckRepository struct {
	access access
}

func (r *TruckRepository) Add(ctx context.Context, truck *fleet.Truck) error {
	if err := truck.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.trucks[truck.ID()]; ok {
			return fmt.Errorf("%w: truck %s", ErrDuplicateKey, truck.ID())
		}
		for _, rec := range st.trucks {
			if strings.EqualFold(rec.registrationNumber, truck.RegistrationNumber()) {
				return fmt.Errorf("%w: registration number %s", ErrDuplicateKey, truck.RegistrationNumber())
			}
		}
		st.trucks[truck.ID()] = newTruckRecord(truck)
		return nil
	})
}

func (r *TruckRepository) Update(ctx context.Context, truck *fleet.Truck) error {
	if err := truck.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.trucks[truck.ID()]; !ok {
			return errs.NewObjectNotFoundError("truck", truck.ID().String())
		}
		st.trucks[truck.ID()] = newTruckRecord(truck)
		return nil
	})
}

func (r *TruckRepository) Get(_ context.Context, id kernel.UUID) (*fleet.Truck, error) {
	var truck *fleet.Truck
	err := r.access.read(func(st *state) error {
		rec, ok := st.trucks[id]
		if !ok {
			return errs.NewObjectNotFoundError("truck", id.String())
		}
		var err error
		truck, err = rec.toDomain()
		return err
	})
	return truck, err
}

func (r *TruckRepository) Lock(ctx context.Context, id kernel.UUID) (*fleet.Truck, error) {
	return r.Get(ctx, id)
}

func (r *TruckRepository) FindByWarehouse(_ context.Context, warehouseID kernel.UUID) ([]*fleet.Truck, error) {
	var trucks []*fleet.Truck
	err := r.access.read(func(st *state) error {
		for _, rec := range st.trucks {
			if !rec.homeWarehouseID.IsEqual(warehouseID) {
				continue
			}
			truck, err := rec.toDomain()
			if err != nil {
				return err
			}
			trucks = append(trucks, truck)
		}
		return nil
	})
	slices.SortFunc(trucks, func(a, b *fleet.Truck) int {
		return strings.Compare(a.RegistrationNumber(), b.RegistrationNumber())
	})
	return trucks, err
}

func (r *TruckRepository) ExistsByRegistrationNumber(_ context.Context, registrationNumber string) (bool, error) {
	var exists bool
	err := r.access.read(func(st *state) error {
		for _, rec := range st.trucks {
			if strings.EqualFold(rec.registrationNumber, registrationNumber) {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

type WarehouseRepository struct {
	access access
}

func (r *WarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	if err := w.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.warehouses[w.ID()]; ok {
			return fmt.Errorf("%w: warehouse %s", ErrDuplicateKey, w.ID())
		}
		st.warehouses[w.ID()] = w
		return nil
	})
}

func (r *WarehouseRepository) Get(_ context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	var w *warehouse.Warehouse
	err := r.access.read(func(st *state) error {
		found, ok := st.warehouses[id]
		if !ok {
			return errs.NewObjectNotFoundError("warehouse", id.String())
		}
		w = found
		return nil
	})
	return w, err
}

type InventoryRepository struct {
	access access
}

func (r *InventoryRepository) Add(ctx context.Context, line *inventory.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.lines[line.ID()]; ok {
			return fmt.Errorf("%w: inventory %s", ErrDuplicateKey, line.ID())
		}
		for _, rec := range st.lines {
			if rec.warehouseID.IsEqual(line.WarehouseID()) && rec.item.SKU() == line.SKU() {
				return fmt.Errorf("%w: sku %s at warehouse %s", ErrDuplicateKey, line.SKU(), line.WarehouseID())
			}
		}
		st.lines[line.ID()] = newLineRecord(line)
		return nil
	})
}

func (r *InventoryRepository) Update(ctx context.Context, line *inventory.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.lines[line.ID()]; !ok {
			return errs.NewObjectNotFoundError("inventory", line.ID().String())
		}
		st.lines[line.ID()] = newLineRecord(line)
		return nil
	})
}

func (r *InventoryRepository) Get(_ context.Context, id kernel.UUID) (*inventory.Line, error) {
	var line *inventory.Line
	err := r.access.read(func(st *state) error {
		rec, ok := st.lines[id]
		if !ok {
			return errs.NewObjectNotFoundError("inventory", id.String())
		}
		var err error
		line, err = rec.toDomain()
		return err
	})
	return line, err
}

func (r *InventoryRepository) LockMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Line, error) {
	sorted := kernel.SortedUnique(ids)
	lines := make([]*inventory.Line, 0, len(sorted))
	for _, id := range sorted {
		line, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *InventoryRepository) FindBySKU(_ context.Context, warehouseID kernel.UUID, sku string) (*inventory.Line, error) {
	var line *inventory.Line
	err := r.access.read(func(st *state) error {
		for _, rec := range st.lines {
			if rec.warehouseID.IsEqual(warehouseID) && rec.item.SKU() == sku {
				var err error
				line, err = rec.toDomain()
				return err
			}
		}
		return errs.NewObjectNotFoundError("inventory", sku)
	})
	return line, err
}

func (r *InventoryRepository) FindBelowReorderPoint(
	_ context.Context,
	warehouseID *kernel.UUID,
) ([]*inventory.Line, error) {
	var lines []*inventory.Line
	err := r.access.read(func(st *state) error {
		for _, rec := range st.lines {
			if warehouseID != nil && !rec.warehouseID.IsEqual(*warehouseID) {
				continue
			}
			line, err := rec.toDomain()
			if err != nil {
				return err
			}
			if line.IsBelowReorderPoint() {
				lines = append(lines, line)
			}
		}
		return nil
	})
	slices.SortFunc(lines, func(a, b *inventory.Line) int {
		return cmp.Or(a.WarehouseID().Compare(b.WarehouseID()), strings.Compare(a.SKU(), b.SKU()))
	})
	return lines, err
}

type TransferRepository struct {
	access access
}

func (r *TransferRepository) Add(ctx context.Context, transfer *inventory.Transfer) error {
	if err := transfer.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.transfers[transfer.ID()]; ok {
			return fmt.Errorf("%w: transfer %s", ErrDuplicateKey, transfer.ID())
		}
		st.transfers[transfer.ID()] = newTransferRecord(transfer)
		return nil
	})
}

func (r *TransferRepository) Update(ctx context.Context, transfer *inventory.Transfer) error {
	if err := transfer.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.transfers[transfer.ID()]; !ok {
			return errs.NewObjectNotFoundError("transfer", transfer.ID().String())
		}
		st.transfers[transfer.ID()] = newTransferRecord(transfer)
		return nil
	})
}

func (r *TransferRepository) Get(_ context.Context, id kernel.UUID) (*inventory.Transfer, error) {
	var transfer *inventory.Transfer
	err := r.access.read(func(st *state) error {
		rec, ok := st.transfers[id]
		if !ok {
			return errs.NewObjectNotFoundError("transfer", id.String())
		}
		var err error
		transfer, err = rec.toDomain()
		return err
	})
	return transfer, err
}

func (r *TransferRepository) Lock(ctx context.Context, id kernel.UUID) (*inventory.Transfer, error) {
	return r.Get(ctx, id)
}

type AssignmentRepository struct {
	access access
}

func (r *AssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.assignments[a.ID()]; ok {
			return fmt.Errorf("%w: assignment %s", ErrDuplicateKey, a.ID())
		}
		st.assignments[a.ID()] = newAssignmentRecord(a)
		return nil
	})
}

func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.assignments[a.ID()]; !ok {
			return errs.NewObjectNotFoundError("assignment", a.ID().String())
		}
		st.assignments[a.ID()] = newAssignmentRecord(a)
		return nil
	})
}

func (r *AssignmentRepository) Get(_ context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	var a *assignment.Assignment
	err := r.access.read(func(st *state) error {
		rec, ok := st.assignments[id]
		if !ok {
			return errs.NewObjectNotFoundError("assignment", id.String())
		}
		var err error
		a, err = rec.toDomain()
		return err
	})
	return a, err
}

func (r *AssignmentRepository) Lock(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.Get(ctx, id)
}

func (r *AssignmentRepository) FindByTruck(_ context.Context, truckID kernel.UUID) ([]*assignment.Assignment, error) {
	return r.find(func(rec assignmentRecord) bool { return rec.truckID.IsEqual(truckID) })
}

func (r *AssignmentRepository) FindBySourceWarehouse(
	_ context.Context,
	warehouseID kernel.UUID,
) ([]*assignment.Assignment, error) {
	return r.find(func(rec assignmentRecord) bool { return rec.sourceWarehouseID.IsEqual(warehouseID) })
}

func (r *AssignmentRepository) FindByDestinationWarehouse(
	_ context.Context,
	warehouseID kernel.UUID,
) ([]*assignment.Assignment, error) {
	return r.find(func(rec assignmentRecord) bool { return rec.destinationWarehouseID.IsEqual(warehouseID) })
}

// find returns the matching assignments, newest first.
func (r *AssignmentRepository) find(match func(assignmentRecord) bool) ([]*assignment.Assignment, error) {
	var list []*assignment.Assignment
	err := r.access.read(func(st *state) error {
		for _, rec := range st.assignments {
			if !match(rec) {
				continue
			}
			a, err := rec.toDomain()
			if err != nil {
				return err
			}
			list = append(list, a)
		}
		return nil
	})
	slices.SortFunc(list, func(a, b *assignment.Assignment) int {
		return cmp.Or(b.AssignedAt().Compare(a.AssignedAt()), a.ID().Compare(b.ID()))
	})
	return list, err
}

type ShipmentRepository struct {
	access access
}

func (r *ShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.shipments[s.ID()]; ok {
			return fmt.Errorf("%w: shipment %s", ErrDuplicateKey, s.ID())
		}
		for _, rec := range st.shipments {
			if rec.trackingNumber == s.TrackingNumber() {
				return fmt.Errorf("%w: tracking number %s", ErrDuplicateKey, s.TrackingNumber())
			}
		}
		st.shipments[s.ID()] = newShipmentRecord(s)
		return nil
	})
}

func (r *ShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.access.write(ctx, func(st *state) error {
		if _, ok := st.shipments[s.ID()]; !ok {
			return errs.NewObjectNotFoundError("shipment", s.ID().String())
		}
		st.shipments[s.ID()] = newShipmentRecord(s)
		return nil
	})
}

func (r *ShipmentRepository) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	var s *shipment.Shipment
	err := r.access.read(func(st *state) error {
		rec, ok := st.shipments[id]
		if !ok {
			return errs.NewObjectNotFoundError("shipment", id.String())
		}
		var err error
		s, err = rec.toDomain()
		return err
	})
	return s, err
}

func (r *ShipmentRepository) Lock(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.Get(ctx, id)
}

func (r *ShipmentRepository) GetByTrackingNumber(_ context.Context, trackingNumber string) (*shipment.Shipment, error) {
	var s *shipment.Shipment
	err := r.access.read(func(st *state) error {
		for _, rec := range st.shipments {
			if rec.trackingNumber == trackingNumber {
				var err error
				s, err = rec.toDomain()
				return err
			}
		}
		return errs.NewObjectNotFoundError("shipment", trackingNumber)
	})
	return s, err
}

func (r *ShipmentRepository) LockByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	return r.GetByTrackingNumber(ctx, trackingNumber)
}

func (r *ShipmentRepository) FindPendingByWarehouse(
	_ context.Context,
	warehouseID kernel.UUID,
) ([]*shipment.Shipment, error) {
	var list []*shipment.Shipment
	err := r.access.read(func(st *state) error {
		for _, rec := range st.shipments {
			if rec.snapshot.Status != shipment.Pending || !rec.originWarehouseID.IsEqual(warehouseID) {
				continue
			}
			s, err := rec.toDomain()
			if err != nil {
				return err
			}
			list = append(list, s)
		}
		return nil
	})
	slices.SortFunc(list, func(a, b *shipment.Shipment) int {
		return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), strings.Compare(a.TrackingNumber(), b.TrackingNumber()))
	})
	return list, err
}

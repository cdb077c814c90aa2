package memory

import (
	"time"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// Records are immutable copies of aggregate state. A transaction snapshot can
// share them with the committed state; every write stores a new record.

type truckRecord struct {
	id                  kernel.UUID
	registrationNumber  string
	model               string
	capacity            kernel.Load
	driverID            *kernel.UUID
	homeWarehouseID     kernel.UUID
	status              fleet.Status
	lastMaintenanceDate *time.Time
	nextMaintenanceDate *time.Time
}

func newTruckRecord(t *fleet.Truck) truckRecord {
	return truckRecord{
		id:                  t.ID(),
		registrationNumber:  t.RegistrationNumber(),
		model:               t.Model(),
		capacity:            t.Capacity(),
		driverID:            copyPtr(t.DriverID()),
		homeWarehouseID:     t.HomeWarehouseID(),
		status:              t.Status(),
		lastMaintenanceDate: copyPtr(t.LastMaintenanceDate()),
		nextMaintenanceDate: copyPtr(t.NextMaintenanceDate()),
	}
}

func (r truckRecord) toDomain() (*fleet.Truck, error) {
	return fleet.RestoreTruck(r.id, r.registrationNumber, r.model, r.capacity, r.homeWarehouseID,
		copyPtr(r.driverID), r.status, copyPtr(r.lastMaintenanceDate), copyPtr(r.nextMaintenanceDate))
}

type lineRecord struct {
	id              kernel.UUID
	warehouseID     kernel.UUID
	item            inventory.Item
	quantity        int
	reorderPoint    int
	reorderQuantity int
}

func newLineRecord(l *inventory.Line) lineRecord {
	return lineRecord{
		id:              l.ID(),
		warehouseID:     l.WarehouseID(),
		item:            l.Item(),
		quantity:        l.Quantity(),
		reorderPoint:    l.ReorderPoint(),
		reorderQuantity: l.ReorderQuantity(),
	}
}

func (r lineRecord) toDomain() (*inventory.Line, error) {
	return inventory.NewLine(r.id, r.warehouseID, r.item, r.quantity, r.reorderPoint, r.reorderQuantity)
}

type transferRecord struct {
	id                     kernel.UUID
	sourceLineID           kernel.UUID
	sourceWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	destinationLineID      *kernel.UUID
	quantity               int
	status                 inventory.TransferStatus
	initiatedBy            kernel.UUID
	initiatedAt            time.Time
	completedAt            *time.Time
}

func newTransferRecord(t *inventory.Transfer) transferRecord {
	return transferRecord{
		id:                     t.ID(),
		sourceLineID:           t.SourceLineID(),
		sourceWarehouseID:      t.SourceWarehouseID(),
		destinationWarehouseID: t.DestinationWarehouseID(),
		destinationLineID:      copyPtr(t.DestinationLineID()),
		quantity:               t.Quantity(),
		status:                 t.Status(),
		initiatedBy:            t.InitiatedBy(),
		initiatedAt:            t.InitiatedAt(),
		completedAt:            copyPtr(t.CompletedAt()),
	}
}

func (r transferRecord) toDomain() (*inventory.Transfer, error) {
	return inventory.RestoreTransfer(r.id, r.sourceLineID, r.sourceWarehouseID, r.destinationWarehouseID,
		copyPtr(r.destinationLineID), r.quantity, r.status, r.initiatedBy, r.initiatedAt, copyPtr(r.completedAt))
}

type assignmentRecord struct {
	id                     kernel.UUID
	truckID                kernel.UUID
	sourceWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	items                  []assignment.Item
	status                 assignment.Status
	assignedBy             kernel.UUID
	assignedAt             time.Time
	completedAt            *time.Time
}

func newAssignmentRecord(a *assignment.Assignment) assignmentRecord {
	return assignmentRecord{
		id:                     a.ID(),
		truckID:                a.TruckID(),
		sourceWarehouseID:      a.SourceWarehouseID(),
		destinationWarehouseID: a.DestinationWarehouseID(),
		items:                  a.Items(),
		status:                 a.Status(),
		assignedBy:             a.AssignedBy(),
		assignedAt:             a.AssignedAt(),
		completedAt:            copyPtr(a.CompletedAt()),
	}
}

func (r assignmentRecord) toDomain() (*assignment.Assignment, error) {
	items := make([]assignment.Item, len(r.items))
	copy(items, r.items)
	return assignment.RestoreAssignment(r.id, r.truckID, r.sourceWarehouseID, r.destinationWarehouseID,
		items, r.status, r.assignedBy, r.assignedAt, copyPtr(r.completedAt))
}

type shipmentItemRecord struct {
	id             kernel.UUID
	barcode        string
	description    string
	expectedWeight decimal.Decimal
	observedWeight *decimal.Decimal
	status         shipment.ItemStatus
	processedAt    *time.Time
	notes          string
}

type shipmentRecord struct {
	id                     kernel.UUID
	trackingNumber         string
	transferID             *kernel.UUID
	originWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	totalVolume            decimal.Decimal
	estimatedDeliveryAt    *time.Time
	items                  []shipmentItemRecord
	notes                  string
	createdBy              kernel.UUID
	createdAt              time.Time
	snapshot               shipment.Snapshot
}

func newShipmentRecord(s *shipment.Shipment) shipmentRecord {
	items := make([]shipmentItemRecord, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, shipmentItemRecord{
			id:             item.ID(),
			barcode:        item.Barcode(),
			description:    item.Description(),
			expectedWeight: item.ExpectedWeight(),
			observedWeight: copyPtr(item.ObservedWeight()),
			status:         item.Status(),
			processedAt:    copyPtr(item.ProcessedAt()),
			notes:          item.Notes(),
		})
	}

	var discrepancy *shipment.WeightDiscrepancy
	if d := s.Discrepancy(); d != nil {
		discrepancy = copyPtr(d)
	}

	return shipmentRecord{
		id:                     s.ID(),
		trackingNumber:         s.TrackingNumber(),
		transferID:             copyPtr(s.TransferID()),
		originWarehouseID:      s.OriginWarehouseID(),
		destinationWarehouseID: s.DestinationWarehouseID(),
		totalVolume:            s.TotalVolume(),
		estimatedDeliveryAt:    copyPtr(s.EstimatedDeliveryAt()),
		items:                  items,
		notes:                  s.Notes(),
		createdBy:              s.CreatedBy(),
		createdAt:              s.CreatedAt(),
		snapshot: shipment.Snapshot{
			TruckID:           copyPtr(s.TruckID()),
			Status:            s.Status(),
			ScheduledPickupAt: copyPtr(s.ScheduledPickupAt()),
			ActualPickupAt:    copyPtr(s.ActualPickupAt()),
			ActualDeliveryAt:  copyPtr(s.ActualDeliveryAt()),
			Discrepancy:       discrepancy,
			UpdatedAt:         s.UpdatedAt(),
		},
	}
}

func (r shipmentRecord) toDomain() (*shipment.Shipment, error) {
	items := make([]*shipment.Item, 0, len(r.items))
	for _, ir := range r.items {
		item, err := shipment.RestoreItem(ir.id, ir.barcode, ir.description, ir.expectedWeight,
			copyPtr(ir.observedWeight), ir.status, copyPtr(ir.processedAt), ir.notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	snapshot := r.snapshot
	snapshot.TruckID = copyPtr(r.snapshot.TruckID)
	snapshot.ScheduledPickupAt = copyPtr(r.snapshot.ScheduledPickupAt)
	snapshot.ActualPickupAt = copyPtr(r.snapshot.ActualPickupAt)
	snapshot.ActualDeliveryAt = copyPtr(r.snapshot.ActualDeliveryAt)
	snapshot.Discrepancy = copyPtr(r.snapshot.Discrepancy)

	return shipment.RestoreShipment(r.id, r.trackingNumber, copyPtr(r.transferID), r.originWarehouseID,
		r.destinationWarehouseID, r.totalVolume, copyPtr(r.estimatedDeliveryAt), items, r.notes,
		r.createdBy, r.createdAt, snapshot)
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

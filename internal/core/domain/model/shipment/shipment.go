package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// TrackingNumberMaxLength bounds the externally visible shipment identifier.
const TrackingNumberMaxLength = 20

var (
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")
	ErrItemsAreRequired         = errs.NewValueIsRequiredError("shipment items")
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment is the aggregate root for a shipment and its items.
//
// Business rules:
//   - the tracking number is required, at most 20 characters and unique
//   - items are required and their barcodes are unique within the shipment
//   - total weight is the sum of the expected item weights
//   - a truck is bound only while PENDING and only once
//   - items are scanned only until the shipment is IN_TRANSIT
type Shipment struct {
	id                     kernel.UUID
	trackingNumber         string
	transferID             *kernel.UUID
	originWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	totalWeight            decimal.Decimal
	totalVolume            decimal.Decimal
	truckID                *kernel.UUID
	status                 Status
	scheduledPickupAt      *time.Time
	actualPickupAt         *time.Time
	estimatedDeliveryAt    *time.Time
	actualDeliveryAt       *time.Time
	notes                  string
	discrepancy            *WeightDiscrepancy
	items                  []*Item
	createdBy              kernel.UUID
	createdAt              time.Time
	updatedAt              time.Time
	guard                  guard.ConstructorGuard
}

// NewShipment creates a PENDING shipment carrying items.
func NewShipment(
	id kernel.UUID,
	trackingNumber string,
	transferID *kernel.UUID,
	originWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	totalVolume decimal.Decimal,
	estimatedDeliveryAt *time.Time,
	items []*Item,
	notes string,
	createdBy kernel.UUID,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		transferID:          transferID,
		status:              Pending,
		estimatedDeliveryAt: estimatedDeliveryAt,
		notes:               notes,
		createdAt:           now,
		updatedAt:           now,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setRoute(originWarehouseID, destinationWarehouseID),
		s.setTotalVolume(totalVolume),
		s.setItems(items),
		s.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Snapshot carries the persisted state of a shipment that is not set through
// NewShipment. It is only used by RestoreShipment.
type Snapshot struct {
	TruckID           *kernel.UUID
	Status            Status
	ScheduledPickupAt *time.Time
	ActualPickupAt    *time.Time
	ActualDeliveryAt  *time.Time
	Discrepancy       *WeightDiscrepancy
	UpdatedAt         time.Time
}

// RestoreShipment rebuilds a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber string,
	transferID *kernel.UUID,
	originWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	totalVolume decimal.Decimal,
	estimatedDeliveryAt *time.Time,
	items []*Item,
	notes string,
	createdBy kernel.UUID,
	createdAt time.Time,
	snapshot Snapshot,
) (*Shipment, error) {
	s, err := NewShipment(id, trackingNumber, transferID, originWarehouseID, destinationWarehouseID,
		totalVolume, estimatedDeliveryAt, items, notes, createdBy, createdAt)
	if err != nil {
		return nil, err
	}
	if err = snapshot.Status.Validate(); err != nil {
		return nil, err
	}
	if snapshot.TruckID != nil && snapshot.Status == Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause("truck", errors.New("a pending shipment has no truck"))
	}

	s.truckID = snapshot.TruckID
	s.status = snapshot.Status
	s.scheduledPickupAt = snapshot.ScheduledPickupAt
	s.actualPickupAt = snapshot.ActualPickupAt
	s.actualDeliveryAt = snapshot.ActualDeliveryAt
	s.discrepancy = snapshot.Discrepancy
	s.updatedAt = snapshot.UpdatedAt
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID                     { return s.id }
func (s *Shipment) TrackingNumber() string              { return s.trackingNumber }
func (s *Shipment) TransferID() *kernel.UUID            { return s.transferID }
func (s *Shipment) OriginWarehouseID() kernel.UUID      { return s.originWarehouseID }
func (s *Shipment) DestinationWarehouseID() kernel.UUID { return s.destinationWarehouseID }
func (s *Shipment) TotalWeight() decimal.Decimal        { return s.totalWeight }
func (s *Shipment) TotalVolume() decimal.Decimal        { return s.totalVolume }
func (s *Shipment) TruckID() *kernel.UUID               { return s.truckID }
func (s *Shipment) Status() Status                      { return s.status }
func (s *Shipment) ScheduledPickupAt() *time.Time       { return s.scheduledPickupAt }
func (s *Shipment) ActualPickupAt() *time.Time          { return s.actualPickupAt }
func (s *Shipment) EstimatedDeliveryAt() *time.Time     { return s.estimatedDeliveryAt }
func (s *Shipment) ActualDeliveryAt() *time.Time        { return s.actualDeliveryAt }
func (s *Shipment) Notes() string                       { return s.notes }
func (s *Shipment) Discrepancy() *WeightDiscrepancy     { return s.discrepancy }
func (s *Shipment) CreatedBy() kernel.UUID              { return s.createdBy }
func (s *Shipment) CreatedAt() time.Time                { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time                { return s.updatedAt }

func (s *Shipment) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item looks an item up by barcode.
func (s *Shipment) Item(barcode string) (*Item, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, ErrBarcodeIsRequired
	}
	for _, item := range s.items {
		if item.barcode == barcode {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("barcode", barcode)
}

// Reconcile derives the current scan state under policy.
func (s *Shipment) Reconcile(policy ReadinessPolicy) Reconciliation {
	return reconcile(s.items, s.discrepancy, policy)
}

// AssignTruck binds truckID and schedules the pickup. Non-empty notes replace
// the current ones. Checking that the truck itself is available is the job of
// the caller, which holds the truck. Items scanned while PENDING count, so a
// shipment that already reconciles is promoted straight to READY_FOR_PICKUP;
// the second return value reports that.
func (s *Shipment) AssignTruck(
	truckID kernel.UUID,
	scheduledPickupAt time.Time,
	notes string,
	policy ReadinessPolicy,
	now time.Time,
) (bool, error) {
	if err := truckID.Validate(); err != nil {
		return false, errs.NewValueIsRequiredErrorWithCause("truck", err)
	}
	newStatus, err := s.status.ScheduleForPickup()
	if err != nil {
		return false, err
	}

	s.status = newStatus
	s.truckID = &truckID
	s.scheduledPickupAt = &scheduledPickupAt
	if notes != "" {
		s.notes = notes
	}
	s.updatedAt = now
	return s.promoteIfReady(policy, now), nil
}

// ProcessItem records the scan of barcode. status defaults to PROCESSED;
// PROCESSED needs a positive weight, DAMAGED a non-negative one when given.
// Re-sending an identical scan changes nothing. It returns the scanned item and
// whether the shipment was promoted to READY_FOR_PICKUP.
func (s *Shipment) ProcessItem(
	barcode string,
	status ItemStatus,
	weight *decimal.Decimal,
	notes string,
	policy ReadinessPolicy,
	now time.Time,
) (*Item, bool, error) {
	if err := s.ensureScannable(); err != nil {
		return nil, false, err
	}
	item, err := s.Item(barcode)
	if err != nil {
		return nil, false, err
	}

	if status == ItemUnknown {
		status = ItemProcessed
	}
	if !status.IsScanResult() {
		return nil, false, errs.NewValueIsInvalidErrorWithCause("item status",
			fmt.Errorf("%s is not a scan result", status))
	}
	if err = validateScanWeight(status, weight); err != nil {
		return nil, false, err
	}

	changed, err := item.record(status, weight, notes, now)
	if err != nil {
		return nil, false, err
	}
	if changed {
		s.updatedAt = now
	}

	return item, s.promoteIfReady(policy, now), nil
}

// ReportMissing marks barcode as MISSING. Its expected weight leaves the
// reconciliation target. Reporting the same item twice changes nothing.
func (s *Shipment) ReportMissing(barcode, notes string, policy ReadinessPolicy, now time.Time) (*Item, bool, error) {
	return s.ProcessItem(barcode, ItemMissing, nil, notes, policy, now)
}

// ReportWeight compares an aggregate scale reading with the reconciliation
// scale weight. A reading outside tolerance is flagged and blocks readiness until a
// reading within tolerance clears it. It returns whether the reading was
// flagged and whether the shipment got promoted.
func (s *Shipment) ReportWeight(
	actual decimal.Decimal,
	reportedBy kernel.UUID,
	policy ReadinessPolicy,
	now time.Time,
) (bool, bool, error) {
	if err := s.ensureScannable(); err != nil {
		return false, false, err
	}
	if actual.IsNegative() {
		return false, false, errs.NewValueIsOutOfRangeError("actual weight", actual.String(), 0, "unbounded")
	}
	if err := reportedBy.Validate(); err != nil {
		return false, false, errs.NewValueIsRequiredErrorWithCause("reported by", err)
	}

	target := s.Reconcile(policy).ScaleWeight
	mismatch := !policy.withinTolerance(actual, target)
	if mismatch {
		s.discrepancy = &WeightDiscrepancy{
			Actual:     actual,
			Expected:   target,
			ReportedBy: reportedBy,
			ReportedAt: now,
		}
	} else {
		s.discrepancy = nil
	}
	s.updatedAt = now

	return mismatch, s.promoteIfReady(policy, now), nil
}

// StartTransit records the pickup of a READY_FOR_PICKUP shipment.
func (s *Shipment) StartTransit(now time.Time) error {
	newStatus, err := s.status.StartTransit()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.actualPickupAt = &now
	s.updatedAt = now
	return nil
}

func (s *Shipment) Deliver(now time.Time) error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.actualDeliveryAt = &now
	s.updatedAt = now
	return nil
}

func (s *Shipment) Cancel(now time.Time) error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.updatedAt = now
	return nil
}

func (s *Shipment) ensureScannable() error {
	if !s.status.AcceptsScans() {
		return errs.NewInvalidStateErrorWithCause("shipment", s.status.String(),
			errors.New("items can no longer be processed"))
	}
	return nil
}

func (s *Shipment) promoteIfReady(policy ReadinessPolicy, now time.Time) bool {
	if s.status != ScheduledForPickup || !s.Reconcile(policy).ReadyForLoading {
		return false
	}
	newStatus, err := s.status.MarkReady()
	if err != nil {
		return false
	}
	s.status = newStatus
	s.updatedAt = now
	return true
}

func validateScanWeight(status ItemStatus, weight *decimal.Decimal) error {
	switch status {
	case ItemProcessed:
		if weight == nil {
			return errs.NewValueIsRequiredError("weight")
		}
		if !weight.IsPositive() {
			return errs.NewValueIsOutOfRangeError("weight", weight.String(), "0 exclusive", "unbounded")
		}
	case ItemDamaged:
		if weight != nil && weight.IsNegative() {
			return errs.NewValueIsOutOfRangeError("weight", weight.String(), 0, "unbounded")
		}
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	if len(trackingNumber) > TrackingNumberMaxLength {
		return errs.NewValueIsOutOfRangeError("tracking number length", len(trackingNumber), 1, TrackingNumberMaxLength)
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setRoute(origin, destination kernel.UUID) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouses", err)
	}
	if origin.IsEqual(destination) {
		return errs.NewValueIsInvalidErrorWithCause("destination warehouse",
			fmt.Errorf("%s is also the origin warehouse", destination))
	}
	s.originWarehouseID = origin
	s.destinationWarehouseID = destination
	return nil
}

func (s *Shipment) setTotalVolume(volume decimal.Decimal) error {
	if volume.IsNegative() {
		return errs.NewValueIsOutOfRangeError("total volume", volume.String(), 0, "unbounded")
	}
	s.totalVolume = volume
	return nil
}

func (s *Shipment) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[string]struct{}, len(items))
	total := decimal.Zero
	for _, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredError("shipment item")
		}
		if _, dup := seen[item.barcode]; dup {
			return errs.NewValueIsInvalidErrorWithCause("barcode", fmt.Errorf("%s appears more than once", item.barcode))
		}
		seen[item.barcode] = struct{}{}
		total = total.Add(item.expectedWeight)
	}

	s.items = make([]*Item, len(items))
	copy(s.items, items)
	s.totalWeight = total
	return nil
}

func (s *Shipment) setCreatedBy(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("created by", err)
	}
	s.createdBy = actorID
	return nil
}

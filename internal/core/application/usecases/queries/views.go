package queries

import (
	"time"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

type TruckView struct {
	ID                  kernel.UUID
	RegistrationNumber  string
	Model               string
	CapacityWeight      decimal.Decimal
	CapacityVolume      decimal.Decimal
	DriverID            *kernel.UUID
	HomeWarehouseID     kernel.UUID
	Status              string
	LastMaintenanceDate *time.Time
	NextMaintenanceDate *time.Time
}

func newTruckView(t *fleet.Truck) TruckView {
	return TruckView{
		ID:                  t.ID(),
		RegistrationNumber:  t.RegistrationNumber(),
		Model:               t.Model(),
		CapacityWeight:      t.Capacity().Weight(),
		CapacityVolume:      t.Capacity().Volume(),
		DriverID:            t.DriverID(),
		HomeWarehouseID:     t.HomeWarehouseID(),
		Status:              t.Status().String(),
		LastMaintenanceDate: t.LastMaintenanceDate(),
		NextMaintenanceDate: t.NextMaintenanceDate(),
	}
}

type AssignmentItemView struct {
	InventoryID kernel.UUID
	SKU         string
	Name        string
	Quantity    int
	Weight      decimal.Decimal
	Volume      decimal.Decimal
}

type AssignmentView struct {
	ID                     kernel.UUID
	TruckID                kernel.UUID
	SourceWarehouseID      kernel.UUID
	DestinationWarehouseID kernel.UUID
	Status                 string
	Items                  []AssignmentItemView
	TotalWeight            decimal.Decimal
	TotalVolume            decimal.Decimal
	AssignedBy             kernel.UUID
	AssignedAt             time.Time
	CompletedAt            *time.Time
}

func NewAssignmentView(a *assignment.Assignment) AssignmentView {
	view := AssignmentView{
		ID:                     a.ID(),
		TruckID:                a.TruckID(),
		SourceWarehouseID:      a.SourceWarehouseID(),
		DestinationWarehouseID: a.DestinationWarehouseID(),
		Status:                 a.Status().String(),
		Items:                  make([]AssignmentItemView, 0, len(a.Items())),
		TotalWeight:            a.TotalLoad().Weight(),
		TotalVolume:            a.TotalLoad().Volume(),
		AssignedBy:             a.AssignedBy(),
		AssignedAt:             a.AssignedAt(),
		CompletedAt:            a.CompletedAt(),
	}
	for _, item := range a.Items() {
		view.Items = append(view.Items, AssignmentItemView{
			InventoryID: item.InventoryID(),
			SKU:         item.SKU(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Weight:      item.Load().Weight(),
			Volume:      item.Load().Volume(),
		})
	}
	return view
}

func newAssignmentViews(list []*assignment.Assignment) []AssignmentView {
	views := make([]AssignmentView, 0, len(list))
	for _, a := range list {
		views = append(views, NewAssignmentView(a))
	}
	return views
}

type ShipmentItemView struct {
	ID             kernel.UUID
	Barcode        string
	Description    string
	ExpectedWeight decimal.Decimal
	ObservedWeight *decimal.Decimal
	Status         string
	ProcessedAt    *time.Time
	Notes          string
}

type ShipmentView struct {
	ID                     kernel.UUID
	TrackingNumber         string
	TransferID             *kernel.UUID
	OriginWarehouseID      kernel.UUID
	DestinationWarehouseID kernel.UUID
	TruckID                *kernel.UUID
	Status                 string
	TotalWeight            decimal.Decimal
	TotalVolume            decimal.Decimal
	ScheduledPickupAt      *time.Time
	ActualPickupAt         *time.Time
	EstimatedDeliveryAt    *time.Time
	ActualDeliveryAt       *time.Time
	Notes                  string
	Items                  []ShipmentItemView
	CreatedBy              kernel.UUID
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func NewShipmentView(s *shipment.Shipment) ShipmentView {
	return ShipmentView{
		ID:                     s.ID(),
		TrackingNumber:         s.TrackingNumber(),
		TransferID:             s.TransferID(),
		OriginWarehouseID:      s.OriginWarehouseID(),
		DestinationWarehouseID: s.DestinationWarehouseID(),
		TruckID:                s.TruckID(),
		Status:                 s.Status().String(),
		TotalWeight:            s.TotalWeight(),
		TotalVolume:            s.TotalVolume(),
		ScheduledPickupAt:      s.ScheduledPickupAt(),
		ActualPickupAt:         s.ActualPickupAt(),
		EstimatedDeliveryAt:    s.EstimatedDeliveryAt(),
		ActualDeliveryAt:       s.ActualDeliveryAt(),
		Notes:                  s.Notes(),
		Items:                  newShipmentItemViews(s.Items()),
		CreatedBy:              s.CreatedBy(),
		CreatedAt:              s.CreatedAt(),
		UpdatedAt:              s.UpdatedAt(),
	}
}

func newShipmentItemViews(items []*shipment.Item) []ShipmentItemView {
	views := make([]ShipmentItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ShipmentItemView{
			ID:             item.ID(),
			Barcode:        item.Barcode(),
			Description:    item.Description(),
			ExpectedWeight: item.ExpectedWeight(),
			ObservedWeight: item.ObservedWeight(),
			Status:         item.Status().String(),
			ProcessedAt:    item.ProcessedAt(),
			Notes:          item.Notes(),
		})
	}
	return views
}

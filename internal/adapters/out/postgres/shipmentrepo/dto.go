// Package shipmentrepo persists shipments and their scannable items.
package shipmentrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/ids"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentDTO struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingNumber         string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	TransferID             *uuid.UUID      `gorm:"type:uuid"`
	OriginWarehouseID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_shipments_origin_status"`
	DestinationWarehouseID uuid.UUID       `gorm:"type:uuid;not null"`
	TruckID                *uuid.UUID      `gorm:"type:uuid;index"`
	Status                 string          `gorm:"type:varchar(32);not null;index:idx_shipments_origin_status"`
	TotalVolume            decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	ScheduledPickupAt      *time.Time
	ActualPickupAt         *time.Time
	EstimatedDeliveryAt    *time.Time
	ActualDeliveryAt       *time.Time
	Notes                  string            `gorm:"type:text"`
	Discrepancy            DiscrepancyDTO    `gorm:"embedded;embeddedPrefix:discrepancy_"`
	CreatedBy              uuid.UUID         `gorm:"type:uuid;not null"`
	CreatedAt              time.Time         `gorm:"not null"`
	UpdatedAt              time.Time         `gorm:"not null"`
	Items                  []ShipmentItemDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// DiscrepancyDTO holds the outstanding weight discrepancy. All columns are
// NULL when there is none.
type DiscrepancyDTO struct {
	Actual     *decimal.Decimal `gorm:"type:numeric(12,3)"`
	Expected   *decimal.Decimal `gorm:"type:numeric(12,3)"`
	ReportedBy *uuid.UUID       `gorm:"type:uuid"`
	ReportedAt *time.Time
}

type ShipmentItemDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ShipmentID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_shipment_items_barcode"`
	Position       int              `gorm:"type:int;not null"`
	Barcode        string           `gorm:"type:varchar(64);not null;uniqueIndex:idx_shipment_items_barcode"`
	Description    string           `gorm:"type:varchar(255)"`
	ExpectedWeight decimal.Decimal  `gorm:"type:numeric(12,3);not null"`
	ObservedWeight *decimal.Decimal `gorm:"type:numeric(12,3)"`
	Status         string           `gorm:"type:varchar(20);not null"`
	ProcessedAt    *time.Time
	Notes          string `gorm:"type:text"`
}

func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	shipmentID := s.ID().Bytes()
	items := make([]ShipmentItemDTO, 0, len(s.Items()))
	for i, item := range s.Items() {
		items = append(items, ShipmentItemDTO{
			ID:             item.ID().Bytes(),
			ShipmentID:     shipmentID,
			Position:       i,
			Barcode:        item.Barcode(),
			Description:    item.Description(),
			ExpectedWeight: item.ExpectedWeight(),
			ObservedWeight: item.ObservedWeight(),
			Status:         item.Status().String(),
			ProcessedAt:    item.ProcessedAt(),
			Notes:          item.Notes(),
		})
	}

	var discrepancy DiscrepancyDTO
	if d := s.Discrepancy(); d != nil {
		actual, expected := d.Actual, d.Expected
		reportedBy := d.ReportedBy.Bytes()
		reportedAt := d.ReportedAt
		discrepancy = DiscrepancyDTO{
			Actual:     &actual,
			Expected:   &expected,
			ReportedBy: &reportedBy,
			ReportedAt: &reportedAt,
		}
	}

	return ShipmentDTO{
		ID:                     shipmentID,
		TrackingNumber:         s.TrackingNumber(),
		TransferID:             ids.FromKernelPtr(s.TransferID()),
		OriginWarehouseID:      s.OriginWarehouseID().Bytes(),
		DestinationWarehouseID: s.DestinationWarehouseID().Bytes(),
		TruckID:                ids.FromKernelPtr(s.TruckID()),
		Status:                 s.Status().String(),
		TotalVolume:            s.TotalVolume(),
		ScheduledPickupAt:      s.ScheduledPickupAt(),
		ActualPickupAt:         s.ActualPickupAt(),
		EstimatedDeliveryAt:    s.EstimatedDeliveryAt(),
		ActualDeliveryAt:       s.ActualDeliveryAt(),
		Notes:                  s.Notes(),
		Discrepancy:            discrepancy,
		CreatedBy:              s.CreatedBy().Bytes(),
		CreatedAt:              s.CreatedAt(),
		UpdatedAt:              s.UpdatedAt(),
		Items:                  items,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := ids.ToKernel(dto.ID)
	if err != nil {
		return nil, err
	}
	transferID, err := ids.ToKernelPtr(dto.TransferID)
	if err != nil {
		return nil, err
	}
	origin, err := ids.ToKernel(dto.OriginWarehouseID)
	if err != nil {
		return nil, err
	}
	destination, err := ids.ToKernel(dto.DestinationWarehouseID)
	if err != nil {
		return nil, err
	}
	truckID, err := ids.ToKernelPtr(dto.TruckID)
	if err != nil {
		return nil, err
	}
	createdBy, err := ids.ToKernel(dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	discrepancy, err := discrepancyToDomain(dto.Discrepancy)
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return shipment.RestoreShipment(id, dto.TrackingNumber, transferID, origin, destination, dto.TotalVolume,
		dto.EstimatedDeliveryAt, items, dto.Notes, createdBy, dto.CreatedAt, shipment.Snapshot{
			TruckID:           truckID,
			Status:            status,
			ScheduledPickupAt: dto.ScheduledPickupAt,
			ActualPickupAt:    dto.ActualPickupAt,
			ActualDeliveryAt:  dto.ActualDeliveryAt,
			Discrepancy:       discrepancy,
			UpdatedAt:         dto.UpdatedAt,
		})
}

func discrepancyToDomain(dto DiscrepancyDTO) (*shipment.WeightDiscrepancy, error) {
	if dto.Actual == nil || dto.Expected == nil || dto.ReportedBy == nil || dto.ReportedAt == nil {
		return nil, nil
	}
	reportedBy, err := ids.ToKernel(*dto.ReportedBy)
	if err != nil {
		return nil, err
	}
	return &shipment.WeightDiscrepancy{
		Actual:     *dto.Actual,
		Expected:   *dto.Expected,
		ReportedBy: reportedBy,
		ReportedAt: *dto.ReportedAt,
	}, nil
}

func itemToDomain(dto ShipmentItemDTO) (*shipment.Item, error) {
	id, err := ids.ToKernel(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseItemStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return shipment.RestoreItem(id, dto.Barcode, dto.Description, dto.ExpectedWeight, dto.ObservedWeight, status,
		dto.ProcessedAt, dto.Notes)
}

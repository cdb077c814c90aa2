// Package assignmentrepo persists inventory assignments together with the
// items they carry.
package assignmentrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/ids"
	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssignmentDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckID                uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceWarehouseID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DestinationWarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status                 string    `gorm:"type:varchar(20);not null"`
	AssignedBy             uuid.UUID `gorm:"type:uuid;not null"`
	AssignedAt             time.Time `gorm:"not null;index"`
	CompletedAt            *time.Time
	Items                  []AssignmentItemDTO `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

func (AssignmentDTO) TableName() string {
	return "inventory_assignments"
}

// AssignmentItemDTO is one inventory line moved by an assignment, with the
// SKU and load frozen at assignment time.
type AssignmentItemDTO struct {
	AssignmentID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InventoryID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU          string          `gorm:"column:sku;type:varchar(64);not null"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"type:int;not null"`
	Weight       decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Volume       decimal.Decimal `gorm:"type:numeric(12,3);not null"`
}

func (AssignmentItemDTO) TableName() string {
	return "inventory_assignment_items"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	assignmentID := a.ID().Bytes()
	items := make([]AssignmentItemDTO, 0, len(a.Items()))
	for _, item := range a.Items() {
		items = append(items, AssignmentItemDTO{
			AssignmentID: assignmentID,
			InventoryID:  item.InventoryID().Bytes(),
			SKU:          item.SKU(),
			Name:         item.Name(),
			Quantity:     item.Quantity(),
			Weight:       item.Load().Weight(),
			Volume:       item.Load().Volume(),
		})
	}

	return AssignmentDTO{
		ID:                     assignmentID,
		TruckID:                a.TruckID().Bytes(),
		SourceWarehouseID:      a.SourceWarehouseID().Bytes(),
		DestinationWarehouseID: a.DestinationWarehouseID().Bytes(),
		Status:                 a.Status().String(),
		AssignedBy:             a.AssignedBy().Bytes(),
		AssignedAt:             a.AssignedAt(),
		CompletedAt:            a.CompletedAt(),
		Items:                  items,
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := ids.ToKernel(dto.ID)
	if err != nil {
		return nil, err
	}
	truckID, err := ids.ToKernel(dto.TruckID)
	if err != nil {
		return nil, err
	}
	source, err := ids.ToKernel(dto.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	destination, err := ids.ToKernel(dto.DestinationWarehouseID)
	if err != nil {
		return nil, err
	}
	assignedBy, err := ids.ToKernel(dto.AssignedBy)
	if err != nil {
		return nil, err
	}
	status, err := assignment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]assignment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return assignment.RestoreAssignment(id, truckID, source, destination, items, status, assignedBy,
		dto.AssignedAt, dto.CompletedAt)
}

func itemToDomain(dto AssignmentItemDTO) (assignment.Item, error) {
	inventoryID, err := ids.ToKernel(dto.InventoryID)
	if err != nil {
		return assignment.Item{}, err
	}
	load, err := kernel.NewLoad(dto.Weight, dto.Volume)
	if err != nil {
		return assignment.Item{}, err
	}
	return assignment.NewItem(inventoryID, dto.SKU, dto.Name, dto.Quantity, load)
}

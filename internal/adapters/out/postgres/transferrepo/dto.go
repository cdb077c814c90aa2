// Package transferrepo persists inventory transfers.
package transferrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/ids"
	"logistics/internal/core/domain/model/inventory"

	"github.com/google/uuid"
)

type TransferDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SourceLineID           uuid.UUID  `gorm:"column:source_inventory_id;type:uuid;not null;index"`
	SourceWarehouseID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DestinationWarehouseID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DestinationLineID      *uuid.UUID `gorm:"column:destination_inventory_id;type:uuid"`
	Quantity               int        `gorm:"type:int;not null"`
	Status                 string     `gorm:"type:varchar(20);not null"`
	InitiatedBy            uuid.UUID  `gorm:"type:uuid;not null"`
	InitiatedAt            time.Time  `gorm:"not null"`
	CompletedAt            *time.Time
}

func (TransferDTO) TableName() string {
	return "inventory_transfers"
}

func fromDomain(t *inventory.Transfer) TransferDTO {
	return TransferDTO{
		ID:                     t.ID().Bytes(),
		SourceLineID:           t.SourceLineID().Bytes(),
		SourceWarehouseID:      t.SourceWarehouseID().Bytes(),
		DestinationWarehouseID: t.DestinationWarehouseID().Bytes(),
		DestinationLineID:      ids.FromKernelPtr(t.DestinationLineID()),
		Quantity:               t.Quantity(),
		Status:                 t.Status().String(),
		InitiatedBy:            t.InitiatedBy().Bytes(),
		InitiatedAt:            t.InitiatedAt(),
		CompletedAt:            t.CompletedAt(),
	}
}

func toDomain(dto TransferDTO) (*inventory.Transfer, error) {
	id, err := ids.ToKernel(dto.ID)
	if err != nil {
		return nil, err
	}
	sourceLineID, err := ids.ToKernel(dto.SourceLineID)
	if err != nil {
		return nil, err
	}
	sourceWarehouseID, err := ids.ToKernel(dto.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	destinationWarehouseID, err := ids.ToKernel(dto.DestinationWarehouseID)
	if err != nil {
		return nil, err
	}
	destinationLineID, err := ids.ToKernelPtr(dto.DestinationLineID)
	if err != nil {
		return nil, err
	}
	initiatedBy, err := ids.ToKernel(dto.InitiatedBy)
	if err != nil {
		return nil, err
	}
	status, err := inventory.ParseTransferStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreTransfer(id, sourceLineID, sourceWarehouseID, destinationWarehouseID,
		destinationLineID, dto.Quantity, status, initiatedBy, dto.InitiatedAt, dto.CompletedAt)
}

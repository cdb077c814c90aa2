// Package inventoryrepo persists inventory lines, one row per SKU held by a
// warehouse.
package inventoryrepo

import (
	"logistics/internal/adapters/out/postgres/ids"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WarehouseID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_warehouse_sku"`
	SKU             string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex:idx_inventory_warehouse_sku"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UnitWeight      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	UnitVolume      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Quantity        int             `gorm:"type:int;not null;check:quantity >= 0"`
	ReorderPoint    int             `gorm:"type:int;not null"`
	ReorderQuantity int             `gorm:"type:int;not null"`
}

func (LineDTO) TableName() string {
	return "inventory"
}

func fromDomain(line *inventory.Line) LineDTO {
	item := line.Item()
	return LineDTO{
		ID:              line.ID().Bytes(),
		WarehouseID:     line.WarehouseID().Bytes(),
		SKU:             item.SKU(),
		Name:            item.Name(),
		Description:     item.Description(),
		UnitPrice:       item.UnitPrice(),
		UnitWeight:      item.UnitLoad().Weight(),
		UnitVolume:      item.UnitLoad().Volume(),
		Quantity:        line.Quantity(),
		ReorderPoint:    line.ReorderPoint(),
		ReorderQuantity: line.ReorderQuantity(),
	}
}

func toDomain(dto LineDTO) (*inventory.Line, error) {
	id, err := ids.ToKernel(dto.ID)
	if err != nil {
		return nil, err
	}
	warehouseID, err := ids.ToKernel(dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	unitLoad, err := kernel.NewLoad(dto.UnitWeight, dto.UnitVolume)
	if err != nil {
		return nil, err
	}
	item, err := inventory.NewItem(dto.SKU, dto.Name, dto.Description, dto.UnitPrice, unitLoad)
	if err != nil {
		return nil, err
	}

	return inventory.NewLine(id, warehouseID, item, dto.Quantity, dto.ReorderPoint, dto.ReorderQuantity)
}

func toDomainList(dtos []LineDTO) ([]*inventory.Line, error) {
	lines := make([]*inventory.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Package warehouserepo persists warehouses. Warehouses are reference data for
// the workflows, so the repository only adds and reads them.
package warehouserepo

import (
	"logistics/internal/adapters/out/postgres/ids"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

type WarehouseDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Location  string     `gorm:"type:varchar(255)"`
	Capacity  int        `gorm:"type:int;not null"`
	ManagerID *uuid.UUID `gorm:"type:uuid"`
	Active    bool       `gorm:"not null;default:true"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:        w.ID().Bytes(),
		Name:      w.Name(),
		Location:  w.Location(),
		Capacity:  w.Capacity(),
		ManagerID: ids.FromKernelPtr(w.ManagerID()),
		Active:    w.IsActive(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := ids.ToKernel(dto.ID)
	if err != nil {
		return nil, err
	}
	managerID, err := ids.ToKernelPtr(dto.ManagerID)
	if err != nil {
		return nil, err
	}
	return warehouse.NewWarehouse(id, dto.Name, dto.Location, dto.Capacity, managerID, dto.Active)
}

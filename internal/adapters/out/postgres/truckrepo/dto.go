// Package truckrepo persists the fleet directory.
package truckrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/ids"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TruckDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RegistrationNumber  string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Model               string          `gorm:"type:varchar(128);not null"`
	CapacityWeight      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	CapacityVolume      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	DriverID            *uuid.UUID      `gorm:"type:uuid"`
	HomeWarehouseID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status              string          `gorm:"type:varchar(20);not null;index"`
	LastMaintenanceDate *time.Time
	NextMaintenanceDate *time.Time
}

func (TruckDTO) TableName() string {
	return "trucks"
}

func fromDomain(truck *fleet.Truck) TruckDTO {
	return TruckDTO{
		ID:                  truck.ID().Bytes(),
		RegistrationNumber:  truck.RegistrationNumber(),
		Model:               truck.Model(),
		CapacityWeight:      truck.Capacity().Weight(),
		CapacityVolume:      truck.Capacity().Volume(),
		DriverID:            ids.FromKernelPtr(truck.DriverID()),
		HomeWarehouseID:     truck.HomeWarehouseID().Bytes(),
		Status:              truck.Status().String(),
		LastMaintenanceDate: truck.LastMaintenanceDate(),
		NextMaintenanceDate: truck.NextMaintenanceDate(),
	}
}

func toDomain(dto TruckDTO) (*fleet.Truck, error) {
	id, err := ids.ToKernel(dto.ID)
	if err != nil {
		return nil, err
	}
	home, err := ids.ToKernel(dto.HomeWarehouseID)
	if err != nil {
		return nil, err
	}
	driverID, err := ids.ToKernelPtr(dto.DriverID)
	if err != nil {
		return nil, err
	}
	capacity, err := kernel.NewLoad(dto.CapacityWeight, dto.CapacityVolume)
	if err != nil {
		return nil, err
	}
	status, err := fleet.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return fleet.RestoreTruck(id, dto.RegistrationNumber, dto.Model, capacity, home, driverID, status,
		dto.LastMaintenanceDate, dto.NextMaintenanceDate)
}

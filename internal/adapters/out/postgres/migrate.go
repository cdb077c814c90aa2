package postgres

import (
	"logistics/internal/adapters/out/postgres/assignmentrepo"
	"logistics/internal/adapters/out/postgres/inventoryrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/transferrepo"
	"logistics/internal/adapters/out/postgres/truckrepo"
	"logistics/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&warehouserepo.WarehouseDTO{},
		&truckrepo.TruckDTO{},
		&inventoryrepo.LineDTO{},
		&transferrepo.TransferDTO{},
		&assignmentrepo.AssignmentDTO{},
		&assignmentrepo.AssignmentItemDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
	)
}

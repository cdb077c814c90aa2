package commands

import (
	"context"

	"logistics/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	TransferRepoFactory interface {
		TransferRepository() ports.TransferRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// FleetUoW serves workflows that only touch trucks.
	FleetUoW interface {
		TxManager
		TruckRepoFactory
		WarehouseRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// LedgerUoW serves workflows that only move stock between warehouses.
	LedgerUoW interface {
		TxManager
		WarehouseRepoFactory
		InventoryRepoFactory
		TransferRepoFactory
	}

	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	UoW interface {
		TxManager
		TruckRepoFactory
		WarehouseRepoFactory
		InventoryRepoFactory
		TransferRepoFactory
		AssignmentRepoFactory
		ShipmentRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

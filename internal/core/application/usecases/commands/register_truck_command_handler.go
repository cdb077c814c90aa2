package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

type RegisterTruckCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewRegisterTruckCommandHandler(uowFactory FleetUoWFactory) RegisterTruckCommandHandler {
	return RegisterTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers an AVAILABLE truck at an existing warehouse. Registration
// numbers are unique across the fleet.
func (h RegisterTruckCommandHandler) Handle(ctx context.Context, cmd RegisterTruckCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WarehouseRepository().Get(ctx, cmd.HomeWarehouseID()); err != nil {
		return kernel.UUID{}, err
	}

	exists, err := uow.TruckRepository().ExistsByRegistrationNumber(ctx, cmd.RegistrationNumber())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("registration number",
			fmt.Errorf("%s is already registered", cmd.RegistrationNumber()))
	}

	truck, err := fleet.NewTruck(cmd.TruckID(), cmd.RegistrationNumber(), cmd.Model(),
		cmd.Capacity(), cmd.HomeWarehouseID(), cmd.DriverID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.TruckRepository().Add(ctx, truck); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return truck.ID(), nil
}

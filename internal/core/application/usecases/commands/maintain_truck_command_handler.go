package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/fleet"
)

type MaintainTruckCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewMaintainTruckCommandHandler(uowFactory FleetUoWFactory) MaintainTruckCommandHandler {
	return MaintainTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MaintainTruckCommandHandler) Handle(ctx context.Context, cmd MaintainTruckCommand) (*fleet.Truck, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truck, err := uow.TruckRepository().Lock(ctx, cmd.TruckID())
	if err != nil {
		return nil, err
	}

	if cmd.Completed() {
		err = truck.CompleteMaintenance(time.Now().UTC(), cmd.NextMaintenanceDate())
	} else {
		err = truck.SendToMaintenance(cmd.NextMaintenanceDate())
	}
	if err != nil {
		return nil, err
	}

	if err = uow.TruckRepository().Update(ctx, truck); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return truck, nil
}

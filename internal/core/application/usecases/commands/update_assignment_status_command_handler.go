package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
)

type UpdateAssignmentStatusCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewUpdateAssignmentStatusCommandHandler(
	uowFactory UoWFactory,
	logger *slog.Logger,
) UpdateAssignmentStatusCommandHandler {
	return UpdateAssignmentStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "UpdateAssignmentStatus"),
	}
}

// Handle moves an assignment to the requested status and applies the side
// effects on its truck and on the ledger:
//
//	IN_TRANSIT  truck dispatched
//	DELIVERED   truck released, items credited to the destination warehouse
//	CANCELLED   truck released, items restocked at their source lines
//
// Requesting the current status changes nothing.
func (h UpdateAssignmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAssignmentStatusCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, changed, err := h.update(ctx, cmd)
	if err != nil {
		return nil, logUnexpected(ctx, h.logger, err,
			"assignment_id", cmd.AssignmentID().String(), "status", cmd.Status().String())
	}
	if changed {
		h.logger.InfoContext(ctx, "assignment status changed",
			"assignment_id", updated.ID().String(), "status", updated.Status().String())
	}
	return updated, nil
}

func (h UpdateAssignmentStatusCommandHandler) update(
	ctx context.Context,
	cmd UpdateAssignmentStatusCommand,
) (*assignment.Assignment, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.AssignmentRepository().Lock(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	changed, err := current.UpdateStatus(cmd.Status(), now)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return current, false, nil
	}

	truck, err := uow.TruckRepository().Lock(ctx, current.TruckID())
	if err != nil {
		return nil, false, err
	}
	if err = moveTruck(truck, current.Status()); err != nil {
		return nil, false, err
	}

	if err = h.settle(ctx, uow, current); err != nil {
		return nil, false, err
	}

	if err = uow.TruckRepository().Update(ctx, truck); err != nil {
		return nil, false, err
	}
	if err = uow.AssignmentRepository().Update(ctx, current); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return current, true, nil
}

func moveTruck(truck *fleet.Truck, status assignment.Status) error {
	switch {
	case status == assignment.InTransit:
		return truck.Dispatch()
	case status.ReleasesTruck():
		return truck.Release()
	}
	return nil
}

// settle posts the assignment's items to the ledger once it reaches a
// terminal status. Delivered goods land at the destination by SKU, cancelled
// goods go back to the warehouse they were taken from.
func (h UpdateAssignmentStatusCommandHandler) settle(ctx context.Context, uow UoW, a *assignment.Assignment) error {
	warehouseID := a.DestinationWarehouseID()
	switch a.Status() {
	case assignment.Delivered:
	case assignment.Cancelled:
		warehouseID = a.SourceWarehouseID()
	default:
		return nil
	}

	credits := make([]credit, 0, len(a.Items()))
	for _, item := range a.Items() {
		template, err := uow.InventoryRepository().Get(ctx, item.InventoryID())
		if err != nil {
			return err
		}
		credits = append(credits, credit{template: template, warehouseID: warehouseID, quantity: item.Quantity()})
	}

	_, err := newLedger(uow.InventoryRepository()).post(ctx, nil, credits)
	return err
}

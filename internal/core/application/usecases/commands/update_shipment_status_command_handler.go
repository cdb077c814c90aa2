package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

type UpdateShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   statusNotifier
	logger     *slog.Logger
}

func NewUpdateShipmentStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateShipmentStatusCommandHandler {
	logger = logger.With("component", "UpdateShipmentStatus")
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   statusNotifier{publisher: publisher, logger: logger},
		logger:     logger,
	}
}

// shipmentParts are the aggregates bound to a shipment, locked with it.
type shipmentParts struct {
	shipment *shipment.Shipment
	transfer *inventory.Transfer
	truck    *fleet.Truck
}

// Handle applies a pickup, delivery or cancellation to a shipment:
//
//	IN_TRANSIT  truck and transfer dispatched
//	DELIVERED   truck released, reserved quantity credited to the destination, transfer completed
//	CANCELLED   truck released, reserved quantity restocked at the source, transfer cancelled
//
// Requesting the current status changes nothing.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
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

	parts, err := h.lock(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}
	s := parts.shipment
	from := s.Status()
	if from == cmd.Status() {
		return s, nil
	}

	now := time.Now().UTC()
	switch cmd.Status() {
	case shipment.InTransit:
		err = h.dispatch(parts, now)
	case shipment.Delivered:
		err = h.deliver(ctx, uow, parts, now)
	case shipment.Cancelled:
		err = h.cancel(ctx, uow, parts, now)
	}
	if err != nil {
		return nil, err
	}

	if err = h.save(ctx, uow, parts); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.notify(ctx, s, from)
	h.logger.InfoContext(ctx, "shipment status changed", "shipment_id", s.ID().String(),
		"from", from.String(), "to", s.Status().String(), "actor_id", cmd.ActorID().String())

	return s, nil
}

func (h UpdateShipmentStatusCommandHandler) lock(
	ctx context.Context,
	uow UoW,
	cmd UpdateShipmentStatusCommand,
) (shipmentParts, error) {
	var (
		parts shipmentParts
		err   error
	)

	parts.shipment, err = uow.ShipmentRepository().Lock(ctx, cmd.ShipmentID())
	if err != nil {
		return shipmentParts{}, err
	}
	if parts.shipment.Status() == cmd.Status() {
		return parts, nil
	}

	if id := parts.shipment.TransferID(); id != nil {
		if parts.transfer, err = uow.TransferRepository().Lock(ctx, *id); err != nil {
			return shipmentParts{}, err
		}
	}
	if id := parts.shipment.TruckID(); id != nil {
		if parts.truck, err = uow.TruckRepository().Lock(ctx, *id); err != nil {
			return shipmentParts{}, err
		}
	}
	return parts, nil
}

func (h UpdateShipmentStatusCommandHandler) dispatch(parts shipmentParts, now time.Time) error {
	if err := parts.shipment.StartTransit(now); err != nil {
		return err
	}
	if parts.truck != nil {
		if err := parts.truck.Dispatch(); err != nil {
			return err
		}
	}
	if parts.transfer != nil {
		return parts.transfer.Dispatch()
	}
	return nil
}

func (h UpdateShipmentStatusCommandHandler) deliver(ctx context.Context, uow UoW, parts shipmentParts, now time.Time) error {
	if err := parts.shipment.Deliver(now); err != nil {
		return err
	}
	if err := h.release(parts); err != nil {
		return err
	}
	if parts.transfer == nil {
		return nil
	}

	landed, err := h.settle(ctx, uow, parts.transfer, parts.transfer.DestinationWarehouseID())
	if err != nil {
		return err
	}
	return parts.transfer.Complete(landed.ID(), now)
}

func (h UpdateShipmentStatusCommandHandler) cancel(ctx context.Context, uow UoW, parts shipmentParts, now time.Time) error {
	if err := parts.shipment.Cancel(now); err != nil {
		return err
	}
	if err := h.release(parts); err != nil {
		return err
	}
	if parts.transfer == nil || parts.transfer.Status().IsTerminal() {
		return nil
	}

	if _, err := h.settle(ctx, uow, parts.transfer, parts.transfer.SourceWarehouseID()); err != nil {
		return err
	}
	return parts.transfer.Cancel(now)
}

func (h UpdateShipmentStatusCommandHandler) release(parts shipmentParts) error {
	if parts.truck == nil {
		return nil
	}
	return parts.truck.Release()
}

// settle credits the quantity reserved by the transfer to warehouseID.
func (h UpdateShipmentStatusCommandHandler) settle(
	ctx context.Context,
	uow UoW,
	transfer *inventory.Transfer,
	warehouseID kernel.UUID,
) (*inventory.Line, error) {
	template, err := uow.InventoryRepository().Get(ctx, transfer.SourceLineID())
	if err != nil {
		return nil, err
	}
	landed, err := newLedger(uow.InventoryRepository()).post(ctx, nil,
		[]credit{{template: template, warehouseID: warehouseID, quantity: transfer.Quantity()}})
	if err != nil {
		return nil, err
	}
	return landed[0], nil
}

func (h UpdateShipmentStatusCommandHandler) save(ctx context.Context, uow UoW, parts shipmentParts) error {
	if parts.truck != nil {
		if err := uow.TruckRepository().Update(ctx, parts.truck); err != nil {
			return err
		}
	}
	if parts.transfer != nil {
		if err := uow.TransferRepository().Update(ctx, parts.transfer); err != nil {
			return err
		}
	}
	return uow.ShipmentRepository().Update(ctx, parts.shipment)
}

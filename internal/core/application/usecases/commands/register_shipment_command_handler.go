package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	trackingNumberPrefix   = "TRK-"
	trackingNumberAttempts = 5
)

type RegisterShipmentResult struct {
	Outcome
	ShipmentID     kernel.UUID
	TransferID     kernel.UUID
	TrackingNumber string
	Status         string
	TotalWeight    decimal.Decimal
}

type RegisterShipmentCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewRegisterShipmentCommandHandler(uowFactory UoWFactory, logger *slog.Logger) RegisterShipmentCommandHandler {
	return RegisterShipmentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "RegisterShipment"),
	}
}

// Handle opens a PENDING shipment for quantity units of the source line. The
// quantity is reserved right away: it leaves the source line and travels with
// a PENDING transfer until the shipment is delivered or cancelled.
func (h RegisterShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterShipmentCommand,
) (RegisterShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RegisterShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WarehouseRepository().Get(ctx, cmd.DestinationWarehouseID()); err != nil {
		return h.fail(ctx, cmd, err)
	}

	source, err := uow.InventoryRepository().Get(ctx, cmd.SourceLineID())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	if source.BelongsTo(cmd.DestinationWarehouseID()) {
		return h.fail(ctx, cmd, errs.NewValueIsInvalidErrorWithCause("destination warehouse",
			fmt.Errorf("line %s is already stocked by %s", source.ID(), cmd.DestinationWarehouseID())))
	}

	trackingNumber, err := h.trackingNumber(ctx, uow.ShipmentRepository(), cmd.TrackingNumber())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}

	if _, err = newLedger(uow.InventoryRepository()).post(ctx,
		[]debit{{lineID: source.ID(), quantity: cmd.Quantity()}}, nil); err != nil {
		return h.fail(ctx, cmd, err)
	}

	now := time.Now().UTC()
	transfer, err := inventory.NewTransfer(cmd.TransferID(), source, cmd.DestinationWarehouseID(),
		cmd.Quantity(), cmd.ActorID(), now)
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	if err = uow.TransferRepository().Add(ctx, transfer); err != nil {
		return h.fail(ctx, cmd, err)
	}

	items := make([]*shipment.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := shipment.NewItem(kernel.NewUUID(), input.Barcode, input.Description, input.ExpectedWeight)
		if itemErr != nil {
			return h.fail(ctx, cmd, itemErr)
		}
		items = append(items, item)
	}

	transferID := transfer.ID()
	created, err := shipment.NewShipment(cmd.ShipmentID(), trackingNumber, &transferID, source.WarehouseID(),
		cmd.DestinationWarehouseID(), cmd.TotalVolume(), cmd.EstimatedDeliveryAt(), items, cmd.Notes(),
		cmd.ActorID(), now)
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	if err = uow.ShipmentRepository().Add(ctx, created); err != nil {
		return h.fail(ctx, cmd, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.fail(ctx, cmd, err)
	}

	h.logger.InfoContext(ctx, "shipment registered",
		"shipment_id", created.ID().String(), "tracking_number", created.TrackingNumber())

	return RegisterShipmentResult{
		Outcome:        succeeded("shipment " + created.TrackingNumber() + " registered"),
		ShipmentID:     created.ID(),
		TransferID:     transfer.ID(),
		TrackingNumber: created.TrackingNumber(),
		Status:         created.Status().String(),
		TotalWeight:    created.TotalWeight(),
	}, nil
}

// trackingNumber checks a requested tracking number for uniqueness, or
// generates a fresh TRK-XXXXXXXX one when none was requested.
func (h RegisterShipmentCommandHandler) trackingNumber(
	ctx context.Context,
	repo ports.ShipmentRepository,
	requested string,
) (string, error) {
	if requested != "" {
		taken, err := trackingNumberTaken(ctx, repo, requested)
		if err != nil {
			return "", err
		}
		if taken {
			return "", errs.NewValueIsInvalidErrorWithCause("tracking number",
				fmt.Errorf("%s is already in use", requested))
		}
		return requested, nil
	}

	for range trackingNumberAttempts {
		candidate := trackingNumberPrefix + strings.ToUpper(kernel.NewUUID().String()[:8])
		taken, err := trackingNumberTaken(ctx, repo, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate a unique tracking number")
}

func trackingNumberTaken(ctx context.Context, repo ports.ShipmentRepository, trackingNumber string) (bool, error) {
	_, err := repo.GetByTrackingNumber(ctx, trackingNumber)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (h RegisterShipmentCommandHandler) fail(
	ctx context.Context,
	cmd RegisterShipmentCommand,
	err error,
) (RegisterShipmentResult, error) {
	outcome, err := reject(ctx, h.logger, err, "source_inventory_id", cmd.SourceLineID().String())
	return RegisterShipmentResult{Outcome: outcome, ShipmentID: cmd.ShipmentID()}, err
}

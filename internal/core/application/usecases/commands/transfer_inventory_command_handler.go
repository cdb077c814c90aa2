package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

type TransferInventoryCommandHandler struct {
	uowFactory LedgerUoWFactory
	logger     *slog.Logger
}

func NewTransferInventoryCommandHandler(
	uowFactory LedgerUoWFactory,
	logger *slog.Logger,
) TransferInventoryCommandHandler {
	return TransferInventoryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "TransferInventory"),
	}
}

// Handle moves quantity from the source line to the destination warehouse and
// records a COMPLETED transfer. Debit, credit and transfer commit together or
// not at all. It returns the id of the recorded transfer.
func (h TransferInventoryCommandHandler) Handle(ctx context.Context, cmd TransferInventoryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	transferID, err := h.transfer(ctx, cmd)
	if err != nil {
		return kernel.UUID{}, logUnexpected(ctx, h.logger, err,
			"source_line_id", cmd.SourceLineID().String(),
			"destination_warehouse_id", cmd.DestinationWarehouseID().String())
	}

	h.logger.InfoContext(ctx, "inventory transferred", "transfer_id", transferID.String(),
		"source_line_id", cmd.SourceLineID().String(), "quantity", cmd.Quantity())
	return transferID, nil
}

func (h TransferInventoryCommandHandler) transfer(ctx context.Context, cmd TransferInventoryCommand) (kernel.UUID, error) {

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WarehouseRepository().Get(ctx, cmd.DestinationWarehouseID()); err != nil {
		return kernel.UUID{}, err
	}

	source, err := uow.InventoryRepository().Get(ctx, cmd.SourceLineID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if source.BelongsTo(cmd.DestinationWarehouseID()) {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("destination warehouse",
			fmt.Errorf("line %s is already stocked by %s", source.ID(), cmd.DestinationWarehouseID()))
	}

	landed, err := newLedger(uow.InventoryRepository()).post(ctx,
		[]debit{{lineID: source.ID(), quantity: cmd.Quantity()}},
		[]credit{{template: source, warehouseID: cmd.DestinationWarehouseID(), quantity: cmd.Quantity()}},
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()
	transfer, err := inventory.NewTransfer(cmd.TransferID(), source, cmd.DestinationWarehouseID(),
		cmd.Quantity(), cmd.ActorID(), now)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = transfer.Complete(landed[0].ID(), now); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.TransferRepository().Add(ctx, transfer); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return transfer.ID(), nil
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

type ProcessShipmentItemCommandHandler struct {
	scanner scanner
}

func NewProcessShipmentItemCommandHandler(
	uowFactory UoWFactory,
	policy shipment.ReadinessPolicy,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ProcessShipmentItemCommandHandler {
	return ProcessShipmentItemCommandHandler{
		scanner: newScanner(uowFactory, policy, publisher, logger.With("component", "ProcessShipmentItem")),
	}
}

// Handle records a barcode scan and re-evaluates readiness. A shipment that
// becomes ready while SCHEDULED_FOR_PICKUP moves to READY_FOR_PICKUP.
func (h ProcessShipmentItemCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessShipmentItemCommand,
) (ProcessingResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessingResult{}, err
	}

	return h.scanner.run(ctx, cmd.TrackingNumber(),
		func(s *shipment.Shipment, policy shipment.ReadinessPolicy, now time.Time) (scanChange, error) {
			item, _, err := s.ProcessItem(cmd.Barcode(), cmd.Status(), cmd.Weight(), cmd.Notes(), policy, now)
			if err != nil {
				return scanChange{}, err
			}
			return scanChange{
				item:    item,
				message: "item " + item.Barcode() + " recorded as " + item.Status().String(),
			}, nil
		})
}

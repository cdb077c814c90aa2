package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

type ReportMissingItemCommandHandler struct {
	scanner scanner
}

func NewReportMissingItemCommandHandler(
	uowFactory UoWFactory,
	policy shipment.ReadinessPolicy,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ReportMissingItemCommandHandler {
	return ReportMissingItemCommandHandler{
		scanner: newScanner(uowFactory, policy, publisher, logger.With("component", "ReportMissingItem")),
	}
}

// Handle marks an item MISSING. Its expected weight leaves the reconciliation
// target, which may be what makes the shipment ready.
func (h ReportMissingItemCommandHandler) Handle(ctx context.Context, cmd ReportMissingItemCommand) (ProcessingResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessingResult{}, err
	}

	return h.scanner.run(ctx, cmd.TrackingNumber(),
		func(s *shipment.Shipment, policy shipment.ReadinessPolicy, now time.Time) (scanChange, error) {
			item, _, err := s.ReportMissing(cmd.Barcode(), cmd.Notes(), policy, now)
			if err != nil {
				return scanChange{}, err
			}
			return scanChange{item: item, message: "item " + item.Barcode() + " reported missing"}, nil
		})
}

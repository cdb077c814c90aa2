package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

type ReportWeightMismatchCommandHandler struct {
	scanner scanner
}

func NewReportWeightMismatchCommandHandler(
	uowFactory UoWFactory,
	policy shipment.ReadinessPolicy,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ReportWeightMismatchCommandHandler {
	return ReportWeightMismatchCommandHandler{
		scanner: newScanner(uowFactory, policy, publisher, logger.With("component", "ReportWeightMismatch")),
	}
}

// Handle checks an aggregate scale reading against the expected weight. A
// reading out of tolerance is flagged on the shipment and reported with
// WeightMismatch set; the call itself still succeeds.
func (h ReportWeightMismatchCommandHandler) Handle(
	ctx context.Context,
	cmd ReportWeightMismatchCommand,
) (ProcessingResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessingResult{}, err
	}

	return h.scanner.run(ctx, cmd.TrackingNumber(),
		func(s *shipment.Shipment, policy shipment.ReadinessPolicy, now time.Time) (scanChange, error) {
			mismatch, _, err := s.ReportWeight(cmd.ActualWeight(), cmd.ActorID(), policy, now)
			if err != nil {
				return scanChange{}, err
			}
			if mismatch {
				h.scanner.logger.InfoContext(ctx, "weight mismatch flagged",
					"tracking_number", s.TrackingNumber(), "actual", cmd.ActualWeight().String())
				return scanChange{mismatch: true}, nil
			}
			return scanChange{message: "measured weight " + cmd.ActualWeight().String() + " kg is within tolerance"}, nil
		})
}

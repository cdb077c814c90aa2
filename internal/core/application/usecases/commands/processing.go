package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ProcessingResult reports one processing call together with the shipment's
// reconciliation state after it.
type ProcessingResult struct {
	Outcome
	TrackingNumber       string
	ShipmentStatus       string
	Barcode              string
	ItemStatus           string
	Weight               *decimal.Decimal
	TotalProcessedWeight decimal.Decimal
	TotalExpectedWeight  decimal.Decimal
	ProcessedCount       int
	TotalCount           int
	AllItemsProcessed    bool
	ReadyForLoading      bool
	WeightMismatch       bool
	MissingItems         []string
}

// scanChange is what a processing step did to the shipment.
type scanChange struct {
	item     *shipment.Item
	mismatch bool
	message  string
}

type scanStep func(s *shipment.Shipment, policy shipment.ReadinessPolicy, now time.Time) (scanChange, error)

// scanner runs processing steps against a locked shipment and reports the
// reconciliation that results.
type scanner struct {
	uowFactory UoWFactory
	policy     shipment.ReadinessPolicy
	notifier   statusNotifier
	logger     *slog.Logger
}

func newScanner(
	uowFactory UoWFactory,
	policy shipment.ReadinessPolicy,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) scanner {
	return scanner{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   statusNotifier{publisher: publisher, logger: logger},
		logger:     logger,
	}
}

func (sc scanner) run(ctx context.Context, trackingNumber string, step scanStep) (ProcessingResult, error) {
	uow := sc.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().LockByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return sc.fail(ctx, trackingNumber, err)
	}

	from := s.Status()
	change, err := step(s, sc.policy, time.Now().UTC())
	if err != nil {
		return sc.fail(ctx, trackingNumber, err)
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return sc.fail(ctx, trackingNumber, err)
	}
	if err = uow.Commit(ctx); err != nil {
		return sc.fail(ctx, trackingNumber, err)
	}

	sc.notifier.notify(ctx, s, from)
	if s.Status() != from {
		sc.logger.InfoContext(ctx, "shipment status changed",
			"tracking_number", trackingNumber, "from", from.String(), "to", s.Status().String())
	}

	return sc.result(s, change), nil
}

func (sc scanner) result(s *shipment.Shipment, change scanChange) ProcessingResult {
	r := s.Reconcile(sc.policy)
	result := ProcessingResult{
		Outcome:              succeeded(change.message),
		TrackingNumber:       s.TrackingNumber(),
		ShipmentStatus:       s.Status().String(),
		TotalProcessedWeight: r.ProcessedWeight,
		TotalExpectedWeight:  r.TargetWeight,
		ProcessedCount:       r.ProcessedCount,
		TotalCount:           r.TotalCount,
		AllItemsProcessed:    r.AllAccounted,
		ReadyForLoading:      r.ReadyForLoading,
		WeightMismatch:       r.WeightMismatch,
		MissingItems:         r.MissingBarcodes,
	}
	if change.item != nil {
		result.Barcode = change.item.Barcode()
		result.ItemStatus = change.item.Status().String()
		result.Weight = change.item.ObservedWeight()
	}

	var notes []string
	if result.Message != "" {
		notes = append(notes, result.Message)
	}
	if change.mismatch {
		d := s.Discrepancy()
		notes = append(notes, fmt.Sprintf("weight mismatch: measured %s kg, expected %s kg",
			d.Actual.String(), d.Expected.String()))
	}
	if r.ReadyForLoading {
		notes = append(notes, "shipment is ready for loading")
	}
	result.Message = strings.Join(notes, "; ")
	return result
}

func (sc scanner) fail(ctx context.Context, trackingNumber string, err error) (ProcessingResult, error) {
	outcome, err := reject(ctx, sc.logger, err, "tracking_number", trackingNumber)
	return ProcessingResult{Outcome: outcome, TrackingNumber: trackingNumber}, err
}

package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

type GetProcessingSummaryQueryHandler struct {
	reader Reader
	policy shipment.ReadinessPolicy
}

func NewGetProcessingSummaryQueryHandler(reader Reader, policy shipment.ReadinessPolicy) GetProcessingSummaryQueryHandler {
	return GetProcessingSummaryQueryHandler{reader: reader, policy: policy}
}

// Handle reports false with no error when no shipment has the tracking number.
func (h GetProcessingSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetProcessingSummaryQuery,
) (*ProcessingSummary, bool, error) {
	if err := query.Validate(); err != nil {
		return nil, false, err
	}

	s, err := h.reader.ShipmentRepository().GetByTrackingNumber(ctx, query.TrackingNumber())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	r := s.Reconcile(h.policy)
	return &ProcessingSummary{
		ShipmentID:           s.ID().String(),
		TrackingNumber:       s.TrackingNumber(),
		ShipmentStatus:       s.Status().String(),
		TotalItems:           r.TotalCount,
		ProcessedItems:       r.ProcessedCount,
		MissingItems:         r.MissingCount,
		DamagedItems:         r.DamagedCount,
		TotalExpectedWeight:  r.TargetWeight,
		TotalProcessedWeight: r.ProcessedWeight,
		AllItemsProcessed:    r.AllAccounted,
		ReadyForLoading:      r.ReadyForLoading,
		WeightMismatch:       r.WeightMismatch,
		MissingBarcodes:      r.MissingBarcodes,
		LastProcessedAt:      r.LastProcessedAt,
		Items:                newShipmentItemViews(s.Items()),
	}, true, nil
}

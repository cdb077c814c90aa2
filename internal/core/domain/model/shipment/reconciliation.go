package shipment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// WeightDiscrepancy is an aggregate scale reading that did not match the
// expected weight. While one is outstanding the shipment cannot become ready.
type WeightDiscrepancy struct {
	Actual     decimal.Decimal
	Expected   decimal.Decimal
	ReportedBy kernel.UUID
	ReportedAt time.Time
}

// Reconciliation is the derived scan state of a shipment.
type Reconciliation struct {
	// ProcessedWeight sums the observed weight of PROCESSED items.
	ProcessedWeight decimal.Decimal
	// TargetWeight sums the expected weight of items neither MISSING nor DAMAGED.
	TargetWeight decimal.Decimal
	// ScaleWeight is what an aggregate scale reading is compared with. It is
	// TargetWeight plus, when the policy keeps damaged goods on the scale, the
	// weight of DAMAGED items (observed if recorded, expected otherwise).
	ScaleWeight     decimal.Decimal
	ProcessedCount  int
	DamagedCount    int
	MissingCount    int
	TotalCount      int
	AllAccounted    bool
	WeightMismatch  bool
	ReadyForLoading bool
	MissingBarcodes []string
	LastProcessedAt *time.Time
}

func reconcile(items []*Item, discrepancy *WeightDiscrepancy, policy ReadinessPolicy) Reconciliation {
	r := Reconciliation{
		ProcessedWeight: decimal.Zero,
		TargetWeight:    decimal.Zero,
		ScaleWeight:     decimal.Zero,
		TotalCount:      len(items),
		AllAccounted:    true,
		WeightMismatch:  discrepancy != nil,
		MissingBarcodes: make([]string, 0),
	}

	for _, item := range items {
		switch item.status {
		case ItemProcessed:
			r.ProcessedCount++
			if item.observedWeight != nil {
				r.ProcessedWeight = r.ProcessedWeight.Add(*item.observedWeight)
			}
		case ItemDamaged:
			r.DamagedCount++
			if policy.damagedOnScale {
				r.ScaleWeight = r.ScaleWeight.Add(item.scaleWeight())
			}
		case ItemMissing:
			r.MissingCount++
			r.MissingBarcodes = append(r.MissingBarcodes, item.barcode)
		}

		if item.status != ItemMissing && item.status != ItemDamaged {
			r.TargetWeight = r.TargetWeight.Add(item.expectedWeight)
			r.ScaleWeight = r.ScaleWeight.Add(item.expectedWeight)
		}
		if !policy.accounted(item.status) {
			r.AllAccounted = false
		}
		if item.processedAt != nil && (r.LastProcessedAt == nil || item.processedAt.After(*r.LastProcessedAt)) {
			at := *item.processedAt
			r.LastProcessedAt = &at
		}
	}

	r.ReadyForLoading = r.AllAccounted &&
		!r.WeightMismatch &&
		policy.withinTolerance(r.ProcessedWeight, r.TargetWeight)

	return r
}

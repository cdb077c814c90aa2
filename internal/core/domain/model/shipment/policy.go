package shipment

import (
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultWeightTolerance is the absolute difference, in kilograms, accepted
// between scanned and expected weight.
var DefaultWeightTolerance = decimal.RequireFromString("0.5")

// ReadinessPolicy holds the configurable parts of scan reconciliation.
type ReadinessPolicy struct {
	tolerance        decimal.Decimal
	damagedAccounted bool
	damagedOnScale   bool
}

// NewReadinessPolicy builds a policy. damagedAccounted decides whether a
// DAMAGED item counts as accounted for when checking that every item was handled.
func NewReadinessPolicy(tolerance decimal.Decimal, damagedAccounted bool) (ReadinessPolicy, error) {
	if tolerance.IsNegative() {
		return ReadinessPolicy{}, errs.NewValueIsOutOfRangeError("weight tolerance", tolerance.String(), 0, "unbounded")
	}
	return ReadinessPolicy{tolerance: tolerance, damagedAccounted: damagedAccounted}, nil
}

func DefaultReadinessPolicy() ReadinessPolicy {
	return ReadinessPolicy{tolerance: DefaultWeightTolerance, damagedAccounted: true}
}

// WithDamagedOnScale returns a copy of p in which DAMAGED items stay part of
// the weight an aggregate scale reading is compared with. By default they
// are assumed to be set aside before weighing.
func (p ReadinessPolicy) WithDamagedOnScale(onScale bool) ReadinessPolicy {
	p.damagedOnScale = onScale
	return p
}

func (p ReadinessPolicy) Tolerance() decimal.Decimal { return p.tolerance }
func (p ReadinessPolicy) DamagedAccounted() bool     { return p.damagedAccounted }
func (p ReadinessPolicy) DamagedOnScale() bool       { return p.damagedOnScale }

func (p ReadinessPolicy) withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(p.tolerance)
}

func (p ReadinessPolicy) accounted(status ItemStatus) bool {
	switch status {
	case ItemProcessed, ItemMissing:
		return true
	case ItemDamaged:
		return p.damagedAccounted
	default:
		return false
	}
}

package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLoadIsNotConstructed = errs.NewValueIsRequiredError(
	"load must be created via NewLoad or EmptyLoad constructors")

// Load is a non-negative weight (kg) and volume (m³) pair. It is used for
// truck capacities as well as for the load a set of inventory lines produces.
type Load struct { //nolint:recvcheck //using for validation
	weight decimal.Decimal
	volume decimal.Decimal
	guard  guard.ConstructorGuard
}

func NewLoad(weight, volume decimal.Decimal) (Load, error) {
	l := Load{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(l.setWeight(weight), l.setVolume(volume)); err != nil {
		return Load{}, err
	}

	return l, nil
}

func EmptyLoad() Load {
	return Load{
		weight: decimal.Zero,
		volume: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

func (l Load) Validate() error {
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l Load) Weight() decimal.Decimal {
	return l.weight
}

func (l Load) Volume() decimal.Decimal {
	return l.volume
}

func (l Load) String() string {
	return fmt.Sprintf("Load(%skg,%sm3)", l.weight.String(), l.volume.String())
}

// Add returns the sum of both loads.
func (l Load) Add(other Load) Load {
	return Load{
		weight: l.weight.Add(other.weight),
		volume: l.volume.Add(other.volume),
		guard:  guard.NewConstructorGuard(),
	}
}

// Scale multiplies both dimensions by n, e.g. a unit load by a line quantity.
func (l Load) Scale(n int) Load {
	factor := decimal.NewFromInt(int64(n))
	return Load{
		weight: l.weight.Mul(factor),
		volume: l.volume.Mul(factor),
		guard:  guard.NewConstructorGuard(),
	}
}

// Fits reports whether l can be carried within capacity on both dimensions.
func (l Load) Fits(capacity Load) bool {
	return l.FitError(capacity) == nil
}

// FitError names the first dimension on which l exceeds capacity.
func (l Load) FitError(capacity Load) error {
	if l.weight.GreaterThan(capacity.weight) {
		return errs.NewCapacityExceededError("weight", l.weight.String(), capacity.weight.String())
	}
	if l.volume.GreaterThan(capacity.volume) {
		return errs.NewCapacityExceededError("volume", l.volume.String(), capacity.volume.String())
	}
	return nil
}

func (l *Load) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsOutOfRangeError("weight", weight.String(), 0, "unbounded")
	}
	l.weight = weight
	return nil
}

func (l *Load) setVolume(volume decimal.Decimal) error {
	if volume.IsNegative() {
		return errs.NewValueIsOutOfRangeError("volume", volume.String(), 0, "unbounded")
	}
	l.volume = volume
	return nil
}

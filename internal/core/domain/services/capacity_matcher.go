package services

import (
	"slices"
	"strings"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
)

// MatchCriteria narrows the trucks a CapacityMatcher returns.
type MatchCriteria struct {
	WarehouseID kernel.UUID
	// MinCapacity, when set, must fit into the truck capacity on both dimensions.
	MinCapacity *kernel.Load
	// RequireDriver drops trucks with no driver assigned.
	RequireDriver bool
}

type CapacityMatcher struct{}

func NewCapacityMatcher() CapacityMatcher {
	return CapacityMatcher{}
}

// Match returns the AVAILABLE trucks homed at the criteria warehouse that
// satisfy every criterion, ordered by registration number. An empty result
// is not an error.
func (m CapacityMatcher) Match(trucks []*fleet.Truck, criteria MatchCriteria) ([]*fleet.Truck, error) {
	if err := criteria.WarehouseID.Validate(); err != nil {
		return nil, err
	}
	if criteria.MinCapacity != nil {
		if err := criteria.MinCapacity.Validate(); err != nil {
			return nil, err
		}
	}

	matched := make([]*fleet.Truck, 0, len(trucks))
	for _, truck := range trucks {
		if err := truck.Validate(); err != nil {
			return nil, err
		}
		if m.matches(truck, criteria) {
			matched = append(matched, truck)
		}
	}

	slices.SortFunc(matched, func(a, b *fleet.Truck) int {
		return strings.Compare(a.RegistrationNumber(), b.RegistrationNumber())
	})
	return matched, nil
}

func (m CapacityMatcher) matches(truck *fleet.Truck, criteria MatchCriteria) bool {
	if !truck.IsAvailable() || !truck.IsHomedAt(criteria.WarehouseID) {
		return false
	}
	if criteria.RequireDriver && !truck.HasDriver() {
		return false
	}
	if criteria.MinCapacity != nil && !truck.CanCarry(*criteria.MinCapacity) {
		return false
	}
	return true
}

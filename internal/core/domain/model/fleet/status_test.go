package fleet_test

import (
	"testing"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []fleet.Status{fleet.Available, fleet.Assigned, fleet.InTransit, fleet.Maintenance} {
		parsed, err := fleet.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := fleet.ParseStatus("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = fleet.ParseStatus("parked")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    fleet.Status
		apply   func(fleet.Status) (fleet.Status, error)
		want    fleet.Status
		wantErr bool
	}{
		{"assign available", fleet.Available, fleet.Status.Assign, fleet.Assigned, false},
		{"assign assigned", fleet.Assigned, fleet.Status.Assign, 0, true},
		{"assign in maintenance", fleet.Maintenance, fleet.Status.Assign, 0, true},
		{"dispatch assigned", fleet.Assigned, fleet.Status.Dispatch, fleet.InTransit, false},
		{"dispatch in transit", fleet.InTransit, fleet.Status.Dispatch, fleet.InTransit, false},
		{"dispatch available", fleet.Available, fleet.Status.Dispatch, 0, true},
		{"release in transit", fleet.InTransit, fleet.Status.Release, fleet.Available, false},
		{"release available", fleet.Available, fleet.Status.Release, fleet.Available, false},
		{"release maintenance", fleet.Maintenance, fleet.Status.Release, 0, true},
		{"maintenance while assigned", fleet.Assigned, fleet.Status.SendToMaintenance, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTruck(t *testing.T) {
	w := newWorld(t)
	h := commands.NewRegisterTruckCommandHandler(w.fleetUoW())
	driver := kernel.NewUUID()

	cmd, err := commands.NewRegisterTruckCommand(" KA-77 ", "MAN TGX", load(t, "18000", "80"), w.source.ID(), &driver)
	require.NoError(t, err)

	id, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	truck := w.truck(id)
	assert.Equal(t, "KA-77", truck.RegistrationNumber())
	assert.Equal(t, fleet.Available, truck.Status())
	assert.True(t, truck.HasDriver())

	t.Run("registration number is unique", func(t *testing.T) {
		again, err := commands.NewRegisterTruckCommand("KA-77", "DAF XF", load(t, "1", "1"), w.source.ID(), nil)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), again)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("home warehouse must exist", func(t *testing.T) {
		orphan, err := commands.NewRegisterTruckCommand("KA-78", "DAF XF", load(t, "1", "1"), kernel.NewUUID(), nil)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), orphan)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewRegisterTruckCommand_Validation(t *testing.T) {
	_, err := commands.NewRegisterTruckCommand("", " ", kernel.Load{}, kernel.UUID{}, nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "registration number")
	assert.Contains(t, err.Error(), "model")
	assert.Contains(t, err.Error(), "capacity")
	assert.Contains(t, err.Error(), "home warehouse")
}

func TestMaintainTruck(t *testing.T) {
	w := newWorld(t)
	truck := w.seedTruck("KA-01", "1000", "20", true)
	h := commands.NewMaintainTruckCommandHandler(w.fleetUoW())
	next := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)

	enter, err := commands.NewMaintainTruckCommand(truck.ID(), false, nil)
	require.NoError(t, err)
	updated, err := h.Handle(t.Context(), enter)
	require.NoError(t, err)
	assert.Equal(t, fleet.Maintenance, updated.Status())

	leave, err := commands.NewMaintainTruckCommand(truck.ID(), true, &next)
	require.NoError(t, err)
	updated, err = h.Handle(t.Context(), leave)
	require.NoError(t, err)
	assert.Equal(t, fleet.Available, updated.Status())
	assert.NotNil(t, updated.LastMaintenanceDate())
	assert.Equal(t, next, *w.truck(truck.ID()).NextMaintenanceDate())
}

func TestMaintainTruck_BusyTruckStaysOnDuty(t *testing.T) {
	w := newWorld(t)
	truck := w.seedTruck("KA-01", "1000", "20", true)
	require.NoError(t, truck.Assign())
	require.NoError(t, w.reader.TruckRepository().Update(t.Context(), truck))

	cmd, err := commands.NewMaintainTruckCommand(truck.ID(), false, nil)
	require.NoError(t, err)
	_, err = commands.NewMaintainTruckCommandHandler(w.fleetUoW()).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, fleet.Assigned, w.truck(truck.ID()).Status())
}

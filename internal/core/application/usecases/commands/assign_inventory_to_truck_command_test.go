package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignInventoryToTruckCommand(t *testing.T) {
	truckID, src, dst, actor := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	a, b := kernel.NewUUID(), kernel.NewUUID()

	t.Run("merges duplicate lines", func(t *testing.T) {
		cmd, err := commands.NewAssignInventoryToTruckCommand(truckID, src, dst, []commands.AssignmentLine{
			{InventoryID: a, Quantity: 2}, {InventoryID: b}, {InventoryID: a, Quantity: 3},
		}, actor)

		require.NoError(t, err)
		assert.Equal(t, []commands.AssignmentLine{{InventoryID: a, Quantity: 5}, {InventoryID: b}}, cmd.Lines())
		require.NoError(t, cmd.AssignmentID().Validate())
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects a line listed in full and in part", func(t *testing.T) {
		_, err := commands.NewAssignInventoryToTruckCommand(truckID, src, dst, []commands.AssignmentLine{
			{InventoryID: a}, {InventoryID: a, Quantity: 1},
		}, actor)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects same source and destination", func(t *testing.T) {
		_, err := commands.NewAssignInventoryToTruckCommand(truckID, src, src,
			[]commands.AssignmentLine{{InventoryID: a}}, actor)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires lines and ids", func(t *testing.T) {
		_, err := commands.NewAssignInventoryToTruckCommand(kernel.UUID{}, src, dst, nil, actor)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := commands.NewAssignInventoryToTruckCommand(truckID, src, dst,
			[]commands.AssignmentLine{{InventoryID: a, Quantity: -1}}, actor)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.AssignInventoryToTruckCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignInventoryToTruckCommandIsNotConstructed)
	})
}

package inventory_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T) inventory.Item {
	t.Helper()
	unit, err := kernel.NewLoad(decimal.RequireFromString("2.5"), decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	item, err := inventory.NewItem("SKU-1", "Pallet wrap", "stretch film", decimal.NewFromInt(12), unit)
	require.NoError(t, err)
	return item
}

func newLine(t *testing.T, quantity int) *inventory.Line {
	t.Helper()
	line, err := inventory.NewLine(kernel.NewUUID(), kernel.NewUUID(), newItem(t), quantity, 5, 20)
	require.NoError(t, err)
	return line
}

func TestNewItem(t *testing.T) {
	_, err := inventory.NewItem(" ", "", "", decimal.NewFromInt(-1), kernel.Load{})

	require.ErrorIs(t, err, inventory.ErrSKUIsRequired)
	require.ErrorIs(t, err, inventory.ErrItemNameIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, kernel.ErrLoadIsNotConstructed)
}

func TestNewLine(t *testing.T) {
	line := newLine(t, 10)

	require.NoError(t, line.Validate())
	assert.Equal(t, "SKU-1", line.SKU())
	assert.Equal(t, 10, line.Quantity())

	_, err := inventory.NewLine(kernel.NewUUID(), kernel.NewUUID(), newItem(t), -1, -1, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLine_Withdraw(t *testing.T) {
	t.Run("debits quantity", func(t *testing.T) {
		line := newLine(t, 10)

		require.NoError(t, line.Withdraw(10))
		assert.Equal(t, 0, line.Quantity())
	})

	t.Run("insufficient quantity leaves line unchanged", func(t *testing.T) {
		line := newLine(t, 3)

		err := line.Withdraw(4)

		require.ErrorIs(t, err, errs.ErrInsufficientInventory)
		assert.Equal(t, 3, line.Quantity())
	})

	t.Run("non positive quantity", func(t *testing.T) {
		line := newLine(t, 3)

		require.ErrorIs(t, line.Withdraw(0), errs.ErrValueIsOutOfRange)
	})
}

func TestLine_Deposit(t *testing.T) {
	line := newLine(t, 3)

	require.NoError(t, line.Deposit(7))
	assert.Equal(t, 10, line.Quantity())
	require.ErrorIs(t, line.Deposit(-1), errs.ErrValueIsOutOfRange)
}

func TestLine_Replicate(t *testing.T) {
	line := newLine(t, 3)
	other := kernel.NewUUID()

	copyLine, err := line.Replicate(kernel.NewUUID(), other, 2)

	require.NoError(t, err)
	assert.True(t, copyLine.BelongsTo(other))
	assert.Equal(t, line.SKU(), copyLine.SKU())
	assert.Equal(t, 2, copyLine.Quantity())
	assert.Equal(t, line.ReorderPoint(), copyLine.ReorderPoint())

	_, err = line.Replicate(kernel.NewUUID(), line.WarehouseID(), 1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLine_LoadAndReorder(t *testing.T) {
	line := newLine(t, 4)

	load := line.LoadOf(4)
	assert.True(t, load.Weight().Equal(decimal.NewFromInt(10)))
	assert.True(t, load.Volume().Equal(decimal.RequireFromString("0.04")))
	assert.True(t, line.IsBelowReorderPoint())

	require.NoError(t, line.Deposit(1))
	assert.False(t, line.IsBelowReorderPoint())
}

func TestTransfer_Lifecycle(t *testing.T) {
	source := newLine(t, 10)
	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	tr, err := inventory.NewTransfer(kernel.NewUUID(), source, kernel.NewUUID(), 4, kernel.NewUUID(), now)
	require.NoError(t, err)
	assert.Equal(t, inventory.TransferPending, tr.Status())
	assert.True(t, tr.SourceWarehouseID().IsEqual(source.WarehouseID()))

	require.NoError(t, tr.Dispatch())
	assert.Equal(t, inventory.TransferInTransit, tr.Status())

	dest := kernel.NewUUID()
	require.NoError(t, tr.Complete(dest, now.Add(time.Hour)))
	assert.Equal(t, inventory.TransferCompleted, tr.Status())
	require.NotNil(t, tr.DestinationLineID())
	assert.True(t, tr.DestinationLineID().IsEqual(dest))

	require.ErrorIs(t, tr.Cancel(now), errs.ErrInvalidState)
}

func TestNewTransfer_Validation(t *testing.T) {
	source := newLine(t, 10)

	_, err := inventory.NewTransfer(kernel.NewUUID(), source, source.WarehouseID(), 0, kernel.UUID{}, time.Now())

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

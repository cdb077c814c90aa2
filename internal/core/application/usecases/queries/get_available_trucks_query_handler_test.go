package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrations(views []queries.TruckView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.RegistrationNumber)
	}
	return out
}

func TestGetAvailableTrucksQueryHandler(t *testing.T) {
	c := newCatalog(t)
	c.truck("C-300", "3000", "30", c.north, true)
	c.truck("A-100", "1000", "10", c.north, false)
	c.truck("B-200", "2000", "20", c.north, true)
	c.truck("D-400", "9000", "90", c.south, true)
	busy := c.truck("E-500", "9000", "90", c.north, true)
	require.NoError(t, busy.Assign())
	require.NoError(t, c.reader.TruckRepository().Update(t.Context(), busy))

	h := queries.NewGetAvailableTrucksQueryHandler(c.reader, services.NewCapacityMatcher())

	t.Run("all available at the warehouse", func(t *testing.T) {
		query, err := queries.NewGetAvailableTrucksQuery(c.north)
		require.NoError(t, err)

		trucks, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{"A-100", "B-200", "C-300"}, registrations(trucks))
		assert.Equal(t, "AVAILABLE", trucks[0].Status)
	})

	t.Run("with capacity", func(t *testing.T) {
		query, err := queries.NewGetAvailableTrucksWithCapacityQuery(c.north,
			decimal.NewFromInt(1500), decimal.NewFromInt(25))
		require.NoError(t, err)

		trucks, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{"C-300"}, registrations(trucks))
	})

	t.Run("with driver", func(t *testing.T) {
		query, err := queries.NewGetAvailableTrucksWithDriverQuery(c.north)
		require.NoError(t, err)

		trucks, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{"B-200", "C-300"}, registrations(trucks))
	})

	t.Run("empty warehouse", func(t *testing.T) {
		query, err := queries.NewGetAvailableTrucksQuery(kernel.NewUUID())
		require.NoError(t, err)

		trucks, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, trucks)
	})
}

func TestNewGetAvailableTrucksQuery_Validation(t *testing.T) {
	_, err := queries.NewGetAvailableTrucksQuery(kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetAvailableTrucksWithCapacityQuery(kernel.NewUUID(), decimal.NewFromInt(-1), decimal.Zero)
	require.Error(t, err)
}

func TestGetAvailableTrucksQuery_NotConstructedViaConstructor(t *testing.T) {
	h := queries.NewGetAvailableTrucksQueryHandler(newCatalog(t).reader, services.NewCapacityMatcher())

	_, err := h.Handle(t.Context(), queries.GetAvailableTrucksQuery{})

	require.ErrorIs(t, err, queries.ErrGetAvailableTrucksQueryIsNotConstructed)
}

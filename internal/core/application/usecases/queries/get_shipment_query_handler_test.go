package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShipmentQueryHandler(t *testing.T) {
	c := newCatalog(t)
	s := c.shipment("TRK-001", time.Now(), 10, 20)
	h := queries.NewGetShipmentQueryHandler(c.reader)

	t.Run("by id", func(t *testing.T) {
		query, err := queries.NewGetShipmentQuery(s.ID())
		require.NoError(t, err)

		view, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "TRK-001", view.TrackingNumber)
		assert.Equal(t, "30", view.TotalWeight.String())
		assert.Len(t, view.Items, 2)
	})

	t.Run("by tracking number", func(t *testing.T) {
		query, err := queries.NewGetShipmentByTrackingNumberQuery(" TRK-001 ")
		require.NoError(t, err)

		view, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, s.ID(), view.ID)
		assert.Equal(t, "PENDING", view.Status)
	})

	t.Run("unknown", func(t *testing.T) {
		query, err := queries.NewGetShipmentQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetPendingShipmentsQueryHandler_OldestFirst(t *testing.T) {
	c := newCatalog(t)
	now := time.Now()
	second := c.shipment("TRK-002", now, 5)
	first := c.shipment("TRK-001", now.Add(-time.Hour), 5)
	scheduled := c.shipment("TRK-003", now.Add(-2*time.Hour), 5)
	assignTruck(t, scheduled, now)
	require.NoError(t, c.reader.ShipmentRepository().Update(t.Context(), scheduled))

	query, err := queries.NewGetPendingShipmentsQuery(c.north)
	require.NoError(t, err)

	views, err := queries.NewGetPendingShipmentsQueryHandler(c.reader).Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, second.ID(), views[1].ID)

	southQuery, err := queries.NewGetPendingShipmentsQuery(c.south)
	require.NoError(t, err)
	views, err = queries.NewGetPendingShipmentsQueryHandler(c.reader).Handle(t.Context(), southQuery)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetProcessingSummaryQueryHandler(t *testing.T) {
	c := newCatalog(t)
	now := time.Now()
	s := c.shipment("TRK-001", now, 10, 20, 15)
	assignTruck(t, s, now)
	policy := shipment.DefaultReadinessPolicy()
	ten, twenty := decimal.NewFromInt(10), decimal.NewFromInt(20)
	_, _, err := s.ProcessItem("item1", shipment.ItemProcessed, &ten, "", policy, now)
	require.NoError(t, err)
	_, _, err = s.ProcessItem("item2", shipment.ItemProcessed, &twenty, "", policy, now.Add(time.Minute))
	require.NoError(t, err)
	_, _, err = s.ReportMissing("item3", "", policy, now)
	require.NoError(t, err)
	require.NoError(t, c.reader.ShipmentRepository().Update(t.Context(), s))

	h := queries.NewGetProcessingSummaryQueryHandler(c.reader, policy)

	t.Run("summary", func(t *testing.T) {
		query, err := queries.NewGetProcessingSummaryQuery("TRK-001")
		require.NoError(t, err)

		summary, found, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "READY_FOR_PICKUP", summary.ShipmentStatus)
		assert.Equal(t, 3, summary.TotalItems)
		assert.Equal(t, 2, summary.ProcessedItems)
		assert.Equal(t, 1, summary.MissingItems)
		assert.Equal(t, "30", summary.TotalExpectedWeight.String())
		assert.Equal(t, "30", summary.TotalProcessedWeight.String())
		assert.True(t, summary.AllItemsProcessed)
		assert.True(t, summary.ReadyForLoading)
		assert.False(t, summary.WeightMismatch)
		assert.Equal(t, []string{"item3"}, summary.MissingBarcodes)
		require.NotNil(t, summary.LastProcessedAt)
		assert.True(t, summary.LastProcessedAt.Equal(now.Add(time.Minute)))
		assert.Len(t, summary.Items, 3)
	})

	t.Run("unknown tracking number", func(t *testing.T) {
		query, err := queries.NewGetProcessingSummaryQuery("TRK-404")
		require.NoError(t, err)

		summary, found, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, summary)
	})

	t.Run("blank tracking number", func(t *testing.T) {
		_, err := queries.NewGetProcessingSummaryQuery("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func assignTruck(t *testing.T, s *shipment.Shipment, now time.Time) {
	t.Helper()
	_, err := s.AssignTruck(kernel.NewUUID(), now, "", shipment.DefaultReadinessPolicy(), now)
	require.NoError(t, err)
}

package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReorderScanSchedule runs the scan at the top of every hour.
const DefaultReorderScanSchedule = "0 0 * * * *"

// ReorderAlertFinder is satisfied by queries.GetItemsBelowReorderPointQueryHandler.
type ReorderAlertFinder interface {
	Handle(ctx context.Context, query queries.GetItemsBelowReorderPointQuery) ([]queries.ReorderAlert, error)
}

// ReorderAlertJob periodically scans every warehouse for inventory lines at or
// below their reorder point and logs one warning per line.
type ReorderAlertJob struct {
	finder   ReorderAlertFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewReorderAlertJob(finder ReorderAlertFinder, schedule string, logger *slog.Logger) *ReorderAlertJob {
	if schedule == "" {
		schedule = DefaultReorderScanSchedule
	}
	return &ReorderAlertJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reorder_alert_job"),
	}
}

func (j *ReorderAlertJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reorder alert job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan and returns the number of lines that need restocking.
func (j *ReorderAlertJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetItemsBelowReorderPointQuery(nil)
	if err != nil {
		return 0, err
	}
	alerts, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Reorder alert scan failed", "error", err)
		return 0, err
	}

	for _, alert := range alerts {
		j.logger.WarnContext(ctx, "Inventory below reorder point",
			"inventory_id", alert.InventoryID.String(),
			"warehouse_id", alert.WarehouseID.String(),
			"sku", alert.SKU,
			"quantity", alert.Quantity,
			"reorder_point", alert.ReorderPoint,
			"reorder_quantity", alert.ReorderQuantity)
	}
	if len(alerts) > 0 {
		j.logger.InfoContext(ctx, "Reorder alert scan finished", "alerts", len(alerts))
	}
	return len(alerts), nil
}

func (j *ReorderAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reorder alert job stopped")
}

// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(jobs.NewReorderAlertJob(finder, schedule, logger))
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// ReorderAlertJob scans all warehouses for lines at or below their reorder
// point. A failed scan is logged and retried on the next tick.
package jobs

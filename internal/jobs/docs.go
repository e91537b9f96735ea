// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderStatusReportJob - logs the number of orders per status (default "@every 1m")
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statusSummaryHandler, "@every 30s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next run happens on schedule. Panics are recovered
// by the scheduler, and a run still in progress makes the next tick skip.
package jobs

// Package jobs holds the scheduled background tasks of the back office,
// built on github.com/robfig/cron/v3.
//
// RiderDispatchJob assigns the oldest pending delivery to the best available
// rider on every tick. Its schedule is a six-field cron expression with seconds
// (DISPATCH_SCHEDULE, default DefaultDispatchSchedule).
//
// Usage:
//
//	dispatchJob := jobs.NewRiderDispatchJob(dispatchHandler, recorder, cfg.DispatchSchedule, logger)
//	jobManager := jobs.NewJobManager(dispatchJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Runs that find nothing to dispatch are counted but not logged as errors.
package jobs

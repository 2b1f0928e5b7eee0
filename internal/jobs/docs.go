// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CourierAssignmentJob assigns couriers to shipments that were registered
// without one (courier assignment on registration disabled, or no courier
// was free at the time).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignHandler, jobs.DefaultAssignmentSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. The default
// "*/10 * * * * *" runs every ten seconds. A tick that is still running when
// the next one fires causes that next tick to be skipped.
//
// # Error Handling
//
// No pending shipment and no available courier are expected conditions and
// are not logged. Every other error is logged and the run stops until the
// next tick.
package jobs

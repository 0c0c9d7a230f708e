// Package jobs provides scheduled background tasks for the kitchen system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for kitchen orchestration.
//
// # Available Jobs
//
// 1. TimerExpiryJob - Runs every second to expire running timers whose countdown ran out
// 2. OverdueOrderEscalationJob - Runs every minute to escalate the priority of overdue orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireTimersHandler, escalateOverdueOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "* * * * * *" (every second) so
// alerts fire promptly when a countdown runs out. The escalation sweep uses
// "0 * * * * *" (every minute); overdue detection works on a 30-minute
// threshold and does not need sub-minute resolution.
//
// # Error Handling
//
// - Both jobs ignore expected business outcomes (nothing to expire, nothing overdue)
// - All other errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs

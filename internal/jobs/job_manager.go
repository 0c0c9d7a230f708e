package jobs

import (
	"fmt"
	"log/slog"

	"kitchen/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	timerExpiryJob            *TimerExpiryJob
	overdueOrderEscalationJob *OverdueOrderEscalationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireTimersHandler commands.ExpireTimersCommandHandler,
	escalateOverdueOrdersHandler commands.EscalateOverdueOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		timerExpiryJob:            NewTimerExpiryJob(expireTimersHandler, logger),
		overdueOrderEscalationJob: NewOverdueOrderEscalationJob(escalateOverdueOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.timerExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start timer expiry job: %w", err)
	}

	if err := jm.overdueOrderEscalationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.timerExpiryJob.Stop()
		return fmt.Errorf("failed to start overdue order escalation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrderEscalationJob.Stop()
	jm.timerExpiryJob.Stop()
}

package jobs

import (
	"context"
	"errors"
	"log/slog"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TimerExpiryJob manages the scheduled expiry sweep over running timers.
// Runs every second to mark timers whose countdown ran out without an
// explicit completion.
type TimerExpiryJob struct {
	handler commands.ExpireTimersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTimerExpiryJob creates a new job for expiring elapsed timers.
// Uses ExpireTimersCommandHandler to process the sweep every second.
func NewTimerExpiryJob(handler commands.ExpireTimersCommandHandler, logger *slog.Logger) *TimerExpiryJob {
	return &TimerExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "timer_expiry_job"),
	}
}

// Start begins the timer expiry job to run every second.
func (j *TimerExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireTimersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal case, not a failure
			if !errors.Is(err, commands.ErrNoTimersToExpire) {
				j.logger.ErrorContext(ctx, "Timer expiry job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Timer expiry job started (running every second)")
	return nil
}

// Stop stops the timer expiry job.
func (j *TimerExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Timer expiry job stopped")
}

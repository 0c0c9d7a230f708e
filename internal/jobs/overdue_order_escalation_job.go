package jobs

import (
	"context"
	"errors"
	"log/slog"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueOrderEscalationJob manages the scheduled escalation sweep over
// orders in preparation. Runs every minute to raise the priority of orders
// that have been cooking past the overdue threshold.
type OverdueOrderEscalationJob struct {
	handler commands.EscalateOverdueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrderEscalationJob creates a new job for escalating overdue orders.
// Uses EscalateOverdueOrdersCommandHandler to process the sweep every minute.
func NewOverdueOrderEscalationJob(
	handler commands.EscalateOverdueOrdersCommandHandler,
	logger *slog.Logger,
) *OverdueOrderEscalationJob {
	return &OverdueOrderEscalationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_order_escalation_job"),
	}
}

// Start begins the escalation job to run every minute.
func (j *OverdueOrderEscalationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewEscalateOverdueOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A sweep that finds nothing overdue is the normal case
			if !errors.Is(err, commands.ErrNoOverdueOrdersFound) {
				j.logger.ErrorContext(ctx, "Overdue order escalation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order escalation job started (running every minute)")
	return nil
}

// Stop stops the escalation job.
func (j *OverdueOrderEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order escalation job stopped")
}

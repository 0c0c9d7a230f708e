package commands

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"kitchen/internal/core/domain/model/kernel"
)

// ErrNoTimersToExpire is returned when a sweep finds no running timer whose
// countdown has run out. Callers on a fixed tick treat it as an expected,
// quiet outcome.
var ErrNoTimersToExpire = errors.New("no timers to expire")

// expireWorkers bounds the number of timers expired concurrently per sweep.
const expireWorkers = 8

// ExpireTimersCommandHandler sweeps running timers and marks the elapsed
// ones expired.
//
// The sweep reads the candidate set in one short transaction, then expires
// each timer in its own transaction so one conflicted timer does not fail
// the whole sweep. A timer completed or cancelled between the read and the
// write is left untouched: MarkExpired on a terminal timer is a no-op.
//
// Expiring a repeating timer rearms it: a fresh instance with the full
// original duration and an incremented repeat counter is started and
// persisted in the same transaction, while the expired instance stays as a
// historical record.
type ExpireTimersCommandHandler struct {
	uowFactory TimerUoWFactory
}

// NewExpireTimersCommandHandler creates a handler for the expiry sweep.
func NewExpireTimersCommandHandler(uowFactory TimerUoWFactory) ExpireTimersCommandHandler {
	return ExpireTimersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one expiry sweep.
// Returns ErrNoTimersToExpire when nothing has elapsed.
func (h ExpireTimersCommandHandler) Handle(ctx context.Context, cmd ExpireTimersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	elapsed, err := h.findElapsed(ctx)
	if err != nil {
		return err
	}
	if len(elapsed) == 0 {
		return ErrNoTimersToExpire
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(expireWorkers)

	for _, timerID := range elapsed {
		group.Go(func() error {
			return h.expireOne(groupCtx, timerID)
		})
	}

	return group.Wait()
}

// findElapsed reads the running timers and returns the ids of those whose
// countdown reached zero.
func (h ExpireTimersCommandHandler) findElapsed(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	running, err := uow.TimerRepository().GetAllRunning(ctx)
	if err != nil {
		return nil, err
	}

	var elapsed []kernel.UUID
	for _, t := range running {
		if t.ShouldExpire() {
			elapsed = append(elapsed, t.ID())
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return elapsed, nil
}

// expireOne reloads a single timer in its own transaction, marks it expired,
// and rearms it when it repeats. The reload guards against the timer having
// finished between the sweep's read and this write; a timer found already
// terminal is left alone and never rearmed here.
func (h ExpireTimersCommandHandler) expireOne(ctx context.Context, timerID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	timerRepo := uow.TimerRepository()

	aggregate, err := timerRepo.Get(ctx, timerID)
	if err != nil {
		return err
	}

	alreadyFinished := aggregate.Status().IsTerminal()

	if err = aggregate.MarkExpired(); err != nil {
		return err
	}

	if err = timerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.IsRepeating() && !alreadyFinished {
		next, repeatErr := aggregate.Repeat()
		if repeatErr != nil {
			return repeatErr
		}
		if err = next.Start(); err != nil {
			return err
		}
		if err = timerRepo.Add(ctx, next); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

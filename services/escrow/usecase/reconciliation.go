package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
	nrpkg "github.com/piresc/escrow/internal/pkg/newrelic"
	"golang.org/x/sync/errgroup"
)

// sweep is one time-based pass of the reconciliation run
type sweep struct {
	name  string
	event models.Event
	list  func(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error)
	// cutoff derives the listing bound from the run's start time
	cutoff func(now time.Time) time.Time
}

// RunReconciliationSweep expires unpaid transactions past their payment
// window and auto-completes paid ones past the completion window. Every item
// goes through the state machine as the system actor; a row that moved in
// the meantime is skipped rather than counted as a failure.
func (uc *EscrowUC) RunReconciliationSweep(ctx context.Context) (models.SweepResult, error) {
	ctx, end := nrpkg.StartBackgroundTransaction(ctx, uc.nrApp, "escrow/reconciliation-sweep")
	defer end()

	start := uc.now()
	batch := uc.cfg.Escrow.SweepBatchSize
	if batch <= 0 {
		batch = 200
	}

	sweeps := []sweep{
		{
			name:   "expire",
			event:  models.EventExpire,
			list:   uc.repo.ListExpirable,
			cutoff: func(now time.Time) time.Time { return now },
		},
		{
			name:  "auto_complete",
			event: models.EventAutoComplete,
			list:  uc.repo.ListAutoCompletable,
			cutoff: func(now time.Time) time.Time {
				return now.Add(-uc.cfg.Escrow.CompletionWindow)
			},
		},
	}

	var (
		mu     sync.Mutex
		result models.SweepResult
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range sweeps {
		s := s
		g.Go(func() error {
			sctx := nrpkg.ForGoroutine(gctx)
			return nrpkg.WithSegment(sctx, "sweep/"+s.name, func() error {
				changed, failed, err := uc.runSweep(sctx, s, start, batch)
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				switch s.event {
				case models.EventExpire:
					result.Expired = changed
				case models.EventAutoComplete:
					result.AutoCompleted = changed
				}
				result.Failed += failed
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		logger.ErrorCtx(ctx, "Reconciliation sweep failed", logger.Err(err))
		return result, err
	}

	uc.logBacklog(ctx)

	logger.InfoCtx(ctx, "Reconciliation sweep finished",
		logger.Int("expired", result.Expired),
		logger.Int("auto_completed", result.AutoCompleted),
		logger.Int("failed", result.Failed),
		logger.Duration("duration", uc.now().Sub(start)))
	return result, nil
}

func (uc *EscrowUC) runSweep(ctx context.Context, s sweep, now time.Time, batch int) (changed, failed int, err error) {
	ids, err := s.list(ctx, s.cutoff(now), batch)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list %s candidates: %w", s.name, err)
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return changed, failed, ctx.Err()
		}

		_, applied, err := uc.apply(ctx, id, s.event, models.SystemActor, models.EventPayload{})
		switch {
		case err == nil:
			if applied {
				changed++
			}
		case errors.Is(err, apperror.ErrInvalidTransition), errors.Is(err, apperror.ErrPreconditionFailed):
			logger.DebugCtx(ctx, "Sweep skipped transaction",
				logger.String("sweep", s.name),
				logger.TransactionID(id),
				logger.String("reason", apperror.MessageOf(err)))
		default:
			failed++
			logger.ErrorCtx(ctx, "Sweep failed on transaction",
				logger.String("sweep", s.name),
				logger.TransactionID(id),
				logger.Err(err))
		}
	}

	return changed, failed, nil
}

// logBacklog reports how many transactions still wait on a timer
func (uc *EscrowUC) logBacklog(ctx context.Context) {
	counts, err := nrpkg.WithSegmentAndReturn(ctx, "sweep/backlog", func() (map[models.TransactionStatus]int, error) {
		return uc.repo.CountByStatus(ctx, []models.TransactionStatus{
			models.TransactionStatusInitiated,
			models.TransactionStatusPaid,
			models.TransactionStatusDisputed,
		})
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to count open transactions", logger.Err(err))
		return
	}

	logger.InfoCtx(ctx, "Open transaction backlog",
		logger.Int("initiated", counts[models.TransactionStatusInitiated]),
		logger.Int("paid", counts[models.TransactionStatusPaid]),
		logger.Int("disputed", counts[models.TransactionStatusDisputed]))
}

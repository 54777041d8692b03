package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/pkg/retry"
)

const (
	publishAttempts = 3
	publishDelay    = 200 * time.Millisecond
)

// ApplyBulk applies one action to each id independently. A failed id
// (missing, already in the target state, or a persistence fault) is
// counted and skipped; the batch is never aborted and makes no
// atomicity promise.
func (s Service) ApplyBulk(
	ctx context.Context, req domain.BulkRequest,
) (domain.BulkResult, error) {
	const op = "Service.ApplyBulk"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.BulkResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := req.Validate(); err != nil {
		return domain.BulkResult{}, fmt.Errorf("%s: %w", op, err)
	}

	var res domain.BulkResult
	var events []domain.CatalogEvent
	now := time.Now()

	for _, id := range req.ProductIDs {
		if err := s.applyOne(ctx, req.Action, id, now); err != nil {
			log.Warn("bulk item failed",
				"action", req.Action, "productID", id, "err", err)
			res.FailCount++
			continue
		}
		res.SuccessCount++
		events = append(events, domain.CatalogEvent{
			ProductID:  id,
			Action:     req.Action,
			OccurredAt: now,
		})
	}

	s.publishEvents(ctx, events)

	log.Info("bulk applied", "action", req.Action,
		"success", res.SuccessCount, "fail", res.FailCount)
	return res, nil
}

func (s Service) applyOne(
	ctx context.Context, action string, id int64, now time.Time,
) error {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return err
	}

	switch action {
	case domain.ActionDelete:
		return s.products.Delete(ctx, id)
	case domain.ActionArchive:
		if p.Archived {
			return domain.ErrAlreadyInState
		}
		p.Archived = true
	case domain.ActionUnarchive:
		if !p.Archived {
			return domain.ErrAlreadyInState
		}
		p.Archived = false
	}

	p.UpdatedAt = &now
	return s.products.Save(ctx, p)
}

// publishEvents is best effort: transient broker faults are retried a
// few times with a flat delay, and a persistent fault must not undo
// the accounting of an already persisted batch.
func (s Service) publishEvents(
	ctx context.Context, events []domain.CatalogEvent,
) {
	const op = "Service.publishEvents"

	if s.events == nil || len(events) == 0 {
		return
	}

	err := retry.Do(ctx, retry.RetryConfig{
		MaxAttempts: publishAttempts,
		Backoff:     retry.LinearBackoff(publishDelay),
	}, func() error {
		return s.events.ProduceEvents(ctx, events)
	})
	if err != nil {
		slog.Error("failed to publish catalog events",
			"op", op, "nEvents", len(events), "err", err)
	}
}

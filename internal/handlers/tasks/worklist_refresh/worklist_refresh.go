package worklist_refresh

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	RefreshStatuses(ctx context.Context) (int, error)
}

// WorklistRefresh periodically re-derives shipment statuses from the
// collections. The Kafka event stream keeps the cache fresh in the normal
// case; this task is the poll fallback for writes that bypass events.
type WorklistRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewWorklistRefresh(log logger.Logger, service Service, interval time.Duration) *WorklistRefresh {
	return &WorklistRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (w *WorklistRefresh) TTL() time.Duration {
	return w.interval
}

func (w *WorklistRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	refreshed, err := w.service.RefreshStatuses(ctxWithTimeout)

	if refreshed > 0 {
		w.log.With(
			logger.NewField("bookings", refreshed),
		).Info("worklist refresh")
	}

	return err
}

func (w *WorklistRefresh) Info() string {
	return "worklist refresh"
}

package dispatcher

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Worker periodically drains the outbox. It can run alongside the HTTP
// trigger because claiming is a conditional update.
type Worker struct {
	svc      *Service
	interval time.Duration
	log      *zap.Logger
}

func NewWorker(svc *Service, interval time.Duration, log *zap.Logger) *Worker {
	return &Worker{svc: svc, interval: interval, log: log}
}

func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			results, err := w.svc.DrainOutbox(ctx, "")
			if err != nil {
				w.log.Error("outbox drain failed", zap.Error(err))
				continue
			}
			if len(results) > 0 {
				w.log.Info("outbox drained", zap.Int("processed", len(results)))
			}
		}
	}
}

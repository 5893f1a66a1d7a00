// Package worker runs the background reminder loop. Delivery itself is
// asynchronous: the loop only enqueues notification jobs, a separate
// dispatcher drains them.
package worker

import (
	"context"
	"log/slog"
	"time"

	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/metrics"
	"barber-booking/internal/usecase"
)

type ReminderWorker struct {
	reminders usecase.ReminderCommands
	cfg       config.WorkerConfig
	logger    *slog.Logger
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewReminderWorker(reminders usecase.ReminderCommands, cfg config.WorkerConfig, logger *slog.Logger) *ReminderWorker {
	return &ReminderWorker{
		reminders: reminders,
		cfg:       cfg,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

func (w *ReminderWorker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go w.run(ctx)
	w.logger.Info("reminder worker started", "tick", w.cfg.ReminderTick, "offset", w.cfg.ReminderOffset)
}

func (w *ReminderWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	w.logger.Info("reminder worker stopped")
}

func (w *ReminderWorker) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.cfg.ReminderTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *ReminderWorker) tick(ctx context.Context) {
	count, err := w.reminders.ProcessDueReminders(ctx)
	if err != nil {
		w.logger.Error("reminder pass failed", "error", err)
		return
	}
	if count > 0 {
		metrics.RemindersSent.Add(float64(count))
		w.logger.Info("reminders enqueued", "count", count)
	}
}

package components

import (
	"context"

	"barber-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewReminderWorker,
	),
	fx.Invoke(startReminderWorker),
)

func startReminderWorker(lc fx.Lifecycle, w *worker.ReminderWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}

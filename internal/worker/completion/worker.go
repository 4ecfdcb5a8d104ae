package completion

import (
	"context"
	"time"

	completePastBookings "github.com/m04kA/BookingHub/internal/usecase/complete_past_bookings"
)

const defaultInterval = time.Minute

// Sweeper use case завершения прошедших бронирований
type Sweeper interface {
	Execute(ctx context.Context) (*completePastBookings.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Worker периодически переводит прошедшие бронирования в completed
type Worker struct {
	sweeper  Sweeper
	interval time.Duration
	logger   Logger
}

// NewWorker создает воркер; неположительный интервал заменяется минутой
func NewWorker(sweeper Sweeper, interval time.Duration, logger Logger) *Worker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Worker{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Run выполняет проход сразу и затем по таймеру до отмены ctx
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Completion worker started, interval=%s", w.interval)
	defer w.logger.Info("Completion worker stopped")

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	resp, err := w.sweeper.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("Completion sweep failed: %v", err)
		return
	}

	if len(resp.CompletedIDs) > 0 {
		w.logger.Info("Completion sweep: %d bookings completed", len(resp.CompletedIDs))
	}
}

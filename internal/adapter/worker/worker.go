package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/khmm12/firefly-exporter/internal/common/logging"
	"github.com/khmm12/firefly-exporter/internal/common/tracing"
)

type Task interface {
	Execute(ctx context.Context) error
}

// Worker runs a task right away and then once per interval. Runs never
// overlap: the next tick is only consumed after the previous run returned.
type Worker struct {
	logger *slog.Logger

	interval time.Duration
	task     Task

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	cancelMu sync.Mutex
}

func NewWorker(logger *slog.Logger, interval time.Duration, task Task) *Worker {
	return &Worker{
		logger:   logger,
		interval: interval,
		task:     task,
	}
}

// Start blocks until ctx is done, Shutdown is called or the task fails. A task
// error stops the worker and is returned.
func (w *Worker) Start(ctx context.Context) error {
	locked := w.mu.TryLock()
	if !locked {
		return fmt.Errorf("worker is already running")
	}

	defer w.mu.Unlock()

	w.cancelMu.Lock()
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.cancelMu.Unlock()

	defer w.cancel()

	ticker := newTicker(w.ctx, w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return nil
		case <-ticker.C:
			err := w.run(w.ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) && w.ctx.Err() != nil {
					return nil
				}

				w.logger.ErrorContext(w.ctx, "Task failed, stopping worker", logging.Error(err))

				return err
			}
		}
	}
}

func (w *Worker) Shutdown(_ context.Context) error {
	w.cancelMu.Lock()
	defer w.cancelMu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}

	return nil
}

func (w *Worker) run(ctx context.Context) error {
	return w.task.Execute(tracing.WithCycleID(ctx))
}

// newTicker fires once immediately and then every repeat. Ticks that arrive
// while a run is in progress are dropped.
func newTicker(ctx context.Context, repeat time.Duration) *time.Ticker {
	ticker := time.NewTicker(repeat)
	oc := ticker.C
	nc := make(chan time.Time, 1)
	nc <- time.Now()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case tm := <-oc:
				select {
				case nc <- tm:
				default:
				}
			}
		}
	}()

	ticker.C = nc

	return ticker
}

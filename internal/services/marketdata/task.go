package marketdata

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fetcher produces a fresh value for a slot.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Task runs a fetcher once, or once and then on every interval tick, and replaces its
// slot on success. Failures are logged and otherwise ignored, the previous value stays.
type Task[T any] struct {
	slot     *Slot[T]
	fetch    Fetcher[T]
	interval time.Duration
	l        *zap.Logger
	onUpdate func()
	now      func() time.Time

	seq     atomic.Uint64
	mu      sync.Mutex
	cancel  context.CancelFunc
	running sync.WaitGroup
}

// TaskOption configures a Task.
type TaskOption[T any] func(*Task[T])

// WithOnUpdate sets a callback invoked after every successful replace.
func WithOnUpdate[T any](fn func()) TaskOption[T] {
	return func(t *Task[T]) {
		t.onUpdate = fn
	}
}

// NewTask creates a task for slot. A zero interval makes it one-shot.
func NewTask[T any](slot *Slot[T], fetch Fetcher[T], interval time.Duration, l *zap.Logger, opts ...TaskOption[T]) *Task[T] {
	t := &Task[T]{
		slot:     slot,
		fetch:    fetch,
		interval: interval,
		l:        l.With(zap.String("slot", slot.Name())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start launches the task in the background and returns immediately.
// Calling Start on a started task does nothing.
func (t *Task[T]) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.running.Add(1)
	go func() {
		defer t.running.Done()
		t.loop(ctx)
	}()
}

// Stop cancels the schedule and any in-flight run, then waits for them to return.
func (t *Task[T]) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	t.running.Wait()
}

func (t *Task[T]) loop(ctx context.Context) {
	t.spawn(ctx)
	if t.interval <= 0 {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.l.Debug("task stopped")
			return
		case <-ticker.C:
			t.spawn(ctx)
		}
	}
}

// spawn runs one fetch without blocking the schedule, a hung fetch never delays the next tick.
func (t *Task[T]) spawn(ctx context.Context) {
	seq := t.seq.Add(1)
	t.running.Add(1)
	go func() {
		defer t.running.Done()
		t.runOnce(ctx, seq)
	}()
}

func (t *Task[T]) runOnce(ctx context.Context, seq uint64) {
	l := t.l.With(zap.String("fetch_id", uuid.NewString()), zap.Uint64("seq", seq))

	v, err := t.fetch(ctx)
	if err != nil {
		l.Debug("fetch failed, keeping previous value", zap.Error(err))
		return
	}

	if !t.slot.Replace(seq, v, t.now()) {
		l.Debug("dropping result of stale fetch")
		return
	}
	l.Debug("slot replaced")

	if t.onUpdate != nil {
		t.onUpdate()
	}
}

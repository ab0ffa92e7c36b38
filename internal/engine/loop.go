// Package engine ведёт дискретное время мира: очередь ожидания и цикл, который
// единственный владеет миром и выполняет тики и внешние команды по очереди.
package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/steaphangreene/acidmud-sub001/internal/logging"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

// ErrStopped: цикл не запущен или уже остановлен.
var ErrStopped = errors.New("engine: loop is not running")

type command struct {
	fn   func(*world.World) error
	done chan error
}

// Loop владеет миром и планировщиком. Всё, что меняет мир, выполняется на
// горутине Run: тики по таймеру и команды, переданные через Do.
type Loop struct {
	world   *world.World
	sched   *Scheduler
	metrics *Metrics
	tracer  trace.Tracer
	log     *logging.Logger

	cmds    chan command
	running atomic.Bool
	stopped chan struct{}
}

// Option настраивает Loop.
type Option func(*Loop)

// WithMetrics включает Prometheus-метрики.
func WithMetrics(m *Metrics) Option {
	return func(l *Loop) { l.metrics = m }
}

// WithScheduler подставляет готовый планировщик.
func WithScheduler(s *Scheduler) Option {
	return func(l *Loop) { l.sched = s }
}

// NewLoop создаёт цикл для мира w.
func NewLoop(w *world.World, opts ...Option) *Loop {
	l := &Loop{
		world:   w,
		sched:   NewScheduler(),
		tracer:  otel.Tracer("acidmud/engine"),
		log:     logging.GetEngineLogger(),
		cmds:    make(chan command),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) World() *world.World { return l.world }
func (l *Loop) Scheduler() *Scheduler { return l.sched }
func (l *Loop) Now() uint64 { return l.sched.Now() }

// AdvanceTick выполняет один тик синхронно. Вызывать только с потока цикла
// (из Do) или когда Run не запущен.
func (l *Loop) AdvanceTick(ctx context.Context) int {
	start := time.Now()
	_, span := l.tracer.Start(ctx, "world.tick")
	ran := l.sched.Advance()
	span.SetAttributes(
		attribute.Int64("tick", int64(l.sched.Now())),
		attribute.Int("jobs", ran),
		attribute.Int("nodes", l.world.Len()),
	)
	span.End()

	if m := l.metrics; m != nil {
		m.ticks.Inc()
		m.jobs.Add(float64(ran))
		m.tickDuration.Observe(time.Since(start).Seconds())
		m.nodes.Set(float64(l.world.Len()))
		m.pending.Set(float64(l.sched.Pending()))
	}
	return ran
}

// Run крутит цикл до отмены ctx: тик раз в interval, между тиками
// выполняет внешние команды.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("engine: loop already running")
	}
	defer close(l.stopped)
	defer l.running.Store(false)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.log.Info("🕒 Игровой цикл запущен (тик %v)", interval)
	for {
		select {
		case <-ctx.Done():
			l.log.Info("🛑 Игровой цикл остановлен на тике %d", l.sched.Now())
			return ctx.Err()
		case <-ticker.C:
			l.AdvanceTick(ctx)
		case c := <-l.cmds:
			c.done <- c.fn(l.world)
			if l.metrics != nil {
				l.metrics.commands.Inc()
			}
		}
	}
}

// Do выполняет fn на потоке цикла и ждёт результата.
func (l *Loop) Do(ctx context.Context, fn func(*world.World) error) error {
	c := command{fn: fn, done: make(chan error, 1)}
	select {
	case l.cmds <- c:
	case <-l.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-c.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

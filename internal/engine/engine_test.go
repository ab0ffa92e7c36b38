package engine

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/steaphangreene/acidmud-sub001/internal/storage"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	rec := func(name string) Job {
		return func(uint64) { got = append(got, name) }
	}

	s.At(2, 1, "b", rec("b"))
	s.At(1, 1, "a", rec("a"))
	s.At(2, 2, "c", rec("c"))
	s.At(0, 3, "past", rec("past"))

	assert.Equal(t, 2, s.Advance())
	assert.Equal(t, []string{"a", "past"}, got)
	assert.Equal(t, uint64(1), s.Now())

	assert.Equal(t, 2, s.Advance())
	assert.Equal(t, []string{"a", "past", "b", "c"}, got)
	assert.Zero(t, s.Pending())
}

func TestSchedulerTickBarrier(t *testing.T) {
	s := NewScheduler()
	var ticks []uint64
	s.At(1, 0, "spawn", func(tick uint64) {
		ticks = append(ticks, tick)
		s.At(tick, 0, "child", func(tick uint64) { ticks = append(ticks, tick) })
	})

	assert.Equal(t, 1, s.Advance())
	assert.Equal(t, []uint64{1}, ticks)
	assert.Equal(t, 1, s.Advance())
	assert.Equal(t, []uint64{1, 2}, ticks)
}

func TestSchedulerResumesFromTick(t *testing.T) {
	s := NewSchedulerAt(500)
	var fired uint64
	s.After(3, 0, "later", func(tick uint64) { fired = tick })

	for i := 0; i < 3; i++ {
		s.Advance()
	}
	assert.Equal(t, uint64(503), s.Now())
	assert.Equal(t, uint64(503), fired)
}

func TestSchedulerEveryAndCancel(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(3, 7, "round", func(uint64) { count++ })
	s.After(5, 7, "once", func(uint64) { count += 100 })
	s.After(5, 8, "other", func(uint64) {})

	for i := 0; i < 6; i++ {
		s.Advance()
	}
	assert.Equal(t, 102, count)

	assert.Equal(t, 1, s.Cancel(7, ""))
	for i := 0; i < 6; i++ {
		s.Advance()
	}
	assert.Equal(t, 102, count)
	assert.Zero(t, s.Pending())
}

func TestSchedulerCancelFromInsideJob(t *testing.T) {
	s := NewScheduler()
	runs := 0
	s.Every(1, 4, "self", func(uint64) {
		runs++
		s.Cancel(4, "self")
	})
	s.Advance()
	s.Advance()
	assert.Equal(t, 1, runs)
}

func TestLoopAdvanceTickMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	w := world.New()
	l := NewLoop(w, WithMetrics(m))

	ran := 0
	l.Scheduler().Every(1, 1, "noop", func(uint64) { ran++ })
	for i := 0; i < 3; i++ {
		l.AdvanceTick(context.Background())
	}

	assert.Equal(t, 3, ran)
	assert.Equal(t, uint64(3), l.Now())
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ticks))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.jobs))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.nodes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pending))
}

func TestLoopRunAndDo(t *testing.T) {
	w := world.New()
	l := NewLoop(w)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, time.Millisecond) }()

	var id world.NodeID
	require.NoError(t, l.Do(ctx, func(w *world.World) error {
		n, err := w.CreateNamed(world.NoNode, "room")
		id = n.ID()
		return err
	}))
	assert.Eventually(t, func() bool {
		var now uint64
		_ = l.Do(ctx, func(*world.World) error { now = l.Now(); return nil })
		return now >= 3
	}, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.ErrorIs(t, l.Do(context.Background(), func(*world.World) error { return nil }), ErrStopped)
	assert.True(t, w.Exists(id))
}

func TestTrashFlushJob(t *testing.T) {
	w := world.New()
	l := NewLoop(w)
	n, err := w.Create(w.Trash())
	require.NoError(t, err)

	l.ScheduleTrashFlush(2)
	l.AdvanceTick(context.Background())
	assert.True(t, w.Exists(n.ID()))
	l.AdvanceTick(context.Background())
	assert.False(t, w.Exists(n.ID()))
}

func TestSnapshotJob(t *testing.T) {
	w := world.New()
	_, err := w.CreateNamed(world.NoNode, "room")
	require.NoError(t, err)

	codec, err := storage.NewCodec()
	require.NoError(t, err)
	defer codec.Close()
	snaps := storage.NewSnapshots(storage.NewMemoryStore(), codec)

	l := NewLoop(w)
	ctx := context.Background()
	s := l.ScheduleSnapshots(ctx, snaps, "world", 2)
	l.AdvanceTick(ctx)
	l.AdvanceTick(ctx)
	s.Wait()
	assert.Equal(t, uint64(2), s.LastSaved())

	restored, tick, err := snaps.Load(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), tick)
	assert.Equal(t, w.States(), restored.States())
}

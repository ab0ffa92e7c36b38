package engine

import (
	"context"
	"sync"

	"github.com/steaphangreene/acidmud-sub001/internal/storage"
)

// SystemOwner: владелец служебных задач цикла.
const SystemOwner uint64 = 0

// ScheduleTrashFlush раз в every тиков очищает корзину.
func (l *Loop) ScheduleTrashFlush(every uint64) {
	l.sched.Every(every, SystemOwner, "trash-flush", func(tick uint64) {
		if n := l.world.EmptyTrash(); n > 0 {
			l.log.Debug("🗑️ Корзина очищена на тике %d: %d узлов", tick, n)
		}
	})
}

// Snapshotter периодически сохраняет мир. Снимок снимается на потоке
// цикла, запись идёт в отдельной горутине; пока предыдущая запись не
// закончилась, новые снимки пропускаются.
type Snapshotter struct {
	loop  *Loop
	snaps *storage.Snapshots
	name  string

	mu     sync.Mutex
	busy   bool
	wg     sync.WaitGroup
	lastOK uint64
}

// ScheduleSnapshots раз в every тиков сохраняет мир под именем name.
func (l *Loop) ScheduleSnapshots(ctx context.Context, snaps *storage.Snapshots, name string, every uint64) *Snapshotter {
	s := &Snapshotter{loop: l, snaps: snaps, name: name}
	l.sched.Every(every, SystemOwner, "snapshot", func(tick uint64) {
		s.trigger(ctx, tick)
	})
	return s
}

func (s *Snapshotter) trigger(ctx context.Context, tick uint64) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		s.loop.log.Warn("⚠️ Снимок на тике %d пропущен: предыдущий ещё пишется", tick)
		return
	}
	s.busy = true
	s.mu.Unlock()

	snap := storage.Capture(s.loop.world, tick)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.snaps.Save(ctx, s.name, snap)
		s.mu.Lock()
		s.busy = false
		if err == nil {
			s.lastOK = tick
		}
		s.mu.Unlock()
		if err != nil {
			s.loop.log.Error("❌ Не удалось сохранить снимок: %v", err)
		}
	}()
}

// Wait ждёт окончания текущей записи.
func (s *Snapshotter) Wait() { s.wg.Wait() }

// LastSaved: тик последнего успешно сохранённого снимка.
func (s *Snapshotter) LastSaved() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOK
}

package eventbus

import (
	"context"
	"sync/atomic"

	"github.com/steaphangreene/acidmud-sub001/internal/logging"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

// ChangePayload: полезная нагрузка WorldChange.
type ChangePayload struct {
	Kind  string `json:"kind"`
	Node  uint64 `json:"node"`
	Other uint64 `json:"other,omitempty"`
	From  uint64 `json:"from,omitempty"`
	To    uint64 `json:"to,omitempty"`
}

// CombatPayload: полезная нагрузка CombatMessage.
type CombatPayload struct {
	Message string `json:"message"`
}

// Forwarder переносит изменения мира и сообщения боя в шину. Методы-приёмники
// вызываются на потоке цикла и не блокируются: события копятся в очереди,
// а Run публикует их из своей горутины. При переполнении очереди события
// отбрасываются.
type Forwarder struct {
	bus     EventBus
	source  string
	clock   func() uint64
	queue   chan *Envelope
	dropped atomic.Uint64
	log     *logging.Logger
}

// NewForwarder создаёт пересыльщик. clock возвращает текущий тик мира.
func NewForwarder(bus EventBus, source string, clock func() uint64, buffer int) *Forwarder {
	if buffer <= 0 {
		buffer = 256
	}
	return &Forwarder{
		bus:    bus,
		source: source,
		clock:  clock,
		queue:  make(chan *Envelope, buffer),
		log:    logging.GetComponentLogger("eventbus"),
	}
}

// WorldChange подходит для world.World.OnChange.
func (f *Forwarder) WorldChange(c world.Change) {
	f.enqueue(TypeWorldChange, 1, ChangePayload{
		Kind:  c.Kind.String(),
		Node:  uint64(c.Node),
		Other: uint64(c.Other),
		From:  uint64(c.From),
		To:    uint64(c.To),
	})
}

// Report реализует combat.Reporter.
func (f *Forwarder) Report(msg string) {
	f.enqueue(TypeCombatMessage, 3, CombatPayload{Message: msg})
}

// Dropped: сколько событий не поместилось в очередь.
func (f *Forwarder) Dropped() uint64 { return f.dropped.Load() }

func (f *Forwarder) enqueue(eventType string, prio int, payload interface{}) {
	ev, err := NewEnvelope(eventType, f.source, f.clock(), payload)
	if err != nil {
		f.log.Error("❌ %v", err)
		return
	}
	ev.Priority = prio
	select {
	case f.queue <- ev:
	default:
		f.dropped.Add(1)
	}
}

// Run публикует накопленные события до отмены ctx, затем дописывает
// остаток очереди.
func (f *Forwarder) Run(ctx context.Context) {
	for {
		select {
		case ev := <-f.queue:
			f.publish(ctx, ev)
		case <-ctx.Done():
			for {
				select {
				case ev := <-f.queue:
					f.publish(context.Background(), ev)
				default:
					return
				}
			}
		}
	}
}

func (f *Forwarder) publish(ctx context.Context, ev *Envelope) {
	if err := f.bus.Publish(ctx, ev); err != nil {
		f.log.Warn("⚠️ Публикация %s не удалась: %v", ev.EventType, err)
	}
}

package eventbus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/steaphangreene/acidmud-sub001/internal/logging"
)

// StartLoggingListener подписывается на все события и пишет их в лог
// компонента "eventbus". Функция неблокирующая.
func StartLoggingListener(bus EventBus) (Subscription, error) {
	log := logging.GetComponentLogger("eventbus")
	sub, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		log.WithFields(logrus.Fields{
			"id":    ev.ID,
			"type":  ev.EventType,
			"src":   ev.Source,
			"tick":  ev.Tick,
			"bytes": len(ev.Payload),
		}).Debug("[EventBus] %s", ev.EventType)
	})
	if err != nil {
		return nil, err
	}
	log.Info("🪵 LoggingListener: подписка на все события активирована")
	return sub, nil
}

// Package combat реализует пошаговый бой поверх графа связей: FIGHT, WIELD, HOLD.
// Один вызов Round: один проход по всем участникам; весь проход
// выполняется в пределах одного тика.
package combat

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/steaphangreene/acidmud-sub001/internal/engine"
	"github.com/steaphangreene/acidmud-sub001/internal/logging"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

var (
	ErrIncapacitated = errors.New("combat: participant is incapacitated")
	ErrNotColocated  = errors.New("combat: participants are not in the same place")
)

// Dice: источник случайности; *rand.Rand подходит.
type Dice interface {
	Intn(n int) int
}

// Reporter получает сообщения раунда по порядку.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc позволяет использовать функцию как Reporter.
type ReporterFunc func(msg string)

func (f ReporterFunc) Report(msg string) { f(msg) }

// Config: параметры боя.
type Config struct {
	RoundTicks uint64 // раунд раз в столько тиков
	MortalBase int32  // смертельный порог = MortalBase + Body
}

// DefaultConfig возвращает параметры по умолчанию.
func DefaultConfig() Config {
	return Config{RoundTicks: 30, MortalBase: 10}
}

// Engine: движок боя.
type Engine struct {
	world  *world.World
	dice   Dice
	report Reporter
	cfg    Config
	log    *logging.Logger
}

// New создаёт движок. report может быть nil.
func New(w *world.World, dice Dice, report Reporter, cfg Config) *Engine {
	if cfg.RoundTicks == 0 {
		cfg.RoundTicks = DefaultConfig().RoundTicks
	}
	if cfg.MortalBase == 0 {
		cfg.MortalBase = DefaultConfig().MortalBase
	}
	if report == nil {
		report = ReporterFunc(func(string) {})
	}
	return &Engine{world: w, dice: dice, report: report, cfg: cfg, log: logging.GetCombatLogger()}
}

// Attach регистрирует раунд в планировщике: раз в RoundTicks тиков.
func (e *Engine) Attach(s *engine.Scheduler) {
	s.Every(e.cfg.RoundTicks, engine.SystemOwner, "combat-round", func(tick uint64) {
		if n := e.Round(); n > 0 {
			e.log.WithFields(logrus.Fields{"tick": tick, "attacks": n}).Debug("раунд боя")
		}
	})
}

// Defeated: участник выведен из боя (умирает, мёртв или без сознания).
func (e *Engine) Defeated(id world.NodeID) bool {
	n := e.world.Get(id)
	return n == nil || n.IsAct(world.ActDying) || n.IsAct(world.ActDead) || n.IsAct(world.ActUnconscious)
}

// Engage начинает бой: attacker получает FIGHT на defender, а defender, если
// ни с кем не дерётся, отвечает тем же.
func (e *Engine) Engage(attacker, defender world.NodeID) error {
	if e.Defeated(attacker) || e.Defeated(defender) {
		if !e.world.Exists(attacker) || !e.world.Exists(defender) {
			return fmt.Errorf("engage %d → %d: %w", attacker, defender, world.ErrNoNode)
		}
		return fmt.Errorf("engage %d → %d: %w", attacker, defender, ErrIncapacitated)
	}
	if !e.world.Colocated(attacker, defender) {
		return fmt.Errorf("engage %d → %d: %w", attacker, defender, ErrNotColocated)
	}
	if err := e.world.AddAct(attacker, world.ActFight, defender); err != nil {
		return err
	}
	if !e.world.IsAct(defender, world.ActFight) {
		return e.world.AddAct(defender, world.ActFight, attacker)
	}
	return nil
}

// Disengage прекращает бой участника (только его сторону).
func (e *Engine) Disengage(id world.NodeID) error {
	return e.world.StopAct(id, world.ActFight)
}

// Fighting возвращает участников боя по возрастанию идентификатора.
func (e *Engine) Fighting() []world.NodeID {
	var out []world.NodeID
	e.world.Each(func(n *world.Node) bool {
		if n.IsAct(world.ActFight) {
			out = append(out, n.ID())
		}
		return true
	})
	return out
}

func (e *Engine) name(id world.NodeID) string {
	if n := e.world.Get(id); n != nil && n.Short() != "" {
		return n.Short()
	}
	return fmt.Sprintf("#%d", id)
}

func (e *Engine) say(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	e.log.Trace("%s", msg)
	e.report.Report(msg)
}

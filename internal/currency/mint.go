package currency

import (
	"errors"
	"fmt"

	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

// ErrNoDenomination: в шаблонах нет монеты такого номинала.
var ErrNoDenomination = errors.New("currency: no such denomination")

// Denomination: номинал монеты.
type Denomination struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// Template ищет шаблон монеты заданного номинала.
func Template(w *world.World, value int64) world.NodeID {
	for _, id := range w.Get(w.Templates()).Children() {
		if int64(w.Get(id).Skill(skills.Money)) == value {
			return id
		}
	}
	return world.NoNode
}

// InstallDenominations создаёт шаблоны монет, которых ещё нет.
func InstallDenominations(w *world.World, ds []Denomination) error {
	for _, d := range ds {
		if d.Value <= 0 || d.Value > int64(^uint32(0)>>1) {
			return fmt.Errorf("denomination %q: bad value %d", d.Name, d.Value)
		}
		if Template(w, d.Value) != world.NoNode {
			continue
		}
		n, err := w.CreateNamed(w.Templates(), d.Name)
		if err != nil {
			return err
		}
		n.SetSkill(skills.Money, int32(d.Value))
	}
	return nil
}

// Mint кладёт в parent qty монет номинала value и сливает их с уже
// лежащей там стопкой, если она есть. Возвращает итоговую стопку.
func Mint(w *world.World, parent world.NodeID, value int64, qty int) (world.NodeID, error) {
	tpl := Template(w, value)
	if tpl == world.NoNode {
		return world.NoNode, fmt.Errorf("mint %d: %w", value, ErrNoDenomination)
	}
	n, err := w.Clone(tpl, parent)
	if err != nil {
		return world.NoNode, err
	}
	if err := n.SetQuantity(qty); err != nil {
		_ = w.DestroyWith(n.ID(), world.Recursive)
		return world.NoNode, err
	}
	id, _ := w.TryCombine(n.ID())
	return id, nil
}

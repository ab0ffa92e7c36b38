package world

import "fmt"

// stackable: узел может участвовать в слиянии: нет детей и связей.
func (w *World) stackable(n *Node) bool {
	return n.children.Len() == 0 && n.acts.Len() == 0 && n.touching.Len() == 0
}

// Fungible сообщает, можно ли слить два узла в одну стопку: общий родитель,
// одинаковые короткие идентификаторы и свойства, оба без детей и связей.
func (w *World) Fungible(a, b NodeID) bool {
	na, nb := w.Get(a), w.Get(b)
	if na == nil || nb == nil || a == b {
		return false
	}
	return na.parent == nb.parent &&
		na.short == nb.short &&
		w.stackable(na) && w.stackable(nb) &&
		na.skills.Equal(&nb.skills)
}

// Split отделяет k единиц стопки в новый соседний узел и возвращает его.
// При k == Quantity новый узел забирает всё, а источник уходит в корзину:
// после этого id больше нельзя считать действительной стопкой.
func (w *World) Split(id NodeID, k int) (*Node, error) {
	n := w.Get(id)
	if n == nil {
		return nil, fmt.Errorf("split %d: %w", id, ErrNoNode)
	}
	if w.protected(id) {
		return nil, fmt.Errorf("split %d: %w", id, ErrProtected)
	}
	if n.children.Len() > 0 {
		return nil, fmt.Errorf("split %d: %w", id, ErrNotFungible)
	}
	if k <= 0 || k > n.quantity {
		return nil, fmt.Errorf("split %d of %d: %w", k, n.quantity, ErrQuantity)
	}

	part, err := w.Clone(id, n.parent)
	if err != nil {
		return nil, err
	}
	part.quantity = k
	if k == n.quantity {
		_ = w.Release(id)
		_ = w.StopAll(id)
		w.move(n, w.trash)
	} else {
		n.quantity -= k
	}
	w.emit(Change{Kind: SplitOff, Node: part.id, Other: id})
	return part, nil
}

// TryCombine ищет среди соседей первую совместимую стопку и вливает в неё
// id. Донор уходит в корзину. Возвращает оставшийся узел и признак слияния;
// без слияния возвращается сам id.
func (w *World) TryCombine(id NodeID) (NodeID, bool) {
	n := w.Get(id)
	if n == nil {
		return NoNode, false
	}
	p := w.Get(n.parent)
	if p == nil || n.parent == w.trash {
		return id, false
	}
	for _, sib := range p.children.Slice() {
		if !w.Fungible(sib, id) {
			continue
		}
		s := w.Get(sib)
		s.quantity += n.quantity
		w.move(n, w.trash)
		w.log.Trace("стопка %d влита в %d (итого %d)", id, sib, s.quantity)
		w.emit(Change{Kind: Merged, Node: sib, Other: id})
		return sib, true
	}
	return id, false
}

package world

import "fmt"

// AddAct добавляет связь id --a--> target. Для однозначных ролей прежняя
// цель заменяется. Если у роли есть парная, цель получает обратную связь.
// target может быть NoNode для ролей-флагов (DEAD, SLEEP...).
func (w *World) AddAct(id NodeID, a Act, target NodeID) error {
	n := w.Get(id)
	if n == nil {
		return fmt.Errorf("add %s on %d: %w", a, id, ErrNoNode)
	}
	if !a.Valid() {
		return fmt.Errorf("add act on %d: %w", id, ErrBadAct)
	}
	if target == id {
		return fmt.Errorf("add %s on %d: %w", a, id, ErrSelfTarget)
	}
	t := w.Get(target)
	if target != NoNode && t == nil {
		return fmt.Errorf("add %s on %d to %d: %w", a, id, target, ErrNoNode)
	}
	if n.hasEdge(a, target) {
		return nil
	}
	if !a.Multi() {
		for _, e := range n.Acts() {
			if e.Act == a {
				w.stopEdge(n, e)
			}
		}
	}
	n.acts.Append(Edge{Act: a, Target: target})
	if t != nil {
		t.touching.Append(id)
		if r := a.Reciprocal(); r != ActNone {
			return w.AddAct(target, r, id)
		}
	}
	return nil
}

// stopEdge снимает одну связь и, если она парная, её отражение.
func (w *World) stopEdge(n *Node, e Edge) {
	i := n.acts.Index(e)
	if i < 0 {
		return
	}
	n.acts.Delete(i)
	t := w.Get(e.Target)
	if t == nil {
		return
	}
	if j := t.touching.Index(n.id); j >= 0 {
		t.touching.Delete(j)
	}
	if r := e.Act.Reciprocal(); r != ActNone {
		w.stopEdge(t, Edge{Act: r, Target: n.id})
	}
}

// StopAct снимает все связи роли a.
func (w *World) StopAct(id NodeID, a Act) error {
	n := w.Get(id)
	if n == nil {
		return fmt.Errorf("stop %s on %d: %w", a, id, ErrNoNode)
	}
	for _, e := range n.Acts() {
		if e.Act == a {
			w.stopEdge(n, e)
		}
	}
	return nil
}

// StopActOn снимает одну связь роли a на target.
func (w *World) StopActOn(id NodeID, a Act, target NodeID) error {
	n := w.Get(id)
	if n == nil {
		return fmt.Errorf("stop %s on %d: %w", a, id, ErrNoNode)
	}
	w.stopEdge(n, Edge{Act: a, Target: target})
	return nil
}

// StopAll снимает все исходящие связи узла.
func (w *World) StopAll(id NodeID) error {
	n := w.Get(id)
	if n == nil {
		return fmt.Errorf("stop all on %d: %w", id, ErrNoNode)
	}
	for _, e := range n.Acts() {
		w.stopEdge(n, e)
	}
	return nil
}

// Release снимает все связи других узлов, указывающие на id.
func (w *World) Release(id NodeID) error {
	if !w.Exists(id) {
		return fmt.Errorf("release %d: %w", id, ErrNoNode)
	}
	for _, src := range w.Touching(id) {
		s := w.Get(src)
		if s == nil {
			continue
		}
		for _, e := range s.Acts() {
			if e.Target == id {
				w.stopEdge(s, e)
			}
		}
	}
	return nil
}

// Touching возвращает узлы, у которых есть хотя бы одна связь на id, без
// повторов и в порядке появления связей.
func (w *World) Touching(id NodeID) []NodeID {
	n := w.Get(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	seen := make(map[NodeID]struct{}, n.touching.Len())
	for _, src := range n.touching.Slice() {
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		out = append(out, src)
	}
	return out
}

// IsAct, ActTarg и ActTargets дублируют методы Node для вызова по id.
func (w *World) IsAct(id NodeID, a Act) bool {
	n := w.Get(id)
	return n != nil && n.IsAct(a)
}

func (w *World) ActTarg(id NodeID, a Act) NodeID {
	if n := w.Get(id); n != nil {
		return n.ActTarg(a)
	}
	return NoNode
}

func (w *World) ActTargets(id NodeID, a Act) []NodeID {
	if n := w.Get(id); n != nil {
		return n.ActTargets(a)
	}
	return nil
}

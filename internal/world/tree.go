package world

import "fmt"

// Create создаёт узел внутри parent (NoNode, корень).
func (w *World) Create(parent NodeID) (*Node, error) {
	if parent != NoNode && !w.Exists(parent) {
		return nil, fmt.Errorf("create in %d: %w", parent, ErrNoNode)
	}
	n := w.alloc()
	w.attach(n, parent)
	w.emit(Change{Kind: Created, Node: n.id, To: parent})
	return n, nil
}

// CreateNamed: Create с заданным коротким идентификатором.
func (w *World) CreateNamed(parent NodeID, short string) (*Node, error) {
	n, err := w.Create(parent)
	if err != nil {
		return nil, err
	}
	n.short = short
	return n, nil
}

// Clone создаёт копию src внутри parent: идентификатор, количество, позу и
// свойства. Дети и связи не копируются.
func (w *World) Clone(src, parent NodeID) (*Node, error) {
	s := w.Get(src)
	if s == nil {
		return nil, fmt.Errorf("clone %d: %w", src, ErrNoNode)
	}
	n, err := w.Create(parent)
	if err != nil {
		return nil, err
	}
	n.short = s.short
	n.quantity = s.quantity
	n.pos = s.pos
	n.skills = s.skills.Clone()
	return n, nil
}

func (w *World) attach(n *Node, parent NodeID) {
	n.parent = parent
	if p := w.Get(parent); p != nil {
		p.children.Append(n.id)
	}
}

func (w *World) detach(n *Node) {
	if p := w.Get(n.parent); p != nil {
		if i := p.children.Index(n.id); i >= 0 {
			p.children.Delete(i)
		}
	}
	n.parent = NoNode
}

// Travel переносит узел в dest (NoNode, сделать корнем). Связи узла не
// трогаются, даже если цель больше не рядом.
func (w *World) Travel(id, dest NodeID) error {
	n := w.Get(id)
	if n == nil {
		return fmt.Errorf("travel %d: %w", id, ErrNoNode)
	}
	if w.protected(id) {
		return fmt.Errorf("travel %d: %w", id, ErrProtected)
	}
	if dest != NoNode {
		if !w.Exists(dest) {
			return fmt.Errorf("travel %d to %d: %w", id, dest, ErrNoNode)
		}
		if dest == id || w.Descends(dest, id) {
			return fmt.Errorf("travel %d to %d: %w", id, dest, ErrCycle)
		}
	}
	from := n.parent
	if from == dest {
		return nil
	}
	w.detach(n)
	w.attach(n, dest)
	w.emit(Change{Kind: Moved, Node: id, From: from, To: dest})
	return nil
}

// Drop переносит узел на уровень выше, к родителю его родителя.
func (w *World) Drop(id NodeID) error {
	n := w.Get(id)
	if n == nil {
		return fmt.Errorf("drop %d: %w", id, ErrNoNode)
	}
	p := w.Get(n.parent)
	if p == nil || p.parent == NoNode {
		return fmt.Errorf("drop %d: %w", id, ErrRoot)
	}
	return w.Travel(id, p.parent)
}

// Descends сообщает, лежит ли id (на любой глубине) внутри ancestor.
func (w *World) Descends(id, ancestor NodeID) bool {
	n := w.Get(id)
	for n != nil && n.parent != NoNode {
		if n.parent == ancestor {
			return true
		}
		n = w.Get(n.parent)
	}
	return false
}

// Colocated: у узлов общий родитель.
func (w *World) Colocated(a, b NodeID) bool {
	na, nb := w.Get(a), w.Get(b)
	return na != nil && nb != nil && na.parent != NoNode && na.parent == nb.parent
}

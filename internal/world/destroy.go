package world

import "fmt"

// Disposition: что делать с детьми уничтожаемого узла.
type Disposition uint8

const (
	// ToTrash переносит детей в корзину.
	ToTrash Disposition = iota
	// ToParent переносит детей к родителю уничтожаемого узла.
	ToParent
	// Recursive уничтожает детей вместе с узлом.
	Recursive
)

// Destroy уничтожает узел, перенося детей в корзину.
func (w *World) Destroy(id NodeID) error {
	return w.DestroyWith(id, ToTrash)
}

// DestroyWith уничтожает узел. Порядок:
//  1. запоминаются партнёры по связям с CascadeDestroy (в обе стороны);
//  2. снимаются все входящие и исходящие связи;
//  3. дети обрабатываются согласно d;
//  4. узел удаляется из арены;
//  5. партнёры из п.1, если ещё живы, уничтожаются так же.
func (w *World) DestroyWith(id NodeID, d Disposition) error {
	n := w.Get(id)
	if n == nil {
		return fmt.Errorf("destroy %d: %w", id, ErrNoNode)
	}
	if w.protected(id) {
		return fmt.Errorf("destroy %d: %w", id, ErrProtected)
	}

	partners := w.cascadePartners(n)

	_ = w.Release(id)
	for _, e := range n.Acts() {
		w.stopEdge(n, e)
	}

	for _, c := range n.Children() {
		child := w.Get(c)
		if child == nil {
			continue
		}
		switch d {
		case Recursive:
			if err := w.DestroyWith(c, Recursive); err != nil {
				return err
			}
		case ToParent:
			w.move(child, n.parent)
		default:
			w.move(child, w.trash)
		}
	}

	from := n.parent
	w.detach(n)
	delete(w.nodes, id)
	w.log.Trace("узел %d уничтожен (партнёров: %d)", id, len(partners))
	w.emit(Change{Kind: Destroyed, Node: id, From: from})

	for _, p := range partners {
		if !w.Exists(p) || w.protected(p) {
			continue
		}
		if err := w.DestroyWith(p, d); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) cascadePartners(n *Node) []NodeID {
	var out []NodeID
	add := func(id NodeID) {
		for _, x := range out {
			if x == id {
				return
			}
		}
		out = append(out, id)
	}
	for _, e := range n.acts.Slice() {
		if e.Target != NoNode && e.Act.Cascade() == CascadeDestroy {
			add(e.Target)
		}
	}
	for _, src := range w.Touching(n.id) {
		s := w.Get(src)
		for _, e := range s.acts.Slice() {
			if e.Target == n.id && e.Act.Cascade() == CascadeDestroy {
				add(src)
			}
		}
	}
	return out
}

// move: перенос без проверок циклов, для уже согласованного дерева.
func (w *World) move(n *Node, dest NodeID) {
	from := n.parent
	w.detach(n)
	w.attach(n, dest)
	w.emit(Change{Kind: Moved, Node: n.id, From: from, To: dest})
}

// EmptyTrash уничтожает всё содержимое корзины и возвращает число
// уничтоженных узлов верхнего уровня.
func (w *World) EmptyTrash() int {
	t := w.Get(w.trash)
	count := 0
	for _, c := range t.Children() {
		if !w.Exists(c) {
			continue
		}
		if err := w.DestroyWith(c, Recursive); err == nil {
			count++
		}
	}
	return count
}

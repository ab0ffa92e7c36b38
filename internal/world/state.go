package world

import (
	"fmt"

	"github.com/steaphangreene/acidmud-sub001/internal/logging"
	"github.com/steaphangreene/acidmud-sub001/internal/skills"
)

// NodeState: плоское представление узла для сохранения.
type NodeState struct {
	ID       NodeID
	Parent   NodeID
	Children []NodeID
	Short    string
	Quantity int
	Position Position
	Skills   []skills.Pair
	Acts     []Edge
}

// State возвращает снимок одного узла.
func (w *World) State(id NodeID) (NodeState, bool) {
	n := w.Get(id)
	if n == nil {
		return NodeState{}, false
	}
	return NodeState{
		ID:       n.id,
		Parent:   n.parent,
		Children: n.Children(),
		Short:    n.short,
		Quantity: n.quantity,
		Position: n.pos,
		Skills:   n.Skills(),
		Acts:     n.Acts(),
	}, true
}

// States возвращает снимки всех узлов по возрастанию идентификатора.
func (w *World) States() []NodeState {
	out := make([]NodeState, 0, len(w.nodes))
	for _, id := range w.IDs() {
		s, _ := w.State(id)
		out = append(out, s)
	}
	return out
}

// NextID: идентификатор, который получит следующий созданный узел.
func (w *World) NextID() NodeID { return w.next }

// Rebuild восстанавливает мир из снимков. Связи вставляются как есть, без
// автоматического добавления парных: снимок уже содержит обе стороны.
func Rebuild(states []NodeState, trash, templates NodeID) (*World, error) {
	w := &World{
		nodes:     make(map[NodeID]*Node, len(states)),
		next:      1,
		trash:     trash,
		templates: templates,
		log:       logging.GetWorldLogger(),
	}
	for _, s := range states {
		if s.ID == NoNode {
			return nil, fmt.Errorf("rebuild: zero node id")
		}
		if _, dup := w.nodes[s.ID]; dup {
			return nil, fmt.Errorf("rebuild: duplicate node %d", s.ID)
		}
		n := newNode(s.ID)
		n.short = s.Short
		n.pos = s.Position
		if err := n.SetQuantity(s.Quantity); err != nil {
			return nil, fmt.Errorf("rebuild node %d: %w", s.ID, err)
		}
		for _, p := range s.Skills {
			n.skills.Set(p.Key, p.Value)
		}
		w.nodes[s.ID] = n
		if s.ID >= w.next {
			w.next = s.ID + 1
		}
	}

	for _, id := range []NodeID{trash, templates} {
		n := w.Get(id)
		if n == nil {
			return nil, fmt.Errorf("rebuild: well-known node %d: %w", id, ErrNoNode)
		}
	}

	for _, s := range states {
		n := w.nodes[s.ID]
		for _, c := range s.Children {
			child := w.Get(c)
			if child == nil {
				return nil, fmt.Errorf("rebuild: child %d of %d: %w", c, s.ID, ErrNoNode)
			}
			if child.parent != NoNode {
				return nil, fmt.Errorf("rebuild: node %d has two parents", c)
			}
			child.parent = s.ID
			n.children.Append(c)
		}
	}
	for _, s := range states {
		if w.nodes[s.ID].parent != s.Parent {
			return nil, fmt.Errorf("rebuild: node %d parent mismatch", s.ID)
		}
		if w.cyclic(s.ID) {
			return nil, fmt.Errorf("rebuild: node %d: %w", s.ID, ErrCycle)
		}
	}
	for _, id := range []NodeID{trash, templates} {
		if w.nodes[id].parent != NoNode {
			return nil, fmt.Errorf("rebuild: well-known node %d is not a root", id)
		}
	}

	for _, s := range states {
		n := w.nodes[s.ID]
		for _, e := range s.Acts {
			if !e.Act.Valid() {
				return nil, fmt.Errorf("rebuild node %d: %w", s.ID, ErrBadAct)
			}
			n.acts.Append(e)
			if e.Target == NoNode {
				continue
			}
			t := w.Get(e.Target)
			if t == nil {
				return nil, fmt.Errorf("rebuild: %s target %d of %d: %w", e.Act, e.Target, s.ID, ErrNoNode)
			}
			t.touching.Append(s.ID)
		}
	}
	return w, nil
}

// cyclic проходит вверх не больше len(nodes) шагов: дольше только по кругу.
func (w *World) cyclic(id NodeID) bool {
	n := w.Get(id)
	for steps := 0; n != nil && n.parent != NoNode; steps++ {
		if steps > len(w.nodes) {
			return true
		}
		n = w.Get(n.parent)
	}
	return false
}

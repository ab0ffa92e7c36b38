// Package world хранит граф сущностей живого мира: арена узлов, дерево вложения,
// слабые ролевые связи между узлами, каскадное удаление и стопки.
//
// World не потокобезопасен: все изменения выполняются из одного логического
// потока (см. engine.Loop).
package world

import (
	"sort"

	"github.com/steaphangreene/acidmud-sub001/internal/logging"
)

// World владеет всеми узлами и двумя служебными корнями: корзиной и
// шаблонами.
type World struct {
	nodes     map[NodeID]*Node
	next      NodeID
	trash     NodeID
	templates NodeID
	hooks     []func(Change)
	log       *logging.Logger
}

// New создаёт пустой мир с корзиной и корнем шаблонов.
func New() *World {
	w := &World{
		nodes: make(map[NodeID]*Node),
		next:  1,
		log:   logging.GetWorldLogger(),
	}
	w.trash = w.alloc().id
	w.nodes[w.trash].short = "trash"
	w.templates = w.alloc().id
	w.nodes[w.templates].short = "templates"
	return w
}

func (w *World) alloc() *Node {
	n := newNode(w.next)
	w.next++
	w.nodes[n.id] = n
	return n
}

// Trash: узел-корзина, куда уходят отсоединённые и слитые узлы.
func (w *World) Trash() NodeID { return w.trash }

// Templates: корень узлов-прототипов (например, монет).
func (w *World) Templates() NodeID { return w.templates }

// Get возвращает узел или nil.
func (w *World) Get(id NodeID) *Node {
	if id == NoNode {
		return nil
	}
	return w.nodes[id]
}

func (w *World) Exists(id NodeID) bool { return w.Get(id) != nil }

// Len: число живых узлов, включая служебные.
func (w *World) Len() int { return len(w.nodes) }

func (w *World) protected(id NodeID) bool {
	return id == w.trash || id == w.templates
}

// IDs возвращает идентификаторы всех узлов по возрастанию.
func (w *World) IDs() []NodeID {
	ids := make([]NodeID, 0, len(w.nodes))
	for id := range w.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each обходит узлы по возрастанию идентификатора, пока fn возвращает true.
// Изменять мир внутри fn можно: удалённые по ходу узлы пропускаются.
func (w *World) Each(fn func(*Node) bool) {
	for _, id := range w.IDs() {
		n := w.nodes[id]
		if n == nil {
			continue
		}
		if !fn(n) {
			return
		}
	}
}

// Roots возвращает узлы без родителя.
func (w *World) Roots() []NodeID {
	var out []NodeID
	for _, id := range w.IDs() {
		if w.nodes[id].parent == NoNode {
			out = append(out, id)
		}
	}
	return out
}

package world

// ChangeKind: вид изменения структуры мира.
type ChangeKind uint8

const (
	Created ChangeKind = iota + 1
	Destroyed
	Moved
	Merged
	SplitOff
)

func (k ChangeKind) String() string {
	switch k {
	case Created:
		return "created"
	case Destroyed:
		return "destroyed"
	case Moved:
		return "moved"
	case Merged:
		return "merged"
	case SplitOff:
		return "split"
	default:
		return "unknown"
	}
}

// Change описывает одно изменение.
//
//	Created:   Node, To = родитель
//	Destroyed: Node, From = бывший родитель
//	Moved:     Node, From, To
//	Merged:    Node = оставшаяся стопка, Other = донор
//	SplitOff:  Node = новая стопка, Other = источник
type Change struct {
	Kind  ChangeKind
	Node  NodeID
	Other NodeID
	From  NodeID
	To    NodeID
}

// OnChange регистрирует обработчик изменений. Обработчики вызываются
// синхронно, в порядке регистрации, и не должны менять мир.
func (w *World) OnChange(fn func(Change)) {
	w.hooks = append(w.hooks, fn)
}

func (w *World) emit(c Change) {
	for _, fn := range w.hooks {
		fn(c)
	}
}

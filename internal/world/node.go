package world

import (
	"fmt"
	"strings"

	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/smallvec"
)

// NodeID: слабая ссылка на узел в арене мира.
type NodeID uint64

// NoNode: отсутствие узла (корень без родителя, флаг без цели).
const NoNode NodeID = 0

// Position: поза существа.
type Position uint8

const (
	PosNone Position = iota
	PosLie
	PosSit
	PosStand
	PosUse
)

var positionNames = [...]string{"NONE", "LIE", "SIT", "STAND", "USE"}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

// ParsePosition: обратное к String.
func ParsePosition(s string) (Position, error) {
	for i, n := range positionNames {
		if strings.EqualFold(n, s) {
			return Position(i), nil
		}
	}
	return PosNone, fmt.Errorf("unknown position %q", s)
}

// Edge: исходящая связь: роль и цель.
type Edge struct {
	Act    Act
	Target NodeID
}

type (
	idList   = smallvec.Vec[NodeID, smallvec.Inline3[NodeID], *smallvec.Inline3[NodeID]]
	edgeList = smallvec.Vec[Edge, smallvec.Inline3[Edge], *smallvec.Inline3[Edge]]
)

// Node: единственный вид объекта в мире. Узлы живут в арене World и
// адресуются по NodeID; указатель на Node действителен, пока узел не уничтожен.
type Node struct {
	id       NodeID
	parent   NodeID
	children idList
	acts     edgeList
	touching idList // по одной записи на каждую входящую связь
	skills   skills.Table
	short    string
	quantity int
	pos      Position
}

func newNode(id NodeID) *Node {
	return &Node{id: id, quantity: 1}
}

func (n *Node) ID() NodeID { return n.id }
func (n *Node) Parent() NodeID { return n.parent }

// Children возвращает копию списка детей в порядке вложения.
func (n *Node) Children() []NodeID {
	return append([]NodeID(nil), n.children.Slice()...)
}

func (n *Node) NumChildren() int { return n.children.Len() }

// Short: короткий идентификатор, по которому сравниваются стопки.
func (n *Node) Short() string { return n.short }
func (n *Node) SetShort(s string) { n.short = s }

func (n *Node) Quantity() int { return n.quantity }

// SetQuantity задаёт размер стопки; меньше 1 нельзя.
func (n *Node) SetQuantity(q int) error {
	if q < 1 {
		return fmt.Errorf("%w: %d", ErrQuantity, q)
	}
	n.quantity = q
	return nil
}

func (n *Node) Position() Position { return n.pos }
func (n *Node) SetPosition(p Position) { n.pos = p }

// Skill возвращает значение свойства; отсутствующее свойство равно нулю.
func (n *Node) Skill(k skills.Skill) int32 { return n.skills.Get(k) }
func (n *Node) HasSkill(k skills.Skill) bool { return n.skills.Has(k) }
func (n *Node) SetSkill(k skills.Skill, v int32) { n.skills.Set(k, v) }
func (n *Node) ClearSkill(k skills.Skill) { n.skills.Clear(k) }
func (n *Node) AddSkill(k skills.Skill, d int32) int32 { return n.skills.Add(k, d) }

// Skills возвращает копию всех ненулевых свойств по возрастанию ключа.
func (n *Node) Skills() []skills.Pair { return n.skills.Pairs() }

// IsAct: есть ли у узла хотя бы одна связь с ролью a.
func (n *Node) IsAct(a Act) bool {
	for _, e := range n.acts.Slice() {
		if e.Act == a {
			return true
		}
	}
	return false
}

// ActTarg возвращает первую (или единственную) цель роли a.
func (n *Node) ActTarg(a Act) NodeID {
	for _, e := range n.acts.Slice() {
		if e.Act == a {
			return e.Target
		}
	}
	return NoNode
}

// ActTargets возвращает все цели роли a.
func (n *Node) ActTargets(a Act) []NodeID {
	var out []NodeID
	for _, e := range n.acts.Slice() {
		if e.Act == a {
			out = append(out, e.Target)
		}
	}
	return out
}

// Acts возвращает копию всех исходящих связей.
func (n *Node) Acts() []Edge {
	return append([]Edge(nil), n.acts.Slice()...)
}

func (n *Node) hasEdge(a Act, target NodeID) bool {
	return n.acts.Contains(Edge{Act: a, Target: target})
}

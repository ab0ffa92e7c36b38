package world

import "errors"

// Ошибки графа сущностей. Оборачиваются через fmt.Errorf("...: %w") и
// проверяются errors.Is.
var (
	ErrNoNode      = errors.New("world: no such node")
	ErrCycle       = errors.New("world: containment cycle")
	ErrRoot        = errors.New("world: node has no parent")
	ErrProtected   = errors.New("world: well-known node cannot be moved or destroyed")
	ErrQuantity    = errors.New("world: invalid quantity")
	ErrNotFungible = errors.New("world: node is not a fungible stack")
	ErrSelfTarget  = errors.New("world: act cannot target its own node")
	ErrBadAct      = errors.New("world: invalid act")
)

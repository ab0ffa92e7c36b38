package storage

import (
	"fmt"
	"sort"

	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

// SnapshotVersion: версия формата снимка.
const SnapshotVersion = 1

// Snapshot: полный снимок мира. Свойства сохраняются по зарегистрированным
// именам, связи: по имени роли и идентификатору цели.
type Snapshot struct {
	Version   int          `json:"version"`
	Tick      uint64       `json:"tick"`
	Trash     uint64       `json:"trash"`
	Templates uint64       `json:"templates"`
	Nodes     []NodeRecord `json:"nodes"`
}

// NodeRecord содержит данные одного узла
type NodeRecord struct {
	ID       uint64           `json:"id"`
	Parent   uint64           `json:"parent,omitempty"`
	Children []uint64         `json:"children,omitempty"`
	Short    string           `json:"short,omitempty"`
	Quantity int              `json:"quantity"`
	Position string           `json:"position,omitempty"`
	Skills   map[string]int32 `json:"skills,omitempty"`
	Acts     []ActRecord      `json:"acts,omitempty"`
}

// ActRecord: одна исходящая связь
type ActRecord struct {
	Role   string `json:"role"`
	Target uint64 `json:"target,omitempty"`
}

// Capture снимает мир целиком. Вызывать на потоке цикла.
func Capture(w *world.World, tick uint64) *Snapshot {
	s := &Snapshot{
		Version:   SnapshotVersion,
		Tick:      tick,
		Trash:     uint64(w.Trash()),
		Templates: uint64(w.Templates()),
	}
	for _, st := range w.States() {
		s.Nodes = append(s.Nodes, Record(st))
	}
	return s
}

// Record переводит состояние узла в сохраняемую форму с именами вместо
// хешей свойств и номеров ролей.
func Record(st world.NodeState) NodeRecord {
	rec := NodeRecord{
		ID:       uint64(st.ID),
		Parent:   uint64(st.Parent),
		Short:    st.Short,
		Quantity: st.Quantity,
	}
	if st.Position != world.PosNone {
		rec.Position = st.Position.String()
	}
	for _, c := range st.Children {
		rec.Children = append(rec.Children, uint64(c))
	}
	if len(st.Skills) > 0 {
		rec.Skills = make(map[string]int32, len(st.Skills))
		for _, p := range st.Skills {
			rec.Skills[p.Key.String()] = p.Value
		}
	}
	for _, e := range st.Acts {
		rec.Acts = append(rec.Acts, ActRecord{Role: e.Act.String(), Target: uint64(e.Target)})
	}
	return rec
}

// Restore собирает мир из снимка. Неизвестные имена свойств и ролей
// возвращают ошибку.
func Restore(s *Snapshot) (*world.World, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("неподдерживаемая версия снимка: %d", s.Version)
	}
	states := make([]world.NodeState, 0, len(s.Nodes))
	for _, rec := range s.Nodes {
		st := world.NodeState{
			ID:       world.NodeID(rec.ID),
			Parent:   world.NodeID(rec.Parent),
			Short:    rec.Short,
			Quantity: rec.Quantity,
		}
		if rec.Position != "" {
			p, err := world.ParsePosition(rec.Position)
			if err != nil {
				return nil, fmt.Errorf("узел %d: %w", rec.ID, err)
			}
			st.Position = p
		}
		for _, c := range rec.Children {
			st.Children = append(st.Children, world.NodeID(c))
		}
		for name, v := range rec.Skills {
			k, err := skills.Lookup(name)
			if err != nil {
				return nil, fmt.Errorf("узел %d: %w", rec.ID, err)
			}
			st.Skills = append(st.Skills, skills.Pair{Key: k, Value: v})
		}
		sort.Slice(st.Skills, func(i, j int) bool { return st.Skills[i].Key < st.Skills[j].Key })
		for _, a := range rec.Acts {
			act, err := world.ParseAct(a.Role)
			if err != nil {
				return nil, fmt.Errorf("узел %d: %w", rec.ID, err)
			}
			st.Acts = append(st.Acts, world.Edge{Act: act, Target: world.NodeID(a.Target)})
		}
		states = append(states, st)
	}
	return world.Rebuild(states, world.NodeID(s.Trash), world.NodeID(s.Templates))
}

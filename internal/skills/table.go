package skills

import "sort"

// Pair: одна запись разреженной таблицы.
type Pair struct {
	Key   Skill
	Value int32
}

// Table хранит значения свойств узла. Отсутствующий ключ читается как 0,
// запись нуля удаляет ключ. Записи отсортированы по ключу, поэтому обход
// детерминирован.
type Table struct {
	pairs []Pair
}

func (t *Table) find(k Skill) (int, bool) {
	i := sort.Search(len(t.pairs), func(i int) bool { return t.pairs[i].Key >= k })
	return i, i < len(t.pairs) && t.pairs[i].Key == k
}

// Get возвращает значение свойства или 0.
func (t *Table) Get(k Skill) int32 {
	if i, ok := t.find(k); ok {
		return t.pairs[i].Value
	}
	return 0
}

// Has сообщает, задано ли ненулевое значение.
func (t *Table) Has(k Skill) bool {
	_, ok := t.find(k)
	return ok
}

// Set записывает значение; ноль эквивалентен Clear.
func (t *Table) Set(k Skill, v int32) {
	i, ok := t.find(k)
	switch {
	case ok && v == 0:
		t.pairs = append(t.pairs[:i], t.pairs[i+1:]...)
	case ok:
		t.pairs[i].Value = v
	case v != 0:
		t.pairs = append(t.pairs, Pair{})
		copy(t.pairs[i+1:], t.pairs[i:])
		t.pairs[i] = Pair{Key: k, Value: v}
	}
}

// Add прибавляет delta и возвращает новое значение.
func (t *Table) Add(k Skill, delta int32) int32 {
	v := t.Get(k) + delta
	t.Set(k, v)
	return v
}

// Clear удаляет свойство.
func (t *Table) Clear(k Skill) {
	t.Set(k, 0)
}

// Len: число ненулевых свойств.
func (t *Table) Len() int {
	return len(t.pairs)
}

// Each обходит свойства по возрастанию ключа.
func (t *Table) Each(fn func(k Skill, v int32)) {
	for _, p := range t.pairs {
		fn(p.Key, p.Value)
	}
}

// Pairs возвращает копию записей.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// Equal сравнивает таблицы поэлементно.
func (t *Table) Equal(o *Table) bool {
	if len(t.pairs) != len(o.pairs) {
		return false
	}
	for i := range t.pairs {
		if t.pairs[i] != o.pairs[i] {
			return false
		}
	}
	return true
}

// Clone возвращает независимую копию.
func (t *Table) Clone() Table {
	return Table{pairs: t.Pairs()}
}

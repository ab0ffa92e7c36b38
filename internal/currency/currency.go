// Package currency реализует платежи монетами, лежащими у плательщика.
// Стопка монет это прямой потомок с положительным свойством Money (цена одной единицы).
package currency

import (
	"sort"

	"github.com/steaphangreene/acidmud-sub001/internal/logging"
	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

// searchBudget ограничивает число шагов перебора в plan. Мир обслуживается
// одним потоком, поэтому платёж не должен стоить больше долей тика.
var searchBudget = 1 << 16

// stack: одна стопка монет у плательщика.
type stack struct {
	id    world.NodeID
	count int64
}

// tier: все стопки одного номинала, по возрастанию идентификатора.
type tier struct {
	value  int64
	count  int64
	stacks []stack
}

// payable: монета, которую можно отдать или расщепить. Кошелёк с монетами
// внутри (узел с детьми) платёжным средством не считается.
func payable(n *world.Node) bool {
	return n != nil && n.Skill(skills.Money) > 0 && n.NumChildren() == 0
}

// tiers собирает номиналы по убыванию; стопки одного номинала объединяются.
func tiers(w *world.World, payer world.NodeID) []tier {
	p := w.Get(payer)
	if p == nil {
		return nil
	}
	byValue := make(map[int64]int)
	var out []tier
	for _, c := range p.Children() {
		n := w.Get(c)
		if !payable(n) {
			continue
		}
		v := int64(n.Skill(skills.Money))
		i, ok := byValue[v]
		if !ok {
			i = len(out)
			byValue[v] = i
			out = append(out, tier{value: v})
		}
		q := int64(n.Quantity())
		out[i].count += q
		out[i].stacks = append(out[i].stacks, stack{id: c, count: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value > out[j].value })
	for _, t := range out {
		sort.Slice(t.stacks, func(a, b int) bool { return t.stacks[a].id < t.stacks[b].id })
	}
	return out
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// plan ищет минимальную сумму >= amount, которую можно набрать из номиналов.
// Первым проверяется жадный вариант (больше крупных монет), затем перебор с
// отсечениями. Перебор останавливается на сумме, равной amount, округлённому
// вверх до НОД номиналов (меньше набрать нельзя), или по исчерпании
// searchBudget; тогда берётся лучший найденный вариант. ok=false означает,
// что всех денег не хватает; тогда total равен сумме всего имеющегося.
func plan(ts []tier, amount int64) (total int64, use []int64, ok bool) {
	suffix := make([]int64, len(ts)+1)
	var g int64
	for i := len(ts) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + ts[i].value*ts[i].count
		g = gcd(ts[i].value, g)
	}
	if suffix[0] < amount {
		return suffix[0], nil, false
	}
	floor := (amount + g - 1) / g * g

	best := int64(-1)
	cur := make([]int64, len(ts))
	steps := 0
	done := func() bool { return best == floor || steps >= searchBudget }

	var dfs func(i int, sum int64)
	dfs = func(i int, sum int64) {
		steps++
		if sum >= amount {
			if best < 0 || sum < best {
				best = sum
				use = append(use[:0], cur...)
			}
			return
		}
		if i == len(ts) {
			return
		}
		v := ts[i].value
		hi := (amount - sum + v - 1) / v
		if hi > ts[i].count {
			hi = ts[i].count
		}
		// Меньше lo монет этого номинала не хватит даже со всеми младшими.
		var lo int64
		if need := amount - sum - suffix[i+1]; need > 0 {
			lo = (need + v - 1) / v
		}
		for n := hi; n >= lo; n-- {
			// Суммы не меньше уже найденной не интересны.
			if best >= 0 {
				if c := (best - sum - 1) / v; n > c {
					n = c
					if n < lo {
						break
					}
				}
			}
			cur[i] = n
			dfs(i+1, sum+n*v)
			if done() {
				break
			}
		}
		cur[i] = 0
	}
	dfs(0, 0)
	return best, use, true
}

// CanPayFor возвращает сумму, которую плательщик реально отдаст за amount:
// точную или с минимальной переплатой. Если денег не хватает, возвращается
// сумма всех денег плательщика (меньше amount).
func CanPayFor(w *world.World, payer world.NodeID, amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	total, _, _ := plan(tiers(w, payer), amount)
	return total
}

// portion: сколько монет взять из одной стопки.
type portion struct {
	id    world.NodeID
	take  int64
	whole bool
}

// allocate раскладывает количество монет каждого номинала по стопкам:
// сначала целиком, последняя стопка при необходимости расщепляется.
func allocate(ts []tier, use []int64) []portion {
	var out []portion
	for i, n := range use {
		for _, s := range ts[i].stacks {
			if n == 0 {
				break
			}
			take := min(n, s.count)
			out = append(out, portion{id: s.id, take: take, whole: take == s.count})
			n -= take
		}
	}
	return out
}

// PayFor выделяет платёж: целые стопки отдаются как есть (чужие связи на них
// снимаются), от частично используемых отщепляется нужное количество.
// Возвращает узлы платежа (они остаются у плательщика, переносит их
// вызывающий). Если денег не хватает, возвращает nil и ничего не меняет.
func PayFor(w *world.World, payer world.NodeID, amount int64) []world.NodeID {
	if amount <= 0 {
		return nil
	}
	log := logging.GetComponentLogger("currency")
	ts := tiers(w, payer)
	total, use, ok := plan(ts, amount)
	if !ok {
		return nil
	}

	parts := allocate(ts, use)
	for _, p := range parts {
		n := w.Get(p.id)
		if !payable(n) || int64(n.Quantity()) < p.take {
			log.Error("❌ платёж %d: стопка %d недоступна", amount, p.id)
			return nil
		}
	}

	out := make([]world.NodeID, 0, len(parts))
	for _, p := range parts {
		if p.whole {
			_ = w.Release(p.id)
			out = append(out, p.id)
			continue
		}
		part, err := w.Split(p.id, int(p.take))
		if err != nil {
			log.Error("❌ split %d: %v", p.id, err)
			return nil
		}
		out = append(out, part.ID())
	}
	log.Debug("платёж %d за %d: %d стопок", total, amount, len(out))
	return out
}

// Worth: стоимость всех монет, лежащих непосредственно в id.
func Worth(w *world.World, id world.NodeID) int64 {
	var sum int64
	for _, t := range tiers(w, id) {
		sum += t.value * t.count
	}
	return sum
}

// Value: стоимость набора узлов (например, результата PayFor).
func Value(w *world.World, ids []world.NodeID) int64 {
	var sum int64
	for _, id := range ids {
		if n := w.Get(id); n != nil {
			sum += int64(n.Skill(skills.Money)) * int64(n.Quantity())
		}
	}
	return sum
}

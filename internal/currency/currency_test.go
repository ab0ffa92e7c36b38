package currency

import (
	"math/rand"
	"testing"
	"time"

	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDenominations = []Denomination{
	{Name: "copper", Value: 1},
	{Name: "silver", Value: 10},
	{Name: "gold", Value: 100},
	{Name: "platinum", Value: 10000},
}

func newPurse(t *testing.T, counts map[int64]int) (*world.World, world.NodeID) {
	t.Helper()
	w := world.New()
	require.NoError(t, InstallDenominations(w, testDenominations))
	p, err := w.CreateNamed(world.NoNode, "purse")
	require.NoError(t, err)
	for v, q := range counts {
		_, err := Mint(w, p.ID(), v, q)
		require.NoError(t, err)
	}
	return w, p.ID()
}

func TestScenarioExactAndOverpay(t *testing.T) {
	w, purse := newPurse(t, map[int64]int{1: 3, 10: 3, 100: 3, 10000: 3})

	assert.Equal(t, int64(12), CanPayFor(w, purse, 12))
	assert.Equal(t, int64(10), CanPayFor(w, purse, 7))
	assert.Equal(t, int64(3), CanPayFor(w, purse, 3))
	assert.Equal(t, int64(10000), CanPayFor(w, purse, 334))
	assert.Equal(t, int64(30333), CanPayFor(w, purse, 40000))
	assert.Equal(t, int64(0), CanPayFor(w, purse, 0))

	paid := PayFor(w, purse, 12)
	require.Len(t, paid, 2)
	assert.Equal(t, int64(12), Value(w, paid))
	assert.Equal(t, int64(30333-12), Worth(w, purse)-Value(w, paid))
}

func TestScenarioOnlyHundreds(t *testing.T) {
	w, purse := newPurse(t, map[int64]int{1: 3, 100: 3, 10000: 3})

	assert.Equal(t, int64(100), CanPayFor(w, purse, 7))
	assert.Equal(t, int64(3), CanPayFor(w, purse, 3))
	assert.Equal(t, int64(101), CanPayFor(w, purse, 101))
	assert.Equal(t, int64(102), CanPayFor(w, purse, 102))
	assert.Equal(t, int64(200), CanPayFor(w, purse, 104))
}

func TestCannotAffordMutatesNothing(t *testing.T) {
	w, purse := newPurse(t, map[int64]int{10: 2})
	before := w.States()

	assert.Equal(t, int64(20), CanPayFor(w, purse, 25))
	assert.Nil(t, PayFor(w, purse, 25))
	assert.Equal(t, before, w.States())
}

func TestPayForSplitsPartialStacks(t *testing.T) {
	w, purse := newPurse(t, map[int64]int{1: 5, 10: 2})

	paid := PayFor(w, purse, 23)
	require.Len(t, paid, 2)
	assert.Equal(t, int64(23), Value(w, paid))

	// Десятки ушли целой стопкой, медь отщеплена.
	tens := w.Get(paid[0])
	assert.Equal(t, int32(10), tens.Skill(skills.Money))
	assert.Equal(t, 2, tens.Quantity())
	copper := w.Get(paid[1])
	assert.Equal(t, 3, copper.Quantity())

	for _, id := range paid {
		require.NoError(t, w.Destroy(id))
	}
	assert.Equal(t, int64(2), Worth(w, purse))
}

func TestCanPayForIsMonotonicAndAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := []int64{1, 5, 10, 25, 100}

	for round := 0; round < 20; round++ {
		counts := map[int64]int{}
		for _, v := range values {
			if rng.Intn(3) > 0 {
				counts[v] = 1 + rng.Intn(4)
			}
		}
		w := world.New()
		ds := make([]Denomination, 0, len(values))
		for _, v := range values {
			ds = append(ds, Denomination{Name: "coin", Value: v})
		}
		require.NoError(t, InstallDenominations(w, ds))
		p, err := w.CreateNamed(world.NoNode, "purse")
		require.NoError(t, err)
		for v, q := range counts {
			_, err := Mint(w, p.ID(), v, q)
			require.NoError(t, err)
		}
		total := Worth(w, p.ID())

		prev := int64(0)
		for amount := int64(1); amount <= total+5; amount++ {
			got := CanPayFor(w, p.ID(), amount)
			assert.GreaterOrEqual(t, got, prev, "amount %d", amount)
			if amount <= total {
				assert.GreaterOrEqual(t, got, amount)
			} else {
				assert.Equal(t, total, got)
			}
			prev = got
		}

		for _, amount := range []int64{1, total / 3, total / 2, total} {
			if amount <= 0 || amount > Worth(w, p.ID()) {
				continue
			}
			want := CanPayFor(w, p.ID(), amount)
			paid := PayFor(w, p.ID(), amount)
			require.NotEmpty(t, paid)
			assert.Equal(t, want, Value(w, paid))
			for _, id := range paid {
				require.NoError(t, w.Travel(id, w.Trash()))
			}
			w.EmptyTrash()
		}
	}
}

// purseOf создаёт кошелёк с монетами произвольных номиналов.
func purseOf(t *testing.T, counts map[int64]int) (*world.World, world.NodeID) {
	t.Helper()
	w := world.New()
	ds := make([]Denomination, 0, len(counts))
	for v := range counts {
		ds = append(ds, Denomination{Name: "coin", Value: v})
	}
	require.NoError(t, InstallDenominations(w, ds))
	p, err := w.CreateNamed(world.NoNode, "purse")
	require.NoError(t, err)
	for v, q := range counts {
		_, err := Mint(w, p.ID(), v, q)
		require.NoError(t, err)
	}
	return w, p.ID()
}

func TestLargeStacksAreBounded(t *testing.T) {
	cases := []struct {
		name   string
		counts map[int64]int
		amount int64
		want   int64
	}{
		{"two even tiers", map[int64]int{4: 20000, 2: 20000}, 4*20000 + 1, 4*20000 + 2},
		{"three even tiers", map[int64]int{20: 10000, 10: 10000, 2: 10000}, 20*10000 + 1, 20*10000 + 2},
		{"six and ten", map[int64]int{10: 20000, 6: 20000}, 100001, 100002},
		{"coprime large notes", map[int64]int{999983: 5000, 1000003: 5000, 7: 30000}, 3999999999, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, purse := purseOf(t, tc.counts)

			start := time.Now()
			got := CanPayFor(w, purse, tc.amount)
			assert.Less(t, time.Since(start), time.Second)
			assert.GreaterOrEqual(t, got, tc.amount)
			if tc.want != 0 {
				assert.Equal(t, tc.want, got)
			}

			start = time.Now()
			paid := PayFor(w, purse, tc.amount)
			assert.Less(t, time.Since(start), time.Second)
			require.NotEmpty(t, paid)
			assert.Equal(t, got, Value(w, paid))
		})
	}
}

func TestLargeStacksMonotonicAndAgree(t *testing.T) {
	counts := map[int64]int{50: 200, 5: 1000, 2: 3000}
	w, purse := purseOf(t, counts)
	total := Worth(w, purse)
	require.Equal(t, int64(50*200+5*1000+2*3000), total)

	rng := rand.New(rand.NewSource(11))
	prev := int64(0)
	for amount := int64(1); amount <= total; amount += 1 + rng.Int63n(97) {
		got := CanPayFor(w, purse, amount)
		assert.GreaterOrEqual(t, got, amount, "amount %d", amount)
		assert.GreaterOrEqual(t, got, prev, "amount %d", amount)
		prev = got
	}

	for _, amount := range []int64{1, 3, 99, 4321, 15001, total - 1, total} {
		w, purse := purseOf(t, counts)
		want := CanPayFor(w, purse, amount)
		paid := PayFor(w, purse, amount)
		require.NotEmpty(t, paid, "amount %d", amount)
		assert.Equal(t, want, Value(w, paid), "amount %d", amount)
		assert.Equal(t, total, Worth(w, purse), "платёж остаётся у плательщика")
	}
}

func TestPouchWithContentsIsNotMoney(t *testing.T) {
	w, purse := newPurse(t, map[int64]int{10: 3})
	pouch, err := w.CreateNamed(purse, "pouch")
	require.NoError(t, err)
	pouch.SetSkill(skills.Money, 1)
	require.NoError(t, pouch.SetQuantity(5))
	_, err = w.CreateNamed(pouch.ID(), "pebble")
	require.NoError(t, err)

	assert.Equal(t, int64(30), Worth(w, purse))
	assert.Equal(t, int64(20), CanPayFor(w, purse, 13))

	t.Run("failure mutates nothing", func(t *testing.T) {
		before := w.States()
		assert.Equal(t, int64(30), CanPayFor(w, purse, 35))
		assert.Nil(t, PayFor(w, purse, 35))
		assert.Equal(t, before, w.States())
	})

	t.Run("payment agrees and leaves the pouch", func(t *testing.T) {
		paid := PayFor(w, purse, 13)
		require.Len(t, paid, 1)
		assert.Equal(t, int64(20), Value(w, paid))
		assert.Equal(t, 5, pouch.Quantity())
		assert.Equal(t, 1, pouch.NumChildren())
		assert.Equal(t, purse, pouch.Parent())
	})
}

func TestPayForSpreadsOverSameValueStacks(t *testing.T) {
	w, purse := newPurse(t, map[int64]int{10: 5})
	silver := w.Get(purse).Children()[0]
	// Стопка того же номинала с другим именем не сливается с первой.
	shiny, err := w.CreateNamed(purse, "shiny silver")
	require.NoError(t, err)
	shiny.SetSkill(skills.Money, 10)
	require.NoError(t, shiny.SetQuantity(3))

	assert.Equal(t, int64(60), CanPayFor(w, purse, 60))
	paid := PayFor(w, purse, 60)
	require.Len(t, paid, 2)
	assert.Equal(t, int64(60), Value(w, paid))
	assert.Equal(t, silver, paid[0])
	assert.Equal(t, 5, w.Get(silver).Quantity())
	assert.Equal(t, 1, w.Get(paid[1]).Quantity())
	assert.Equal(t, 2, shiny.Quantity())
}

func TestPayForReleasesHeldCoins(t *testing.T) {
	w, purse := newPurse(t, map[int64]int{10: 2})
	coins := w.Get(purse).Children()[0]
	require.NoError(t, w.AddAct(purse, world.ActHold, coins))

	paid := PayFor(w, purse, 20)
	require.Equal(t, []world.NodeID{coins}, paid)
	assert.Empty(t, w.Touching(coins))
	assert.False(t, w.IsAct(purse, world.ActHold))
}

func TestMint(t *testing.T) {
	w := world.New()
	require.NoError(t, InstallDenominations(w, testDenominations))
	require.NoError(t, InstallDenominations(w, testDenominations))
	assert.Len(t, w.Get(w.Templates()).Children(), len(testDenominations))

	p, err := w.CreateNamed(world.NoNode, "purse")
	require.NoError(t, err)

	a, err := Mint(w, p.ID(), 100, 2)
	require.NoError(t, err)
	b, err := Mint(w, p.ID(), 100, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 5, w.Get(a).Quantity())
	assert.Equal(t, "gold", w.Get(a).Short())

	_, err = Mint(w, p.ID(), 7, 1)
	assert.ErrorIs(t, err, ErrNoDenomination)
	_, err = Mint(w, p.ID(), 1, 0)
	assert.ErrorIs(t, err, world.ErrQuantity)

	assert.Error(t, InstallDenominations(w, []Denomination{{Name: "bad", Value: 0}}))
}

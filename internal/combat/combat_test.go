package combat

import (
	"math/rand"
	"testing"

	"github.com/steaphangreene/acidmud-sub001/internal/engine"
	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroDice всегда выбрасывает минимум.
type zeroDice struct{}

func (zeroDice) Intn(int) int { return 0 }

type arena struct {
	w           *world.World
	room        world.NodeID
	hero, orc   world.NodeID
	sword, club world.NodeID
	messages    []string
}

func newArena(t *testing.T) *arena {
	t.Helper()
	a := &arena{w: world.New()}
	mk := func(parent world.NodeID, short string) *world.Node {
		n, err := a.w.CreateNamed(parent, short)
		require.NoError(t, err)
		return n
	}
	room := mk(world.NoNode, "Arena")
	hero := mk(room.ID(), "Hero")
	hero.SetSkill(skills.ShortBlades, 3)
	sword := mk(hero.ID(), "short sword")
	sword.SetSkill(skills.WeaponType, 1)
	orc := mk(room.ID(), "Orc")
	club := mk(orc.ID(), "club")
	club.SetSkill(skills.WeaponType, 3)

	a.room, a.hero, a.orc, a.sword, a.club = room.ID(), hero.ID(), orc.ID(), sword.ID(), club.ID()
	return a
}

func (a *arena) report() Reporter {
	return ReporterFunc(func(msg string) { a.messages = append(a.messages, msg) })
}

func TestScriptedFight(t *testing.T) {
	a := newArena(t)
	e := New(a.w, zeroDice{}, a.report(), Config{RoundTicks: 1})
	s := engine.NewScheduler()
	e.Attach(s)

	require.NoError(t, e.Engage(a.hero, a.orc))
	assert.Equal(t, a.hero, a.w.ActTarg(a.orc, world.ActFight))

	defeatedAt := uint64(0)
	for i := 0; i < 10 && defeatedAt == 0; i++ {
		s.Advance()
		if e.Defeated(a.orc) {
			defeatedAt = s.Now()
		}
	}

	assert.Equal(t, uint64(4), defeatedAt)
	assert.Equal(t, []string{
		"Hero draws short sword.",
		"Hero hits Orc in the head.",
		"Orc draws club.",
		"Orc misses Hero.",
		"Hero hits Orc in the head.",
		"Orc misses Hero.",
		"Hero hits Orc in the head.",
		"Orc misses Hero.",
		"Orc takes a mortal hit in the head!",
		"Orc collapses!",
		"Orc drops club.",
	}, a.messages)

	orc := a.w.Get(a.orc)
	assert.True(t, orc.IsAct(world.ActDying))
	assert.Equal(t, world.PosLie, orc.Position())
	assert.False(t, orc.IsAct(world.ActFight))
	assert.False(t, orc.IsAct(world.ActWield))
	assert.False(t, a.w.IsAct(a.hero, world.ActFight))
	assert.Equal(t, a.room, a.w.Get(a.club).Parent())
	assert.Equal(t, a.sword, a.w.ActTarg(a.hero, world.ActWield))
	assert.Equal(t, int32(12), orc.Skill(skills.PhysDamage))

	// Дальше раунды ничего не делают.
	n := len(a.messages)
	s.Advance()
	assert.Len(t, a.messages, n)
	assert.Empty(t, e.Fighting())
}

func TestSeededFightIsReproducible(t *testing.T) {
	run := func() ([]string, int) {
		a := newArena(t)
		a.w.Get(a.orc).SetSkill(skills.ShortCrushing, 2)
		e := New(a.w, rand.New(rand.NewSource(42)), a.report(), Config{RoundTicks: 1})
		require.NoError(t, e.Engage(a.orc, a.hero))
		rounds := 0
		for len(e.Fighting()) > 0 && rounds < 200 {
			e.Round()
			rounds++
		}
		return a.messages, rounds
	}

	first, r1 := run()
	second, r2 := run()
	assert.Equal(t, first, second)
	assert.Equal(t, r1, r2)
	assert.Less(t, r1, 200)
	assert.Contains(t, first[len(first)-2], "collapses!")
}

func TestEngageRules(t *testing.T) {
	a := newArena(t)
	e := New(a.w, zeroDice{}, nil, DefaultConfig())

	assert.ErrorIs(t, e.Engage(a.hero, a.hero), world.ErrSelfTarget)
	assert.ErrorIs(t, e.Engage(a.hero, 999), world.ErrNoNode)
	assert.ErrorIs(t, e.Engage(a.hero, a.sword), ErrNotColocated)

	require.NoError(t, a.w.AddAct(a.orc, world.ActUnconscious, world.NoNode))
	assert.ErrorIs(t, e.Engage(a.hero, a.orc), ErrIncapacitated)
}

func TestTravelKeepsFightButSkipsRound(t *testing.T) {
	a := newArena(t)
	e := New(a.w, zeroDice{}, a.report(), DefaultConfig())
	require.NoError(t, e.Engage(a.hero, a.orc))

	hall, err := a.w.CreateNamed(world.NoNode, "Hall")
	require.NoError(t, err)
	require.NoError(t, a.w.Travel(a.orc, hall.ID()))

	assert.Zero(t, e.Round())
	assert.Empty(t, a.messages)
	assert.Equal(t, a.orc, a.w.ActTarg(a.hero, world.ActFight))

	require.NoError(t, a.w.Travel(a.orc, a.room))
	assert.Equal(t, 2, e.Round())
}

func TestDisengage(t *testing.T) {
	a := newArena(t)
	e := New(a.w, zeroDice{}, nil, DefaultConfig())
	require.NoError(t, e.Engage(a.hero, a.orc))
	require.NoError(t, e.Disengage(a.hero))
	assert.Equal(t, []world.NodeID{a.orc}, e.Fighting())
}

func TestWeaponSkill(t *testing.T) {
	assert.Equal(t, skills.Punching, WeaponSkill(0))
	assert.Equal(t, skills.ShortBlades, WeaponSkill(1))
	assert.Equal(t, skills.TwoHandedStaves, WeaponSkill(18))
	assert.Equal(t, skills.Punching, WeaponSkill(99))
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New()
	a, err := w.CreateNamed(world.NoNode, "room a")
	require.NoError(t, err)
	b, err := w.CreateNamed(world.NoNode, "room b")
	require.NoError(t, err)
	doorA, err := w.CreateNamed(a.ID(), "door")
	require.NoError(t, err)
	doorB, err := w.CreateNamed(b.ID(), "door")
	require.NoError(t, err)
	require.NoError(t, w.AddAct(doorA.ID(), world.ActSpecialLinked, doorB.ID()))

	hero, err := w.CreateNamed(a.ID(), "hero")
	require.NoError(t, err)
	hero.SetSkill(skills.Strength, 5)
	hero.SetSkill(skills.PhysDamage, 2)
	hero.SetPosition(world.PosStand)
	sword, err := w.CreateNamed(hero.ID(), "sword")
	require.NoError(t, err)
	sword.SetSkill(skills.WeaponType, 2)
	require.NoError(t, w.AddAct(hero.ID(), world.ActWield, sword.ID()))
	require.NoError(t, w.AddAct(hero.ID(), world.ActRest, world.NoNode))

	coins, err := w.CreateNamed(hero.ID(), "gold piece")
	require.NoError(t, err)
	coins.SetSkill(skills.Money, 100)
	require.NoError(t, coins.SetQuantity(12))
	return w
}

func TestCaptureRestore(t *testing.T) {
	w := sampleWorld(t)
	snap := Capture(w, 77)
	assert.Equal(t, uint64(77), snap.Tick)
	assert.Len(t, snap.Nodes, w.Len())

	hero := snap.Nodes[6]
	assert.Equal(t, "hero", hero.Short)
	assert.Equal(t, int32(5), hero.Skills["Strength"])
	assert.Equal(t, int32(2), hero.Skills["Phys Damage"])
	assert.Equal(t, "STAND", hero.Position)
	assert.Contains(t, hero.Acts, ActRecord{Role: "WIELD", Target: 8})
	assert.Contains(t, hero.Acts, ActRecord{Role: "REST"})

	r, err := Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, w.States(), r.States())
}

func TestRestoreRejectsUnknownNames(t *testing.T) {
	w := sampleWorld(t)

	t.Run("skill", func(t *testing.T) {
		snap := Capture(w, 1)
		snap.Nodes[6].Skills["Strenght"] = 1
		_, err := Restore(snap)
		assert.ErrorIs(t, err, skills.ErrUnknownName)
	})

	t.Run("role", func(t *testing.T) {
		snap := Capture(w, 1)
		snap.Nodes[6].Acts = append(snap.Nodes[6].Acts, ActRecord{Role: "JUGGLE"})
		_, err := Restore(snap)
		assert.ErrorIs(t, err, world.ErrBadAct)
	})

	t.Run("version", func(t *testing.T) {
		snap := Capture(w, 1)
		snap.Version = 99
		_, err := Restore(snap)
		assert.Error(t, err)
	})
}

func TestCodec(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)
	defer c.Close()

	snap := Capture(sampleWorld(t), 5)
	data, err := c.Encode(snap)
	require.NoError(t, err)

	back, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snap, back)

	_, err = c.Decode([]byte("not zstd"))
	assert.Error(t, err)
}

func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, ok, err := s.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "b", []byte("two")))
	require.NoError(t, s.Save(ctx, "a", []byte("one")))
	require.NoError(t, s.Save(ctx, "a", []byte("uno")))

	data, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("uno"), data)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"))
	_, ok, err = s.Load(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	testStore(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Save(ctx, "x", nil), context.Canceled)
	assert.Error(t, s.Save(context.Background(), "", nil))
}

func TestBadgerStore(t *testing.T) {
	s, err := NewBadgerStore(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	testStore(t, s)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, _, err = s.Load(context.Background(), "b")
	assert.Error(t, err)
}

func TestSnapshotsRoundTrip(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)
	defer codec.Close()

	snaps := NewSnapshots(NewMemoryStore(), codec)
	ctx := context.Background()

	w, tick, err := snaps.Load(ctx, "world")
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.Zero(t, tick)

	orig := sampleWorld(t)
	require.NoError(t, snaps.Save(ctx, "world", Capture(orig, 42)))

	w, tick, err = snaps.Load(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), tick)
	assert.Equal(t, orig.States(), w.States())
}

func TestOpen(t *testing.T) {
	s, err := Open(Options{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = Open(Options{Driver: "tape"})
	assert.Error(t, err)
}

func TestRedisKeys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	rs := newRedisStore(client, DefaultRedisConfig())
	assert.Equal(t, "acidmud:snapshot:world", rs.key("world"))
}

package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_ZeroAndAbsentAreEquivalent(t *testing.T) {
	var tbl Table

	assert.Equal(t, int32(0), tbl.Get(Strength))
	assert.False(t, tbl.Has(Strength))

	tbl.Set(Strength, 5)
	assert.Equal(t, int32(5), tbl.Get(Strength))
	assert.True(t, tbl.Has(Strength))
	assert.Equal(t, 1, tbl.Len())

	tbl.Set(Strength, 0)
	assert.False(t, tbl.Has(Strength))
	assert.Equal(t, 0, tbl.Len())
}

func TestTable_SortedIteration(t *testing.T) {
	var tbl Table
	tbl.Set(Punching, 3)
	tbl.Set(Body, 2)
	tbl.Set(Money, 100)
	tbl.Set(Quickness, 4)

	var keys []Skill
	tbl.Each(func(k Skill, v int32) {
		keys = append(keys, k)
	})
	assert.Len(t, keys, 4)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestTable_AddClearEqualClone(t *testing.T) {
	var a Table
	assert.Equal(t, int32(3), a.Add(PhysDamage, 3))
	assert.Equal(t, int32(7), a.Add(PhysDamage, 4))
	assert.Equal(t, int32(0), a.Add(PhysDamage, -7))
	assert.False(t, a.Has(PhysDamage))

	a.Set(WeaponType, 2)
	a.Set(WeaponForce, 1)
	b := a.Clone()
	assert.True(t, a.Equal(&b))

	b.Set(WeaponForce, 2)
	assert.False(t, a.Equal(&b))
	assert.Equal(t, int32(1), a.Get(WeaponForce), "клон не должен разделять память")

	b.Clear(WeaponForce)
	assert.False(t, a.Equal(&b))
	assert.Len(t, a.Pairs(), 2)
}

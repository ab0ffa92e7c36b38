package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	cases := map[string]string{
		"Body":              "Body",
		"Two-Handed Blades": "TwoHandedBlades",
		"Phys Damage":       "PhysDamage",
		"Wearable on Back":  "WearableOnBack",
		"TBAAction":         "TBAAction",
	}
	for in, want := range cases {
		assert.Equal(t, want, identifier(in), in)
	}
}

func TestCheck(t *testing.T) {
	mk := func(names ...string) []skillName {
		out := make([]skillName, 0, len(names))
		for _, n := range names {
			out = append(out, skillName{Name: n, Ident: identifier(n), Key: uint32(len(out) + 1)})
		}
		return out
	}

	require.NoError(t, check(mk("Body", "Strength")))
	assert.Error(t, check(mk("Body", "Body")), "повтор имени")
	assert.Error(t, check(mk("Long Blades", "Long-Blades")), "один идентификатор")

	collide := mk("Body", "Strength")
	collide[1].Key = collide[0].Key
	assert.Error(t, check(collide), "коллизия ключей")
}

package skills

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_HashMatchesName(t *testing.T) {
	for _, e := range registry {
		assert.Equal(t, Hash(e.name), uint32(e.key), "ключ %q должен быть CRC-32C имени", e.name)
		// Повторный вызов даёт тот же ключ
		assert.Equal(t, Hash(e.name), Hash(e.name))
	}
}

func TestRegistry_NoCollisions(t *testing.T) {
	seenKeys := make(map[Skill]string, len(registry))
	seenNames := make(map[string]bool, len(registry))
	for _, e := range registry {
		if other, dup := seenKeys[e.key]; dup {
			t.Fatalf("коллизия ключей: %q и %q", e.name, other)
		}
		require.False(t, seenNames[e.name], "имя %q зарегистрировано дважды", e.name)
		seenKeys[e.key] = e.name
		seenNames[e.name] = true
	}
	assert.Len(t, Registered(), len(registry))
}

func TestHash_KnownValues(t *testing.T) {
	// Контрольное значение CRC-32C
	assert.Equal(t, uint32(0xe3069283), Hash("123456789"))
	assert.Equal(t, uint32(Money), Hash("Money"))
	assert.Equal(t, uint32(TwoHandedBlades), Hash("Two-Handed Blades"))
}

func TestLookup(t *testing.T) {
	k, err := Lookup("Long Blades")
	require.NoError(t, err)
	assert.Equal(t, LongBlades, k)
	assert.Equal(t, "Long Blades", k.String())
	assert.True(t, k.Valid())

	_, err = Lookup("Long Bladez")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownName))

	assert.False(t, Skill(0x12345678).Valid())
	assert.Equal(t, "Skill(0x12345678)", Skill(0x12345678).String())
}

func TestRegistered_Sorted(t *testing.T) {
	keys := Registered()
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

// Сгенерированный реестр должен совпадать с names.txt строка в строку;
// иначе после правки списка забыли запустить go generate.
func TestRegistry_MatchesNamesFile(t *testing.T) {
	f, err := os.Open("names.txt")
	require.NoError(t, err)
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	require.NoError(t, sc.Err())

	generated := make([]string, 0, len(registry))
	for _, e := range registry {
		generated = append(generated, e.name)
	}
	assert.Equal(t, names, generated, "names_gen.go устарел: go generate ./internal/skills")
}

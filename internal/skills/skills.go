// Package skills содержит закрытый словарь числовых свойств узлов мира.
//
// Каждое имя из names.txt превращается генератором в типизированную
// константу, значение которой равно CRC-32C имени. Опечатка в имени свойства
// в коде: это неизвестный идентификатор, то есть ошибка сборки.
package skills

//go:generate go run ../../cmd/skillgen -in names.txt -out names_gen.go

import (
	"errors"
	"fmt"
	"hash/crc32"
	"sort"
)

// Skill: стабильный 32-битный ключ зарегистрированного свойства.
type Skill uint32

type entry struct {
	key  Skill
	name string
}

// ErrUnknownName возвращается при разборе имени, которого нет в словаре.
var ErrUnknownName = errors.New("unregistered skill name")

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

var (
	byKey  map[Skill]string
	byName map[string]Skill
)

func init() {
	byKey = make(map[Skill]string, len(registry))
	byName = make(map[string]Skill, len(registry))
	for _, e := range registry {
		byKey[e.key] = e.name
		byName[e.name] = e.key
	}
}

// Hash вычисляет ключ для произвольной строки. Для зарегистрированных имён
// результат совпадает со сгенерированной константой.
func Hash(name string) uint32 {
	return crc32.Checksum([]byte(name), castagnoli)
}

// Lookup переводит имя в ключ. Используется только на границе хранения,
// где имена приходят извне.
func Lookup(name string) (Skill, error) {
	if k, ok := byName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// Registered возвращает все ключи словаря в порядке возрастания.
func Registered() []Skill {
	out := make([]Skill, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.key)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid сообщает, принадлежит ли ключ словарю.
func (s Skill) Valid() bool {
	_, ok := byKey[s]
	return ok
}

// String возвращает зарегистрированное имя свойства.
func (s Skill) String() string {
	if name, ok := byKey[s]; ok {
		return name
	}
	return fmt.Sprintf("Skill(0x%08x)", uint32(s))
}

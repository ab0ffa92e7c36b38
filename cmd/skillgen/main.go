// Команда skillgen строит internal/skills/names_gen.go из списка имён.
//
// Генератор отказывается писать файл, если в списке есть повторяющиеся
// имена, имена с одинаковым Go-идентификатором или коллизии CRC-32C.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"hash/crc32"
	"log"
	"os"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"
)

type skillName struct {
	Name  string
	Ident string
	Key   uint32
}

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

var out = template.Must(template.New("names").Parse(`// Code generated by skillgen from names.txt; DO NOT EDIT.

package skills

// Зарегистрированные свойства. Ключ каждого равен CRC-32C (Castagnoli) его имени.
const (
{{- range .}}
	{{.Ident}} Skill = {{printf "0x%08x" .Key}}
{{- end}}
)

// registry перечисляет словарь в порядке names.txt.
var registry = [...]entry{
{{- range .}}
	{ {{- .Ident}}, {{printf "%q" .Name -}} },
{{- end}}
}
`))

func main() {
	in := flag.String("in", "names.txt", "список имён, по одному на строку")
	dst := flag.String("out", "names_gen.go", "файл для записи")
	flag.Parse()

	names, err := readNames(*in)
	if err != nil {
		log.Fatalf("skillgen: %v", err)
	}
	if err := check(names); err != nil {
		log.Fatalf("skillgen: %v", err)
	}

	var buf bytes.Buffer
	if err := out.Execute(&buf, names); err != nil {
		log.Fatalf("skillgen: шаблон: %v", err)
	}
	src, err := imports.Process(*dst, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("skillgen: форматирование: %v", err)
	}
	if err := os.WriteFile(*dst, src, 0o644); err != nil {
		log.Fatalf("skillgen: %v", err)
	}
	log.Printf("skillgen: %d имён записано в %s", len(names), *dst)
}

func readNames(path string) ([]skillName, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []skillName
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, skillName{
			Name:  line,
			Ident: identifier(line),
			Key:   crc32.Checksum([]byte(line), castagnoli),
		})
	}
	return names, sc.Err()
}

// identifier превращает "Two-Handed Blades" в TwoHandedBlades.
func identifier(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func check(names []skillName) error {
	byName := make(map[string]bool, len(names))
	byIdent := make(map[string]string, len(names))
	byKey := make(map[uint32]string, len(names))
	for _, n := range names {
		if byName[n.Name] {
			return fmt.Errorf("имя %q повторяется", n.Name)
		}
		if other, ok := byIdent[n.Ident]; ok {
			return fmt.Errorf("имена %q и %q дают один идентификатор %s", other, n.Name, n.Ident)
		}
		if other, ok := byKey[n.Key]; ok {
			return fmt.Errorf("коллизия CRC-32C 0x%08x: %q и %q", n.Key, other, n.Name)
		}
		if n.Ident == "" || !unicode.IsLetter(rune(n.Ident[0])) {
			return fmt.Errorf("имя %q не даёт допустимого идентификатора", n.Name)
		}
		byName[n.Name] = true
		byIdent[n.Ident] = n.Name
		byKey[n.Key] = n.Name
	}
	return nil
}

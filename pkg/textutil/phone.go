package textutil

import (
	"regexp"
	"strings"
)

var rePhoneJunk = regexp.MustCompile(`[\s\-().]+`)

// NormalizePhone приводит телефон к каноничному виду для точного сравнения:
// - убирает пробелы, дефисы, скобки и точки
// - префикс "00" заменяет на "+"
// - отбрасывает всё, кроме цифр и ведущего "+"
// Возвращает пустую строку, если после чистки цифр не осталось.
func NormalizePhone(s string) string {
	s = rePhoneJunk.ReplaceAllString(strings.TrimSpace(s), "")
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	}
	var b strings.Builder
	for i, r := range s {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if strings.TrimPrefix(out, "+") == "" {
		return ""
	}
	return out
}

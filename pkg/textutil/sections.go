package textutil

import "strings"

// Section — один раздел markdown-документа (карьерная страница, контакты).
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Sections режет markdown на разделы по заголовкам "## ".
// Текст до первого заголовка попадает в раздел с пустым Heading.
// Заголовки других уровней остаются частью тела раздела.
func Sections(md string) []Section {
	var out []Section
	cur := Section{}
	var body []string

	flush := func() {
		cur.Body = strings.TrimSpace(strings.Join(body, "\n"))
		if cur.Heading != "" || cur.Body != "" {
			out = append(out, cur)
		}
		body = body[:0]
	}

	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			cur = Section{Heading: strings.TrimSpace(strings.TrimPrefix(line, "## "))}
			continue
		}
		body = append(body, line)
	}
	flush()
	return out
}

package menu

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render returns the framed menu: blank lines, a separator, the centered
// title, another separator, a blank line and one "<n>) <label>" line per item.
func (m *Menu) Render() string {
	sep := strings.Repeat("=", m.width)

	pad := (m.width - utf8.RuneCountInString(m.title)) / 2
	if pad < 0 {
		pad = 0
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(sep)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(m.title)
	b.WriteByte('\n')
	b.WriteString(sep)
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(") ")
		b.WriteString(item.Label())
		b.WriteByte('\n')
	}

	return b.String()
}

package tag

import "strings"

// Encoder converts a string into its HTML-encoded form.
type Encoder func(string) string

var (
	textEntities = map[rune]string{
		'&':  "&amp;",
		'<':  "&lt;",
		'>':  "&gt;",
		'"':  "&quot;",
		'\'': "&#39;",
	}

	// '>' is left alone in attribute values; a quoted value cannot be
	// closed by it.
	attrEntities = map[rune]string{
		'&':  "&amp;",
		'<':  "&lt;",
		'"':  "&quot;",
		'\'': "&#39;",
	}
)

// EscapeHTML encodes text for element content. It is the default text
// encoder of a Builder.
func EscapeHTML(s string) string {
	return escapeWith(s, textEntities)
}

// EscapeAttr encodes a double-quoted attribute value. It is the default
// attribute encoder of a Builder.
func EscapeAttr(s string) string {
	return escapeWith(s, attrEntities)
}

func escapeWith(s string, entities map[rune]string) string {
	first := strings.IndexFunc(s, func(r rune) bool {
		_, ok := entities[r]
		return ok
	})
	if first < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	sb.WriteString(s[:first])
	for _, r := range s[first:] {
		if entity, ok := entities[r]; ok {
			sb.WriteString(entity)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

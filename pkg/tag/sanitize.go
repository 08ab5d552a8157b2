package tag

import (
	"strings"

	"github.com/vango-dev/formselect/internal/errors"
)

// DefaultIDReplacement replaces characters that are not allowed in ids
// when no other replacement is configured.
const DefaultIDReplacement = "_"

// SanitizeID turns original into a value that is legal as an HTML 4.01 id.
//
// The result is empty when original is empty or does not start with an
// ASCII letter. Otherwise the first letter is kept and every later
// character that is not an ASCII letter, ASCII digit, '-', '_' or ':' is
// replaced by replacement. '.' is never kept.
//
// An empty replacement is an invalid argument.
func SanitizeID(original, replacement string) (string, error) {
	if original == "" {
		return "", nil
	}
	if replacement == "" {
		return "", errors.New("E003")
	}

	if !isLetter(original[0]) {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(len(original))
	sb.WriteByte(original[0])

	for _, r := range original[1:] {
		if r < 0x80 && isValidIDChar(byte(r)) {
			sb.WriteRune(r)
		} else {
			sb.WriteString(replacement)
		}
	}

	return sb.String(), nil
}

// SanitizeIDDefault is SanitizeID with DefaultIDReplacement.
func SanitizeIDDefault(original string) string {
	id, _ := SanitizeID(original, DefaultIDReplacement)
	return id
}

// See http://www.w3.org/TR/html401/types.html#type-id
func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isValidIDChar(c byte) bool {
	switch c {
	case '-', '_', ':':
		return true
	}
	return isLetter(c) || isDigit(c)
}

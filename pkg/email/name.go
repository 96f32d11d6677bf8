package email

import (
	"strings"
	"unicode"
)

// DeriveName guesses a first and last name for an address without a display
// name by splitting the local part on common separators. It is a heuristic
// for UI prefill, not an identity claim.
func DeriveName(a Address) (string, string) {
	parts := strings.FieldsFunc(a.Local(), func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

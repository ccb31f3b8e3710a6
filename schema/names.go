package schema

import (
	"strings"
	"unicode"
)

// toKebabCase lowercases s and joins its words with '-'. Words break at
// '_', ' ' and '-', before an upper-case letter that follows a lower-case
// letter or digit, and before the last letter of an upper-case run that is
// followed by a lower-case letter ("HTTPServer" -> "http-server").
func toKebabCase(s string) string {
	runes := []rune(s)
	var result strings.Builder
	dash := func() {
		if result.Len() > 0 && !strings.HasSuffix(result.String(), "-") {
			result.WriteByte('-')
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == ' ' || r == '-':
			dash()
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					dash()
				}
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(r)
		}
	}
	return strings.TrimSuffix(result.String(), "-")
}

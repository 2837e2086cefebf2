package envfile

import "strings"

// candidate is a raw line split on its first '=' with both halves trimmed.
type candidate struct {
	key   string
	value string
}

func splitLine(line string) candidate {
	key, value, _ := strings.Cut(line, "=")
	return candidate{
		key:   strings.TrimSpace(key),
		value: strings.TrimSpace(value),
	}
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ValidKey reports whether key would be accepted by Parse: non-empty and
// starting with an ASCII letter.
func ValidKey(key string) bool {
	return key != "" && isLetter(key[0])
}

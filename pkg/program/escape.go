package program

import "strings"

// DecodeEscapes replaces every \ddd sequence (three decimal digits) with the
// character of that code point. Backslashes not followed by three digits are kept,
// so text read at run time never fails; literals are checked with ValidEscapes.
func DecodeEscapes(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+3 < len(raw) && isDigit(raw[i+1]) && isDigit(raw[i+2]) && isDigit(raw[i+3]) {
			code := int(raw[i+1]-'0')*100 + int(raw[i+2]-'0')*10 + int(raw[i+3]-'0')
			b.WriteRune(rune(code))
			i += 3
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// ValidEscapes reports whether every backslash in raw starts a \ddd sequence
func ValidEscapes(raw string) bool {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' {
			continue
		}
		if i+3 >= len(raw) || !isDigit(raw[i+1]) || !isDigit(raw[i+2]) || !isDigit(raw[i+3]) {
			return false
		}
		i += 3
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

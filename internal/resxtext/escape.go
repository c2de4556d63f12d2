package resxtext

import (
	"strconv"
	"strings"
)

// EscapeText substitutes only the three characters a resx value element
// requires: ampersand, left angle, right angle. Quotes and everything
// else pass through untouched, so entities the original author wrote
// deliberately elsewhere in the document are never re-encoded.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// EscapeAttr escapes text for splicing between double-quote attribute
// delimiters: the three text characters plus the double quote itself.
func EscapeAttr(s string) string {
	return strings.ReplaceAll(EscapeText(s), `"`, "&quot;")
}

// maxEntityLen bounds the search for a terminating ';' so a stray
// ampersand in malformed content cannot swallow the rest of the text.
const maxEntityLen = 32

// UnescapeText resolves the five named XML entities and numeric
// character references. Anything unrecognized is kept verbatim.
func UnescapeText(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:amp])
	for i := amp; i < len(s); {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:min(len(s), i+maxEntityLen)], ';')
		if end < 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		entity := s[i+1 : i+end]
		if r, ok := resolveEntity(entity); ok {
			b.WriteString(r)
			i += end + 1
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func resolveEntity(entity string) (string, bool) {
	switch entity {
	case "amp":
		return "&", true
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "quot":
		return `"`, true
	case "apos":
		return "'", true
	}
	if len(entity) > 1 && entity[0] == '#' {
		num := entity[1:]
		base := 10
		if num[0] == 'x' || num[0] == 'X' {
			num = num[1:]
			base = 16
		}
		n, err := strconv.ParseUint(num, base, 32)
		if err != nil || n == 0 {
			return "", false
		}
		return string(rune(n)), true
	}
	return "", false
}

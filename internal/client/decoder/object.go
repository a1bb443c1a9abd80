package decoder

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ParseObject extracts the top-level "key": value pairs of the object found
// between the first '{' and the last '}' of text. If either brace is missing
// the returned map is empty, which callers treat as a decoding failure.
func ParseObject(text string) map[string]string {
	out := make(map[string]string)

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < 0 || end <= start {
		return out
	}

	s := &scanner{src: text[start+1 : end]}
	for !s.done() {
		key, ok := s.key()
		if !ok {
			s.skipValue()
			continue
		}
		out[key] = cleanValue(s.value())
	}
	return out
}

// ParseArray splits the bracketed list in text on commas and trims every
// element of whitespace and quotes. It does not look inside nested objects,
// so elements that themselves contain commas are split too.
func ParseArray(text string) []string {
	out := []string{}

	start := strings.IndexByte(text, '[')
	end := strings.LastIndexByte(text, ']')
	if start < 0 || end < 0 || end <= start {
		return out
	}

	inner := text[start+1 : end]
	if strings.TrimSpace(inner) == "" {
		return out
	}
	for _, part := range strings.Split(inner, ",") {
		out = append(out, trimQuotes(part))
	}
	return out
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.src)
}

func (s *scanner) skipSeparators() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// key reads `"name"` followed by ':'. On failure the position is left where
// skipValue can resynchronise on the next top-level comma.
func (s *scanner) key() (string, bool) {
	s.skipSeparators()
	if s.pos >= len(s.src) || s.src[s.pos] != '"' {
		return "", false
	}
	raw, ok := s.quoted()
	if !ok {
		return "", false
	}
	s.skipSpace()
	if s.pos >= len(s.src) || s.src[s.pos] != ':' {
		return "", false
	}
	s.pos++
	return unescape(raw), true
}

// quoted consumes a string literal starting at the opening quote and returns
// its raw (still escaped) contents.
func (s *scanner) quoted() (string, bool) {
	begin := s.pos + 1
	for i := begin; i < len(s.src); i++ {
		switch s.src[i] {
		case '\\':
			i++
		case '"':
			s.pos = i + 1
			return s.src[begin:i], true
		}
	}
	s.pos = len(s.src)
	return s.src[begin:], false
}

// value consumes everything up to the next ',' or '}' that is outside any
// string literal or nested structure.
func (s *scanner) value() string {
	s.skipSpace()
	begin := s.pos
	depth := 0
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '"':
			s.quoted()
			continue
		case '{', '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '}':
			if depth == 0 {
				return strings.TrimSpace(s.src[begin:s.pos])
			}
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(s.src[begin:s.pos])
			}
		}
		s.pos++
	}
	return strings.TrimSpace(s.src[begin:])
}

func (s *scanner) skipValue() {
	start := s.pos
	s.value()
	if s.pos == start && s.pos < len(s.src) {
		s.pos++
	}
}

// cleanValue unquotes and unescapes string literals and leaves everything else
// (numbers, true/false/null, nested JSON) as written.
func cleanValue(raw string) string {
	if raw == "" || raw[0] != '"' {
		return raw
	}
	if len(raw) >= 2 && raw[len(raw)-1] == '"' {
		return unescape(raw[1 : len(raw)-1])
	}
	return unescape(strings.TrimLeft(raw, `"`))
}

func trimQuotes(s string) string {
	return strings.Trim(s, " \t\n\r\"")
}

// unescape resolves JSON string escapes. Unknown escapes are kept verbatim.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			r, width, ok := decodeUnicodeEscape(s[i+1:])
			if !ok {
				b.WriteString(`\u`)
				continue
			}
			b.WriteRune(r)
			i += width
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// decodeUnicodeEscape reads the XXXX of a \uXXXX escape (and the low half of a
// surrogate pair when present). width is the number of bytes consumed after
// the 'u'.
func decodeUnicodeEscape(s string) (r rune, width int, ok bool) {
	hi, ok := hex4(s)
	if !ok {
		return 0, 0, false
	}
	if !utf16.IsSurrogate(hi) {
		return hi, 4, true
	}
	if len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		if lo, ok := hex4(s[6:]); ok {
			if pair := utf16.DecodeRune(hi, lo); pair != utf8.RuneError {
				return pair, 10, true
			}
		}
	}
	return utf8.RuneError, 4, true
}

func hex4(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

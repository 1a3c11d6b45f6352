package gui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Chroma settings for the raw record view
const (
	rawLexer     = "json"
	rawFormatter = "terminal256"
	rawStyle     = "monokai"
)

const colorReset = "\033[0m"

// jsonPalette maps JSON token kinds to ANSI colors.
type jsonPalette struct {
	key, str, number, literal, null, bracket string
}

var defaultPalette = jsonPalette{
	key:     "\033[36m", // cyan
	str:     "\033[32m", // green
	number:  "\033[33m", // yellow
	literal: "\033[35m", // magenta, true/false
	null:    "\033[31m", // red
	bracket: "\033[90m", // gray
}

// highlightJSON renders a whole JSON document with chroma, falling back to
// colorizeJSON when chroma cannot handle it.
func highlightJSON(jsonStr string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, jsonStr, rawLexer, rawFormatter, rawStyle); err != nil {
		return colorizeJSON(jsonStr)
	}
	return strings.TrimRight(b.String(), "\n")
}

// colorizeJSON colors JSON text token by token. The text is never
// reformatted, so stripping the escapes gives back the input; invalid JSON
// is colored as far as it scans. Single lines of a pretty-printed document
// color the same as the whole.
func colorizeJSON(jsonStr string) string {
	return defaultPalette.paint(jsonStr)
}

func (p jsonPalette) paint(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			end := scanString(s, i)
			color := p.str
			if nextNonSpace(s, end) == ':' {
				color = p.key
			}
			p.write(&b, color, s[i:end])
			i = end
		case c == '-' || isDigit(c):
			end := i + 1
			for end < len(s) && isNumberByte(s[end]) {
				end++
			}
			p.write(&b, p.number, s[i:end])
			i = end
		case c == '{' || c == '}' || c == '[' || c == ']':
			p.write(&b, p.bracket, s[i:i+1])
			i++
		case strings.HasPrefix(s[i:], "true"):
			p.write(&b, p.literal, "true")
			i += 4
		case strings.HasPrefix(s[i:], "false"):
			p.write(&b, p.literal, "false")
			i += 5
		case strings.HasPrefix(s[i:], "null"):
			p.write(&b, p.null, "null")
			i += 4
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func (p jsonPalette) write(b *strings.Builder, color, text string) {
	b.WriteString(color)
	b.WriteString(text)
	b.WriteString(colorReset)
}

// scanString returns the index just past the string literal starting at i.
// An unterminated string runs to the end of s.
func scanString(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(s)
}

func nextNonSpace(s string, i int) byte {
	for ; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[i]
		}
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

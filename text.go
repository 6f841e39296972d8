package codedchars

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Strip removes all escape and control sequences from the string, leaving
// only its graphic characters and format effectors (HT, LF, and CR). It
// recognizes the 7-bit forms this package writes: lone C0 controls, ESC
// sequences, CSI control sequences, and the control strings opened by DCS,
// SOS, OSC, PM, and APC, which are dropped whole up to their terminator.
func Strip(s string) string {
	i := strings.IndexByte(s, '\x1b')
	if i < 0 && !hasC0(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\x1b':
			i = skipEscape(s, i)
		case c == '\t', c == '\n', c == '\r':
			sb.WriteByte(c)
		case c < 0x20 || c == 0x7F:
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func hasC0(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c < 0x20 && c != '\t' && c != '\n' && c != '\r') || c == 0x7F {
			return true
		}
	}
	return false
}

// skipEscape returns the index of the last byte of the escape or control
// sequence starting at the ESC at s[i].
func skipEscape(s string, i int) int {
	i++
	if i >= len(s) {
		return i
	}
	switch c := s[i]; {
	case c == '[':
		// CSI: parameter and intermediate bytes, then one final byte
		for i++; i < len(s); i++ {
			if c := s[i]; 0x40 <= c && c <= 0x7E {
				break
			}
		}
		return i
	case c == 'P', c == 'X', c == ']', c == '^', c == '_':
		// control string: runs to ST; BEL also accepted after OSC
		osc := c == ']'
		for i++; i < len(s); i++ {
			if c := s[i]; c == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 1
			} else if osc && c == '\a' {
				return i
			}
		}
		return i
	case 0x20 <= c && c <= 0x2F:
		// intermediate bytes, then one final byte
		for i++; i < len(s); i++ {
			if c := s[i]; c > 0x2F {
				break
			}
		}
		return i
	default:
		return i
	}
}

// PrintableWidth returns the number of terminal cells the string's graphic
// characters occupy, ignoring any embedded escape and control sequences.
// East Asian wide runes count for two cells.
func PrintableWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}

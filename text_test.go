package codedchars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	codedchars "github.com/Trehinos/coded-chars"
)

func TestStrip(t *testing.T) {
	for _, tc := range []struct {
		name   string
		in     string
		expect string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"sgr", "\x1b[31mred\x1b[0m", "red"},
		{"multi param sgr", "\x1b[38;5;42;1mtext\x1b[m", "text"},
		{"cursor motion", "a\x1b[2Ab\x1b[24;80Hc", "abc"},
		{"intermediate byte", "a\x1b[2 @b", "ab"},
		{"bare escape sequence", "a\x1bcb", "ab"},
		{"c1 two byte form", "a\x1bEb", "ab"},
		{"osc string bel", "a\x1b]0;title\ab", "ab"},
		{"osc string st", "a\x1b]0;title\x1b\\b", "ab"},
		{"dcs string", "a\x1bPq#0\x1b\\b", "ab"},
		{"apc string", "a\x1b_payload\x1b\\b", "ab"},
		{"keeps format effectors", "a\tb\nc\rd", "a\tb\nc\rd"},
		{"drops other c0", "a\x07b\x00c\x7fd", "abcd"},
		{"trailing escape", "ab\x1b", "ab"},
		{"unterminated csi", "ab\x1b[12;3", "ab"},
		{"unterminated osc", "ab\x1b]0;title", "ab"},
		{"wide runes pass through", "日本\x1b[1m語", "日本語"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, codedchars.Strip(tc.in))
		})
	}
}

func TestStrip_roundTrip(t *testing.T) {
	var b codedchars.Buffer
	b.WriteSeq(codedchars.SetPosition(5, 1))
	b.WriteWrapped("status", codedchars.Rendition{}.Bold().Foreground(codedchars.Green))
	b.WriteESC(codedchars.NEL)
	b.WriteString("done")
	assert.Equal(t, "statusdone", codedchars.Strip(b.String()))
}

func TestPrintableWidth(t *testing.T) {
	for _, tc := range []struct {
		name   string
		in     string
		expect int
	}{
		{"plain", "hello", 5},
		{"empty", "", 0},
		{"styled", "\x1b[31;1mwarn\x1b[0m", 4},
		{"east asian wide", "日本語", 6},
		{"mixed", "\x1b[4m日本\x1b[0m!", 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, codedchars.PrintableWidth(tc.in))
		})
	}
}

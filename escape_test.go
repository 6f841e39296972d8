package codedchars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	codedchars "github.com/Trehinos/coded-chars"
)

func TestEscape_AppendTo(t *testing.T) {
	for _, tc := range []struct {
		id     codedchars.Escape
		expect string
	}{
		{codedchars.Escape(0x07), "\a"},
		{codedchars.Escape(0x1B), "\x1b"},
		{codedchars.NEL, "\x1bE"},
		{codedchars.HTS, "\x1bH"},
		{codedchars.RI, "\x1bM"},
		{codedchars.ST, "\x1b\\"},
		{codedchars.OSC, "\x1b]"},
		{codedchars.APC, "\x1b_"},
		{codedchars.RIS, "\x1bc"},
		{codedchars.LS2, "\x1bn"},
		{codedchars.CUU, "\x1b[A"},
		{codedchars.SGR, "\x1b[m"},
		{codedchars.DSR, "\x1b[n"},
	} {
		t.Run(tc.id.String(), func(t *testing.T) {
			p := tc.id.AppendTo(nil)
			assert.Equal(t, tc.expect, string(p), "expected code string")
			assert.Equal(t, len(p), tc.id.Size(), "expected size")
		})
	}
}

func TestEscape_String(t *testing.T) {
	for _, tc := range []struct {
		id     codedchars.Escape
		expect string
	}{
		{codedchars.Escape(0x00), "^@"},
		{codedchars.Escape(0x07), "^G"},
		{codedchars.Escape(0x1B), "^["},
		{codedchars.Escape(0x7F), "^?"},
		{codedchars.NEL, "<NEL>"},
		{codedchars.APC, "<APC>"},
		{codedchars.RIS, "ESC+c"},
		{codedchars.CUP, "CSI+H"},
		{codedchars.Escape('x'), `'x'`},
	} {
		assert.Equal(t, tc.expect, tc.id.String())
	}
}

func TestEscape_names(t *testing.T) {
	if b, ok := codedchars.CUP.CSI(); assert.True(t, ok) {
		assert.Equal(t, byte('H'), b)
	}
	if b, ok := codedchars.RIS.ESC(); assert.True(t, ok) {
		assert.Equal(t, byte('c'), b)
	}
	_, ok := codedchars.RIS.CSI()
	assert.False(t, ok)
	_, ok = codedchars.CUP.ESC()
	assert.False(t, ok)
	assert.True(t, codedchars.CUP.IsEscape())
	assert.False(t, codedchars.Escape('x').IsEscape())
}

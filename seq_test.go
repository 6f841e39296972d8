package codedchars_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	codedchars "github.com/Trehinos/coded-chars"
)

var seqTestCases = []struct {
	name     string
	seq      codedchars.Seq
	expected string
}{
	{`^G""`, codedchars.Escape(0x07).With(), "\a"},
	{`<NEL>""`, codedchars.NEL.With(), "\x1bE"},
	{`ESC+c""`, codedchars.RIS.With(), "\x1bc"},

	{`CSI+t" "`, codedchars.CSI('t').With(' '), "\x1b[ t"},
	{`CSI+t" !"`, codedchars.CSI('t').With(' ', '!'), "\x1b[ !t"},
	{`CSI+t" !\""`, codedchars.CSI('t').With(' ', '!', '"'), "\x1b[ !\"t"},

	{`CSI+t"12"`, codedchars.CSI('t').WithInts(12), "\x1b[12t"},
	{`CSI+t"12;34"`, codedchars.CSI('t').WithInts(12, 34), "\x1b[12;34t"},
	{`CSI+t"12;34;56"`, codedchars.CSI('t').WithInts(12, 34, 56), "\x1b[12;34;56t"},
	{`CSI+t"12;34;56;78"`, codedchars.CSI('t').WithInts(12, 34, 56, 78), "\x1b[12;34;56;78t"},
	{`CSI+t"12;34;56;78;90"`, codedchars.CSI('t').WithInts(12, 34, 56, 78, 90), "\x1b[12;34;56;78;90t"},

	// intermediate bytes follow the parameters
	{`CSI+t"12;34 "`, codedchars.CSI('t').With(' ').WithInts(12, 34), "\x1b[12;34 t"},
	{`CSI+d"9 "`, codedchars.TSR.WithInts(9), "\x1b[9 d"},

	// omitted parameters hold their field positions, except trailing ones
	{`CSI+t"5;;1"`, codedchars.CSI('t').WithParams(codedchars.P(5), codedchars.None, codedchars.P(1)), "\x1b[5;;1t"},
	{`CSI+t";1"`, codedchars.CSI('t').WithParams(codedchars.None, codedchars.P(1)), "\x1b[;1t"},
	{`CSI+t"5"`, codedchars.CSI('t').WithParams(codedchars.P(5), codedchars.None), "\x1b[5t"},
	{`CSI+t""`, codedchars.CSI('t').WithParams(codedchars.None, codedchars.None), "\x1b[t"},
}

func TestSeq(t *testing.T) {
	for _, tc := range seqTestCases {
		t.Run(strconv.Quote(tc.name), func(t *testing.T) {
			p := tc.seq.AppendTo(nil)
			assert.Equal(t, tc.name, tc.seq.String(), "expected string name")
			assert.Equal(t, tc.expected, string(p), "expected code string")
			assert.True(t, len(p) <= tc.seq.Size(), "expected size bound")
		})
	}
}

func TestSeq_writeTo(t *testing.T) {
	for _, tc := range seqTestCases {
		t.Run(strconv.Quote(tc.name), func(t *testing.T) {
			var buf bytes.Buffer
			n, err := tc.seq.WriteTo(&buf)
			assert.NoError(t, err)
			assert.Equal(t, int64(len(tc.expected)), n)
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestSeq_repeatable(t *testing.T) {
	seq := codedchars.SGR.WithInts(31, 1).With(' ')
	assert.Equal(t, string(seq.AppendTo(nil)), string(seq.AppendTo(nil)),
		"rendering must not mutate the sequence")
}

func TestSeq_invalid(t *testing.T) {
	assert.Panics(t, func() { codedchars.Escape('A').With() },
		"a normal rune is not a sequence identifier")
	assert.Panics(t, func() { codedchars.RIS.WithInts(1) },
		"ESC sequences carry no parameters")
	assert.Panics(t, func() { codedchars.NEL.With(' ') },
		"C1 controls carry no intermediate bytes")
	assert.NotPanics(t, func() { codedchars.NEL.With() },
		"a C1 control is still a valid zero-argument sequence")
	assert.Panics(t, func() { codedchars.P(-1) },
		"parameter values are non-negative")
}

func BenchmarkSeq_AppendTo(b *testing.B) {
	p := make([]byte, 0, 64)
	seq := codedchars.CUP.WithInts(24, 80)
	for i := 0; i < b.N; i++ {
		p = seq.AppendTo(p[:0])
	}
}

package codedchars_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	codedchars "github.com/Trehinos/coded-chars"
)

func TestBuffer(t *testing.T) {
	var b codedchars.Buffer

	n := b.WriteESC(codedchars.NEL, codedchars.RIS)
	assert.Equal(t, len("\x1bE\x1bc"), n)

	n = b.WriteSeq(
		codedchars.SetPosition(1, 1),
		codedchars.Seq{}, // zero sequences are skipped
		codedchars.CursorForward(3))
	assert.Equal(t, len("\x1b[1;1H\x1b[3C"), n)

	n = b.WriteSGR(codedchars.Rendition{}.Bold())
	assert.Equal(t, len("\x1b[1m"), n)

	_, _ = b.WriteString("ok")

	assert.Equal(t, "\x1bE\x1bc\x1b[1;1H\x1b[3C\x1b[1mok", b.String())
	assert.Equal(t, b.Len(), len(b.Bytes()))

	var out bytes.Buffer
	w, err := b.WriteTo(&out)
	assert.NoError(t, err)
	assert.Equal(t, int64(out.Len()), w)
	assert.Equal(t, 0, b.Len(), "buffer drains on WriteTo")

	b.Reset()
	n = b.WriteWrapped("hi", codedchars.Rendition{}.Negative())
	assert.Equal(t, "\x1b[7mhi\x1b[0m", b.String())
	assert.Equal(t, b.Len(), n)
}

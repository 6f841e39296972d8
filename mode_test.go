package codedchars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	codedchars "github.com/Trehinos/coded-chars"
)

func TestMode(t *testing.T) {
	for _, tc := range []struct {
		name string
		seq  codedchars.Seq
		code string
	}{
		{"set insertion", codedchars.Mode{}.Insertion().Set(), "\x1b[4h"},
		{"reset insertion", codedchars.Mode{}.Insertion().Reset(), "\x1b[4l"},
		{"set keyboard lock", codedchars.Mode{}.KeyboardLock().Set(), "\x1b[2h"},
		{"reset local echo", codedchars.Mode{}.SendReceive().Reset(), "\x1b[12l"},
		{"set several", codedchars.Mode{}.Insertion().SendReceive().Erasure().Set(), "\x1b[4;12;6h"},
		{"combination modes", codedchars.Mode{}.GraphicRenditionCombination().ZeroDefault().Set(), "\x1b[21;22h"},
		{"empty set", codedchars.Mode{}.Set(), "\x1b[h"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, string(tc.seq.AppendTo(nil)))
		})
	}
}

func TestMode_valueSemantics(t *testing.T) {
	base := codedchars.Mode{}.Insertion()
	a := base.KeyboardLock()
	b := base.Erasure()
	assert.Equal(t, "\x1b[4;2h", string(a.Set().AppendTo(nil)))
	assert.Equal(t, "\x1b[4;6h", string(b.Set().AppendTo(nil)))
	assert.Equal(t, "\x1b[4h", string(base.Set().AppendTo(nil)),
		"extending a mode list must not mutate its base")
}

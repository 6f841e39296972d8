package codedchars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendParams(t *testing.T) {
	for _, tc := range []struct {
		name   string
		params []Param
		expect string
	}{
		{"empty", nil, ""},
		{"single", []Param{P(5)}, "5"},
		{"zero is present", []Param{P(0)}, "0"},
		{"pair", []Param{P(24), P(80)}, "24;80"},
		{"interior omitted", []Param{P(5), None, P(1)}, "5;;1"},
		{"leading omitted", []Param{None, P(1)}, ";1"},
		{"trailing omitted elided", []Param{P(5), None}, "5"},
		{"all omitted", []Param{None, None, None}, ""},
		{"large value", []Param{P(1<<31 - 1)}, "2147483647"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := appendParams(nil, tc.params)
			assert.Equal(t, tc.expect, string(p))
			assert.True(t, len(p) <= paramsSize(tc.params), "size bound")
		})
	}
}

func TestParam(t *testing.T) {
	assert.False(t, None.Present())
	assert.Equal(t, 0, None.Value())
	assert.True(t, P(0).Present())
	assert.Equal(t, 0, P(0).Value())
	assert.Equal(t, 42, P(42).Value())
}

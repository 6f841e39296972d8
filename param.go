package codedchars

import "strconv"

// Param is a single numeric parameter of a control sequence. The zero value
// None is the omitted parameter: it encodes as an empty field, leaving the
// receiving terminal to apply the function's documented default for that
// position. Present values are constructed with P.
type Param uint32

const (
	paramPresent Param = 1 << 31
	paramMask          = paramPresent - 1
)

// None is the omitted parameter.
const None Param = 0

// P returns a present parameter carrying the value n. Panics if n is
// negative: ECMA-48 parameter values are non-negative by definition, and an
// omitted parameter is None, never a negative sentinel.
func P(n int) Param {
	if n < 0 {
		panic("negative control sequence parameter")
	}
	return paramPresent | Param(n)&paramMask
}

// Present returns true if the parameter carries a value.
func (p Param) Present() bool { return p&paramPresent != 0 }

// Value returns the carried value, or 0 for an omitted parameter.
func (p Param) Value() int { return int(p & paramMask) }

// appendParams encodes a parameter list as ';'-joined decimal fields.
// Leading and interior omitted parameters are preserved as empty fields so
// that later parameters keep their positions; trailing omitted parameters
// are elided, since the default-fill rule makes them redundant. An
// all-omitted list encodes nothing at all.
func appendParams(p []byte, params []Param) []byte {
	n := len(params)
	for n > 0 && !params[n-1].Present() {
		n--
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			p = append(p, ';')
		}
		if params[i].Present() {
			p = strconv.AppendInt(p, int64(params[i].Value()), 10)
		}
	}
	return p
}

// paramsSize returns an upper bound on the encoded size of a parameter list.
func paramsSize(params []Param) int {
	if len(params) == 0 {
		return 0
	}
	return 11 * len(params)
}

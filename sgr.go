package codedchars

// Color is a single SGR color value, either one of the 256 palette indexes
// or a 24-bit RGB value distinguished by an internal flag bit.
type Color uint32

const color24 Color = 1 << 24

// The 8 standard palette colors and their bright variants.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Color256 returns the color at the given 256-color palette index. The
// first 16 indexes are the named standard and bright colors.
func Color256(n uint8) Color { return Color(n) }

// RGB returns a 24-bit direct color.
func RGB(r, g, b uint8) Color {
	return color24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB returns the color's red, green, and blue components; palette indexes
// report their index in r with g and b zero.
func (c Color) RGB() (r, g, b uint8, is24 bool) {
	if c&color24 == 0 {
		return uint8(c), 0, 0, false
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c), true
}

// appendFG appends the color's foreground selection parameters: the
// classic single codes for the first 16 colors, the 38;5 palette form and
// the 38;2 direct form otherwise.
func (c Color) appendFG(params []Param) []Param {
	switch {
	case c&color24 != 0:
		return append(params, P(38), P(2),
			P(int(c>>16&0xFF)), P(int(c>>8&0xFF)), P(int(c&0xFF)))
	case c < 8:
		return append(params, P(30+int(c)))
	case c < 16:
		return append(params, P(90+int(c)-8))
	default:
		return append(params, P(38), P(5), P(int(c&0xFF)))
	}
}

// appendBG is appendFG shifted to the background code space.
func (c Color) appendBG(params []Param) []Param {
	switch {
	case c&color24 != 0:
		return append(params, P(48), P(2),
			P(int(c>>16&0xFF)), P(int(c>>8&0xFF)), P(int(c&0xFF)))
	case c < 8:
		return append(params, P(40+int(c)))
	case c < 16:
		return append(params, P(100+int(c)-8))
	default:
		return append(params, P(48), P(5), P(int(c&0xFF)))
	}
}

// Rendition accumulates SGR graphic rendition aspects in the order the
// caller selects them; that order is preserved on the wire, so later
// aspects override earlier ones exactly as a terminal would apply them.
// The zero value is the empty rendition; each method returns a copy with
// more codes appended, so intermediate values may be retained and extended
// independently.
//
//	buf.WriteSGR(Rendition{}.Foreground(Red).Bold().Underlined())
type Rendition struct {
	params []Param
}

func (r Rendition) with(codes ...int) Rendition {
	params := make([]Param, len(r.params), len(r.params)+len(codes))
	copy(params, r.params)
	for _, code := range codes {
		params = append(params, P(code))
	}
	r.params = params
	return r
}

// Default adds code 0, cancelling every preceding aspect, this rendition's
// own included.
func (r Rendition) Default() Rendition { return r.with(0) }

// Bold adds increased intensity.
func (r Rendition) Bold() Rendition { return r.with(1) }

// Faint adds decreased intensity.
func (r Rendition) Faint() Rendition { return r.with(2) }

// Italicized adds italics.
func (r Rendition) Italicized() Rendition { return r.with(3) }

// Underlined adds single underline.
func (r Rendition) Underlined() Rendition { return r.with(4) }

// SlowBlink adds blinking at less than 150 per minute.
func (r Rendition) SlowBlink() Rendition { return r.with(5) }

// RapidBlink adds blinking at 150 per minute or more.
func (r Rendition) RapidBlink() Rendition { return r.with(6) }

// Negative adds negative (reverse video) image.
func (r Rendition) Negative() Rendition { return r.with(7) }

// Concealed adds concealed characters.
func (r Rendition) Concealed() Rendition { return r.with(8) }

// CrossedOut adds crossed-out characters.
func (r Rendition) CrossedOut() Rendition { return r.with(9) }

// Font selects alternative font n of 1 through 9, or the primary font for
// n of 0. Panics on any other value.
func (r Rendition) Font(n int) Rendition {
	if n < 0 || n > 9 {
		panic("font selection out of range")
	}
	return r.with(10 + n)
}

// Fraktur adds the Fraktur (Gothic) variant.
func (r Rendition) Fraktur() Rendition { return r.with(20) }

// DoublyUnderlined adds double underline.
func (r Rendition) DoublyUnderlined() Rendition { return r.with(21) }

// NormalIntensity cancels Bold and Faint.
func (r Rendition) NormalIntensity() Rendition { return r.with(22) }

// NotItalicized cancels Italicized and Fraktur.
func (r Rendition) NotItalicized() Rendition { return r.with(23) }

// NotUnderlined cancels Underlined and DoublyUnderlined.
func (r Rendition) NotUnderlined() Rendition { return r.with(24) }

// Steady cancels SlowBlink and RapidBlink.
func (r Rendition) Steady() Rendition { return r.with(25) }

// Positive cancels Negative.
func (r Rendition) Positive() Rendition { return r.with(27) }

// Revealed cancels Concealed.
func (r Rendition) Revealed() Rendition { return r.with(28) }

// NotCrossedOut cancels CrossedOut.
func (r Rendition) NotCrossedOut() Rendition { return r.with(29) }

// Foreground selects the display (foreground) color.
func (r Rendition) Foreground(c Color) Rendition {
	params := make([]Param, len(r.params), len(r.params)+5)
	copy(params, r.params)
	r.params = c.appendFG(params)
	return r
}

// DefaultForeground restores the implementation-defined display color.
func (r Rendition) DefaultForeground() Rendition { return r.with(39) }

// Background selects the background color.
func (r Rendition) Background(c Color) Rendition {
	params := make([]Param, len(r.params), len(r.params)+5)
	copy(params, r.params)
	r.params = c.appendBG(params)
	return r
}

// DefaultBackground restores the implementation-defined background color.
func (r Rendition) DefaultBackground() Rendition { return r.with(49) }

// Framed adds framed characters.
func (r Rendition) Framed() Rendition { return r.with(51) }

// Encircled adds encircled characters.
func (r Rendition) Encircled() Rendition { return r.with(52) }

// Overlined adds overlined characters.
func (r Rendition) Overlined() Rendition { return r.with(53) }

// NotFramed cancels Framed and Encircled.
func (r Rendition) NotFramed() Rendition { return r.with(54) }

// NotOverlined cancels Overlined.
func (r Rendition) NotOverlined() Rendition { return r.with(55) }

// IdeogramUnderline adds ideogram underline or right side line.
func (r Rendition) IdeogramUnderline() Rendition { return r.with(60) }

// IdeogramDoubleUnderline adds ideogram double underline or double right
// side line.
func (r Rendition) IdeogramDoubleUnderline() Rendition { return r.with(61) }

// IdeogramOverline adds ideogram overline or left side line.
func (r Rendition) IdeogramOverline() Rendition { return r.with(62) }

// IdeogramDoubleOverline adds ideogram double overline or double left side
// line.
func (r Rendition) IdeogramDoubleOverline() Rendition { return r.with(63) }

// IdeogramStress adds ideogram stress marking.
func (r Rendition) IdeogramStress() Rendition { return r.with(64) }

// NoIdeogram cancels all ideogram aspects.
func (r Rendition) NoIdeogram() Rendition { return r.with(65) }

// Seq returns the SGR control sequence selecting all accumulated aspects.
// The empty rendition encodes as an explicit CSI 0 m rather than the bare
// CSI m shorthand, so that what was meant is what is written.
func (r Rendition) Seq() Seq {
	if len(r.params) == 0 {
		return SGR.WithInts(0)
	}
	return SGR.WithParams(r.params...)
}

// SGRReset is the rendition-clearing control sequence, CSI 0 m.
var SGRReset = SGR.WithInts(0)

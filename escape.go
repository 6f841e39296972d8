package codedchars

import "fmt"

// Escape identifies an ANSI control code, escape sequence, or control
// sequence as a Unicode codepoint.
//
// C0 and C1 controls are represented using their natural Unicode codepoints:
//
//	U+0000-U+001F: C0 controls
//	U+0080-U+009F: C1 controls
//
// The region U+EF00 through U+EFFF within the Private Use Area of the Basic
// Multilingual Plane is used to identify ANSI escape and control sequences.
//
// Escape functions are mapped into the range U+EF00-U+EF7F:
//
//	U+EF20-U+EF2F: character set selection functions
//	U+EF30-U+EF3F: private ESCape-sequence functions
//	U+EF60-U+EF7E: standard ESCape-sequence functions
//
// Control functions are mapped into the range U+EF80-U+EFFF:
//
//	U+EFC0-U+EFFE: CSI functions
//
// For example the control sequence for CUrsor Backwards (CUB) is CSI+D,
// encoded as "\x1b[D" and identified by U+EFC4 = U+EF80 + 'D'.
type Escape rune

// ESC returns an ESCape sequence identifier named by the given byte.
func ESC(b byte) Escape { return Escape(0xEF00 | 0x7F&rune(b)) }

// CSI returns a CSI control sequence identifier named by the given byte.
func CSI(b byte) Escape { return Escape(0xEF80 | 0x7F&rune(b)) }

// IsEscape returns true if the escape value isn't a normal rune; that is if
// it's in the range U+EF00 thru U+EFFF.
func (id Escape) IsEscape() bool { return 0xEF00 <= id && id <= 0xEFFF }

// ESC returns the byte name of the ESCape sequence identified by this
// escape value, if any; returns 0 and false otherwise.
func (id Escape) ESC() (byte, bool) {
	if 0xEF00 < id && id < 0xEF7F {
		return byte(id & 0x7F), true
	}
	return 0, false
}

// CSI returns the byte name of the CSI control sequence identified by this
// escape value, if any; returns 0 and false otherwise.
func (id Escape) CSI() (byte, bool) {
	if 0xEF80 < id && id < 0xEFFF {
		return byte(id & 0x7F), true
	}
	return 0, false
}

// AppendTo appends the escape code to the given byte slice. C0 controls
// encode as their single byte, C1 controls as the 7-bit-safe two-byte ESC Fe
// form, escape sequences as ESC plus their name byte, and CSI functions as
// ESC '[' plus their name byte.
func (id Escape) AppendTo(p []byte) []byte {
	switch {
	case 0x0000 < id && id <= 0x001F: // C0 controls
		return append(p, byte(id&0x1F))
	case 0x0080 <= id && id <= 0x009F: // C1 controls
		return append(p, '\x1b', byte(0x40|id&0x1F))
	case 0xEF20 < id && id < 0xEF7F: // ESC + byte
		return append(p, '\x1b', byte(id&0x7F))
	case 0xEF80 < id && id < 0xEFFF: // CSI + name
		return append(p, '\x1b', '[', byte(id&0x7F))
	}
	return p
}

// Size returns the number of bytes required to encode the escape.
func (id Escape) Size() int {
	switch {
	case 0x0000 < id && id <= 0x001F: // C0 controls
		return 1
	case 0x0080 <= id && id <= 0x009F: // C1 controls
		return 2
	case 0xEF20 < id && id < 0xEF7F: // ESC + byte
		return 2
	case 0xEF80 < id && id < 0xEFFF: // CSI + name
		return 3
	}
	return 0
}

// C1Names provides representation names for the C1 extended-ASCII control
// block.
var C1Names = []string{
	"<PAD>",
	"<HOP>",
	"<BPH>",
	"<NBH>",
	"<IND>",
	"<NEL>",
	"<SSA>",
	"<ESA>",
	"<HTS>",
	"<HTJ>",
	"<VTS>",
	"<PLD>",
	"<PLU>",
	"<RI>",
	"<SS2>",
	"<SS3>",
	"<DCS>",
	"<PU1>",
	"<PU2>",
	"<STS>",
	"<CCH>",
	"<MW>",
	"<SPA>",
	"<EPA>",
	"<SOS>",
	"<SGC>",
	"<SCI>",
	"<CSI>",
	"<ST>",
	"<OSC>",
	"<PM>",
	"<APC>",
}

// String returns a string representation of the identified control, escape
// sequence, or control sequence: C0 controls are represented with caret
// notation, C1 controls mnemonically, escape sequences as "ESC+b", and
// control sequences as "CSI+b". All other codepoints (albeit invalid Escape
// values) are represented using normal quoted-rune notation.
func (id Escape) String() string {
	switch {
	case id <= 0x1F:
		return "^" + string(byte(0x40^id))
	case id == 0x7F:
		return "^?"
	case 0x80 <= id && id <= 0x9F:
		return C1Names[id&^0x80]
	case 0xEF20 <= id && id <= 0xEF7E:
		return fmt.Sprintf("ESC+%s", string(byte(id)))
	case 0xEFC0 <= id && id <= 0xEFFE:
		return fmt.Sprintf("CSI+%s", string(byte(0x7F&id)))
	default:
		return fmt.Sprintf("%q", rune(id))
	}
}

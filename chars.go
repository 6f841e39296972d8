package codedchars

// c0 lists the C0 control characters of ECMA-48, each by its single
// canonical byte value.
type c0 struct {
	NUL byte // null; media-fill or time-fill
	SOH byte // start of heading
	STX byte // start of text, end of heading
	ETX byte // end of text
	EOT byte // end of transmission
	ENQ byte // enquiry; request for a response from a receiver
	ACK byte // acknowledge; affirmative response to the sender
	BEL byte // bell; calls for attention
	BS  byte // backspace
	HT  byte // horizontal (character) tabulation
	LF  byte // line feed
	VT  byte // vertical (line) tabulation
	FF  byte // form feed
	CR  byte // carriage return
	SO  byte // shift out; LS1 in 8-bit environments
	SI  byte // shift in; LS0 in 8-bit environments
	DLE byte // data link escape
	DC1 byte // device control one (X-ON when used for flow control)
	DC2 byte // device control two
	DC3 byte // device control three (X-OFF when used for flow control)
	DC4 byte // device control four
	NAK byte // negative acknowledge
	SYN byte // synchronous idle
	ETB byte // end of transmission block
	CAN byte // cancel; preceding data is in error
	EM  byte // end of medium
	SUB byte // substitute for an invalid character
	ESC byte // escape; starts all escape and control sequences
	FS  byte // file separator (IS4)
	GS  byte // group separator (IS3)
	RS  byte // record separator (IS2)
	US  byte // unit separator (IS1)
	SP  byte // space
	DEL byte // delete
}

// C0 is the closed, compile-time-fixed table of C0 control characters
// (plus SP and DEL). This is the entire 7-bit primary control set; there is
// no runtime construction.
var C0 = c0{
	NUL: 0x00,
	SOH: 0x01,
	STX: 0x02,
	ETX: 0x03,
	EOT: 0x04,
	ENQ: 0x05,
	ACK: 0x06,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	SO:  0x0E,
	SI:  0x0F,
	DLE: 0x10,
	DC1: 0x11,
	DC2: 0x12,
	DC3: 0x13,
	DC4: 0x14,
	NAK: 0x15,
	SYN: 0x16,
	ETB: 0x17,
	CAN: 0x18,
	EM:  0x19,
	SUB: 0x1A,
	ESC: 0x1B,
	FS:  0x1C,
	GS:  0x1D,
	RS:  0x1E,
	US:  0x1F,
	SP:  0x20,
	DEL: 0x7F,
}

package codedchars

import (
	"fmt"
	"io"
)

const (
	numStaticBytes  = 2
	numStaticParams = 3
)

// Seq represents an escape or control sequence, led either by an ESC or CSI
// identifier, ready for writing to some output. May only be constructed
// through the Escape.With family of methods, so a Seq is always valid per
// the ECMA-48 grammar: introducer, parameter bytes, intermediate bytes, and
// exactly one final byte.
type Seq struct {
	id Escape

	numBytes  int
	numParams int

	argBytes  [numStaticBytes]byte
	argParams [numStaticParams]Param

	argExtraBytes  []byte
	argExtraParams []Param
}

func (id Escape) seq() Seq {
	switch {
	case 0x0000 < id && id < 0x001F,
		0x0080 <= id && id <= 0x009F,
		0xEF00 < id && id < 0xEFFF:
		return Seq{id: id}
	}
	panic(fmt.Sprintf("not a Control or Escape rune: %U", id))
}

// With constructs a sequence with this identifier and the given
// intermediate byte(s).
// Panics if the escape id is a normal non-Escape rune.
// See Seq.With for details.
func (id Escape) With(arg ...byte) Seq { return id.seq().With(arg...) }

// WithInts constructs a sequence with this identifier and the given integer
// parameter(s).
// Panics if the escape id is a normal non-Escape rune.
// See Seq.WithParams for details.
func (id Escape) WithInts(args ...int) Seq { return id.seq().WithInts(args...) }

// WithParams constructs a sequence with this identifier and the given
// parameter(s), which may be omitted (None).
// Panics if the escape id is a normal non-Escape rune.
// See Seq.WithParams for details.
func (id Escape) WithParams(args ...Param) Seq { return id.seq().WithParams(args...) }

// ID returns the sequence's Escape identifier.
func (seq Seq) ID() Escape { return seq.id }

// With returns a copy of the sequence with the given intermediate bytes
// added. Intermediate bytes are written between any parameters and the
// final byte, as ECMA-48 requires.
// Panics if the sequence identifier is a C0 or C1 control, since those
// encode as bare control codes with no intermediate slot.
func (seq Seq) With(arg ...byte) Seq {
	if len(arg) == 0 {
		return seq
	}
	if 0xEF00 >= seq.id || seq.id >= 0xEFFF {
		panic("may only add intermediate bytes to an ESC or CSI sequence")
	}
	n := seq.numBytes
	if extraNeed := n + len(arg) - numStaticBytes; extraNeed > 0 {
		argExtraBytes := make([]byte, 0, extraNeed)
		if seq.argExtraBytes != nil {
			argExtraBytes = append(argExtraBytes, seq.argExtraBytes...)
		}
		seq.argExtraBytes = argExtraBytes
	}
	i := 0
	for ; i < len(arg) && n < numStaticBytes; i++ {
		seq.argBytes[n] = arg[i]
		n++
	}
	for ; i < len(arg); i++ {
		seq.argExtraBytes = append(seq.argExtraBytes, arg[i])
		n++
	}
	seq.numBytes = n
	return seq
}

// WithInts returns a copy of the sequence with the given integer values
// added as present parameters. See Seq.WithParams.
func (seq Seq) WithInts(args ...int) Seq {
	if len(args) == 0 {
		return seq
	}
	params := make([]Param, len(args))
	for i, arg := range args {
		params[i] = P(arg)
	}
	return seq.WithParams(params...)
}

// WithParams returns a copy of the sequence with the given parameters
// added. Parameters are written after the introducer in base-10 form,
// separated by ';' bytes; omitted (None) parameters encode as empty fields.
// Panics if the sequence identifier is not a CSI function, since ESC
// sequences carry no parameters.
func (seq Seq) WithParams(args ...Param) Seq {
	if len(args) == 0 {
		return seq
	}
	if 0xEF80 >= seq.id || seq.id >= 0xEFFF {
		panic("may only provide parameters to a CSI sequence")
	}
	n := seq.numParams
	if extraNeed := n + len(args) - numStaticParams; extraNeed > 0 {
		argExtraParams := make([]Param, 0, extraNeed)
		if seq.argExtraParams != nil {
			argExtraParams = append(argExtraParams, seq.argExtraParams...)
		}
		seq.argExtraParams = argExtraParams
	}
	i := 0
	for ; i < len(args) && n < numStaticParams; i++ {
		seq.argParams[n] = args[i]
		n++
	}
	for ; i < len(args); i++ {
		seq.argExtraParams = append(seq.argExtraParams, args[i])
		n++
	}
	seq.numParams = n
	return seq
}

// AppendTo appends the encoded sequence to the given byte slice.
func (seq Seq) AppendTo(p []byte) []byte {
	switch id := seq.id; {
	case id == 0:
	case 0x0000 < id && id < 0x001F: // C0 controls
		p = append(p, byte(id))
	case 0x0080 <= id && id <= 0x009F: // C1 controls
		p = append(p, '\x1b', byte(0x40|id&0x1F))
	case 0xEF80 < id && id < 0xEFFF: // CSI
		p = append(p, "\x1b["...)
		p = seq.appendArgParams(p)
		p = seq.appendArgBytes(p)
		p = append(p, byte(id&0x7F))
	case 0xEF00 < id && id < 0xEF7F: // ESC
		p = append(p, '\x1b')
		p = seq.appendArgBytes(p)
		p = append(p, byte(id&0x7F))
	default:
		panic("inconceivable: should not be able to construct a Seq like that")
	}
	return p
}

func (seq Seq) appendArgBytes(p []byte) []byte {
	switch n := seq.numBytes; n {
	case 0:
		return p
	case 1:
		return append(p, seq.argBytes[0])
	case 2:
		return append(p, seq.argBytes[:2]...)
		// NOTE need to add more cases if we increase numStaticBytes
	}
	p = append(p, seq.argBytes[:2]...)
	return append(p, seq.argExtraBytes...)
}

func (seq Seq) appendArgParams(p []byte) []byte {
	np := seq.numParams
	if np == 0 {
		return p
	}
	if np <= numStaticParams {
		return appendParams(p, seq.argParams[:np])
	}
	params := make([]Param, 0, np)
	params = append(params, seq.argParams[:numStaticParams]...)
	params = append(params, seq.argExtraParams...)
	return appendParams(p, params)
}

// Size returns an upper bound on the number of bytes required to encode the
// sequence.
func (seq Seq) Size() int {
	if seq.id == 0 {
		return 0
	}
	return 3 + seq.numBytes + 11*seq.numParams
}

// WriteTo writes the encoded sequence to the given writer, implementing
// io.WriterTo. The write is direct and unbuffered; any error is the
// writer's own.
func (seq Seq) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(seq.AppendTo(make([]byte, 0, seq.Size())))
	return int64(n), err
}

func (seq Seq) String() string {
	if seq.id == 0 && seq.numBytes == 0 && seq.numParams == 0 {
		return ""
	}
	p := make([]byte, 0, seq.numBytes+11*seq.numParams)
	p = seq.appendArgParams(p)
	p = seq.appendArgBytes(p)
	return fmt.Sprintf("%v%q", seq.id, p)
}

package codedchars

import (
	"bytes"
	"io"
)

// Buffer implements a deferred buffer of control sequence output, providing
// convenience methods for writing escape codes, control sequences, and
// graphic renditions alongside ordinary text.
type Buffer struct {
	buf bytes.Buffer
}

// Len returns the number of unwritten bytes in the buffer.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Grow the internal buffer to have room for at least n bytes.
func (b *Buffer) Grow(n int) {
	b.buf.Grow(n)
}

// Reset the internal buffer.
func (b *Buffer) Reset() {
	b.buf.Reset()
}

// Bytes returns the accumulated bytes; valid only until the next write.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// String returns the accumulated bytes as a string.
func (b *Buffer) String() string {
	return b.buf.String()
}

// WriteTo writes all bytes from the internal buffer to the given io.Writer.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	n, err = b.buf.WriteTo(w)
	return n, err
}

// WriteESC writes one or more escape codes to the internal buffer,
// returning the number of bytes written.
func (b *Buffer) WriteESC(ids ...Escape) int {
	need := 0
	for i := range ids {
		need += ids[i].Size()
	}
	b.buf.Grow(need)
	p := b.buf.Bytes()
	p = p[len(p):]
	for i := range ids {
		p = ids[i].AppendTo(p)
	}
	n, _ := b.buf.Write(p)
	return n
}

// WriteSeq writes one or more control sequences to the internal buffer,
// returning the number of bytes written. Skips any zero sequences provided.
func (b *Buffer) WriteSeq(seqs ...Seq) int {
	need := 0
	for i := range seqs {
		if seqs[i].id != 0 {
			need += seqs[i].Size()
		}
	}
	b.buf.Grow(need)
	p := b.buf.Bytes()
	p = p[len(p):]
	for i := range seqs {
		if seqs[i].id != 0 {
			p = seqs[i].AppendTo(p)
		}
	}
	n, _ := b.buf.Write(p)
	return n
}

// WriteSGR writes one or more graphic rendition selections to the internal
// buffer, returning the number of bytes written. An empty Rendition writes
// the explicit reset, per Rendition.Seq.
func (b *Buffer) WriteSGR(rs ...Rendition) int {
	n := 0
	for i := range rs {
		n += b.WriteSeq(rs[i].Seq())
	}
	return n
}

// WriteWrapped writes the given string bracketed by a graphic rendition
// selection before it and the rendition-clearing sequence after it, as
// Wrap renders.
func (b *Buffer) WriteWrapped(s string, r Rendition) int {
	n := b.WriteSGR(r)
	m, _ := b.buf.WriteString(s)
	n += m
	n += b.WriteSeq(SGRReset)
	return n
}

// Write to the internal buffer.
func (b *Buffer) Write(p []byte) (n int, err error) {
	return b.buf.Write(p)
}

// WriteString to the internal buffer.
func (b *Buffer) WriteString(s string) (n int, err error) {
	return b.buf.WriteString(s)
}

// WriteRune to the internal buffer.
func (b *Buffer) WriteRune(r rune) (n int, err error) {
	return b.buf.WriteRune(r)
}

// WriteByte to the internal buffer.
func (b *Buffer) WriteByte(c byte) error {
	return b.buf.WriteByte(c)
}

package codedchars

import (
	"io"
	"os"
)

// ExecuteTo writes the given control sequences to the writer in one write,
// returning the number of bytes written.
func ExecuteTo(w io.Writer, seqs ...Seq) (int, error) {
	var b Buffer
	b.WriteSeq(seqs...)
	n, err := b.WriteTo(w)
	return int(n), err
}

// Execute writes the given control sequences to standard output.
func Execute(seqs ...Seq) (int, error) {
	return ExecuteTo(os.Stdout, seqs...)
}

// Wrap returns the string bracketed by the graphic rendition selection
// before it and the rendition-clearing sequence after it, so that the
// rendition cannot leak into subsequent output.
func Wrap(s string, r Rendition) string {
	var b Buffer
	b.Grow(len(s) + 16)
	b.WriteWrapped(s, r)
	return b.String()
}

// ClearScreen erases the whole display and homes the cursor on standard
// output.
func ClearScreen() (int, error) {
	return Execute(EraseDisplay(EraseAll), SetPosition(1, 1))
}

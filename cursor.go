package codedchars

// CursorUp moves the active position up by n lines (CUU).
func CursorUp(n int) Seq { return CUU.WithInts(n) }

// CursorDown moves the active position down by n lines (CUD).
func CursorDown(n int) Seq { return CUD.WithInts(n) }

// CursorForward moves the active position forward by n character positions
// (CUF).
func CursorForward(n int) Seq { return CUF.WithInts(n) }

// CursorBack moves the active position backward by n character positions
// (CUB).
func CursorBack(n int) Seq { return CUB.WithInts(n) }

// CursorNextLine moves the active position to the first character position
// of the n-th following line (CNL).
func CursorNextLine(n int) Seq { return CNL.WithInts(n) }

// CursorPrecedingLine moves the active position to the first character
// position of the n-th preceding line (CPL).
func CursorPrecedingLine(n int) Seq { return CPL.WithInts(n) }

// CursorColumn moves the active position to character position n of the
// current line (CHA).
func CursorColumn(n int) Seq { return CHA.WithInts(n) }

// SetPosition moves the active position to the 1-based line and column
// (CUP). The values are encoded literally; a position beyond the display
// is the terminal's to interpret, not this library's.
func SetPosition(line, column int) Seq { return CUP.WithInts(line, column) }

// SaveCursor saves the cursor position (SCOSC).
func SaveCursor() Seq { return SCOSC.With() }

// RestoreCursor restores the most recently saved cursor position (SCORC).
func RestoreCursor() Seq { return SCORC.With() }

// TabulationForward moves the active position to the n-th following
// character tabulation stop (CHT).
func TabulationForward(n int) Seq { return CHT.WithInts(n) }

// TabulationBackward moves the active position to the n-th preceding
// character tabulation stop (CBT).
func TabulationBackward(n int) Seq { return CBT.WithInts(n) }

// LineTabulation moves the active position to the n-th following line
// tabulation stop (CVT).
func LineTabulation(n int) Seq { return CVT.WithInts(n) }

// TabControl selects which tabulation stops a TabulationControl or
// ClearTabulation sequence affects.
type TabControl uint8

// TabControl values shared by CTC and TBC.
const (
	TabSetCharacter      TabControl = iota // set character stop at the active position
	TabSetLine                             // set line stop at the active line
	TabClearCharacter                      // clear character stop at the active position
	TabClearLine                           // clear line stop at the active line
	TabClearLineAll                        // clear all character stops in the active line
	TabClearAllCharacter                   // clear all character stops
	TabClearAllLine                        // clear all line stops
)

// TabulationControl sets or clears tabulation stops (CTC).
func TabulationControl(tc TabControl) Seq { return CTC.WithInts(int(tc)) }

// PositionReport reports the active position as residing at the given
// 1-based line and column (CPR). Sent from terminal to host, solicited by
// a ReportStatus(StatusReportPosition) request.
func PositionReport(line, column int) Seq { return CPR.WithInts(line, column) }

package codedchars

// EraseMode selects the extent of an erase function relative to the active
// position.
type EraseMode uint8

// EraseMode values.
const (
	// EraseToEnd erases from the active position to the end, inclusive.
	EraseToEnd EraseMode = iota

	// EraseToStart erases from the beginning to the active position,
	// inclusive.
	EraseToStart

	// EraseAll erases the whole extent.
	EraseAll

	// EraseAllAndScrollback erases the whole display and the scrollback
	// buffer. Only meaningful for EraseDisplay; a common extension beyond
	// the three values of ECMA-48.
	EraseAllAndScrollback
)

// EraseDisplay erases some or all of the display (ED). The cursor does not
// move.
func EraseDisplay(m EraseMode) Seq { return ED.WithInts(int(m)) }

// EraseLine erases some or all of the active line (EL). The cursor does
// not move. EraseAllAndScrollback does not apply to a line.
func EraseLine(m EraseMode) Seq { return EL.WithInts(int(m)) }

// EraseInField erases some or all of the active field (EF).
func EraseInField(m EraseMode) Seq { return EF.WithInts(int(m)) }

// EraseInArea erases some or all of the active qualified area (EA).
func EraseInArea(m EraseMode) Seq { return EA.WithInts(int(m)) }

// InsertCharacter makes room for n characters at the active position (ICH).
func InsertCharacter(n int) Seq { return ICH.WithInts(n) }

// InsertLine inserts n lines at the active line (IL); following lines move
// down.
func InsertLine(n int) Seq { return IL.WithInts(n) }

// DeleteCharacter deletes n characters at the active position (DCH).
func DeleteCharacter(n int) Seq { return DCH.WithInts(n) }

// DeleteLine deletes n lines starting at the active line (DL); following
// lines move up.
func DeleteLine(n int) Seq { return DL.WithInts(n) }

// EraseCharacter puts the next n characters in the erased state (ECH).
func EraseCharacter(n int) Seq { return ECH.WithInts(n) }

// EditingExtent bounds the effect of InsertCharacter and DeleteCharacter.
type EditingExtent uint8

// EditingExtent values.
const (
	ExtentPage          EditingExtent = iota // the whole display
	ExtentLine                               // the active line only
	ExtentField                              // the active field
	ExtentQualifiedArea                      // the active qualified area
	ExtentRelevant                           // the shifting extent in effect
)

// SelectEditingExtent establishes the extent affected by subsequent
// character insertions and deletions (SEE).
func SelectEditingExtent(e EditingExtent) Seq { return SEE.WithInts(int(e)) }

// Repeat repeats the preceding graphic character n times (REP).
func Repeat(n int) Seq { return REP.WithInts(n) }

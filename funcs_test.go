package codedchars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	codedchars "github.com/Trehinos/coded-chars"
)

func TestControlFunctions(t *testing.T) {
	for _, tc := range []struct {
		name string
		seq  codedchars.Seq
		code string
	}{
		// cursor movement
		{"cursor up 1", codedchars.CursorUp(1), "\x1b[1A"},
		{"cursor down 9", codedchars.CursorDown(9), "\x1b[9B"},
		{"cursor forward 2", codedchars.CursorForward(2), "\x1b[2C"},
		{"cursor back 3", codedchars.CursorBack(3), "\x1b[3D"},
		{"cursor next line", codedchars.CursorNextLine(5), "\x1b[5E"},
		{"cursor preceding line", codedchars.CursorPrecedingLine(5), "\x1b[5F"},
		{"cursor column 40", codedchars.CursorColumn(40), "\x1b[40G"},
		{"set position", codedchars.SetPosition(5, 1), "\x1b[5;1H"},
		{"set position bottom right", codedchars.SetPosition(24, 80), "\x1b[24;80H"},
		{"save cursor", codedchars.SaveCursor(), "\x1b[s"},
		{"restore cursor", codedchars.RestoreCursor(), "\x1b[u"},
		{"position report", codedchars.PositionReport(24, 80), "\x1b[24;80R"},

		// tabulation
		{"tab forward 3", codedchars.TabulationForward(3), "\x1b[3I"},
		{"tab backward 3", codedchars.TabulationBackward(3), "\x1b[3Z"},
		{"line tab 2", codedchars.LineTabulation(2), "\x1b[2Y"},
		{"set char tab stop", codedchars.TabulationControl(codedchars.TabSetCharacter), "\x1b[0W"},
		{"clear all line tab stops", codedchars.TabulationControl(codedchars.TabClearAllLine), "\x1b[6W"},
		{"tbc clear char stop", codedchars.ClearTabulation(codedchars.TabClearCharacter), "\x1b[0g"},
		{"tbc clear all char stops", codedchars.ClearTabulation(codedchars.TabClearAllCharacter), "\x1b[3g"},
		{"tbc clear all line stops", codedchars.ClearTabulation(codedchars.TabClearAllLine), "\x1b[4g"},
		{"remove tab stop 9", codedchars.RemoveTabulationStop(9), "\x1b[9 d"},

		// erasure and editing
		{"erase display to end", codedchars.EraseDisplay(codedchars.EraseToEnd), "\x1b[0J"},
		{"erase display to start", codedchars.EraseDisplay(codedchars.EraseToStart), "\x1b[1J"},
		{"erase whole display", codedchars.EraseDisplay(codedchars.EraseAll), "\x1b[2J"},
		{"erase display and scrollback", codedchars.EraseDisplay(codedchars.EraseAllAndScrollback), "\x1b[3J"},
		{"erase line to end", codedchars.EraseLine(codedchars.EraseToEnd), "\x1b[0K"},
		{"erase whole line", codedchars.EraseLine(codedchars.EraseAll), "\x1b[2K"},
		{"erase field", codedchars.EraseInField(codedchars.EraseToStart), "\x1b[1N"},
		{"erase area", codedchars.EraseInArea(codedchars.EraseAll), "\x1b[2O"},
		{"insert 10 characters", codedchars.InsertCharacter(10), "\x1b[10@"},
		{"insert 3 lines", codedchars.InsertLine(3), "\x1b[3L"},
		{"delete 4 characters", codedchars.DeleteCharacter(4), "\x1b[4P"},
		{"delete 2 lines", codedchars.DeleteLine(2), "\x1b[2M"},
		{"erase 4 characters", codedchars.EraseCharacter(4), "\x1b[4X"},
		{"editing extent line", codedchars.SelectEditingExtent(codedchars.ExtentLine), "\x1b[1Q"},
		{"repeat 80 times", codedchars.Repeat(80), "\x1b[80b"},

		// display motion
		{"scroll up 3", codedchars.ScrollUp(3), "\x1b[3S"},
		{"scroll down 4", codedchars.ScrollDown(4), "\x1b[4T"},
		{"scroll left 2", codedchars.ScrollLeft(2), "\x1b[2 @"},
		{"scroll right 2", codedchars.ScrollRight(2), "\x1b[2 A"},
		{"next page", codedchars.NextPage(2), "\x1b[2U"},
		{"preceding page", codedchars.PrecedingPage(1), "\x1b[1V"},

		// character, line, and page positioning
		{"character absolute 80", codedchars.CharacterAbsolute(80), "\x1b[80`"},
		{"character forward 40", codedchars.CharacterForward(40), "\x1b[40a"},
		{"character backward 4", codedchars.CharacterBackward(4), "\x1b[4j"},
		{"line position 10", codedchars.LinePosition(10), "\x1b[10d"},
		{"line forward 6", codedchars.LineForward(6), "\x1b[6e"},
		{"line backward 2", codedchars.LineBackward(2), "\x1b[2k"},
		{"character and line position", codedchars.CharacterAndLinePosition(24, 80), "\x1b[24;80f"},
		{"page position 3", codedchars.PagePosition(3), "\x1b[3 P"},
		{"page forward 2", codedchars.PageForward(2), "\x1b[2 Q"},
		{"page backward 2", codedchars.PageBackward(2), "\x1b[2 R"},

		// device control
		{"device attributes", codedchars.DeviceAttributes(1), "\x1b[1c"},
		{"request device attributes", codedchars.RequestDeviceAttributes(), "\x1b[c"},
		{"report ready", codedchars.ReportStatus(codedchars.StatusReady), "\x1b[0n"},
		{"request position report", codedchars.ReportStatus(codedchars.StatusRequestPosition), "\x1b[6n"},
		{"function key 12", codedchars.FunctionKey(12), "\x1b[12 W"},
		{"media copy start relay", codedchars.MediaCopy(codedchars.CopyStartPrimaryRelay), "\x1b[5i"},
		{"eject and feed", codedchars.EjectAndFeed(1, 2), "\x1b[1;2 Y"},
		{"identify graphic subrepertoire", codedchars.IdentifyGraphicSubrepertoire(1), "\x1b[1 M"},

		// areas
		{"qualify numeric", codedchars.AreaQualification(codedchars.QualifyNumeric), "\x1b[3o"},
		{"qualify protected tab", codedchars.AreaQualification(codedchars.QualifyProtected, codedchars.QualifyCharacterTab), "\x1b[8;7o"},
		{"start selected area", codedchars.StartSelectedArea(), "\x1bF"},
		{"end guarded area", codedchars.EndGuardedArea(), "\x1bW"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, string(tc.seq.AppendTo(nil)))
		})
	}
}

func TestClearTabulation_setPanics(t *testing.T) {
	assert.Panics(t, func() { codedchars.ClearTabulation(codedchars.TabSetCharacter) })
}

package codedchars

// C1 control functions (ECMA-48 §8.2). Each encodes in its 7-bit-safe
// two-byte form, ESC followed by the name byte.
const (
	// BPH Break permitted here; a point where a formatter may break the line
	BPH = Escape(0x82)

	// NBH No break here
	NBH = Escape(0x83)

	// IND Index; move down one line
	IND = Escape(0x84)

	// NEL Next line; move to the line home position of the following line
	NEL = Escape(0x85)

	// SSA Start of selected area
	SSA = Escape(0x86)

	// ESA End of selected area
	ESA = Escape(0x87)

	// HTS Character tabulation set at the active position
	HTS = Escape(0x88)

	// HTJ Character tabulation with justification
	HTJ = Escape(0x89)

	// VTS Line tabulation set at the active line
	VTS = Escape(0x8A)

	// PLD Partial line forward (subscript)
	PLD = Escape(0x8B)

	// PLU Partial line backward (superscript)
	PLU = Escape(0x8C)

	// RI Reverse line feed; move up one line
	RI = Escape(0x8D)

	// SS2 Single shift two
	SS2 = Escape(0x8E)

	// SS3 Single shift three
	SS3 = Escape(0x8F)

	// DCS Device control string opening delimiter
	DCS = Escape(0x90)

	// PU1 Private use one
	PU1 = Escape(0x91)

	// PU2 Private use two
	PU2 = Escape(0x92)

	// STS Set transmit state
	STS = Escape(0x93)

	// CCH Cancel character; the preceding character is to be disregarded
	CCH = Escape(0x94)

	// MW Message waiting
	MW = Escape(0x95)

	// SPA Start of guarded (protected) area
	SPA = Escape(0x96)

	// EPA End of guarded (protected) area
	EPA = Escape(0x97)

	// SOS Start of string opening delimiter
	SOS = Escape(0x98)

	// SCI Single character introducer
	SCI = Escape(0x9A)

	// ST String terminator, closing delimiter for DCS, SOS, OSC, PM and APC
	ST = Escape(0x9C)

	// OSC Operating system command opening delimiter
	OSC = Escape(0x9D)

	// PM Privacy message opening delimiter
	PM = Escape(0x9E)

	// APC Application program command opening delimiter
	APC = Escape(0x9F)
)

// Independent control functions (ECMA-48 §8.1, the ESC Fs sequences).
var (
	// DMI Disable manual input
	DMI = ESC('`')

	// INT Interrupt the current process
	INT = ESC('a')

	// EMI Enable manual input
	EMI = ESC('b')

	// RIS Reset to initial state
	RIS = ESC('c')

	// CMD Coding method delimiter
	CMD = ESC('d')

	// LS2 Locking shift two
	LS2 = ESC('n')

	// LS3 Locking shift three
	LS3 = ESC('o')

	// LS3R Locking shift three right
	LS3R = ESC('|')

	// LS2R Locking shift two right
	LS2R = ESC('}')

	// LS1R Locking shift one right
	LS1R = ESC('~')
)

// Control sequences (ECMA-48 §8.3).
var (
	/*ICH Insert CHaracter
	  [10@ = Make room for 10 characters at the active position */
	ICH = CSI('@')

	/*CUU CUrsor Up
	  [A = Move up one line, [9A = move up 9 */
	CUU = CSI('A')

	/*CUD CUrsor Down
	  [B = Move down one line */
	CUD = CSI('B')

	/*CUF CUrsor Forward
	  [C = Move forward one position */
	CUF = CSI('C')

	/*CUB CUrsor Backward
	  [D = Same as BackSpace */
	CUB = CSI('D')

	/*CNL Cursor to Next Line
	  [5E = Move to first position of 5th line down */
	CNL = CSI('E')

	/*CPL Cursor to Preceding Line
	  [5F = Move to first position of 5th previous line */
	CPL = CSI('F')

	/*CHA Cursor Horizontal position Absolute
	  [40G = Move to column 40 of the current line */
	CHA = CSI('G')

	/*CUP CUrsor Position
	  [H = Home
	  [24;80H = Line 24, column 80 */
	CUP = CSI('H')

	/*CHT Cursor Horizontal (forward) Tabulation
	  [3I = Go forward 3 tab stops */
	CHT = CSI('I')

	/*ED Erase in Display (cursor does not move)
	  [0J = Erase from the active position to the end (inclusive)
	  [1J = Erase from the beginning to the active position (inclusive)
	  [2J = Erase the entire display */
	ED = CSI('J')

	/*EL Erase in Line (cursor does not move)
	  [0K = Erase from the active position to the end (inclusive)
	  [1K = Erase from the beginning to the active position
	  [2K = Erase the entire current line */
	EL = CSI('K')

	/*IL Insert Line, current line moves down
	  [3L = Insert 3 lines if currently in scrolling region */
	IL = CSI('L')

	/*DL Delete Line, lines below current move up
	  [2M = Delete 2 lines */
	DL = CSI('M')

	/*EF Erase in Field (as bounded by tab stops)
	  [0N, [1N, [2N act like [K but within the current field */
	EF = CSI('N')

	/*EA Erase in qualified Area (defined by DAQ)
	  [0O, [1O, [2O act like [J but within the current area */
	EA = CSI('O')

	/*DCH Delete Character
	  [4P = Delete 4 characters at the active position */
	DCH = CSI('P')

	/*SEE Select Editing Extent (limits ICH and DCH)
	  [0Q = Insert/delete affects the rest of the display
	  [1Q = ICH/DCH affect the current line only
	  [2Q = current field, [3Q = qualified area */
	SEE = CSI('Q')

	/*CPR active (Cursor) Position Report, from terminal to host
	  [24;80R = The active position is line 24 column 80 */
	CPR = CSI('R')

	/*SU Scroll Up, the display moves up, new lines at bottom
	  [3S = Move everything up 3 lines */
	SU = CSI('S')

	/*SD Scroll Down, new lines inserted at top of display
	  [4T = Scroll down 4, bring previous lines back into view */
	SD = CSI('T')

	/*NP Next Page
	  [2U = Display the 2nd following page */
	NP = CSI('U')

	/*PP Preceding Page
	  [1V = Display the previous page */
	PP = CSI('V')

	/*CTC Cursor Tabulation Control
	  [0W = Set character tab stop at the active position
	  [1W = Set line tab stop at the active line
	  [2W = Clear character tab stop at the active position
	  [3W = Clear line tab stop at the active line
	  [4W = Clear all character tab stops in the active line
	  [5W = Clear all character tab stops
	  [6W = Clear all line tab stops */
	CTC = CSI('W')

	/*ECH Erase CHaracter
	  [4X = Put the next 4 characters in the erased state */
	ECH = CSI('X')

	/*CVT Cursor line (Vertical) Tabulation
	  [2Y = Move forward to the 2nd following line tab stop */
	CVT = CSI('Y')

	/*CBT Cursor Backward Tabulation
	  [3Z = Move backwards to the 3rd previous character tab stop */
	CBT = CSI('Z')

	/*SRS Start Reversed String
	  [1[ = Begin a string running against the current direction
	  [0[ = End the reversed string */
	SRS = CSI('[')

	/*PTX Parallel TeXts
	  [1\ = Begin the principal text of a parallel group
	  [3\ = Begin Japanese phonetic annotation, [0\ = end the group */
	PTX = CSI('\\')

	/*SDS Start Directed String
	  [2] = Begin a right-to-left string, [0] = end it */
	SDS = CSI(']')

	/*SIMD Select Implicit Movement Direction
	  [0^ = Move with the character path, [1^ = move against it */
	SIMD = CSI('^')

	/*HPA character (Horizontal) Position Absolute
	  [80` = Move to character position 80 in the active line */
	HPA = CSI('`')

	/*HPR character (Horizontal) Position forward (Relative)
	  [40a = Move 40 character positions forward */
	HPR = CSI('a')

	/*REP REPeat the preceding graphic character
	  [80b = Repeat the character 80 times */
	REP = CSI('b')

	/*DA Device Attributes
	  [c = Request an identifying DA from the device
	  [1c = The sending device identifies itself as type 1 */
	DA = CSI('c')

	/*VPA line (Vertical) Position Absolute
	  [10d = Move to line position 10 in the active column */
	VPA = CSI('d')

	/*VPR line (Vertical) Position forward (Relative)
	  [6e = Move 6 line positions forward */
	VPR = CSI('e')

	/*HVP Horizontal and Vertical Position
	  [24;80f = Move to line 24 character position 80 */
	HVP = CSI('f')

	/*TBC TaBulation Clear
	  [0g = Clear character tab stop at the active position
	  [1g = Clear line tab stop at the active line
	  [2g = Clear all character tab stops in the active line
	  [3g = Clear all character tab stops
	  [4g = Clear all line tab stops */
	TBC = CSI('g')

	/*SM Set Mode; see Mode for the ECMA-48 mode numbers
	  [4h = Set insertion mode (IRM) */
	SM = CSI('h')

	/*MC Media Copy
	  [0i = Initiate transfer to a primary auxiliary device
	  [5i = Start relay to a primary auxiliary device */
	MC = CSI('i')

	/*HPB character (Horizontal) Position Backward
	  [4j = Move 4 character positions backward */
	HPB = CSI('j')

	/*VPB line (Vertical) Position Backward
	  [2k = Move 2 line positions backward */
	VPB = CSI('k')

	/*RM Reset Mode; the counterpart of SM
	  [4l = Reset to replacement mode (IRM) */
	RM = CSI('l')

	/*SGR Select Graphic Rendition; see Rendition for the code values
	  [0m = Default rendition
	  [31;1;4m = Red foreground, bold, underlined */
	SGR = CSI('m')

	/*DSR Device Status Report
	  [0n = Ready, no malfunction detected
	  [6n = Request an active position report (CPR) */
	DSR = CSI('n')

	/*DAQ Define Area Qualification starting at the active position
	  [0o = Accept all input, transmit on request
	  [3o = Numeric only field */
	DAQ = CSI('o')
)

// Control sequences with an intermediate byte. The intermediate follows the
// parameters and precedes the final byte, disambiguating the function.
var (
	/*SL Scroll Left
	  [2 @ = Move the display content 2 character positions left */
	SL = CSI('@').With(C0.SP)

	/*SR Scroll Right
	  [2 A = Move the display content 2 character positions right */
	SR = CSI('A').With(C0.SP)

	/*GSM Graphic Size Modification
	  [110;50 B = 110% height, 50% width */
	GSM = CSI('B').With(C0.SP)

	/*GSS Graphic Size Selection
	  [144 C = Set character height to 144 size units */
	GSS = CSI('C').With(C0.SP)

	/*FNT FoNT selection
	  [1;0 D = Select alternative font 1 */
	FNT = CSI('D').With(C0.SP)

	/*TSS Thin Space Specification
	  [12 E = Thin spaces are 12 size units wide */
	TSS = CSI('E').With(C0.SP)

	/*JFY JustiFY
	  [2 F = Start word spacing justification */
	JFY = CSI('F').With(C0.SP)

	/*SPI SPacing Increment
	  [120;72 G = Line spacing 120, character spacing 72 */
	SPI = CSI('G').With(C0.SP)

	/*QUAD QUAD layout of the preceding text
	  [2 H = Centre the preceding line of text */
	QUAD = CSI('H').With(C0.SP)

	/*SSU Select Size Unit
	  [7 I = Express sizes in pixels */
	SSU = CSI('I').With(C0.SP)

	/*PFS Page Format Selection
	  [2 J = Image pages on tall (portrait) A4 paper */
	PFS = CSI('J').With(C0.SP)

	/*SHS Select character (Horizontal) Spacing
	  [1 K = 12 characters per 25,4 mm */
	SHS = CSI('K').With(C0.SP)

	/*SVS Select line (Vertical) Spacing
	  [1 L = 4 lines per 25,4 mm */
	SVS = CSI('L').With(C0.SP)

	/*IGS Identify Graphic Subrepertoire
	  [1 M = Repertoire 1 of ISO/IEC 10367 is used */
	IGS = CSI('M').With(C0.SP)

	/*IDCS Identify Device Control String
	  [1 O = Subsequent DCS command strings are SRTM diagnostics */
	IDCS = CSI('O').With(C0.SP)

	/*PPA Page Position Absolute
	  [3 P = Move to the corresponding position on page 3 */
	PPA = CSI('P').With(C0.SP)

	/*PPR Page Position forward (Relative)
	  [2 Q = Move forward 2 pages */
	PPR = CSI('Q').With(C0.SP)

	/*PPB Page Position Backward
	  [2 R = Move backward 2 pages */
	PPB = CSI('R').With(C0.SP)

	/*SPD Select Presentation Directions
	  [1;1 S = Vertical lines right-to-left, then update the presentation */
	SPD = CSI('S').With(C0.SP)

	/*DTA Dimension Text Area
	  [110;50 T = Text area 110 units high, 50 units wide */
	DTA = CSI('T').With(C0.SP)

	/*SLH Set Line Home
	  [5 U = CR and NEL return to character position 5 */
	SLH = CSI('U').With(C0.SP)

	/*SLL Set Line Limit
	  [72 V = No implicit movement beyond character position 72 */
	SLL = CSI('V').With(C0.SP)

	/*FNK FuNction Key
	  [12 W = Function key 12 was operated */
	FNK = CSI('W').With(C0.SP)

	/*SPQR Select Print Quality and Rapidity
	  [2 X = Draft quality at the highest available speed */
	SPQR = CSI('X').With(C0.SP)

	/*SEF Sheet Eject and Feed
	  [1;2 Y = Eject into stacker 2, load from bin 1 */
	SEF = CSI('Y').With(C0.SP)

	/*PEC Presentation Expand or Contract
	  [1 Z = Expanded spacing and extent */
	PEC = CSI('Z').With(C0.SP)

	/*SSW Set Space Width
	  [6 [ = SPACE escapement of 6 size units */
	SSW = CSI('[').With(C0.SP)

	/*SACS Set Additional Character Separation
	  [2 \ = Enlarge inter-character escapement by 2 size units */
	SACS = CSI('\\').With(C0.SP)

	/*SAPV Select Alternative Presentation Variants
	  [3;4 ] = Mirror paired and mathematical characters right-to-left */
	SAPV = CSI(']').With(C0.SP)

	/*STAB Selective TABulation
	  [2 ^ = Align following text on list tabulation stop 2 */
	STAB = CSI('^').With(C0.SP)

	/*GCC Graphic Character Combination
	  [0 _ = Image the next two characters as one symbol */
	GCC = CSI('_').With(C0.SP)

	/*TATE Tabulation Aligned Trailing Edge
	  [9 ` = Trailing-edge tab stop at character position 9 */
	TATE = CSI('`').With(C0.SP)

	/*TALE Tabulation Aligned Leading Edge
	  [72 a = Leading-edge tab stop at character position 72 */
	TALE = CSI('a').With(C0.SP)

	/*TAC Tabulation Aligned Centred
	  [40 b = Centring tab stop at character position 40 */
	TAC = CSI('b').With(C0.SP)

	/*TCC Tabulation Centred on Character
	  [40;46 c = Centre on "." at character position 40 */
	TCC = CSI('c').With(C0.SP)

	/*TSR Tabulation Stop Remove
	  [9 d = Clear the character tab stop at position 9 on all lines */
	TSR = CSI('d').With(C0.SP)

	/*SCO Select Character Orientation
	  [2 e = Rotate subsequent characters by 90 degrees */
	SCO = CSI('e').With(C0.SP)

	/*SRCS Set Reduced Character Separation
	  [1 f = Reduce inter-character escapement by 1 size unit */
	SRCS = CSI('f').With(C0.SP)

	/*SLS Set Line Spacing
	  [12 h = Line spacing of 12 size units */
	SLS = CSI('h').With(C0.SP)

	/*SPH Set Page Home
	  [3 i = FF returns to line position 3 */
	SPH = CSI('i').With(C0.SP)

	/*SPL Set Page Limit
	  [60 j = No implicit movement beyond line position 60 */
	SPL = CSI('j').With(C0.SP)

	/*SCP Select Character Path
	  [2;0 k = Right-to-left character path */
	SCP = CSI('k').With(C0.SP)
)

// Common private-use control sequences kept for the cursor save/restore
// operations, which ECMA-48 leaves to private use and every ANSI terminal
// implements at 's' and 'u'.
var (
	// SCOSC Save current cursor position
	SCOSC = CSI('s')

	// SCORC Restore the saved cursor position
	SCORC = CSI('u')
)

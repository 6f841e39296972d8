package codedchars

// Font identifies the primary font or one of the nine alternative fonts
// named by FNT and selected through SGR codes 10-19.
type Font uint8

// Font values.
const (
	FontPrimary Font = iota
	FontAlternative1
	FontAlternative2
	FontAlternative3
	FontAlternative4
	FontAlternative5
	FontAlternative6
	FontAlternative7
	FontAlternative8
	FontAlternative9
)

// SelectFont identifies the character font to be selected as primary or
// alternative font by subsequent graphic rendition selections (FNT).
func SelectFont(f Font) Seq { return FNT.WithInts(int(f), 0) }

// ModifyGraphicSize modifies the height and width of all fonts for
// subsequent text (GSM), as percentages of the values established by
// SelectGraphicSize.
func ModifyGraphicSize(height, width int) Seq { return GSM.WithInts(height, width) }

// SelectGraphicSize establishes the height of all fonts for subsequent
// text (GSS); the width is implicitly defined by the height. Expressed in
// the unit established by SelectSizeUnit.
func SelectGraphicSize(n int) Seq { return GSS.WithInts(n) }

// JustifyMode is a JFY parameter value describing one layout aspect of
// the justification to start.
type JustifyMode uint8

// JustifyMode values.
const (
	JustifyNone          JustifyMode = iota // no justification, end of justification of preceding text
	JustifyWordFill                         // word fill
	JustifyWordSpace                        // word spacing
	JustifyLetterSpace                      // letter spacing
	JustifyHyphen                           // hyphenation
	JustifyFlushHome                        // flush to the line home position margin
	JustifyCenter                           // centre between the line home and limit position margins
	JustifyFlushLimit                       // flush to the line limit position margin
	JustifyItalianHyphen                    // Italian hyphenation
)

// Justify begins a string of characters to be justified according to the
// given layout aspects; the next occurrence of JFY ends it (JFY).
func Justify(modes ...JustifyMode) Seq {
	params := make([]Param, len(modes))
	for i, m := range modes {
		params[i] = P(int(m))
	}
	return JFY.WithParams(params...)
}

// Layout is a QUAD parameter value positioning the preceding string on
// its line.
type Layout uint8

// Layout values.
const (
	LayoutFlushHome      Layout = iota // flush to line home position margin
	LayoutFlushHomeFill                // flush to line home, fill with leader
	LayoutCenter                       // centre between line home and limit margins
	LayoutCenterFill                   // centre, fill with leader
	LayoutFlushLimit                   // flush to line limit position margin
	LayoutFlushLimitFill               // flush to line limit, fill with leader
	LayoutFlushBoth                    // flush to both margins
)

// Quad ends a string of graphic characters to be positioned on a single
// line according to the given layouts (QUAD).
func Quad(layouts ...Layout) Seq {
	params := make([]Param, len(layouts))
	for i, l := range layouts {
		params[i] = P(int(l))
	}
	return QUAD.WithParams(params...)
}

// SpacingIncrement establishes the line spacing and character spacing for
// subsequent text (SPI), in the unit established by SelectSizeUnit.
func SpacingIncrement(lineSpacing, characterSpacing int) Seq {
	return SPI.WithInts(lineSpacing, characterSpacing)
}

// SizeUnit is the SSU parameter value naming the unit in which the numeric
// parameters of the dimension and spacing functions are expressed.
type SizeUnit uint8

// SizeUnit values.
const (
	UnitCharacter         SizeUnit = iota // the cell dimensions of the current character
	UnitMillimeter                        // millimetre
	UnitComputerDeciPoint                 // 1/720 of 25,4 mm
	UnitDeciDidot                         // 1/2660 of a metre
	UnitMil                               // 1/1000 of 25,4 mm
	UnitBasicMeasuring                    // 1/1200 of 25,4 mm
	UnitMicrometer                        // micrometre
	UnitPixel                             // the smallest increment the device can image
	UnitDeciPoint                         // 1/720 of 25,4 mm, typographic point
)

// SelectSizeUnit establishes the unit for the numeric parameters of the
// dimension and spacing functions (SSU).
func SelectSizeUnit(u SizeUnit) Seq { return SSU.WithInts(int(u)) }

// ThinSpace establishes the width of a thin space for subsequent text
// (TSS), in the unit established by SelectSizeUnit.
func ThinSpace(width int) Seq { return TSS.WithInts(width) }

// DimensionTextArea establishes the text area dimensions for subsequent
// pages (DTA): perpendicular to the line orientation, then parallel to it.
func DimensionTextArea(l, c int) Seq { return DTA.WithInts(l, c) }

// PageFormat is the PFS parameter value naming an imaging area based on
// paper size.
type PageFormat uint8

// PageFormat values.
const (
	PageTallText PageFormat = iota
	PageWideText
	PageTallA4
	PageWideA4
	PageTallLetter
	PageWideLetter
	PageTallExtA4
	PageWideExtA4
	PageTallLegal
	PageWideLegal
	PageA4ShortLines
	PageA4LongLines
	PageB5ShortLines
	PageB5LongLines
	PageB4ShortLines
	PageB4LongLines
)

// SelectPageFormat establishes the available area for imaging pages of
// text based on paper size (PFS).
func SelectPageFormat(f PageFormat) Seq { return PFS.WithInts(int(f)) }

// CharacterSpacing is the SHS parameter value naming a character density.
type CharacterSpacing uint8

// CharacterSpacing values, as characters per measure.
const (
	Spacing10Per25mm CharacterSpacing = iota
	Spacing12Per25mm
	Spacing15Per25mm
	Spacing16Per25mm
	Spacing3Per25mm
	Spacing9Per50mm
	Spacing4Per25mm
)

// SelectSpacing establishes the character spacing for subsequent text
// (SHS).
func SelectSpacing(s CharacterSpacing) Seq { return SHS.WithInts(int(s)) }

// LineSpacing is the SVS parameter value naming a line density.
type LineSpacing uint8

// LineSpacing values, as lines per measure.
const (
	Lines6Per25mm LineSpacing = iota
	Lines4Per25mm
	Lines3Per25mm
	Lines12Per25mm
	Lines8Per25mm
	Lines6Per30mm
	Lines4Per30mm
	Lines3Per30mm
	Lines12Per30mm
	Lines2Per25mm
)

// SelectLineSpacing establishes the line spacing for subsequent text
// (SVS).
func SelectLineSpacing(s LineSpacing) Seq { return SVS.WithInts(int(s)) }

// SetLineSpacing establishes the line spacing for subsequent text as a
// count of size units rather than a named density (SLS).
func SetLineSpacing(n int) Seq { return SLS.WithInts(n) }

// CharacterPath is the direction of a string of characters relative to
// the line orientation.
type CharacterPath uint8

// CharacterPath values, numbered as SCP and SPD consume them.
const (
	// PathLeftToRight runs left-to-right for horizontal line orientation,
	// top-to-bottom for vertical.
	PathLeftToRight CharacterPath = 1

	// PathRightToLeft runs right-to-left for horizontal line orientation,
	// bottom-to-top for vertical.
	PathRightToLeft CharacterPath = 2
)

// PathEffect tells SCP and SPD how to reconcile the presentation and data
// components with the newly established directions.
type PathEffect uint8

// PathEffect values.
const (
	EffectUndefined          PathEffect = iota // implementation dependent
	EffectUpdatePresentation                   // rewrite the presentation component from the data component
	EffectUpdateData                           // rewrite the data component from the presentation component
)

// SelectCharacterPath selects the character path for the active and
// subsequent lines (SCP). Takes effect immediately.
func SelectCharacterPath(path CharacterPath, effect PathEffect) Seq {
	return SCP.WithInts(int(path), int(effect))
}

// LineOrientation is the direction lines run in the presentation
// component.
type LineOrientation uint8

// LineOrientation values.
const (
	OrientHorizontal LineOrientation = iota
	OrientVertical
)

// SelectPresentationDirections selects the line orientation, line
// progression, and character path (SPD). The three directions pack into
// SPD's single first parameter value.
func SelectPresentationDirections(o LineOrientation, progression, path CharacterPath, effect PathEffect) Seq {
	return SPD.WithInts(spdDirections(o, progression, path), int(effect))
}

func spdDirections(o LineOrientation, progression, path CharacterPath) int {
	switch lr := progression == PathLeftToRight; {
	case o == OrientHorizontal && lr:
		if path == PathLeftToRight {
			return 0
		}
		return 3
	case o == OrientHorizontal:
		if path == PathLeftToRight {
			return 6
		}
		return 5
	case lr:
		if path == PathLeftToRight {
			return 2
		}
		return 4
	default:
		if path == PathLeftToRight {
			return 1
		}
		return 7
	}
}

// SetLineHome establishes the character position CR, DL, IL, and NEL
// return to (SLH).
func SetLineHome(n int) Seq { return SLH.WithInts(n) }

// SetLineLimit establishes the character position beyond which no
// implicit movement occurs (SLL).
func SetLineLimit(n int) Seq { return SLL.WithInts(n) }

// SetPageHome establishes the line position FF returns to (SPH).
func SetPageHome(n int) Seq { return SPH.WithInts(n) }

// SetPageLimit establishes the line position beyond which no implicit
// movement occurs (SPL).
func SetPageLimit(n int) Seq { return SPL.WithInts(n) }

// PrintQuality is the SPQR parameter value trading print quality against
// speed.
type PrintQuality uint8

// PrintQuality values.
const (
	QualityHighest PrintQuality = iota // highest quality, low speed
	QualityMedium                      // medium quality, medium speed
	QualityDraft                       // draft quality, highest speed
)

// SelectPrintQuality selects the relative print quality and speed for
// devices whose output quality and speed are inversely related (SPQR).
func SelectPrintQuality(q PrintQuality) Seq { return SPQR.WithInts(int(q)) }

// Expansion is the PEC parameter value for the spacing and extent of
// subsequent characters.
type Expansion uint8

// Expansion values.
const (
	ExpansionNormal    Expansion = iota // as established by SCS, SHS, or SPI
	ExpansionExpanded                   // multiplied by 2
	ExpansionCondensed                  // multiplied by 1/2
)

// ExpandOrCondense establishes the spacing and extent of subsequent
// characters relative to the established spacing (PEC).
func ExpandOrCondense(e Expansion) Seq { return PEC.WithInts(int(e)) }

// SetSpaceWidth establishes the character escapement of SPACE for
// subsequent text (SSW), in the unit established by SelectSizeUnit.
func SetSpaceWidth(n int) Seq { return SSW.WithInts(n) }

// AddSeparation enlarges the inter-character escapement for subsequent
// text by n size units (SACS).
func AddSeparation(n int) Seq { return SACS.WithInts(n) }

// ReduceSeparation reduces the inter-character escapement for subsequent
// text by n size units (SRCS).
func ReduceSeparation(n int) Seq { return SRCS.WithInts(n) }

// Orientation is the SCO parameter value for glyph rotation, in steps of
// 45 degrees counter-clockwise.
type Orientation uint8

// Orientation values.
const (
	OrientNorth     Orientation = iota // 0 degrees
	OrientNorthWest                    // 45 degrees
	OrientWest                         // 90 degrees
	OrientSouthWest                    // 135 degrees
	OrientSouth                        // 180 degrees
	OrientSouthEast                    // 225 degrees
	OrientEast                         // 270 degrees
	OrientNorthEast                    // 315 degrees
)

// SelectCharacterOrientation establishes the rotation of subsequent
// graphic characters (SCO).
func SelectCharacterOrientation(o Orientation) Seq { return SCO.WithInts(int(o)) }

// Combination is the GCC parameter value delimiting characters to be
// imaged as a single graphic symbol.
type Combination uint8

// Combination values.
const (
	CombineTwo   Combination = iota // image the following two characters as one symbol
	CombineStart                    // begin a combining string
	CombineEnd                      // end the combining string
)

// CharacterCombination indicates that two or more graphic characters are
// to be imaged as one single graphic symbol (GCC).
func CharacterCombination(c Combination) Seq { return GCC.WithInts(int(c)) }

// StringReversion is the SRS parameter value delimiting a reversed
// string.
type StringReversion uint8

// StringReversion values.
const (
	ReversedEnd   StringReversion = iota // end of the reversed string
	ReversedBegin                        // beginning of a reversed string
)

// StartReversedString delimits a string running against the currently
// established direction (SRS).
func StartReversedString(r StringReversion) Seq { return SRS.WithInts(int(r)) }

// StringDirection is the SDS parameter value delimiting a directed
// string.
type StringDirection uint8

// StringDirection values.
const (
	DirectedEnd         StringDirection = iota // end of the directed string
	DirectedLeftToRight                        // beginning of a left-to-right string
	DirectedRightToLeft                        // beginning of a right-to-left string
)

// StartDirectedString delimits a string with its own direction,
// independent of the currently established one (SDS).
func StartDirectedString(d StringDirection) Seq { return SDS.WithInts(int(d)) }

// MovementDirection is the SIMD parameter value for the direction of
// implicit movement.
type MovementDirection uint8

// MovementDirection values.
const (
	MoveSame     MovementDirection = iota // with the character progression
	MoveOpposite                          // against the character progression
)

// SelectImplicitMovement selects the direction of implicit movement of
// the data position relative to the character progression (SIMD).
func SelectImplicitMovement(d MovementDirection) Seq { return SIMD.WithInts(int(d)) }

// TextDelimiter is the PTX parameter value delimiting parallel texts.
type TextDelimiter uint8

// TextDelimiter values.
const (
	TextEnd                   TextDelimiter = iota // end of the parallel texts
	TextBeginPrincipal                             // beginning of the principal text
	TextBeginSupplementary                         // beginning of a supplementary text
	TextBeginPhoneticJapanese                      // beginning of Japanese phonetic annotation
	TextBeginPhoneticChinese                       // beginning of Chinese phonetic annotation
	TextEndPhonetic                                // end of phonetic annotation
)

// ParallelTexts delimits strings communicated one after another but
// intended to be presented in parallel, usually in adjacent lines (PTX).
func ParallelTexts(d TextDelimiter) Seq { return PTX.WithInts(int(d)) }

// SelectiveTabulation aligns subsequent text according to tabulation stop
// n of a list specified by other standards (STAB).
func SelectiveTabulation(n int) Seq { return STAB.WithInts(n) }

// AlignTrailing sets a trailing-edge-alignment character tabulation stop
// at character position n (TATE).
func AlignTrailing(n int) Seq { return TATE.WithInts(n) }

// AlignLeading sets a leading-edge-alignment character tabulation stop at
// character position n (TALE).
func AlignLeading(n int) Seq { return TALE.WithInts(n) }

// AlignCenter sets a centring character tabulation stop at character
// position n (TAC).
func AlignCenter(n int) Seq { return TAC.WithInts(n) }

// CenterOnCharacter sets a tabulation stop at character position n
// centring strings on their first occurrence of the target character,
// given by its code table position (TCC).
func CenterOnCharacter(n, target int) Seq { return TCC.WithInts(n, target) }

// PresentationVariant accumulates SAPV parameter values selecting
// variants for the presentation of subsequent text. The zero value is the
// empty accumulator; each method returns a copy with one more variant
// appended, like Mode and Rendition.
type PresentationVariant struct {
	params []Param
}

func (v PresentationVariant) with(n int) PresentationVariant {
	params := make([]Param, len(v.params), len(v.params)+1)
	copy(params, v.params)
	v.params = append(params, P(n))
	return v
}

// Default adds value 0, the implementation-defined default presentation;
// cancels any preceding SAPV.
func (v PresentationVariant) Default() PresentationVariant { return v.with(0) }

// LatinDecimal presents decimal digits with Latin script symbols.
func (v PresentationVariant) LatinDecimal() PresentationVariant { return v.with(1) }

// ArabicDecimal presents decimal digits with Arabic script (Hindi)
// symbols.
func (v PresentationVariant) ArabicDecimal() PresentationVariant { return v.with(2) }

// MirrorHorizontal presents handed character pairs mirrored when the
// character path is right-to-left.
func (v PresentationVariant) MirrorHorizontal() PresentationVariant { return v.with(3) }

// MirrorVertical presents asymmetric mathematical operators mirrored
// about the vertical axis when the character path is right-to-left.
func (v PresentationVariant) MirrorVertical() PresentationVariant { return v.with(4) }

// CharacterIsolate presents the following character in its isolated form.
func (v PresentationVariant) CharacterIsolate() PresentationVariant { return v.with(5) }

// CharacterInitial presents the following character in its initial form.
func (v PresentationVariant) CharacterInitial() PresentationVariant { return v.with(6) }

// CharacterMedial presents the following character in its medial form.
func (v PresentationVariant) CharacterMedial() PresentationVariant { return v.with(7) }

// CharacterFinal presents the following character in its final form.
func (v PresentationVariant) CharacterFinal() PresentationVariant { return v.with(8) }

// DecimalStop presents the decimal mark as FULL STOP.
func (v PresentationVariant) DecimalStop() PresentationVariant { return v.with(9) }

// DecimalComma presents the decimal mark as COMMA.
func (v PresentationVariant) DecimalComma() PresentationVariant { return v.with(10) }

// VowelAboveOrBelow presents vowels above or below the preceding
// character.
func (v PresentationVariant) VowelAboveOrBelow() PresentationVariant { return v.with(11) }

// VowelAfter presents vowels after the preceding character.
func (v PresentationVariant) VowelAfter() PresentationVariant { return v.with(12) }

// ArabicLigatureAleph shapes Arabic contextually, including the LAM-ALEPH
// ligature but no other.
func (v PresentationVariant) ArabicLigatureAleph() PresentationVariant { return v.with(13) }

// ArabicLigatureNone shapes Arabic contextually, excluding all ligatures.
func (v PresentationVariant) ArabicLigatureNone() PresentationVariant { return v.with(14) }

// NoMirror cancels MirrorHorizontal and MirrorVertical.
func (v PresentationVariant) NoMirror() PresentationVariant { return v.with(15) }

// NoVowel suppresses vowel presentation.
func (v PresentationVariant) NoVowel() PresentationVariant { return v.with(16) }

// ItalicDirection slants italicized characters with the string direction.
func (v PresentationVariant) ItalicDirection() PresentationVariant { return v.with(17) }

// ArabicPassThroughDigits presents Arabic characters, digits included, in
// their stored form with no contextual shaping.
func (v PresentationVariant) ArabicPassThroughDigits() PresentationVariant { return v.with(18) }

// ArabicPassThrough presents Arabic characters, digits excluded, in their
// stored form with no contextual shaping.
func (v PresentationVariant) ArabicPassThrough() PresentationVariant { return v.with(19) }

// DeviceDigit leaves the decimal digit symbols device dependent.
func (v PresentationVariant) DeviceDigit() PresentationVariant { return v.with(20) }

// CharacterEstablish extends the character form selections to all
// following characters until cancelled.
func (v PresentationVariant) CharacterEstablish() PresentationVariant { return v.with(21) }

// CharacterCancel cancels CharacterEstablish, restoring single-character
// effect.
func (v PresentationVariant) CharacterCancel() PresentationVariant { return v.with(22) }

// Seq returns the SAPV control sequence selecting all accumulated
// variants.
func (v PresentationVariant) Seq() Seq { return SAPV.WithParams(v.params...) }

package codedchars

// Qualification is a DAQ parameter value describing the properties of a
// qualified area.
type Qualification uint8

// Qualification values.
const (
	QualifyAll              Qualification = iota // accept all input, transmit on request
	QualifyProtectedGuarded                      // protected and guarded
	QualifyGraphic                               // graphic character input only
	QualifyNumeric                               // numeric input only
	QualifyAlphabetic                            // alphabetic input only
	QualifyAlignLast                             // input aligned on the last position
	QualifyFillZero                              // fill with ZEROs
	QualifyCharacterTab                          // set a character tab stop at the start
	QualifyProtected                             // protected but not guarded
	QualifyFillSpace                             // fill with SPACEs
	QualifyAlignFirst                            // input aligned on the first position
	QualifyReversed                              // input reversed, last character first
)

// AreaQualification establishes a qualified area starting at the active
// position and extending to the start of the next one (DAQ). Multiple
// qualifications may be combined in one sequence.
func AreaQualification(qs ...Qualification) Seq {
	params := make([]Param, len(qs))
	for i, q := range qs {
		params[i] = P(int(q))
	}
	return DAQ.WithParams(params...)
}

// StartSelectedArea marks the start of an area whose contents are eligible
// for transmission or transfer (SSA).
func StartSelectedArea() Seq { return SSA.With() }

// EndSelectedArea marks the end of a selected area (ESA).
func EndSelectedArea() Seq { return ESA.With() }

// StartGuardedArea marks the start of an area whose contents are guarded
// against transmission or transfer (SPA).
func StartGuardedArea() Seq { return SPA.With() }

// EndGuardedArea marks the end of a guarded area (EPA).
func EndGuardedArea() Seq { return EPA.With() }

package codedchars

// CharacterAbsolute moves the active position to character position n of
// the active line (HPA).
func CharacterAbsolute(n int) Seq { return HPA.WithInts(n) }

// CharacterForward moves the active position n character positions forward
// (HPR).
func CharacterForward(n int) Seq { return HPR.WithInts(n) }

// CharacterBackward moves the active position n character positions
// backward (HPB).
func CharacterBackward(n int) Seq { return HPB.WithInts(n) }

// LinePosition moves the active position to line position n of the active
// column (VPA).
func LinePosition(n int) Seq { return VPA.WithInts(n) }

// LineForward moves the active position n line positions forward (VPR).
func LineForward(n int) Seq { return VPR.WithInts(n) }

// LineBackward moves the active position n line positions backward (VPB).
func LineBackward(n int) Seq { return VPB.WithInts(n) }

// CharacterAndLinePosition moves the active position to the 1-based line
// and character position (HVP). Same effect as SetPosition through the
// formator function rather than the editor one.
func CharacterAndLinePosition(line, column int) Seq {
	return HVP.WithInts(line, column)
}

// PagePosition moves the active position to the corresponding position on
// page n (PPA).
func PagePosition(n int) Seq { return PPA.WithInts(n) }

// PageForward moves the active position to the corresponding position on
// the n-th following page (PPR).
func PageForward(n int) Seq { return PPR.WithInts(n) }

// PageBackward moves the active position to the corresponding position on
// the n-th preceding page (PPB).
func PageBackward(n int) Seq { return PPB.WithInts(n) }

// ClearTabulation clears tabulation stops (TBC). TBC has its own value
// assignment, distinct from CTC: it only clears, so its five values are
// the clearing subset renumbered from zero.
func ClearTabulation(tc TabControl) Seq {
	if tc < TabClearCharacter {
		panic("TBC only clears tabulation stops")
	}
	return TBC.WithInts(int(tc - TabClearCharacter))
}

// RemoveTabulationStop clears the character tabulation stop at character
// position n on every line (TSR).
func RemoveTabulationStop(n int) Seq { return TSR.WithInts(n) }

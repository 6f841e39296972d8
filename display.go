package codedchars

// ScrollUp moves the display contents up n lines (SU); new blank lines
// appear at the bottom.
func ScrollUp(n int) Seq { return SU.WithInts(n) }

// ScrollDown moves the display contents down n lines (SD).
func ScrollDown(n int) Seq { return SD.WithInts(n) }

// ScrollLeft moves the display contents left n columns (SL).
func ScrollLeft(n int) Seq { return SL.WithInts(n) }

// ScrollRight moves the display contents right n columns (SR).
func ScrollRight(n int) Seq { return SR.WithInts(n) }

// NextPage displays the n-th following page (NP).
func NextPage(n int) Seq { return NP.WithInts(n) }

// PrecedingPage displays the n-th preceding page (PP).
func PrecedingPage(n int) Seq { return PP.WithInts(n) }

package codedchars

// Mode accumulates ECMA-48 device mode numbers for a single SM or RM
// control sequence. The zero value is an empty accumulator; each method
// returns a copy with one more mode appended, so intermediate values may
// be retained and extended independently.
//
//	buf.WriteSeq(Mode{}.Insertion().SendReceive().Set())
type Mode struct {
	params []Param
}

func (m Mode) with(n int) Mode {
	params := make([]Param, len(m.params), len(m.params)+1)
	copy(params, m.params)
	m.params = append(params, P(n))
	return m
}

// GuardedArea adds GATM, guarded area transfer mode.
func (m Mode) GuardedArea() Mode { return m.with(1) }

// KeyboardLock adds KAM, keyboard action mode.
func (m Mode) KeyboardLock() Mode { return m.with(2) }

// ControlRepresentation adds CRM, control representation mode: when set,
// control functions are displayed instead of performed.
func (m Mode) ControlRepresentation() Mode { return m.with(3) }

// Insertion adds IRM, insertion-replacement mode: when set, graphic
// characters are inserted rather than replacing.
func (m Mode) Insertion() Mode { return m.with(4) }

// StatusReportTransfer adds SRTM, status report transfer mode.
func (m Mode) StatusReportTransfer() Mode { return m.with(5) }

// Erasure adds ERM, erasure mode: when set, erase functions also affect
// protected areas.
func (m Mode) Erasure() Mode { return m.with(6) }

// LineEditing adds VEM, line editing mode: direction of IL and DL.
func (m Mode) LineEditing() Mode { return m.with(7) }

// BidirectionalSupport adds BDSM, bi-directional support mode.
func (m Mode) BidirectionalSupport() Mode { return m.with(8) }

// DeviceComponentSelect adds DCSM, device component select mode: whether
// editing functions act on presentation or data positions.
func (m Mode) DeviceComponentSelect() Mode { return m.with(9) }

// CharacterEditing adds HEM, character editing mode: direction of ICH and
// DCH.
func (m Mode) CharacterEditing() Mode { return m.with(10) }

// PositioningUnit adds PUM, positioning unit mode. Deprecated by ECMA-48
// in favour of SSU but still carried by devices that implement it.
func (m Mode) PositioningUnit() Mode { return m.with(11) }

// SendReceive adds SRM, send/receive mode: when reset, local echo is on.
func (m Mode) SendReceive() Mode { return m.with(12) }

// FormatEffectorAction adds FEAM, format effector action mode.
func (m Mode) FormatEffectorAction() Mode { return m.with(13) }

// FormatEffectorTransfer adds FETM, format effector transfer mode.
func (m Mode) FormatEffectorTransfer() Mode { return m.with(14) }

// MultipleAreaTransfer adds MATM, multiple area transfer mode.
func (m Mode) MultipleAreaTransfer() Mode { return m.with(15) }

// TransferTermination adds TTM, transfer termination mode.
func (m Mode) TransferTermination() Mode { return m.with(16) }

// SelectedAreaTransfer adds SATM, selected area transfer mode.
func (m Mode) SelectedAreaTransfer() Mode { return m.with(17) }

// TabulationStop adds TSM, tabulation stop mode: whether stops apply to
// all lines or the active line only.
func (m Mode) TabulationStop() Mode { return m.with(18) }

// GraphicRenditionCombination adds GRCM, graphic rendition combination
// mode: whether SGR calls combine with or replace the prior rendition.
func (m Mode) GraphicRenditionCombination() Mode { return m.with(21) }

// ZeroDefault adds ZDM, zero default mode. Deprecated by ECMA-48, which
// now requires the behavior unconditionally.
func (m Mode) ZeroDefault() Mode { return m.with(22) }

// Set returns the SM control sequence setting all accumulated modes. With
// no modes accumulated the sequence carries no parameters, which ECMA-48
// leaves without effect.
func (m Mode) Set() Seq { return SM.WithParams(m.params...) }

// Reset returns the RM control sequence resetting all accumulated modes.
func (m Mode) Reset() Seq { return RM.WithParams(m.params...) }

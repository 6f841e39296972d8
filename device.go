package codedchars

// DeviceAttributes identifies a device as type n, or with n zero requests
// that the device identify itself (DA).
func DeviceAttributes(n int) Seq { return DA.WithInts(n) }

// RequestDeviceAttributes asks the device to identify itself (DA with the
// parameter omitted).
func RequestDeviceAttributes() Seq { return DA.With() }

// StatusReport is a DSR parameter value: either a status being reported or
// a request for one.
type StatusReport uint8

// StatusReport values.
const (
	// StatusReady reports that the device is ready, no malfunction
	// detected.
	StatusReady StatusReport = iota

	// StatusBusyRetry reports the device busy; another request should be
	// made later.
	StatusBusyRetry

	// StatusBusyWillReport reports the device busy; it will send a report
	// when ready.
	StatusBusyWillReport

	// StatusMalfunctionRetry reports a malfunction; another request should
	// be made later.
	StatusMalfunctionRetry

	// StatusMalfunctionWillReport reports a malfunction; it will send a
	// report when ready.
	StatusMalfunctionWillReport

	// StatusRequest requests a device status report.
	StatusRequest

	// StatusRequestPosition requests an active position report (CPR).
	StatusRequestPosition
)

// ReportStatus reports or requests device status (DSR).
func ReportStatus(s StatusReport) Seq { return DSR.WithInts(int(s)) }

// FunctionKey reports that function key n was operated (FNK). Sent from
// terminal to host.
func FunctionKey(n int) Seq { return FNK.WithInts(n) }

// CopyStatus is an MC parameter value controlling transfers to or from an
// auxiliary device.
type CopyStatus uint8

// CopyStatus values.
const (
	CopyToPrimary          CopyStatus = iota // initiate transfer to a primary auxiliary device
	CopyFromPrimary                          // initiate transfer from a primary auxiliary device
	CopyToSecondary                          // initiate transfer to a secondary auxiliary device
	CopyFromSecondary                        // initiate transfer from a secondary auxiliary device
	CopyStopPrimaryRelay                     // stop relay to a primary auxiliary device
	CopyStartPrimaryRelay                    // start relay to a primary auxiliary device
	CopyStopSecondaryRelay                   // stop relay to a secondary auxiliary device
	CopyStartSecondaryRelay                  // start relay to a secondary auxiliary device
)

// MediaCopy controls transfer of data to or from an auxiliary input/output
// device (MC).
func MediaCopy(c CopyStatus) Seq { return MC.WithInts(int(c)) }

// EjectAndFeed ejects the current sheet into stacker n2 and loads the next
// from bin n1 (SEF). A zero value leaves that side of the operation to the
// device default.
func EjectAndFeed(bin, stacker int) Seq { return SEF.WithInts(bin, stacker) }

// ControlString is the IDCS parameter value naming the purpose and format
// of subsequent device control strings.
type ControlString uint8

// ControlString values.
const (
	// ControlStringDiagnostic marks subsequent DCS command strings as
	// diagnostics for status report transfer mode.
	ControlStringDiagnostic ControlString = 1

	// ControlStringCharacterSet marks subsequent DCS command strings as
	// dynamically redefinable character set definitions.
	ControlStringCharacterSet ControlString = 2
)

// IdentifyControlString specifies the purpose and format of the command
// strings of subsequent DCS control strings (IDCS).
func IdentifyControlString(c ControlString) Seq { return IDCS.WithInts(int(c)) }

// IdentifyGraphicSubrepertoire announces that repertoire n of the
// registered sub-repertoires of ISO/IEC 10367 is used in subsequent text
// (IGS).
func IdentifyGraphicSubrepertoire(n int) Seq { return IGS.WithInts(n) }

package callbacks

// Status classifies the severity or outcome attached to a callback
// invocation. Ordinal values are fixed by the co-simulation standard and
// must not be renumbered.
type Status int32

const (
	StatusOK Status = iota
	StatusWarning
	StatusDiscard
	StatusError
	StatusFatal
	StatusPending
)

// String returns the canonical plain-text label for the status. Values
// outside the enumeration map to "Unknown" rather than fail.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "Warning"
	case StatusDiscard:
		return "Discard"
	case StatusError:
		return "Error"
	case StatusFatal:
		return "Fatal"
	case StatusPending:
		return "Pending"
	default:
		return "Unknown"
	}
}

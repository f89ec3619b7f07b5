package contracts

import "errors"

// Error taxonomy for the control core. Raw transport and protocol errors
// are wrapped into one of these four kinds before they reach a caller, so
// observers can classify failures with errors.Is.
var (
	// ErrOutOfRange reports an index, scene or channel outside the bounds
	// declared by the mixer profile. Local to the offending command; never
	// affects session state.
	ErrOutOfRange = errors.New("value out of range for mixer profile")

	// ErrTransportUnavailable reports a failed connect or a write on a
	// session that is not connected.
	ErrTransportUnavailable = errors.New("mixer transport unavailable")

	// ErrSequenceInterrupted reports a multi-unit protocol burst that
	// failed partway through. The remainder of the command is discarded.
	ErrSequenceInterrupted = errors.New("protocol sequence interrupted")

	// ErrConfigurationInvalid reports a missing or contradictory channel
	// mapping or profile at startup. Fatal: the session never starts.
	ErrConfigurationInvalid = errors.New("configuration invalid")
)

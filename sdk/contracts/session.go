package contracts

import "context"

// SessionState is the connection state of a mixer session.
type SessionState int

const (
	// StateDisconnected is the initial state, re-entered on clean close.
	StateDisconnected SessionState = iota
	// StateConnecting covers the first transport open after Connect.
	StateConnecting
	// StateConnected means commands are being executed.
	StateConnected
	// StateReconnecting covers backoff retries after a transport failure.
	StateReconnecting
	// StateFailed is terminal until an explicit new Connect call.
	StateFailed
)

func (s SessionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// StateHandler receives session state transitions. Handlers are invoked in
// transition order from the session's own goroutines and must not block.
type StateHandler func(previous, current SessionState)

// Session is a per-mixer connection owning its transport exclusively.
// Command execution is serialized: no two commands' wire units ever
// interleave on the transport.
type Session interface {
	// Connect opens the transport and starts command execution. From
	// Failed it resets the retry budget and reconnects. No-op while the
	// session is already running.
	Connect(ctx context.Context) error

	// Execute queues one logical command for execution. Returns
	// ErrTransportUnavailable when the session is not connected; the
	// command is then dropped, never queued across a disconnect.
	Execute(cmd LogicalCommand) error

	// Disconnect closes the transport and stops execution. Safe to call
	// from any state, including mid-command; idempotent.
	Disconnect() error

	// State returns the current connection state.
	State() SessionState
}

// Package transport holds the outbound connections a mixer session owns:
// a local MIDI output port, a TCP MIDI socket, or a UDP OSC client. A
// transport is exclusively owned by one session; the session serializes
// all writes.
package transport

import (
	"context"

	"github.com/FPtrevi/midicontrol/internal/protocol"
)

// Transport is one outbound connection to a mixer.
type Transport interface {
	// Connect opens the connection. The context bounds the attempt.
	Connect(ctx context.Context) error
	// Write sends one wire unit. An error leaves the transport unusable
	// until the next Connect.
	Write(u protocol.WireUnit) error
	// Close releases the connection. Idempotent.
	Close() error
}

package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/FPtrevi/midicontrol/internal/protocol"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// TCPMIDI sends raw MIDI bytes over a TCP socket, the network MIDI
// variant the Qu 5/6/7 exposes on port 51325.
type TCPMIDI struct {
	addr    string
	timeout time.Duration

	mu   sync.Mutex
	conn net.Conn
}

// NewTCPMIDI targets host:port. The timeout bounds the dial; connected
// writes carry no deadline (local or LAN link assumed).
func NewTCPMIDI(addr string, timeout time.Duration) *TCPMIDI {
	return &TCPMIDI{addr: addr, timeout: timeout}
}

func (t *TCPMIDI) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn != nil {
		return nil
	}

	d := net.Dialer{Timeout: t.timeout}
	conn, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", contracts.ErrTransportUnavailable, t.addr, err)
	}
	t.conn = conn
	return nil
}

func (t *TCPMIDI) Write(u protocol.WireUnit) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("%w: %s not connected", contracts.ErrTransportUnavailable, t.addr)
	}
	if u.IsOSC() {
		return fmt.Errorf("%w: OSC unit on MIDI transport", contracts.ErrTransportUnavailable)
	}
	if _, err := conn.Write(u.MIDI.Bytes()); err != nil {
		return fmt.Errorf("%w: write %s: %v", contracts.ErrTransportUnavailable, t.addr, err)
	}
	return nil
}

func (t *TCPMIDI) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/chabad360/go-osc/osc"

	"github.com/FPtrevi/midicontrol/internal/protocol"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// OSCClient sends OSC messages over UDP (Yamaha DM3 style mixers, default
// port 49900).
type OSCClient struct {
	addr string

	mu     sync.Mutex
	client *osc.Client
}

// NewOSCClient targets host:port.
func NewOSCClient(addr string) *OSCClient {
	return &OSCClient{addr: addr}
}

func (t *OSCClient) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client != nil {
		return nil
	}

	host, portStr, err := net.SplitHostPort(t.addr)
	if err != nil {
		return fmt.Errorf("%w: address %q: %v", contracts.ErrConfigurationInvalid, t.addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("%w: port %q: %v", contracts.ErrConfigurationInvalid, portStr, err)
	}
	// UDP is connectionless; resolving the target is the whole connect
	// step and catches bad hostnames early.
	if _, err := net.ResolveUDPAddr("udp", t.addr); err != nil {
		return fmt.Errorf("%w: resolve %s: %v", contracts.ErrTransportUnavailable, t.addr, err)
	}

	t.client = osc.NewClient(host, port)
	return nil
}

func (t *OSCClient) Write(u protocol.WireUnit) error {
	t.mu.Lock()
	client := t.client
	t.mu.Unlock()
	if client == nil {
		return fmt.Errorf("%w: %s not connected", contracts.ErrTransportUnavailable, t.addr)
	}
	if !u.IsOSC() {
		return fmt.Errorf("%w: MIDI unit on OSC transport", contracts.ErrTransportUnavailable)
	}

	msg := osc.NewMessage(u.OSCAddr)
	for _, arg := range u.OSCArgs {
		msg.Append(arg)
	}
	if err := client.Send(msg); err != nil {
		return fmt.Errorf("%w: send %s: %v", contracts.ErrTransportUnavailable, t.addr, err)
	}
	return nil
}

func (t *OSCClient) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.client = nil
	return nil
}

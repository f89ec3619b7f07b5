package transport

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/FPtrevi/midicontrol/internal/protocol"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// MIDIPort sends raw MIDI messages to a local output port (USB MIDI
// mixers). The port is resolved by exact name first, then by
// case-insensitive substring.
type MIDIPort struct {
	name string

	mu   sync.Mutex
	port drivers.Out
	send func(midi.Message) error
}

// NewMIDIPort targets the output port with the given name. The rtmidi
// driver must be registered by the importing binary.
func NewMIDIPort(name string) *MIDIPort {
	return &MIDIPort{name: name}
}

func (t *MIDIPort) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port != nil {
		return nil
	}

	port, err := findOutPort(t.name)
	if err != nil {
		return fmt.Errorf("%w: %v", contracts.ErrTransportUnavailable, err)
	}
	if err := port.Open(); err != nil {
		return fmt.Errorf("%w: open %q: %v", contracts.ErrTransportUnavailable, t.name, err)
	}
	send, err := midi.SendTo(port)
	if err != nil {
		_ = port.Close()
		return fmt.Errorf("%w: %v", contracts.ErrTransportUnavailable, err)
	}
	t.port = port
	t.send = send
	return nil
}

func (t *MIDIPort) Write(u protocol.WireUnit) error {
	t.mu.Lock()
	send := t.send
	t.mu.Unlock()
	if send == nil {
		return fmt.Errorf("%w: MIDI port %q not open", contracts.ErrTransportUnavailable, t.name)
	}
	if u.IsOSC() {
		return fmt.Errorf("%w: OSC unit on MIDI transport", contracts.ErrTransportUnavailable)
	}
	if err := send(u.MIDI); err != nil {
		return fmt.Errorf("%w: send to %q: %v", contracts.ErrTransportUnavailable, t.name, err)
	}
	return nil
}

func (t *MIDIPort) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	t.send = nil
	return err
}

func findOutPort(name string) (drivers.Out, error) {
	if port, err := midi.FindOutPort(name); err == nil {
		return port, nil
	}
	lower := strings.ToLower(name)
	for _, port := range midi.GetOutPorts() {
		if strings.Contains(strings.ToLower(port.String()), lower) {
			return port, nil
		}
	}
	return nil, fmt.Errorf("MIDI output %q not found", name)
}

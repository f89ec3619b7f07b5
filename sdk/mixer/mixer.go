// Package mixer creates mixer sessions from a profile and target,
// dispatching on the profile's protocol kind.
package mixer

import (
	"fmt"

	"github.com/FPtrevi/midicontrol/internal/protocol"
	"github.com/FPtrevi/midicontrol/internal/session"
	"github.com/FPtrevi/midicontrol/internal/transport"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// transportInitializers maps protocol kinds to transport constructors.
var transportInitializers = map[contracts.ProtocolKind]func(*contracts.SessionOptions) (transport.Transport, error){
	contracts.ProtocolMIDINRPN: newMIDITransport,
	contracts.ProtocolOSC:      newOSCTransport,
}

// NewSession creates a mixer session for the configured profile. It
// applies default options, validates the target and selects the codec and
// transport for the profile's protocol kind.
//
// Returns ErrConfigurationInvalid when no profile is set, the kind is
// unknown, or the target is missing.
func NewSession(opts ...contracts.Option) (contracts.Session, error) {
	o, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	initializer, ok := transportInitializers[o.Profile.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported protocol kind %q", contracts.ErrConfigurationInvalid, o.Profile.Kind)
	}
	tr, err := initializer(&o)
	if err != nil {
		return nil, err
	}

	codec, err := protocol.NewCodec(o.Profile)
	if err != nil {
		return nil, err
	}
	return session.New(codec, tr, &o), nil
}

func newMIDITransport(o *contracts.SessionOptions) (transport.Transport, error) {
	if o.MIDIPortName != "" {
		return transport.NewMIDIPort(o.MIDIPortName), nil
	}
	if o.Address != "" {
		return transport.NewTCPMIDI(o.Address, o.ConnectTimeout), nil
	}
	return nil, fmt.Errorf("%w: %s needs a MIDI port name or a network address", contracts.ErrConfigurationInvalid, o.Profile.Name)
}

func newOSCTransport(o *contracts.SessionOptions) (transport.Transport, error) {
	if o.Address == "" {
		return nil, fmt.Errorf("%w: %s needs a network address", contracts.ErrConfigurationInvalid, o.Profile.Name)
	}
	return transport.NewOSCClient(o.Address), nil
}

package protocol

import (
	"fmt"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// Codec turns one logical command into the ordered wire unit sequence for
// a mixer family.
type Codec interface {
	Encode(cmd contracts.LogicalCommand) ([]WireUnit, error)
}

// NewCodec selects the codec for the profile's protocol kind.
func NewCodec(p *contracts.MixerProfile) (Codec, error) {
	switch p.Kind {
	case contracts.ProtocolMIDINRPN:
		return nrpnCodec{profile: p}, nil
	case contracts.ProtocolOSC:
		return oscCodec{profile: p}, nil
	}
	return nil, fmt.Errorf("%w: unknown protocol kind %q", contracts.ErrConfigurationInvalid, p.Kind)
}

type nrpnCodec struct {
	profile *contracts.MixerProfile
}

func (c nrpnCodec) Encode(cmd contracts.LogicalCommand) ([]WireUnit, error) {
	switch v := cmd.(type) {
	case contracts.MuteSet:
		return EncodeMute(c.profile, v.Channel, v.On)
	case contracts.SceneRecall:
		return EncodeSceneRecall(c.profile, v.Scene)
	case contracts.SoftkeyPress:
		u, err := EncodeSoftkey(c.profile, v.Index, true)
		if err != nil {
			return nil, err
		}
		return []WireUnit{u}, nil
	case contracts.SoftkeyRelease:
		u, err := EncodeSoftkey(c.profile, v.Index, false)
		if err != nil {
			return nil, err
		}
		return []WireUnit{u}, nil
	}
	return nil, fmt.Errorf("%w: unsupported command %T", contracts.ErrOutOfRange, cmd)
}

type oscCodec struct {
	profile *contracts.MixerProfile
}

func (c oscCodec) Encode(cmd contracts.LogicalCommand) ([]WireUnit, error) {
	switch v := cmd.(type) {
	case contracts.MuteSet:
		return EncodeMute(c.profile, v.Channel, v.On)
	case contracts.SceneRecall:
		return EncodeSceneRecall(c.profile, v.Scene)
	case contracts.SoftkeyPress:
		_, err := EncodeSoftkey(c.profile, v.Index, true)
		return nil, err
	case contracts.SoftkeyRelease:
		_, err := EncodeSoftkey(c.profile, v.Index, false)
		return nil, err
	}
	return nil, fmt.Errorf("%w: unsupported command %T", contracts.ErrOutOfRange, cmd)
}

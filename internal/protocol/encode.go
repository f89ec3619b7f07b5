package protocol

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// NRPN mute parameter and Bank Select controller numbers, fixed by the
// mixer firmware. The burst orders (CC99 CC98 CC6 CC38, and CC0 CC32 PC)
// are not renegotiable: a partial or reordered burst corrupts mixer state.
const (
	ccNRPNParamMSB = 99
	ccNRPNParamLSB = 98
	ccDataEntryMSB = 6
	ccDataEntryLSB = 38

	ccBankSelectMSB = 0
	ccBankSelectLSB = 32
)

// EncodeMute encodes a mute switch for the 1-based input channel.
//
// MIDI-NRPN families get the ordered four-message burst
// CC99=param MSB, CC98=param LSB, CC6=0, CC38=127|0. OSC families get a
// single fader-on message whose integer argument is 0 when muting.
func EncodeMute(p *contracts.MixerProfile, channel int, on bool) ([]WireUnit, error) {
	if channel < 1 || channel > p.MaxInputChannel {
		return nil, fmt.Errorf("%w: input channel %d not in 1..%d", contracts.ErrOutOfRange, channel, p.MaxInputChannel)
	}

	if p.Kind == contracts.ProtocolOSC {
		faderOn := int32(1)
		if on {
			faderOn = 0
		}
		return []WireUnit{
			oscUnit(fmt.Sprintf(p.OSCMutePattern, channel), faderOn),
		}, nil
	}

	var value uint8
	if on {
		value = 127
	}
	paramLSB := p.MuteParamLSBBase + uint8(channel-1)
	return []WireUnit{
		midiUnit(midi.ControlChange(p.MIDIChannel, ccNRPNParamMSB, p.MuteParamMSB)),
		midiUnit(midi.ControlChange(p.MIDIChannel, ccNRPNParamLSB, paramLSB)),
		midiUnit(midi.ControlChange(p.MIDIChannel, ccDataEntryMSB, 0)),
		midiUnit(midi.ControlChange(p.MIDIChannel, ccDataEntryLSB, value)),
	}, nil
}

// EncodeSceneRecall encodes a recall of the 1-based scene number.
//
// MIDI families get the Bank Select MSB, Bank Select LSB, Program Change
// triple with bank (scene-1)/ProgramsPerBank and program
// (scene-1)%ProgramsPerBank. OSC families get a single ssrecall_ex message
// addressing the profile's scene list with a 0-based index.
func EncodeSceneRecall(p *contracts.MixerProfile, scene int) ([]WireUnit, error) {
	if scene < 1 || scene > p.MaxScene {
		return nil, fmt.Errorf("%w: scene %d not in 1..%d", contracts.ErrOutOfRange, scene, p.MaxScene)
	}

	if p.Kind == contracts.ProtocolOSC {
		return []WireUnit{
			oscUnit(p.OSCSceneAddress, p.OSCSceneList, int32(scene-1)),
		}, nil
	}

	bank := uint8((scene - 1) / p.ProgramsPerBank)
	program := uint8((scene - 1) % p.ProgramsPerBank)
	return []WireUnit{
		midiUnit(midi.ControlChange(p.MIDIChannel, ccBankSelectMSB, bank)),
		midiUnit(midi.ControlChange(p.MIDIChannel, ccBankSelectLSB, 0)),
		midiUnit(midi.ProgramChange(p.MIDIChannel, program)),
	}, nil
}

// EncodeSoftkey encodes a press or release of the 1-based softkey index as
// a single Note On (velocity 127) or Note Off at SoftkeyBaseNote+index-1.
func EncodeSoftkey(p *contracts.MixerProfile, index int, pressed bool) (WireUnit, error) {
	if !p.SupportsSoftkeys() {
		return WireUnit{}, fmt.Errorf("%w: %s has no softkeys", contracts.ErrOutOfRange, p.Name)
	}
	if index < 1 || index > p.MaxSoftkey {
		return WireUnit{}, fmt.Errorf("%w: softkey %d not in 1..%d", contracts.ErrOutOfRange, index, p.MaxSoftkey)
	}

	note := p.SoftkeyBaseNote + uint8(index-1)
	if pressed {
		return midiUnit(midi.NoteOn(p.MIDIChannel, note, 127)), nil
	}
	return midiUnit(midi.NoteOff(p.MIDIChannel, note)), nil
}

// DecodeSoftkeyNote recovers the 1-based softkey index from an encoded
// softkey unit. Inverse of EncodeSoftkey for valid indices.
func DecodeSoftkeyNote(p *contracts.MixerProfile, u WireUnit) (int, error) {
	if u.IsOSC() {
		return 0, fmt.Errorf("%w: not a softkey message", contracts.ErrOutOfRange)
	}
	var ch, key, vel uint8
	if !u.MIDI.GetNoteStart(&ch, &key, &vel) && !u.MIDI.GetNoteEnd(&ch, &key) {
		return 0, fmt.Errorf("%w: not a softkey message", contracts.ErrOutOfRange)
	}
	index := int(key) - int(p.SoftkeyBaseNote) + 1
	if index < 1 || index > p.MaxSoftkey {
		return 0, fmt.Errorf("%w: note %d outside softkey range", contracts.ErrOutOfRange, key)
	}
	return index, nil
}

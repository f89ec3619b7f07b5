package contracts

// ProtocolKind selects the wire protocol a mixer family speaks.
type ProtocolKind string

const (
	// ProtocolMIDINRPN is MIDI control: NRPN bursts for mutes, Bank
	// Select + Program Change for scenes, Note On/Off for softkeys.
	ProtocolMIDINRPN ProtocolKind = "midi-nrpn"
	// ProtocolOSC is Open Sound Control over UDP.
	ProtocolOSC ProtocolKind = "osc"
)

// MixerProfile is the static per-mixer-family descriptor. Immutable;
// selected by configuration at session start and shared freely across
// goroutines.
type MixerProfile struct {
	Name string
	Kind ProtocolKind

	// MIDIChannel is the 0-based outbound MIDI channel for NRPN, Bank
	// Select/Program Change and softkey messages.
	MIDIChannel uint8

	// SoftkeyBaseNote is the note number of softkey 1 (Qu 5/6/7: 0x30).
	SoftkeyBaseNote uint8
	// MaxSoftkey is the highest valid softkey index; 0 means the family
	// has no softkeys.
	MaxSoftkey int

	// MuteParamMSB and MuteParamLSBBase address the NRPN mute parameter:
	// CC99 carries MuteParamMSB, CC98 carries MuteParamLSBBase plus the
	// 0-based input channel.
	MuteParamMSB     uint8
	MuteParamLSBBase uint8

	// MaxInputChannel is the highest valid 1-based input channel index.
	MaxInputChannel int
	// MaxScene is the highest valid 1-based scene number.
	MaxScene int
	// ProgramsPerBank splits scene numbers into Bank Select banks.
	ProgramsPerBank int

	// OSC address templates (ProtocolOSC only).
	OSCMutePattern  string // printf pattern taking the 1-based channel
	OSCSceneAddress string
	OSCSceneList    string // scene list name argument, e.g. "scene_a"
}

// SupportsSoftkeys reports whether the family has physical softkeys.
func (p *MixerProfile) SupportsSoftkeys() bool {
	return p.MaxSoftkey > 0
}

// ChannelMapping assigns semantic roles to inbound MIDI channels. A role
// set to NoChannel is disabled. Immutable after session start.
type ChannelMapping struct {
	// MuteChannel carries mute notes: note N switches input channel N+1.
	MuteChannel int
	// SceneChannel carries scene notes: Note On for note N recalls scene N+1.
	SceneChannel int
	// SoftkeyChannel carries softkey notes.
	SoftkeyChannel int
	// SoftkeyBaseNote is the inbound note mapped to softkey 1.
	SoftkeyBaseNote uint8
}

// NoChannel disables a role in a ChannelMapping.
const NoChannel = -1

// Package interpret translates raw inbound MIDI events into logical mixer
// commands using a channel mapping. Translation is a pure function of
// (event, mapping); the package holds no state.
package interpret

import (
	"fmt"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// Interpret maps one inbound event to at most one logical command.
//
// Per role, on the mapped channel:
//   - softkey: Note On with velocity >= 1 is a press, Note Off or Note On
//     with velocity 0 is a release; the note maps to index
//     note-SoftkeyBaseNote+1.
//   - scene: only Note On with velocity > 0 recalls scene note+1.
//   - mute: Note On with velocity >= 1 mutes channel note+1, Note Off or
//     Note On with velocity 0 unmutes it.
//
// Events on unmapped channels, or of a kind the role does not consume,
// yield (nil, false). That is normal traffic, not an error.
func Interpret(ev contracts.MidiEvent, m *contracts.ChannelMapping) (contracts.LogicalCommand, bool) {
	switch int(ev.Channel) {
	case m.SoftkeyChannel:
		index := int(ev.Note) - int(m.SoftkeyBaseNote) + 1
		switch ev.Kind {
		case contracts.NoteOn:
			if ev.Velocity >= 1 {
				return contracts.SoftkeyPress{Index: index}, true
			}
			return contracts.SoftkeyRelease{Index: index}, true
		case contracts.NoteOff:
			return contracts.SoftkeyRelease{Index: index}, true
		}

	case m.SceneChannel:
		if ev.Kind == contracts.NoteOn && ev.Velocity > 0 {
			return contracts.SceneRecall{Scene: int(ev.Note) + 1}, true
		}

	case m.MuteChannel:
		switch ev.Kind {
		case contracts.NoteOn:
			return contracts.MuteSet{Channel: int(ev.Note) + 1, On: ev.Velocity >= 1}, true
		case contracts.NoteOff:
			return contracts.MuteSet{Channel: int(ev.Note) + 1, On: false}, true
		}
	}
	return nil, false
}

// Validate checks a mapping against the profile it will drive. It reports
// ErrConfigurationInvalid for channels outside 0-15, two roles sharing a
// channel, no role assigned at all, or a softkey role on a family without
// softkeys.
func Validate(m *contracts.ChannelMapping, p *contracts.MixerProfile) error {
	assigned := map[int]string{}
	for _, role := range []struct {
		name string
		ch   int
	}{
		{"mute", m.MuteChannel},
		{"scene", m.SceneChannel},
		{"softkey", m.SoftkeyChannel},
	} {
		if role.ch == contracts.NoChannel {
			continue
		}
		if role.ch < 0 || role.ch > 15 {
			return fmt.Errorf("%w: %s channel %d not in 0..15", contracts.ErrConfigurationInvalid, role.name, role.ch)
		}
		if other, ok := assigned[role.ch]; ok {
			return fmt.Errorf("%w: roles %s and %s share channel %d", contracts.ErrConfigurationInvalid, other, role.name, role.ch)
		}
		assigned[role.ch] = role.name
	}
	if len(assigned) == 0 {
		return fmt.Errorf("%w: no role assigned to any channel", contracts.ErrConfigurationInvalid)
	}
	if m.SoftkeyChannel != contracts.NoChannel && !p.SupportsSoftkeys() {
		return fmt.Errorf("%w: softkey role mapped but %s has no softkeys", contracts.ErrConfigurationInvalid, p.Name)
	}
	return nil
}

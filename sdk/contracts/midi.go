package contracts

import "fmt"

// EventKind identifies the type of an inbound MIDI event.
type EventKind byte

const (
	// NoteOn is a MIDI Note On event (status 0x90).
	NoteOn EventKind = 0x90
	// NoteOff is a MIDI Note Off event (status 0x80).
	NoteOff EventKind = 0x80
	// ControlChange is a MIDI Control Change event (status 0xB0).
	ControlChange EventKind = 0xB0
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "note-on"
	case NoteOff:
		return "note-off"
	case ControlChange:
		return "control-change"
	}
	return fmt.Sprintf("unknown(0x%02X)", byte(k))
}

// MidiEvent is one inbound wire message from the control surface.
// Events are immutable: one is created at ingress, interpreted once,
// then discarded.
type MidiEvent struct {
	Channel  uint8 // 0-15
	Kind     EventKind
	Note     uint8 // 0-127; carries the controller number for ControlChange
	Velocity uint8 // 0-127; carries the controller value for ControlChange
}

func (e MidiEvent) String() string {
	return fmt.Sprintf("%s ch=%d note=%d vel=%d", e.Kind, e.Channel, e.Note, e.Velocity)
}

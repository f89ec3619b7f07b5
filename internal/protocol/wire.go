// Package protocol encodes logical mixer commands into the exact wire
// sequences a mixer family expects. Encoding is pure: no I/O, no state,
// deterministic for identical inputs.
package protocol

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
)

// WireUnit is one atomic unit of outbound protocol data: either a complete
// MIDI channel message or one OSC message. Multi-unit sequences must reach
// the mixer in order and without foreign units interleaved.
type WireUnit struct {
	// MIDI holds the raw bytes of one channel message; nil for OSC units.
	MIDI midi.Message

	OSCAddr string
	OSCArgs []any
}

func midiUnit(m midi.Message) WireUnit {
	return WireUnit{MIDI: m}
}

func oscUnit(addr string, args ...any) WireUnit {
	return WireUnit{OSCAddr: addr, OSCArgs: args}
}

// IsOSC reports whether the unit is an OSC message.
func (u WireUnit) IsOSC() bool {
	return u.MIDI == nil
}

func (u WireUnit) String() string {
	if !u.IsOSC() {
		return u.MIDI.String()
	}
	parts := make([]string, 0, len(u.OSCArgs)+1)
	parts = append(parts, u.OSCAddr)
	for _, a := range u.OSCArgs {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, " ")
}

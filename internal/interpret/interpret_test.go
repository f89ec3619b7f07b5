package interpret

import (
	"errors"
	"reflect"
	"testing"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

func mapping() *contracts.ChannelMapping {
	return &contracts.ChannelMapping{
		MuteChannel:     0,
		SceneChannel:    1,
		SoftkeyChannel:  2,
		SoftkeyBaseNote: 0,
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name string
		ev   contracts.MidiEvent
		want contracts.LogicalCommand
		ok   bool
	}{
		{
			"mute on",
			contracts.MidiEvent{Channel: 0, Kind: contracts.NoteOn, Note: 4, Velocity: 100},
			contracts.MuteSet{Channel: 5, On: true}, true,
		},
		{
			"mute off via note off",
			contracts.MidiEvent{Channel: 0, Kind: contracts.NoteOff, Note: 4},
			contracts.MuteSet{Channel: 5, On: false}, true,
		},
		{
			"mute off via zero velocity",
			contracts.MidiEvent{Channel: 0, Kind: contracts.NoteOn, Note: 4, Velocity: 0},
			contracts.MuteSet{Channel: 5, On: false}, true,
		},
		{
			"scene recall",
			contracts.MidiEvent{Channel: 1, Kind: contracts.NoteOn, Note: 4, Velocity: 100},
			contracts.SceneRecall{Scene: 5}, true,
		},
		{
			"scene ignores note off",
			contracts.MidiEvent{Channel: 1, Kind: contracts.NoteOff, Note: 4},
			nil, false,
		},
		{
			"scene ignores zero velocity",
			contracts.MidiEvent{Channel: 1, Kind: contracts.NoteOn, Note: 4, Velocity: 0},
			nil, false,
		},
		{
			"softkey press",
			contracts.MidiEvent{Channel: 2, Kind: contracts.NoteOn, Note: 6, Velocity: 127},
			contracts.SoftkeyPress{Index: 7}, true,
		},
		{
			"softkey release via note off",
			contracts.MidiEvent{Channel: 2, Kind: contracts.NoteOff, Note: 6},
			contracts.SoftkeyRelease{Index: 7}, true,
		},
		{
			"softkey release via zero velocity",
			contracts.MidiEvent{Channel: 2, Kind: contracts.NoteOn, Note: 6, Velocity: 0},
			contracts.SoftkeyRelease{Index: 7}, true,
		},
		{
			"unmapped channel",
			contracts.MidiEvent{Channel: 9, Kind: contracts.NoteOn, Note: 4, Velocity: 100},
			nil, false,
		},
		{
			"control change not consumed",
			contracts.MidiEvent{Channel: 0, Kind: contracts.ControlChange, Note: 7, Velocity: 64},
			nil, false,
		},
	}

	m := mapping()
	for _, tt := range tests {
		got, ok := Interpret(tt.ev, m)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInterpretSoftkeyBaseOffset(t *testing.T) {
	m := mapping()
	m.SoftkeyBaseNote = 0x30
	ev := contracts.MidiEvent{Channel: 2, Kind: contracts.NoteOn, Note: 0x30, Velocity: 127}
	got, ok := Interpret(ev, m)
	if !ok {
		t.Fatal("no command produced")
	}
	if got != (contracts.SoftkeyPress{Index: 1}) {
		t.Errorf("got %v, want softkey press 1", got)
	}
}

// Interpret is a pure function: the same event and mapping must always
// yield the same command.
func TestInterpretIdempotent(t *testing.T) {
	m := mapping()
	ev := contracts.MidiEvent{Channel: 1, Kind: contracts.NoteOn, Note: 4, Velocity: 100}
	first, ok1 := Interpret(ev, m)
	second, ok2 := Interpret(ev, m)
	if !ok1 || !ok2 || !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}

func TestValidate(t *testing.T) {
	qu := &contracts.MixerProfile{Name: "Qu 5/6/7", MaxSoftkey: 12}
	dm3 := &contracts.MixerProfile{Name: "DM3"}

	tests := []struct {
		name    string
		m       contracts.ChannelMapping
		p       *contracts.MixerProfile
		invalid bool
	}{
		{"full mapping", contracts.ChannelMapping{MuteChannel: 0, SceneChannel: 1, SoftkeyChannel: 2}, qu, false},
		{"single role", contracts.ChannelMapping{MuteChannel: 0, SceneChannel: contracts.NoChannel, SoftkeyChannel: contracts.NoChannel}, qu, false},
		{"no role", contracts.ChannelMapping{MuteChannel: contracts.NoChannel, SceneChannel: contracts.NoChannel, SoftkeyChannel: contracts.NoChannel}, qu, true},
		{"shared channel", contracts.ChannelMapping{MuteChannel: 3, SceneChannel: 3, SoftkeyChannel: contracts.NoChannel}, qu, true},
		{"channel out of range", contracts.ChannelMapping{MuteChannel: 16, SceneChannel: contracts.NoChannel, SoftkeyChannel: contracts.NoChannel}, qu, true},
		{"softkeys on DM3", contracts.ChannelMapping{MuteChannel: 0, SceneChannel: contracts.NoChannel, SoftkeyChannel: 2}, dm3, true},
		{"DM3 without softkeys", contracts.ChannelMapping{MuteChannel: 0, SceneChannel: 1, SoftkeyChannel: contracts.NoChannel}, dm3, false},
	}
	for _, tt := range tests {
		err := Validate(&tt.m, tt.p)
		if tt.invalid && !errors.Is(err, contracts.ErrConfigurationInvalid) {
			t.Errorf("%s: err = %v, want ErrConfigurationInvalid", tt.name, err)
		}
		if !tt.invalid && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

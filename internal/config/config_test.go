package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

const validYAML = `
mixer: qu5
input:
  port: "ProPresenter"
output:
  address: "192.168.1.70:51325"
channel: 1
mapping:
  mute: 1
  scene: 2
  softkey: 3
  softkeyBaseNote: 48
retry:
  maxAttempts: 8
connectTimeoutSeconds: 10
`

func TestParseValid(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatal(err)
	}
	if c.Mixer != MixerQu {
		t.Errorf("Mixer = %q, want %q", c.Mixer, MixerQu)
	}
	if c.Input.Port != "ProPresenter" {
		t.Errorf("Input.Port = %q", c.Input.Port)
	}
	if c.Output.Address != "192.168.1.70:51325" {
		t.Errorf("Output.Address = %q", c.Output.Address)
	}
	if c.Retry.MaxAttempts != 8 {
		t.Errorf("Retry.MaxAttempts = %d, want 8", c.Retry.MaxAttempts)
	}
	if c.ConnectTimeoutSeconds != 10 {
		t.Errorf("ConnectTimeoutSeconds = %d, want 10", c.ConnectTimeoutSeconds)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no mixer", `channel: 1`},
		{"unknown mixer", `mixer: x32`},
		{"channel too high", "mixer: qu5\nchannel: 17"},
		{"channel negative", "mixer: qu5\nchannel: -1"},
		{"mapping channel too high", "mixer: qu5\nmapping:\n  mute: 17"},
		{"softkey base note too high", "mixer: qu5\nmapping:\n  softkeyBaseNote: 128"},
		{"not yaml", `{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, contracts.ErrConfigurationInvalid) {
				t.Errorf("err = %v, want ErrConfigurationInvalid", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midicontrol.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Mixer != MixerQu {
		t.Errorf("Mixer = %q, want %q", c.Mixer, MixerQu)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestChannelMappingConversion(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatal(err)
	}
	m := c.ChannelMapping()
	if m.MuteChannel != 0 || m.SceneChannel != 1 || m.SoftkeyChannel != 2 {
		t.Errorf("mapping = %+v, want 0-based 0/1/2", m)
	}
	if m.SoftkeyBaseNote != 48 {
		t.Errorf("SoftkeyBaseNote = %d, want 48", m.SoftkeyBaseNote)
	}
}

func TestChannelMappingDisabledRole(t *testing.T) {
	c, err := Parse([]byte("mixer: dm3\nmapping:\n  mute: 1\n  scene: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	m := c.ChannelMapping()
	if m.SoftkeyChannel != contracts.NoChannel {
		t.Errorf("SoftkeyChannel = %d, want NoChannel", m.SoftkeyChannel)
	}
}

func TestProfileSelection(t *testing.T) {
	qu, err := Parse([]byte("mixer: qu5\nchannel: 2"))
	if err != nil {
		t.Fatal(err)
	}
	p := qu.Profile()
	if p.Kind != contracts.ProtocolMIDINRPN {
		t.Errorf("qu5 profile kind = %q, want %q", p.Kind, contracts.ProtocolMIDINRPN)
	}
	if p.MIDIChannel != 1 {
		t.Errorf("MIDIChannel = %d, want 1 (channel 2 is 0-based 1)", p.MIDIChannel)
	}

	// channel 0 keeps the profile default.
	quDefault, err := Parse([]byte("mixer: qu5\nchannel: 0"))
	if err != nil {
		t.Fatal(err)
	}
	if got := quDefault.Profile().MIDIChannel; got != 0 {
		t.Errorf("MIDIChannel = %d, want profile default 0", got)
	}

	dm3, err := Parse([]byte("mixer: dm3"))
	if err != nil {
		t.Fatal(err)
	}
	if got := dm3.Profile().Kind; got != contracts.ProtocolOSC {
		t.Errorf("dm3 profile kind = %q, want %q", got, contracts.ProtocolOSC)
	}
}

func TestSessionOptionsCarryConfig(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatal(err)
	}
	var o contracts.SessionOptions
	for _, opt := range c.SessionOptions(nil) {
		opt(&o)
	}
	if o.Profile == nil {
		t.Fatal("no profile applied")
	}
	if o.Address != "192.168.1.70:51325" {
		t.Errorf("Address = %q", o.Address)
	}
	if o.Retry.MaxAttempts != 8 {
		t.Errorf("Retry.MaxAttempts = %d, want 8", o.Retry.MaxAttempts)
	}
}

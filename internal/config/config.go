// Package config loads the application configuration file: which mixer to
// drive, where to reach it, and which inbound MIDI channels carry which
// role.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
	"github.com/FPtrevi/midicontrol/sdk/mixer"
)

// Mixer names accepted in the config file.
const (
	MixerQu  = "qu5"
	MixerDM3 = "dm3"
)

// Config mirrors the YAML file. Channel numbers are 1-based as shown on
// MIDI hardware; 0 disables a role.
type Config struct {
	Mixer string `yaml:"mixer"`

	Input struct {
		Port string `yaml:"port"`
	} `yaml:"input"`

	Output struct {
		MIDIPort string `yaml:"midiPort"`
		Address  string `yaml:"address"`
	} `yaml:"output"`

	// Channel is the 1-based outbound MIDI channel for Qu messages;
	// 0 keeps the profile default.
	Channel int `yaml:"channel"`

	Mapping struct {
		Mute            int `yaml:"mute"`
		Scene           int `yaml:"scene"`
		Softkey         int `yaml:"softkey"`
		SoftkeyBaseNote int `yaml:"softkeyBaseNote"`
	} `yaml:"mapping"`

	Retry struct {
		MaxAttempts int `yaml:"maxAttempts"`
	} `yaml:"retry"`

	ConnectTimeoutSeconds int `yaml:"connectTimeoutSeconds"`
}

// Load reads and validates the config at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a YAML config document.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrConfigurationInvalid, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch c.Mixer {
	case MixerQu, MixerDM3:
	case "":
		return fmt.Errorf("%w: no mixer selected", contracts.ErrConfigurationInvalid)
	default:
		return fmt.Errorf("%w: unknown mixer %q", contracts.ErrConfigurationInvalid, c.Mixer)
	}
	if c.Channel < 0 || c.Channel > 16 {
		return fmt.Errorf("%w: output channel %d not in 1..16 (0 keeps the profile default)", contracts.ErrConfigurationInvalid, c.Channel)
	}
	for _, m := range []struct {
		name string
		ch   int
	}{
		{"mute", c.Mapping.Mute},
		{"scene", c.Mapping.Scene},
		{"softkey", c.Mapping.Softkey},
	} {
		if m.ch < 0 || m.ch > 16 {
			return fmt.Errorf("%w: %s channel %d not in 1..16", contracts.ErrConfigurationInvalid, m.name, m.ch)
		}
	}
	if c.Mapping.SoftkeyBaseNote < 0 || c.Mapping.SoftkeyBaseNote > 127 {
		return fmt.Errorf("%w: softkey base note %d not in 0..127", contracts.ErrConfigurationInvalid, c.Mapping.SoftkeyBaseNote)
	}
	return nil
}

// Profile returns the mixer family descriptor for the configured mixer,
// with the outbound MIDI channel applied.
func (c *Config) Profile() *contracts.MixerProfile {
	var p *contracts.MixerProfile
	switch c.Mixer {
	case MixerDM3:
		p = mixer.DM3()
	default:
		p = mixer.QuSeries()
	}
	if c.Channel > 0 {
		p.MIDIChannel = uint8(c.Channel - 1)
	}
	return p
}

// ChannelMapping converts the 1-based config channels to the 0-based
// mapping the interpreter uses.
func (c *Config) ChannelMapping() *contracts.ChannelMapping {
	toZeroBased := func(ch int) int {
		if ch <= 0 {
			return contracts.NoChannel
		}
		return ch - 1
	}
	return &contracts.ChannelMapping{
		MuteChannel:     toZeroBased(c.Mapping.Mute),
		SceneChannel:    toZeroBased(c.Mapping.Scene),
		SoftkeyChannel:  toZeroBased(c.Mapping.Softkey),
		SoftkeyBaseNote: uint8(c.Mapping.SoftkeyBaseNote),
	}
}

// SessionOptions builds the factory options for the configured mixer.
func (c *Config) SessionOptions(log contracts.Logger) []contracts.Option {
	opts := []contracts.Option{
		contracts.WithLogger(log),
		contracts.WithProfile(c.Profile()),
	}
	if c.Output.MIDIPort != "" {
		opts = append(opts, contracts.WithMIDIPort(c.Output.MIDIPort))
	}
	if c.Output.Address != "" {
		opts = append(opts, contracts.WithAddress(c.Output.Address))
	}
	if c.Retry.MaxAttempts > 0 {
		opts = append(opts, contracts.WithRetryPolicy(contracts.RetryPolicy{MaxAttempts: c.Retry.MaxAttempts}))
	}
	if c.ConnectTimeoutSeconds > 0 {
		opts = append(opts, contracts.WithConnectTimeout(time.Duration(c.ConnectTimeoutSeconds)*time.Second))
	}
	return opts
}

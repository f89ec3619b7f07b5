package contracts

import "time"

// RetryPolicy controls reconnection after transport failures.
type RetryPolicy struct {
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	MaxAttempts int
}

// SessionOptions defines the configuration for a mixer session.
type SessionOptions struct {
	Logger  Logger
	Profile *MixerProfile

	// MIDIPortName selects a local MIDI output port (ProtocolMIDINRPN).
	MIDIPortName string
	// Address is a host:port network target: TCP MIDI for
	// ProtocolMIDINRPN, UDP OSC for ProtocolOSC. Ignored when
	// MIDIPortName is set.
	Address string

	ConnectTimeout time.Duration
	Retry          RetryPolicy

	// QueueSize bounds the outbound command queue. Execute never blocks
	// longer than the enqueue; a full queue rejects the command.
	QueueSize int

	StateHandlers []StateHandler
}

// Option mutates SessionOptions.
type Option func(*SessionOptions)

// WithLogger sets the logger for the session.
func WithLogger(l Logger) Option {
	return func(o *SessionOptions) { o.Logger = l }
}

// WithProfile selects the mixer family descriptor.
func WithProfile(p *MixerProfile) Option {
	return func(o *SessionOptions) { o.Profile = p }
}

// WithMIDIPort targets a local MIDI output port by name.
func WithMIDIPort(name string) Option {
	return func(o *SessionOptions) { o.MIDIPortName = name }
}

// WithAddress targets a network mixer at host:port.
func WithAddress(addr string) Option {
	return func(o *SessionOptions) { o.Address = addr }
}

// WithConnectTimeout bounds each transport connect attempt.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *SessionOptions) { o.ConnectTimeout = d }
}

// WithRetryPolicy replaces the reconnection policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *SessionOptions) { o.Retry = p }
}

// WithQueueSize bounds the outbound command queue.
func WithQueueSize(n int) Option {
	return func(o *SessionOptions) { o.QueueSize = n }
}

// WithStateHandler registers a state transition observer.
func WithStateHandler(h StateHandler) Option {
	return func(o *SessionOptions) { o.StateHandlers = append(o.StateHandlers, h) }
}

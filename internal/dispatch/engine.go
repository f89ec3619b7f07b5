// Package dispatch runs the long-lived loop binding an inbound MIDI event
// source to the active mixer session.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/FPtrevi/midicontrol/internal/interpret"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// DropHandler receives events whose resulting command could not be
// executed, with the classified reason. Invoked from the engine loop; must
// not block.
type DropHandler func(ev contracts.MidiEvent, reason error)

// Engine consumes inbound events, interprets them against the channel
// mapping and hands logical commands to the session. Commands arriving
// while the session is not connected are dropped with a warning; nothing
// is queued across disconnect boundaries, since replaying stale mute or
// scene commands after a reconnect would apply outdated mixer state.
type Engine struct {
	session contracts.Session
	mapping *contracts.ChannelMapping
	logger  contracts.Logger
	onDrop  DropHandler
}

// New validates the mapping against the profile and builds the engine.
func New(session contracts.Session, profile *contracts.MixerProfile, mapping *contracts.ChannelMapping, logger contracts.Logger, onDrop DropHandler) (*Engine, error) {
	if session == nil || profile == nil || mapping == nil {
		return nil, fmt.Errorf("%w: engine needs session, profile and mapping", contracts.ErrConfigurationInvalid)
	}
	if err := interpret.Validate(mapping, profile); err != nil {
		return nil, err
	}
	return &Engine{
		session: session,
		mapping: mapping,
		logger:  logger,
		onDrop:  onDrop,
	}, nil
}

// Run consumes events until the context is cancelled or the source
// channel closes. It never blocks the event source beyond the handling of
// the current event: session submission is enqueue-only.
func (e *Engine) Run(ctx context.Context, events <-chan contracts.MidiEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			e.handle(ev)
		}
	}
}

func (e *Engine) handle(ev contracts.MidiEvent) {
	cmd, ok := interpret.Interpret(ev, e.mapping)
	if !ok {
		e.logger.Debug("event ignored", contracts.F("event", ev.String()))
		return
	}

	if err := e.session.Execute(cmd); err != nil {
		switch {
		case errors.Is(err, contracts.ErrTransportUnavailable):
			e.logger.Warn("command dropped, mixer not connected",
				contracts.F("command", cmd.String()),
				contracts.F("state", e.session.State().String()))
		default:
			e.logger.Warn("command rejected",
				contracts.F("command", cmd.String()),
				contracts.F("error", err))
		}
		if e.onDrop != nil {
			e.onDrop(ev, err)
		}
		return
	}

	e.logger.Debug("command dispatched",
		contracts.F("event", ev.String()),
		contracts.F("command", cmd.String()))
}

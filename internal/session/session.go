// Package session implements the per-mixer connection state machine. A
// session exclusively owns its transport; one consumer goroutine executes
// commands strictly in arrival order, so no two commands' wire units ever
// interleave on the wire.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FPtrevi/midicontrol/internal/protocol"
	"github.com/FPtrevi/midicontrol/internal/transport"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// Session drives one mixer connection through
// Disconnected -> Connecting -> Connected -> (Reconnecting ->) Failed.
type Session struct {
	codec     protocol.Codec
	transport transport.Transport
	logger    contracts.Logger
	retry     contracts.RetryPolicy
	timeout   time.Duration

	mu     sync.Mutex
	state  contracts.SessionState
	cancel context.CancelFunc
	wg     sync.WaitGroup

	cmds chan contracts.LogicalCommand

	notifyMu sync.Mutex
	handlers []contracts.StateHandler
}

// New builds a session over the given codec and transport. Options must
// already have defaults applied.
func New(codec protocol.Codec, tr transport.Transport, o *contracts.SessionOptions) *Session {
	return &Session{
		codec:     codec,
		transport: tr,
		logger:    o.Logger,
		retry:     o.Retry,
		timeout:   o.ConnectTimeout,
		state:     contracts.StateDisconnected,
		cmds:      make(chan contracts.LogicalCommand, o.QueueSize),
		handlers:  o.StateHandlers,
	}
}

// Connect starts the session. From Failed or Disconnected it resets the
// retry budget and begins connecting; while already running it is a no-op.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case contracts.StateConnecting, contracts.StateConnected, contracts.StateReconnecting:
		s.mu.Unlock()
		return nil
	}
	// Claim the session under the same lock as the guard, so two racing
	// Connect calls cannot both spawn a run goroutine.
	prev := s.state
	s.state = contracts.StateConnecting
	runCtx, cancel := context.WithCancel(ctx)
	prevCancel := s.cancel
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()
	if prevCancel != nil {
		// Previous run already ended in Failed; release its context.
		prevCancel()
	}

	s.notify(prev, contracts.StateConnecting)
	go s.run(runCtx)
	return nil
}

// Execute queues one command. Rejected with ErrTransportUnavailable when
// the session is not connected or the queue is full; never blocks longer
// than the enqueue.
func (s *Session) Execute(cmd contracts.LogicalCommand) error {
	if st := s.State(); st != contracts.StateConnected {
		return fmt.Errorf("%w: session is %s", contracts.ErrTransportUnavailable, st)
	}
	select {
	case s.cmds <- cmd:
		return nil
	default:
		return fmt.Errorf("%w: command queue full", contracts.ErrTransportUnavailable)
	}
}

// Disconnect stops the session and releases the transport. An in-flight
// wire sequence completes (or aborts on its own write error) before the
// transport closes. Idempotent, callable from any state.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	s.setState(contracts.StateDisconnected)
	return nil
}

// State returns the current connection state.
func (s *Session) State() contracts.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// run owns the transport for one Connect cycle: connect with retries,
// serve commands, reconnect on transport failure, stop on context cancel
// or an exhausted retry budget.
func (s *Session) run(ctx context.Context) {
	defer s.wg.Done()
	defer s.transport.Close()

	for {
		if !s.connectWithRetries(ctx) {
			if ctx.Err() != nil {
				// Cancelled, not budget-exhausted: leave Failed alone,
				// report Disconnected so Execute starts rejecting.
				s.setState(contracts.StateDisconnected)
			}
			return
		}

		err := s.serve(ctx)
		if ctx.Err() != nil {
			s.setState(contracts.StateDisconnected)
			return
		}

		s.logger.Warn("mixer transport failed, reconnecting", contracts.F("error", err))
		s.transport.Close()
		s.setState(contracts.StateReconnecting)
	}
}

// connectWithRetries attempts up to Retry.MaxAttempts transport connects
// with exponential backoff. Returns false when the session should stop:
// context cancelled or budget exhausted (state then Failed).
func (s *Session) connectWithRetries(ctx context.Context) bool {
	for attempt := 1; ; attempt++ {
		connectCtx := ctx
		var cancel context.CancelFunc
		if s.timeout > 0 {
			connectCtx, cancel = context.WithTimeout(ctx, s.timeout)
		}
		err := s.transport.Connect(connectCtx)
		if cancel != nil {
			cancel()
		}
		if err == nil {
			s.drainStale()
			s.setState(contracts.StateConnected)
			s.logger.Info("mixer connected")
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		s.logger.Warn("mixer connect failed",
			contracts.F("attempt", attempt),
			contracts.F("budget", s.retry.MaxAttempts),
			contracts.F("error", err))

		if attempt >= s.retry.MaxAttempts {
			s.setState(contracts.StateFailed)
			s.logger.Error("mixer connection failed permanently",
				contracts.F("attempts", attempt))
			return false
		}
		s.setState(contracts.StateReconnecting)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.backoff(attempt)):
		}
	}
}

// serve executes queued commands one at a time until the context is
// cancelled or a write fails. A command's whole unit sequence is written
// back to back; a failure partway discards the remainder (at-most-once).
func (s *Session) serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-s.cmds:
			units, err := s.codec.Encode(cmd)
			if err != nil {
				// OutOfRange from the codec: drop the command, the
				// session stays healthy.
				s.logger.Warn("command rejected",
					contracts.F("command", cmd.String()),
					contracts.F("error", err))
				continue
			}
			for i, u := range units {
				if werr := s.transport.Write(u); werr != nil {
					if i > 0 {
						return fmt.Errorf("%w: %s stopped after %d of %d units: %v",
							contracts.ErrSequenceInterrupted, cmd, i, len(units), werr)
					}
					return werr
				}
			}
			s.logger.Debug("command executed",
				contracts.F("command", cmd.String()),
				contracts.F("units", len(units)))
		}
	}
}

// drainStale empties commands queued before a (re)connect. Replaying them
// could apply outdated mixer state, so they are dropped with a warning.
func (s *Session) drainStale() {
	dropped := 0
	for {
		select {
		case cmd := <-s.cmds:
			dropped++
			s.logger.Warn("stale command dropped on reconnect",
				contracts.F("command", cmd.String()))
		default:
			if dropped > 0 {
				s.logger.Warn("stale commands dropped", contracts.F("count", dropped))
			}
			return
		}
	}
}

func (s *Session) backoff(attempt int) time.Duration {
	d := s.retry.BaseDelay
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * s.retry.Multiplier)
		if d >= s.retry.MaxDelay {
			return s.retry.MaxDelay
		}
	}
	if d > s.retry.MaxDelay {
		return s.retry.MaxDelay
	}
	return d
}

// setState records a transition and notifies handlers in order. Handlers
// run outside the state lock and must not block.
func (s *Session) setState(next contracts.SessionState) {
	s.mu.Lock()
	prev := s.state
	if prev == next {
		s.mu.Unlock()
		return
	}
	s.state = next
	s.mu.Unlock()

	s.notify(prev, next)
}

func (s *Session) notify(prev, next contracts.SessionState) {
	s.logger.Info("session state changed",
		contracts.F("from", prev.String()),
		contracts.F("to", next.String()))

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	for _, h := range s.handlers {
		h(prev, next)
	}
}

// interface guard
var _ contracts.Session = (*Session)(nil)

package main

import (
	"strings"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// inputWatcher keeps the configured MIDI input open across unplugs. Every
// rescan interval it checks the port is still present and reopens it when
// it reappears; listener errors from the driver force a close so the next
// tick reconnects.
type inputWatcher struct {
	name   string
	events chan<- contracts.MidiEvent
	logger contracts.Logger

	mu     sync.Mutex
	port   drivers.In
	stopFn func()
}

func newInputWatcher(name string, events chan<- contracts.MidiEvent, logger contracts.Logger) *inputWatcher {
	return &inputWatcher{name: name, events: events, logger: logger}
}

// tick opens the input when closed. Called from the main loop ticker.
func (w *inputWatcher) tick() {
	w.mu.Lock()
	open := w.port != nil
	w.mu.Unlock()
	if open {
		return
	}
	if err := w.open(); err != nil {
		w.logger.Debug("MIDI input not available",
			contracts.F("port", w.name),
			contracts.F("error", err))
	}
}

func (w *inputWatcher) open() error {
	port, err := findInPort(w.name)
	if err != nil {
		return err
	}
	if err := port.Open(); err != nil {
		return err
	}

	stop, err := midi.ListenTo(port, func(msg midi.Message, timestampms int32) {
		w.deliver(msg)
	}, midi.HandleError(func(listenErr error) {
		w.logger.Warn("MIDI listener error, input likely unplugged",
			contracts.F("port", w.name),
			contracts.F("error", listenErr))
		// Close from a fresh goroutine: the listener goroutine itself
		// must not call its own stop function.
		go w.close()
	}))
	if err != nil {
		_ = port.Close()
		return err
	}

	w.mu.Lock()
	w.port = port
	w.stopFn = stop
	w.mu.Unlock()
	w.logger.Info("MIDI input connected", contracts.F("port", port.String()))
	return nil
}

func (w *inputWatcher) close() {
	w.mu.Lock()
	stop := w.stopFn
	port := w.port
	w.stopFn = nil
	w.port = nil
	w.mu.Unlock()

	if stop != nil {
		stop()
	}
	if port != nil {
		_ = port.Close()
		w.logger.Info("MIDI input closed", contracts.F("port", w.name))
	}
}

// deliver converts one raw message and hands it to the engine channel
// without ever blocking the driver callback.
func (w *inputWatcher) deliver(msg midi.Message) {
	ev, ok := toEvent(msg)
	if !ok {
		return
	}
	select {
	case w.events <- ev:
	default:
		w.logger.Warn("inbound event dropped, queue full", contracts.F("event", ev.String()))
	}
}

// toEvent maps a raw MIDI message to the core event type. Note On with
// velocity 0 arrives as a note end and is reported as NoteOff, matching
// the interpreter's press/release semantics.
func toEvent(msg midi.Message) (contracts.MidiEvent, bool) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		return contracts.MidiEvent{Channel: ch, Kind: contracts.NoteOn, Note: key, Velocity: vel}, true
	case msg.GetNoteEnd(&ch, &key):
		return contracts.MidiEvent{Channel: ch, Kind: contracts.NoteOff, Note: key}, true
	}
	var cc, val uint8
	if msg.GetControlChange(&ch, &cc, &val) {
		return contracts.MidiEvent{Channel: ch, Kind: contracts.ControlChange, Note: cc, Velocity: val}, true
	}
	return contracts.MidiEvent{}, false
}

func findInPort(name string) (drivers.In, error) {
	if port, err := midi.FindInPort(name); err == nil {
		return port, nil
	}
	lower := strings.ToLower(name)
	for _, port := range midi.GetInPorts() {
		if strings.Contains(strings.ToLower(port.String()), lower) {
			return port, nil
		}
	}
	return nil, errPortNotFound(name)
}

type errPortNotFound string

func (e errPortNotFound) Error() string { return "MIDI input \"" + string(e) + "\" not found" }

const inputRescanInterval = time.Second

// midicontrol bridges MIDI control messages from a presentation machine
// to a live mixer: NRPN mutes, Bank Select + Program Change scene recall
// and softkeys for the Allen & Heath Qu 5/6/7, or OSC for the Yamaha DM3.
//
//	midicontrol -config midicontrol.yaml
//	midicontrol -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register the MIDI driver

	"github.com/FPtrevi/midicontrol/internal/config"
	"github.com/FPtrevi/midicontrol/internal/dispatch"
	"github.com/FPtrevi/midicontrol/internal/logger"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
	"github.com/FPtrevi/midicontrol/sdk/mixer"
)

func main() {
	configPath := flag.String("config", "midicontrol.yaml", "path to the configuration file")
	list := flag.Bool("list", false, "list available MIDI ports and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	defer midi.CloseDriver()

	if *list {
		listPorts()
		return
	}

	log := logger.New(*debug)
	if err := run(*configPath, log); err != nil {
		log.Error("midicontrol stopped", contracts.F("error", err))
		os.Exit(1)
	}
}

func run(configPath string, log contracts.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cfg.SessionOptions(log)
	opts = append(opts, contracts.WithStateHandler(func(prev, cur contracts.SessionState) {
		// Connection indicator for the operator.
		log.Info("mixer "+cur.String(), contracts.F("was", prev.String()))
	}))

	sess, err := mixer.NewSession(opts...)
	if err != nil {
		return err
	}
	defer sess.Disconnect()

	engine, err := dispatch.New(sess, cfg.Profile(), cfg.ChannelMapping(), log, nil)
	if err != nil {
		return err
	}

	if err := sess.Connect(ctx); err != nil {
		return err
	}

	events := make(chan contracts.MidiEvent, 128)
	watcher := newInputWatcher(cfg.Input.Port, events, log)
	defer watcher.close()

	go func() {
		ticker := time.NewTicker(inputRescanInterval)
		defer ticker.Stop()
		watcher.tick()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				watcher.tick()
			}
		}
	}()

	log.Info("midicontrol running",
		contracts.F("mixer", cfg.Mixer),
		contracts.F("input", cfg.Input.Port))

	err = engine.Run(ctx, events)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func listPorts() {
	fmt.Println("MIDI inputs:")
	for _, p := range midi.GetInPorts() {
		fmt.Printf("  %s\n", p.String())
	}
	fmt.Println("MIDI outputs:")
	for _, p := range midi.GetOutPorts() {
		fmt.Printf("  %s\n", p.String())
	}
}

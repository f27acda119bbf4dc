// Command snake-sandbox runs the soft-bodied snake in a terminal with a top-down view
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/softsnake/audio"
	"github.com/lixenwraith/softsnake/config"
	"github.com/lixenwraith/softsnake/engine"
)

var (
	configPath = flag.String("config", "", "TOML settings file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/")
	muteFlag   = flag.Bool("mute", false, "Disable the wave cycle click")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns every resource the sandbox opens; deferred cleanup completes before main exits
func run() error {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	body, err := cfg.NewBody()
	if err != nil {
		return fmt.Errorf("failed to build snake: %w", err)
	}
	stepper, err := engine.NewStepper(cfg.StepperConfig())
	if err != nil {
		return fmt.Errorf("failed to create stepper: %w", err)
	}
	cue, err := audio.NewCue(cfg.CueConfig())
	if err != nil {
		return fmt.Errorf("failed to create audio cue: %w", err)
	}
	// Non-fatal, the sandbox runs silent
	if err := cue.Init(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cue.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			cue.Close()
			fmt.Fprintf(os.Stderr, "\r\nSANDBOX CRASHED: %v\r\nStack Trace:\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	log.Printf("Starting sandbox: %d segments, mode %s", body.SegmentCount(), body.Mode())
	NewSandbox(screen, body, stepper, engine.NewFrameClock(nil), cue).run()
	return nil
}

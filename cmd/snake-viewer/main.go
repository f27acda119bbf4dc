// Command snake-viewer shows the soft-bodied snake in a window, top-down
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/softsnake/audio"
	"github.com/lixenwraith/softsnake/config"
	"github.com/lixenwraith/softsnake/engine"
)

var (
	configPath = flag.String("config", "", "TOML settings file")
	muteFlag   = flag.Bool("mute", false, "Disable the wave cycle click")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so the audio cue is closed on every path
func run() error {
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
	if err := cue.Init(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cue.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("softsnake")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(NewGame(body, stepper, engine.NewFrameClock(nil), cue)); err != nil {
		return fmt.Errorf("viewer stopped: %w", err)
	}
	return nil
}

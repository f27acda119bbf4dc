// Command snake-bench runs the snake headless and plots head travel and kinetic energy
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/softsnake/config"
	"github.com/lixenwraith/softsnake/engine"
	"github.com/lixenwraith/softsnake/parameter"
)

var (
	configPath = flag.String("config", "", "TOML settings file")
	seconds    = flag.Float64("seconds", 10, "Simulated duration in seconds")
	modeFlag   = flag.String("mode", "", "Movement mode override: simple, lateral, rectilinear")
	turnFlag   = flag.String("turn", "none", "Held turn input: none, left, right")
	samples    = flag.Int("samples", 120, "Number of trace samples")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *modeFlag != "" {
		cfg.Body.Mode = *modeFlag
	}

	body, err := cfg.NewBody()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build snake: %v\n", err)
		os.Exit(1)
	}
	stepper, err := engine.NewStepper(cfg.StepperConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create stepper: %v\n", err)
		os.Exit(1)
	}

	sc := scenario{
		Seconds: *seconds,
		Frame:   parameter.FrameUpdateInterval,
		Samples: *samples,
		Turn:    *turnFlag,
	}

	start := time.Now()
	tr, err := run(body, stepper, sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		os.Exit(1)
	}
	wall := time.Since(start)

	title := fmt.Sprintf("%d segments, %s mode, turn %s, %.1fs simulated in %v",
		body.SegmentCount(), body.Mode(), sc.Turn, sc.Seconds, wall.Round(time.Millisecond))
	fmt.Print(render(title, tr, summarize(tr)))
}

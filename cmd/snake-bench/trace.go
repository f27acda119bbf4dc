package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/engine"
	"github.com/lixenwraith/softsnake/snake"
)

// scenario describes one headless run
type scenario struct {
	Seconds float64
	Frame   time.Duration
	Samples int
	Turn    string // "", "left" or "right"
}

// trace holds evenly spaced samples of a run
type trace struct {
	Time   []float64
	HeadX  []float64
	HeadZ  []float64
	Energy []float64

	Start       mgl64.Vec3
	End         mgl64.Vec3
	Frames      int
	SubSteps    int
	Unsupported int
}

type summary struct {
	Displacement float64
	Forward      float64
	MeanSpeed    float64
	FinalEnergy  float64
	PeakEnergy   float64
}

func parseTurn(s string) (snake.Direction, bool, error) {
	switch s {
	case "", "none":
		return 0, false, nil
	case "left":
		return snake.DirLeft, true, nil
	case "right":
		return snake.DirRight, true, nil
	}
	return 0, false, fmt.Errorf("unknown turn %q", s)
}

// run drives the body forward for the scenario duration in fixed frames
// Frames come from a manual time source through a FrameClock, as a live driver's would
func run(body *snake.Body, stepper *engine.Stepper, sc scenario) (trace, error) {
	if sc.Seconds <= 0 || sc.Frame <= 0 || sc.Samples < 2 {
		return trace{}, fmt.Errorf("invalid scenario: %+v", sc)
	}
	turn, turning, err := parseTurn(sc.Turn)
	if err != nil {
		return trace{}, err
	}
	if err := body.SetMoveDirection(snake.DirForward, true); err != nil {
		return trace{}, err
	}
	if turning {
		if err := body.SetMoveDirection(turn, true); err != nil {
			return trace{}, err
		}
	}

	frames := int(math.Ceil(sc.Seconds / sc.Frame.Seconds()))
	every := max(frames/(sc.Samples-1), 1)

	source := engine.NewManualTimeProvider(time.Time{}, sc.Frame)
	clock := engine.NewFrameClock(source)

	tr := trace{Start: body.HeadPosition(), Frames: frames}
	tr.record(0, body)
	for f := 1; f <= frames; f++ {
		source.NextFrame()
		n, err := stepper.Advance(body, clock.Tick())
		tr.SubSteps += n
		if err != nil {
			if !errors.Is(err, snake.ErrModeUnsupported) {
				return tr, fmt.Errorf("frame %d: %w", f, err)
			}
			tr.Unsupported++
		}
		if f%every == 0 || f == frames {
			tr.record(clock.Elapsed(), body)
		}
	}
	tr.End = body.HeadPosition()
	return tr, nil
}

func (tr *trace) record(t float64, body *snake.Body) {
	head := body.HeadPosition()
	tr.Time = append(tr.Time, t)
	tr.HeadX = append(tr.HeadX, head[0])
	tr.HeadZ = append(tr.HeadZ, head[2])
	tr.Energy = append(tr.Energy, body.KineticEnergy())
}

func summarize(tr trace) summary {
	var s summary
	delta := tr.End.Sub(tr.Start)
	delta[1] = 0
	s.Displacement = delta.Len()
	s.Forward = delta[0]
	if n := len(tr.Time); n > 0 {
		if elapsed := tr.Time[n-1]; elapsed > 0 {
			s.MeanSpeed = s.Displacement / elapsed
		}
		s.FinalEnergy = tr.Energy[n-1]
	}
	for _, e := range tr.Energy {
		s.PeakEnergy = max(s.PeakEnergy, e)
	}
	return s
}

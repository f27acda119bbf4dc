package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/audio"
	"github.com/lixenwraith/softsnake/engine"
	"github.com/lixenwraith/softsnake/parameter"
	"github.com/lixenwraith/softsnake/snake"
)

const (
	amplitudeStep = 0.05
	frequencyStep = 0.25
)

// Sandbox is the terminal driver: it owns the screen, the body, and the stepping machinery
type Sandbox struct {
	screen  tcell.Screen
	body    *snake.Body
	stepper *engine.Stepper
	clock   *engine.FrameClock
	cue     *audio.Cue
	view    viewport
	tuning  snake.Tuning // restored on reset

	lastErr  error
	substeps int

	// per-frame scratch
	positions []mgl64.Vec3
	rest      []float64
	lengths   []float64
}

func NewSandbox(screen tcell.Screen, body *snake.Body, stepper *engine.Stepper, clock *engine.FrameClock, cue *audio.Cue) *Sandbox {
	return &Sandbox{
		screen:    screen,
		body:      body,
		stepper:   stepper,
		clock:     clock,
		cue:       cue,
		tuning:    body.Tuning(),
		positions: make([]mgl64.Vec3, 0, body.SegmentCount()),
		rest:      make([]float64, 0, body.SegmentCount()-1),
		lengths:   make([]float64, 0, body.SegmentCount()-1),
	}
}

// step advances the simulation by one frame of wall time
func (s *Sandbox) step() {
	dt := s.clock.Tick()
	n, err := s.stepper.Advance(s.body, dt)
	s.substeps = n
	s.setError(err)
	if s.cue != nil {
		s.cue.Observe(s.body.WaveCycles())
	}
}

// setError records the latest update error, logging only on change
// A stepped frame without error clears a stale mode error
func (s *Sandbox) setError(err error) {
	if err == nil {
		if s.substeps > 0 && errors.Is(s.lastErr, snake.ErrModeUnsupported) {
			s.lastErr = nil
		}
		return
	}
	if s.lastErr == nil || s.lastErr.Error() != err.Error() {
		log.Printf("Update error: %v", err)
	}
	s.lastErr = err
}

// handleKey applies one key press; returns false to quit
func (s *Sandbox) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		r = 'w'
	case tcell.KeyLeft:
		r = 'a'
	case tcell.KeyRight:
		r = 'd'
	case tcell.KeyRune:
	default:
		return true
	}

	var err error
	switch r {
	case 'q':
		return false
	case 'w':
		err = s.body.ToggleMoveDirection(snake.DirForward)
	case 'a':
		err = s.body.ToggleMoveDirection(snake.DirLeft)
	case 'd':
		err = s.body.ToggleMoveDirection(snake.DirRight)
	case ' ':
		for _, dir := range []snake.Direction{snake.DirForward, snake.DirLeft, snake.DirRight} {
			err = errors.Join(err, s.body.SetMoveDirection(dir, false))
		}
	case 'm':
		err = s.body.SetMovementMode(s.body.Mode().Next())
		s.lastErr = nil
	case 'r':
		s.body.Reset()
		err = s.body.SetTuning(s.tuning)
		s.stepper.Reset()
		if s.cue != nil {
			s.cue.Rearm()
		}
		s.lastErr = nil
	case '+', '=':
		err = s.body.SetWaveAmplitude(s.body.WaveAmplitude() + amplitudeStep)
	case '-':
		err = s.body.SetWaveAmplitude(max(0, s.body.WaveAmplitude()-amplitudeStep))
	case ']':
		err = s.body.SetWaveFrequency(s.body.WaveFrequency() + frequencyStep)
	case '[':
		err = s.body.SetWaveFrequency(s.body.WaveFrequency() - frequencyStep)
	case 'p':
		s.clock.TogglePause()
	}
	if err != nil {
		s.lastErr = err
	}
	return true
}

func (s *Sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// run is the frame loop: a ticker drives simulation and drawing, a goroutine feeds events
func (s *Sandbox) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\nStack Trace:\r\n%s\r\n", r, debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			s.step()
			s.draw()
		}
	}
}

package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/softsnake/snake"
)

const (
	metersToCols = 40.0 // horizontal zoom
	cellAspect   = 0.5  // terminal cells are about twice as tall as wide
	gridSpacing  = 0.25 // meters between ground markers
	hudRows      = 3
	arrowLength  = 0.15 // meters
)

var (
	styleGrid     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 70))
	styleHead     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSegment  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleArrow    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHUDError = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// viewport maps the ground plane to terminal cells, looking down the -y axis
// World +x is screen right, world +z is screen down
type viewport struct {
	center        mgl64.Vec3
	width, height int
}

func (v viewport) project(p mgl64.Vec3) (col, row int, ok bool) {
	col = v.width/2 + int(math.Round((p[0]-v.center[0])*metersToCols))
	row = v.height/2 + int(math.Round((p[2]-v.center[2])*metersToCols*cellAspect))
	ok = col >= 0 && col < v.width && row >= hudRows && row < v.height
	return col, row, ok
}

// unproject returns the world point under a cell, on the ground plane
func (v viewport) unproject(col, row int) mgl64.Vec3 {
	return mgl64.Vec3{
		v.center[0] + float64(col-v.width/2)/metersToCols,
		0,
		v.center[2] + float64(row-v.height/2)/(metersToCols*cellAspect),
	}
}

// strainStyle colors a spring by how far its rest length is driven from nominal
func strainStyle(rest, nominal float64) tcell.Style {
	ratio := rest / nominal
	switch {
	case ratio < 0.9:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 140, 0))
	case ratio > 1.1:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 200, 255))
	}
	return styleSegment
}

// peakStrain returns the signed relative deviation of actual from rest length
// with the largest magnitude; negative means the spring is squeezed below rest
func peakStrain(lengths, rest []float64) float64 {
	var peak float64
	for i := 0; i < min(len(lengths), len(rest)); i++ {
		if rest[i] <= 0 {
			continue
		}
		if strain := lengths[i]/rest[i] - 1; math.Abs(strain) > math.Abs(peak) {
			peak = strain
		}
	}
	return peak
}

// arrowRune picks the arrow closest to a ground-plane direction
func arrowRune(dir mgl64.Vec3) rune {
	arrows := [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	angle := math.Atan2(dir[2], dir[0]) // screen-clockwise from +x
	octant := int(math.Round(angle/(math.Pi/4))) & 7
	return arrows[octant]
}

func (s *Sandbox) draw() {
	s.screen.Clear()
	s.view.width, s.view.height = s.screen.Size()
	s.view.center = s.body.CenterOfMass()

	s.drawGrid()
	s.drawBody()
	s.drawHUD()

	s.screen.Show()
}

func (s *Sandbox) drawGrid() {
	lo := s.view.unproject(0, hudRows)
	hi := s.view.unproject(s.view.width-1, s.view.height-1)
	for x := math.Ceil(lo[0]/gridSpacing) * gridSpacing; x <= hi[0]; x += gridSpacing {
		for z := math.Ceil(lo[2]/gridSpacing) * gridSpacing; z <= hi[2]; z += gridSpacing {
			if col, row, ok := s.view.project(mgl64.Vec3{x, 0, z}); ok {
				s.screen.SetContent(col, row, '·', nil, styleGrid)
			}
		}
	}
}

func (s *Sandbox) drawBody() {
	s.positions = s.body.Positions(s.positions[:0])
	s.rest = s.body.RestLengths(s.rest[:0])
	nominal := s.body.SegmentLength()

	// Springs first so masses draw over them
	for i, rest := range s.rest {
		a, b := s.positions[i], s.positions[i+1]
		style := strainStyle(rest, nominal)
		steps := int(a.Sub(b).Len()*metersToCols) + 1
		for k := 1; k < steps; k++ {
			p := a.Add(b.Sub(a).Mul(float64(k) / float64(steps)))
			if col, row, ok := s.view.project(p); ok {
				s.screen.SetContent(col, row, '─', nil, style)
			}
		}
	}

	for i := len(s.positions) - 1; i >= 0; i-- {
		col, row, ok := s.view.project(s.positions[i])
		if !ok {
			continue
		}
		if i == 0 {
			s.screen.SetContent(col, row, '@', nil, styleHead)
		} else {
			s.screen.SetContent(col, row, 'o', nil, styleSegment)
		}
	}

	if s.body.IsMoving() {
		tip := s.positions[0].Add(s.body.ForwardDirection().Mul(arrowLength))
		if col, row, ok := s.view.project(tip); ok {
			s.screen.SetContent(col, row, arrowRune(s.body.ForwardDirection()), nil, styleArrow)
		}
	}
}

func (s *Sandbox) drawHUD() {
	head := s.body.HeadPosition()
	in := s.body.Input()
	state := "stopped"
	if s.clock.IsPaused() {
		state = "paused"
	} else if s.body.IsMoving() {
		state = "moving"
	}

	s.lengths = s.body.SpringLengths(s.lengths[:0])
	s.rest = s.body.RestLengths(s.rest[:0])

	lines := []string{
		fmt.Sprintf("mode %-11s %-7s  in[%s]  head (%+.3f, %+.3f)  heading %s",
			s.body.Mode(), state, inputFlags(in), head[0], head[2], formatDir(s.body.ForwardDirection())),
		fmt.Sprintf("amp %.2f  freq %.2f Hz  KE %.2e J  strain %+5.1f%%  sub-steps %d",
			s.body.WaveAmplitude(), s.body.WaveFrequency(), s.body.KineticEnergy(),
			100*peakStrain(s.lengths, s.rest), s.substeps),
		"w/a/d toggle  space release  m mode  r reset  +/- amp  [/] freq  p pause  q quit",
	}
	for row, line := range lines {
		drawText(s.screen, 0, row, line, styleHUD)
	}
	if s.lastErr != nil {
		drawText(s.screen, 0, s.view.height-1, s.lastErr.Error(), styleHUDError)
	}
}

func inputFlags(in snake.Input) string {
	flags := []byte("---")
	if in.Forward {
		flags[0] = 'F'
	}
	if in.Left {
		flags[1] = 'L'
	}
	if in.Right {
		flags[2] = 'R'
	}
	return string(flags)
}

func formatDir(d mgl64.Vec3) string {
	return fmt.Sprintf("(%+.2f, %+.2f)", d[0], d[2])
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

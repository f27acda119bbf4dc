package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/softsnake/audio"
	"github.com/lixenwraith/softsnake/engine"
	"github.com/lixenwraith/softsnake/snake"
)

const (
	screenWidth    = 960
	screenHeight   = 640
	pixelsPerMeter = 300.0
	gridSpacing    = 0.25 // meters
	bodyScale      = 0.6  // drawn sphere radius relative to the physical radius
	headingLength  = 0.25 // meters
	amplitudeStep  = 0.05
	frequencyStep  = 0.25
)

var (
	colorBackground = color.RGBA{18, 20, 26, 255}
	colorGrid       = color.RGBA{40, 44, 54, 255}
	colorHead       = color.RGBA{250, 220, 80, 255}
	colorSegment    = color.RGBA{70, 170, 90, 255}
	colorHeading    = color.RGBA{240, 240, 240, 255}
	colorTarget     = color.RGBA{240, 90, 90, 255}
	colorHUD        = color.RGBA{220, 220, 220, 255}
	colorError      = color.RGBA{255, 90, 90, 255}
)

// Game implements ebiten.Game for the top-down viewer
type Game struct {
	body    *snake.Body
	stepper *engine.Stepper
	clock   *engine.FrameClock
	cue     *audio.Cue
	cam     camera
	tuning  snake.Tuning // restored on reset

	cruise  bool // latched forward input
	lastErr error

	positions []mgl64.Vec3
	rest      []float64
}

func NewGame(body *snake.Body, stepper *engine.Stepper, clock *engine.FrameClock, cue *audio.Cue) *Game {
	return &Game{
		body:    body,
		stepper: stepper,
		clock:   clock,
		cue:     cue,
		tuning:  body.Tuning(),
		cam:     camera{scale: pixelsPerMeter, width: screenWidth, height: screenHeight},
	}
}

// applyHeld pushes the held directional inputs into the body
func applyHeld(b *snake.Body, held snake.Input) error {
	if err := b.SetMoveDirection(snake.DirForward, held.Forward); err != nil {
		return err
	}
	if err := b.SetMoveDirection(snake.DirLeft, held.Left); err != nil {
		return err
	}
	return b.SetMoveDirection(snake.DirRight, held.Right)
}

func (g *Game) readInput() snake.Input {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.cruise = !g.cruise
	}
	return snake.Input{
		Forward: g.cruise || ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Left:    ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func (g *Game) handleControls() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.lastErr = nil
		return g.body.SetMovementMode(g.body.Mode().Next())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.body.Reset()
		g.stepper.Reset()
		g.cruise = false
		g.lastErr = nil
		if g.cue != nil {
			g.cue.Rearm()
		}
		return g.body.SetTuning(g.tuning)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.clock.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		return g.body.SetWaveAmplitude(g.body.WaveAmplitude() + amplitudeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		return g.body.SetWaveAmplitude(max(0, g.body.WaveAmplitude()-amplitudeStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		return g.body.SetWaveFrequency(g.body.WaveFrequency() + frequencyStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		return g.body.SetWaveFrequency(g.body.WaveFrequency() - frequencyStep)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if err := g.handleControls(); err != nil {
		g.lastErr = err
	}
	if err := applyHeld(g.body, g.readInput()); err != nil {
		return err
	}

	if _, err := g.stepper.Advance(g.body, g.clock.Tick()); err != nil {
		if g.lastErr == nil || g.lastErr.Error() != err.Error() {
			log.Printf("Update error: %v", err)
		}
		g.lastErr = err
	}
	if g.cue != nil {
		g.cue.Observe(g.body.WaveCycles())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.cam.center = g.body.CenterOfMass()

	g.drawGrid(screen)
	g.drawBody(screen)
	g.drawHUD(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	lo := g.cam.toWorld(0, 0)
	hi := g.cam.toWorld(float64(g.cam.width), float64(g.cam.height))
	for x := math.Ceil(lo[0]/gridSpacing) * gridSpacing; x <= hi[0]; x += gridSpacing {
		sx, _ := g.cam.toScreen(mgl64.Vec3{x, 0, 0})
		vector.StrokeLine(screen, sx, 0, sx, float32(g.cam.height), 1, colorGrid, false)
	}
	for z := math.Ceil(lo[2]/gridSpacing) * gridSpacing; z <= hi[2]; z += gridSpacing {
		_, sy := g.cam.toScreen(mgl64.Vec3{0, 0, z})
		vector.StrokeLine(screen, 0, sy, float32(g.cam.width), sy, 1, colorGrid, false)
	}
}

func (g *Game) drawBody(screen *ebiten.Image) {
	g.positions = g.body.Positions(g.positions[:0])
	g.rest = g.body.RestLengths(g.rest[:0])
	nominal, amp := g.body.SegmentLength(), g.body.WaveAmplitude()
	radius := float32(g.body.Radius() * bodyScale * g.cam.scale)

	for i, rest := range g.rest {
		ax, ay := g.cam.toScreen(g.positions[i])
		bx, by := g.cam.toScreen(g.positions[i+1])
		vector.StrokeLine(screen, ax, ay, bx, by, radius*0.8, strainColor(rest, nominal, amp), true)
	}

	for i := len(g.positions) - 1; i >= 0; i-- {
		x, y := g.cam.toScreen(g.positions[i])
		clr := colorSegment
		if i == 0 {
			clr = colorHead
		}
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	}

	hx, hy := g.cam.toScreen(g.positions[0])
	fx, fy := g.cam.toScreen(g.positions[0].Add(g.body.ForwardDirection().Mul(headingLength)))
	vector.StrokeLine(screen, hx, hy, fx, fy, 2, colorHeading, true)
	if g.body.IsMoving() {
		tx, ty := g.cam.toScreen(g.positions[0].Add(g.body.TargetDirection().Mul(headingLength)))
		vector.StrokeLine(screen, hx, hy, tx, ty, 1, colorTarget, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	head := g.body.HeadPosition()
	state := "stopped"
	switch {
	case g.clock.IsPaused():
		state = "paused"
	case g.body.IsMoving():
		state = "moving"
	}
	lines := []string{
		fmt.Sprintf("mode %s  %s  cruise %v", g.body.Mode(), state, g.cruise),
		fmt.Sprintf("head (%+.3f, %+.3f)  KE %.2e J", head[0], head[2], g.body.KineticEnergy()),
		fmt.Sprintf("amplitude %.2f  frequency %.2f Hz  cycle %.2f", g.body.WaveAmplitude(), g.body.WaveFrequency(), g.body.WaveCycles()),
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 12, 20+i*16, colorHUD)
	}
	if g.lastErr != nil {
		text.Draw(screen, g.lastErr.Error(), basicfont.Face7x13, 12, 20+len(lines)*16, colorError)
	}
	ebitenutil.DebugPrintAt(screen, "arrows/WAD steer  space cruise  M mode  R reset  P pause  -/= amp  [/] freq  Q quit", 12, g.cam.height-24)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.width, g.cam.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

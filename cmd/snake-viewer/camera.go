package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// camera maps the ground plane to screen pixels, looking down the -y axis
// World +x is screen right, world +z is screen down
type camera struct {
	center        mgl64.Vec3
	scale         float64 // pixels per meter
	width, height int
}

func (c camera) toScreen(p mgl64.Vec3) (x, y float32) {
	x = float32(float64(c.width)/2 + (p[0]-c.center[0])*c.scale)
	y = float32(float64(c.height)/2 + (p[2]-c.center[2])*c.scale)
	return x, y
}

func (c camera) toWorld(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{
		c.center[0] + (x-float64(c.width)/2)/c.scale,
		0,
		c.center[2] + (y-float64(c.height)/2)/c.scale,
	}
}

var (
	colorRelaxed    = color.RGBA{90, 200, 90, 255}
	colorContracted = color.RGBA{255, 140, 0, 255}
	colorExtended   = color.RGBA{0, 200, 255, 255}
)

// strainColor blends from relaxed toward contracted or extended by rest-length ratio
// amplitude is the full-scale modulation, clamped to the blend range
func strainColor(rest, nominal, amplitude float64) color.RGBA {
	if amplitude <= 0 {
		return colorRelaxed
	}
	t := (rest/nominal - 1) / amplitude
	target := colorExtended
	if t < 0 {
		t, target = -t, colorContracted
	}
	t = min(t, 1)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		lerp(colorRelaxed.R, target.R),
		lerp(colorRelaxed.G, target.G),
		lerp(colorRelaxed.B, target.B),
		255,
	}
}

// Package layout places the palette swatches and the eraser inside the
// reserved band at the top of the canvas and answers hit tests against them.
package layout

import (
	"math"

	"github.com/ha1tch/blobilism/internal/paint"
)

const (
	BandHeight = 70
	BandCenter = BandHeight / 2

	SwatchStartX     = 35
	SwatchStep       = 60
	SwatchHitRadius  = 25
	SwatchRenderSize = 50

	EraserInset  = 40
	EraserWidth  = 35
	EraserHeight = 45
)

// Swatch is one clickable palette sample.
type Swatch struct {
	Color  paint.Color
	X, Y   float32
	Radius float32
}

// Hit reports whether (x, y) lies strictly inside the swatch's hit radius.
func (s Swatch) Hit(x, y float32) bool {
	dx := float64(x - s.X)
	dy := float64(y - s.Y)
	return math.Hypot(dx, dy) < float64(s.Radius)
}

// Eraser is the rectangular control that resets the brush to the
// background color.
type Eraser struct {
	X, Y          float32
	Width, Height float32
}

// Hit reports whether (x, y) lies strictly inside the eraser bounds.
func (e Eraser) Hit(x, y float32) bool {
	hw, hh := e.Width/2, e.Height/2
	return x > e.X-hw && x < e.X+hw && y > e.Y-hh && y < e.Y+hh
}

// Layout is the fixed arrangement of the band. It is computed once and not
// modified afterwards.
type Layout struct {
	Width, Height float32
	Swatches      []Swatch
	Eraser        Eraser
}

// New lays out one swatch per palette entry, left to right, and the eraser
// near the right edge of a canvas of the given size.
func New(width, height int, palette []paint.Color) *Layout {
	l := &Layout{
		Width:  float32(width),
		Height: float32(height),
		Eraser: Eraser{
			X:      float32(width - EraserInset),
			Y:      BandCenter,
			Width:  EraserWidth,
			Height: EraserHeight,
		},
	}
	x := float32(SwatchStartX)
	for _, c := range palette {
		l.Swatches = append(l.Swatches, Swatch{Color: c, X: x, Y: BandCenter, Radius: SwatchHitRadius})
		x += SwatchStep
	}
	return l
}

// HitPalette returns the first swatch in order that contains (x, y).
func (l *Layout) HitPalette(x, y float32) (Swatch, bool) {
	for _, s := range l.Swatches {
		if s.Hit(x, y) {
			return s, true
		}
	}
	return Swatch{}, false
}

// HitEraser reports whether (x, y) is on the eraser.
func (l *Layout) HitEraser(x, y float32) bool {
	return l.Eraser.Hit(x, y)
}

// Drawable reports whether a stroke may be placed at height y. Everything
// at or above the bottom edge of the band is reserved.
func (l *Layout) Drawable(y float32) bool {
	return y > BandHeight
}

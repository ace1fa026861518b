package paint

import (
	"image/color"
	"math"
)

// Color is an RGB color with opacity. Channels are stored as given; clamping
// is left to whoever mutates them. Alpha is kept at double precision so that
// repeated 0.05 steps do not drift, and is narrowed only when rendered.
type Color struct {
	R, G, B float32
	A       float64
}

// RGB returns a fully opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given opacity.
func RGBA(r, g, b float32, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Opaque returns c at full opacity.
func (c Color) Opaque() Color {
	return c.WithAlpha(1)
}

// NRGBA narrows c to 8 bits per channel for drawing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(float64(c.R)),
		G: unit8(float64(c.G)),
		B: unit8(float64(c.B)),
		A: unit8(float64(float32(c.A))),
	}
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}

var (
	Background = RGB(0.95, 0.95, 0.95)
	BandColor  = RGB(0.1, 0.1, 0.1)

	EraserBase      = RGB(1.0, 0.7, 0.7)
	EraserAccent    = RGB(0.3, 0.5, 1.0)
	EraserConnector = RGB(0.9, 0.9, 0.9)
)

// Named palette entries.
var (
	DarkBlue    = RGB(0.0, 0.19921875, 0.3984375)
	MediumBlue  = RGB(0.0, 0.5, 1.0)
	LightBlue   = RGB(0.59765625, 0.796875, 1.0)
	LightYellow = RGB(0.99609375, 0.9375, 0.6796875)
	Magenta     = RGB(0.59765625, 0.3984375, 0.69921875)
	DarkGreen   = RGB(0.296875, 0.5, 0.3984375)
	Brown       = RGB(0.3984375, 0.296875, 0.19921875)
)

var defaultPalette = [...]Color{
	DarkBlue, MediumBlue, LightBlue, LightYellow, Magenta, DarkGreen, Brown,
}

// DefaultPalette returns the seven palette colors in display order. The
// returned slice is a fresh copy.
func DefaultPalette() []Color {
	p := make([]Color, len(defaultPalette))
	copy(p, defaultPalette[:])
	return p
}

// Package render draws the canvas contents through a minimal set of
// primitives.
package render

import (
	"image/color"

	"github.com/ha1tch/blobilism/internal/layout"
	"github.com/ha1tch/blobilism/internal/paint"
)

// Canvas is the drawing backend. Circles take a center and a diameter;
// rectangles take a center and full extents.
type Canvas interface {
	Clear(c color.NRGBA)
	FillCircle(x, y, diameter float32, c color.NRGBA)
	FillRect(cx, cy, w, h float32, c color.NRGBA)
}

// Renderer paints one frame. It only reads the stroke log and layout.
type Renderer struct {
	strokes *paint.StrokeLog
	layout  *layout.Layout
}

// NewRenderer returns a renderer reading s and l.
func NewRenderer(s *paint.StrokeLog, l *layout.Layout) *Renderer {
	return &Renderer{strokes: s, layout: l}
}

// Draw paints background, strokes, band, swatches and eraser in that order.
// The band chrome always ends up above any stroke.
func (r *Renderer) Draw(c Canvas) {
	c.Clear(paint.Background.NRGBA())

	r.strokes.Each(func(s paint.Stroke) {
		c.FillCircle(s.X, s.Y, float32(s.Size), s.Color.NRGBA())
	})

	c.FillRect(r.layout.Width/2, layout.BandCenter, r.layout.Width, layout.BandHeight, paint.BandColor.NRGBA())

	for _, s := range r.layout.Swatches {
		c.FillCircle(s.X, s.Y, layout.SwatchRenderSize, s.Color.Opaque().NRGBA())
	}

	drawEraser(c, r.layout.Eraser)
}

func drawEraser(c Canvas, e layout.Eraser) {
	c.FillRect(e.X, e.Y, e.Width, e.Height, paint.EraserBase.NRGBA())
	c.FillRect(e.X, e.Y-e.Height/4, e.Width, e.Height/2, paint.EraserAccent.NRGBA())
	c.FillRect(e.X, e.Y, e.Width, e.Height/10, paint.EraserConnector.NRGBA())
}

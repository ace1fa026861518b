// Package input turns decoded pointer and key events into brush and stroke
// log mutations.
package input

import (
	"context"
	"log/slog"

	"github.com/ha1tch/blobilism/internal/layout"
	"github.com/ha1tch/blobilism/internal/logging"
	"github.com/ha1tch/blobilism/internal/paint"
)

// Dispatcher applies events to a brush and a stroke log. It keeps no state
// of its own between events.
type Dispatcher struct {
	brush   *paint.Brush
	strokes *paint.StrokeLog
	layout  *layout.Layout
	log     *slog.Logger
}

// NewDispatcher returns a dispatcher over the given state. A nil logger
// discards status reports.
func NewDispatcher(b *paint.Brush, s *paint.StrokeLog, l *layout.Layout, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Dispatcher{brush: b, strokes: s, layout: l, log: log}
}

// Dispatch applies ev and returns the status reports it produced, in order.
func (d *Dispatcher) Dispatch(ev Event) []paint.Status {
	var out []paint.Status
	switch ev.Kind {
	case PointerMove:
		d.move(ev)
	case PointerDown:
		out = d.press(ev)
	case KeyPress:
		if st, ok := d.key(ev.Key); ok {
			out = append(out, st)
		}
	}
	for _, st := range out {
		d.report(st)
	}
	return out
}

func (d *Dispatcher) move(ev Event) {
	if !ev.Held || !d.layout.Drawable(ev.Y) {
		return
	}
	d.strokes.Append(d.brush.Stroke(ev.X, ev.Y))
}

// press checks the eraser first and then every swatch. Each swatch hit
// overwrites the brush color, so with overlapping swatches the last one in
// palette order wins.
func (d *Dispatcher) press(ev Event) []paint.Status {
	if ev.Button != ButtonPrimary {
		return nil
	}
	var out []paint.Status
	if d.layout.HitEraser(ev.X, ev.Y) {
		out = append(out, d.brush.SetColor(paint.Background))
	}
	for _, s := range d.layout.Swatches {
		if s.Hit(ev.X, ev.Y) {
			out = append(out, d.brush.SetColor(s.Color))
		}
	}
	return out
}

func (d *Dispatcher) key(k Key) (paint.Status, bool) {
	switch k {
	case KeyUp:
		return d.brush.IncreaseSize(), true
	case KeyDown:
		return d.brush.DecreaseSize(), true
	case KeyLeft:
		return d.brush.DecreaseAlpha(), true
	case KeyRight:
		return d.brush.IncreaseAlpha(), true
	case KeyC:
		return paint.Status{Op: paint.OpClear, Cleared: d.strokes.Clear()}, true
	}
	return paint.Status{}, false
}

func (d *Dispatcher) report(st paint.Status) {
	d.log.LogAttrs(context.Background(), slog.LevelInfo, st.String(), statusAttrs(st)...)
}

// statusAttrs carries only the fields that mean something for st.Op.
func statusAttrs(st paint.Status) []slog.Attr {
	attrs := []slog.Attr{slog.String("op", st.Op.String())}
	switch st.Op {
	case paint.OpSizeUp, paint.OpSizeDown:
		attrs = append(attrs, slog.Int("size", st.Size), slog.Bool("at_limit", st.AtLimit))
	case paint.OpAlphaUp, paint.OpAlphaDown:
		attrs = append(attrs, slog.Float64("alpha", st.Color.A), slog.Bool("at_limit", st.AtLimit))
	case paint.OpColorSet:
		attrs = append(attrs,
			slog.Float64("r", float64(st.Color.R)),
			slog.Float64("g", float64(st.Color.G)),
			slog.Float64("b", float64(st.Color.B)),
			slog.Float64("alpha", st.Color.A),
		)
	case paint.OpClear:
		attrs = append(attrs, slog.Int("cleared", st.Cleared))
	}
	return attrs
}

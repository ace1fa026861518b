// Package app owns the drawing state for one window and routes events and
// frames through it.
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ha1tch/blobilism/internal/input"
	"github.com/ha1tch/blobilism/internal/layout"
	"github.com/ha1tch/blobilism/internal/logging"
	"github.com/ha1tch/blobilism/internal/paint"
	"github.com/ha1tch/blobilism/internal/render"
)

// App is the single owner of the brush, the stroke log and the band layout.
// It is not safe for concurrent use; events and frames must arrive on one
// goroutine.
type App struct {
	Session string

	Brush   *paint.Brush
	Strokes *paint.StrokeLog
	Layout  *layout.Layout

	dispatcher *input.Dispatcher
	renderer   *render.Renderer
	log        *slog.Logger
}

// New builds the state for a width x height canvas. A nil logger disables
// logging.
func New(width, height int, log *slog.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	session := uuid.NewString()
	log = log.With("session", session)

	a := &App{
		Session: session,
		Brush:   paint.NewBrush(),
		Strokes: paint.NewStrokeLog(),
		Layout:  layout.New(width, height, paint.DefaultPalette()),
		log:     log,
	}
	a.dispatcher = input.NewDispatcher(a.Brush, a.Strokes, a.Layout, log)
	a.renderer = render.NewRenderer(a.Strokes, a.Layout)
	return a
}

// Setup logs the window geometry once the backend is ready.
func (a *App) Setup() {
	w, h := int(a.Layout.Width), int(a.Layout.Height)
	a.log.Info(fmt.Sprintf("Window size: %d, %d", w, h), "width", w, "height", h)
}

// Handle applies events in order and returns every status report produced.
func (a *App) Handle(events ...input.Event) []paint.Status {
	var out []paint.Status
	for _, ev := range events {
		out = append(out, a.dispatcher.Dispatch(ev)...)
	}
	return out
}

// Draw renders the current frame onto c.
func (a *App) Draw(c render.Canvas) {
	a.renderer.Draw(c)
}

// Step handles a frame's worth of events and then draws.
func (a *App) Step(c render.Canvas, events []input.Event) []paint.Status {
	out := a.Handle(events...)
	a.Draw(c)
	return out
}

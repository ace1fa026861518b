package app

import (
	"bytes"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ha1tch/blobilism/internal/input"
	"github.com/ha1tch/blobilism/internal/logging"
	"github.com/ha1tch/blobilism/internal/paint"
)

type countingCanvas struct {
	clears, circles, rects int
}

func (c *countingCanvas) Clear(color.NRGBA)                          { c.clears++ }
func (c *countingCanvas) FillCircle(_, _, _ float32, _ color.NRGBA)  { c.circles++ }
func (c *countingCanvas) FillRect(_, _, _, _ float32, _ color.NRGBA) { c.rects++ }

func TestNewInitialState(t *testing.T) {
	a := New(500, 500, nil)
	if _, err := uuid.Parse(a.Session); err != nil {
		t.Errorf("session %q is not a uuid: %v", a.Session, err)
	}
	if a.Brush.Size() != 10 || a.Brush.Color() != paint.Background || a.Brush.Alpha() != 1 {
		t.Errorf("initial brush size %d color %+v", a.Brush.Size(), a.Brush.Color())
	}
	if a.Strokes.Len() != 0 {
		t.Errorf("initial strokes = %d", a.Strokes.Len())
	}
	if len(a.Layout.Swatches) != 7 {
		t.Errorf("swatches = %d", len(a.Layout.Swatches))
	}
	if New(500, 500, nil).Session == a.Session {
		t.Error("sessions are not unique")
	}
}

func TestSessionScenario(t *testing.T) {
	a := New(500, 500, nil)

	a.Handle(input.Type(input.KeyUp, 0), input.Type(input.KeyUp, 0))
	if a.Brush.Size() != 20 {
		t.Fatalf("size = %d after two size-ups, want 20", a.Brush.Size())
	}

	var limitAt int
	for i := 1; i <= 21; i++ {
		st := a.Handle(input.Type(input.KeyLeft, 0))
		if len(st) != 1 {
			t.Fatalf("alpha-down %d: %v", i, st)
		}
		if st[0].AtLimit && limitAt == 0 {
			limitAt = i
		}
	}
	if limitAt != 20 {
		t.Errorf("alpha hit its limit on step %d, want 20", limitAt)
	}
	if a.Brush.Alpha() != 0 {
		t.Fatalf("alpha = %v, want 0", a.Brush.Alpha())
	}

	swatch := a.Layout.Swatches[3]
	a.Handle(input.Press(input.ButtonPrimary, swatch.X, swatch.Y, 0))
	a.Handle(
		input.Move(swatch.X, 60, 0, 25, true),
		input.Move(swatch.X, 250, 0, 190, true),
		input.Move(swatch.X, 260, 0, 10, false),
	)

	if a.Strokes.Len() != 1 {
		t.Fatalf("strokes = %d, want 1", a.Strokes.Len())
	}
	s := a.Strokes.At(0)
	want := paint.Stroke{X: swatch.X, Y: 250, Size: 20, Color: swatch.Color.WithAlpha(0)}
	if s != want {
		t.Errorf("stroke = %+v, want %+v", s, want)
	}

	st := a.Handle(input.Type(input.KeyC, 0))
	if len(st) != 1 || st[0].Cleared != 1 {
		t.Errorf("clear status = %v", st)
	}
	if a.Strokes.Len() != 0 {
		t.Errorf("strokes = %d after clear", a.Strokes.Len())
	}
}

func TestStepHandlesThenDraws(t *testing.T) {
	a := New(500, 500, nil)
	c := &countingCanvas{}
	a.Step(c, []input.Event{
		input.Move(100, 100, 0, 0, true),
		input.Move(101, 101, 1, 1, true),
	})
	if c.clears != 1 {
		t.Errorf("clears = %d", c.clears)
	}
	if want := 2 + len(a.Layout.Swatches); c.circles != want {
		t.Errorf("circles = %d, want %d", c.circles, want)
	}
	if c.rects != 4 {
		t.Errorf("rects = %d, want 4", c.rects)
	}
}

func TestSetupLogsWindowSize(t *testing.T) {
	var buf bytes.Buffer
	a := New(500, 500, logging.New(&buf, slog.LevelInfo))
	a.Setup()
	a.Handle(input.Type(input.KeyDown, 0))

	out := buf.String()
	for _, want := range []string{
		"Window size: 500, 500",
		"Pressed DOWN: Decrease point size to 5",
		"session=" + a.Session,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

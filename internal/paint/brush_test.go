package paint

import (
	"math"
	"testing"
)

func TestNewBrush(t *testing.T) {
	b := NewBrush()
	if b.Size() != DefaultSize {
		t.Errorf("Size() = %d, want %d", b.Size(), DefaultSize)
	}
	if b.Color() != Background {
		t.Errorf("Color() = %+v, want %+v", b.Color(), Background)
	}
	if b.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", b.Alpha())
	}
}

func TestSizeSteps(t *testing.T) {
	b := NewBrush()

	down := []struct {
		size    int
		atLimit bool
	}{
		{5, false},
		{1, false},
		{1, true},
		{1, true},
	}
	for i, want := range down {
		st := b.DecreaseSize()
		if st.Size != want.size || st.AtLimit != want.atLimit || b.Size() != want.size {
			t.Fatalf("decrease %d: got size %d limit %v, want %d %v", i+1, st.Size, st.AtLimit, want.size, want.atLimit)
		}
	}

	for i, want := range []int{5, 10, 15, 20} {
		st := b.IncreaseSize()
		if st.Size != want || st.AtLimit {
			t.Fatalf("increase %d: got %+v, want size %d", i+1, st, want)
		}
	}
}

func TestSizeNeverBelowMin(t *testing.T) {
	b := NewBrush()
	ops := []func() Status{b.DecreaseSize, b.IncreaseSize, b.DecreaseSize, b.DecreaseSize, b.DecreaseSize}
	for round := 0; round < 50; round++ {
		for _, op := range ops {
			op()
			if b.Size() < MinSize {
				t.Fatalf("size dropped to %d", b.Size())
			}
		}
	}
}

func TestDecreaseAlphaClamps(t *testing.T) {
	b := NewBrush()
	for i := 1; i <= 19; i++ {
		st := b.DecreaseAlpha()
		if st.AtLimit {
			t.Fatalf("step %d reported at limit with alpha %v", i, st.Color.A)
		}
		if b.Alpha() <= 0 || b.Alpha() > 1 {
			t.Fatalf("step %d: alpha %v out of range", i, b.Alpha())
		}
	}
	for i := 20; i <= 22; i++ {
		st := b.DecreaseAlpha()
		if !st.AtLimit {
			t.Fatalf("step %d: expected at limit, alpha %v", i, st.Color.A)
		}
		if b.Alpha() != 0 {
			t.Fatalf("step %d: alpha = %v, want 0", i, b.Alpha())
		}
	}
}

func TestIncreaseAlphaAtOneIsNoop(t *testing.T) {
	b := NewBrush()
	st := b.IncreaseAlpha()
	if !st.AtLimit || b.Alpha() != 1 {
		t.Errorf("IncreaseAlpha at 1: got %+v alpha %v", st, b.Alpha())
	}
}

func TestIncreaseAlphaNeverExceedsOne(t *testing.T) {
	b := NewBrush()
	for i := 0; i < 25; i++ {
		b.DecreaseAlpha()
	}
	for i := 0; i < 25; i++ {
		b.IncreaseAlpha()
		if b.Alpha() < 0 || b.Alpha() > 1 {
			t.Fatalf("step %d: alpha %v out of range", i, b.Alpha())
		}
	}
	if b.Alpha() != 1 {
		t.Errorf("alpha = %v after climbing, want 1", b.Alpha())
	}
}

func TestAlphaRoundTrip(t *testing.T) {
	for _, n := range []int{1, 3, 7, 19} {
		b := NewBrush()
		for i := 0; i < n; i++ {
			b.DecreaseAlpha()
		}
		for i := 0; i < n; i++ {
			b.IncreaseAlpha()
		}
		if math.Abs(b.Alpha()-1) > 1e-9 {
			t.Errorf("n=%d: alpha = %v, want 1", n, b.Alpha())
		}
	}
}

func TestSetColorKeepsAlpha(t *testing.T) {
	b := NewBrush()
	b.DecreaseAlpha()
	b.DecreaseAlpha()
	alpha := b.Alpha()

	st := b.SetColor(Magenta.WithAlpha(0.2))
	if st.Op != OpColorSet {
		t.Errorf("Op = %v, want %v", st.Op, OpColorSet)
	}
	if want := Magenta.WithAlpha(alpha); b.Color() != want {
		t.Errorf("Color() = %+v, want %+v", b.Color(), want)
	}
}

func TestStrokeIsSnapshot(t *testing.T) {
	b := NewBrush()
	b.SetColor(DarkGreen)
	s := b.Stroke(100, 200)

	b.IncreaseSize()
	b.SetColor(Brown)
	b.DecreaseAlpha()

	want := Stroke{X: 100, Y: 200, Size: DefaultSize, Color: DarkGreen}
	if s != want {
		t.Errorf("stroke = %+v, want %+v", s, want)
	}
}

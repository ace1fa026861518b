package paint

const (
	MinSize     = 1
	DefaultSize = 10

	sizeStep  = 5
	alphaStep = 0.05
)

// Brush is the paint configuration applied to new strokes. The zero value is
// not usable; call NewBrush.
type Brush struct {
	size  int
	color Color
}

// NewBrush returns a brush of DefaultSize painting the background color at
// full opacity.
func NewBrush() *Brush {
	return &Brush{size: DefaultSize, color: Background}
}

// Size returns the current stroke diameter.
func (b *Brush) Size() int { return b.size }

// Color returns the current color, opacity included.
func (b *Brush) Color() Color { return b.color }

// Alpha returns the current opacity.
func (b *Brush) Alpha() float64 {
	return b.color.A
}

// IncreaseSize grows the brush by one step. Size 1 jumps to 5 so that the
// steps above it stay on multiples of five.
func (b *Brush) IncreaseSize() Status {
	if b.size == MinSize {
		b.size = sizeStep
	} else {
		b.size += sizeStep
	}
	return b.status(OpSizeUp, false)
}

// DecreaseSize is the inverse of IncreaseSize; it never goes below MinSize.
func (b *Brush) DecreaseSize() Status {
	switch {
	case b.size > sizeStep:
		b.size -= sizeStep
	case b.size == sizeStep:
		b.size = MinSize
	default:
		return b.status(OpSizeDown, true)
	}
	return b.status(OpSizeDown, false)
}

// DecreaseAlpha lowers opacity by one step, clamping at zero.
func (b *Brush) DecreaseAlpha() Status {
	b.color.A -= alphaStep
	if b.color.A < 0 {
		b.color.A = 0
		return b.status(OpAlphaDown, true)
	}
	return b.status(OpAlphaDown, false)
}

// IncreaseAlpha raises opacity by one step. Opacity never exceeds one.
func (b *Brush) IncreaseAlpha() Status {
	if b.color.A >= 1 {
		return b.status(OpAlphaUp, true)
	}
	b.color.A += alphaStep
	if b.color.A > 1 {
		b.color.A = 1
	}
	return b.status(OpAlphaUp, false)
}

// SetColor replaces the brush channels and keeps the current opacity.
func (b *Brush) SetColor(c Color) Status {
	b.color = c.WithAlpha(b.color.A)
	return b.status(OpColorSet, false)
}

// Stroke snapshots the brush at (x, y).
func (b *Brush) Stroke(x, y float32) Stroke {
	return Stroke{X: x, Y: y, Size: b.size, Color: b.color}
}

func (b *Brush) status(op Op, atLimit bool) Status {
	return Status{Op: op, Size: b.size, Color: b.color, AtLimit: atLimit}
}

package paint

import "fmt"

// Op identifies the brush or canvas operation a Status describes.
type Op int

const (
	OpSizeUp Op = iota
	OpSizeDown
	OpAlphaDown
	OpAlphaUp
	OpColorSet
	OpClear
)

var opNames = []string{"size-up", "size-down", "alpha-down", "alpha-up", "color-set", "clear"}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// Status reports the outcome of a mutation. A limit condition is a status,
// not an error.
type Status struct {
	Op      Op
	Size    int
	Color   Color
	Cleared int
	AtLimit bool
}

func (s Status) String() string {
	switch s.Op {
	case OpSizeUp:
		return fmt.Sprintf("Pressed UP: Increase point size to %d", s.Size)
	case OpSizeDown:
		if s.AtLimit {
			return fmt.Sprintf("Pressed DOWN: Cannot decrease size, at limit %d", s.Size)
		}
		return fmt.Sprintf("Pressed DOWN: Decrease point size to %d", s.Size)
	case OpAlphaDown:
		if s.AtLimit {
			return fmt.Sprintf("Pressed LEFT: Cannot decrease transparency, at limit %.2f", s.Color.A)
		}
		return fmt.Sprintf("Pressed LEFT: Decrease transparency to %.2f", s.Color.A)
	case OpAlphaUp:
		if s.AtLimit {
			return fmt.Sprintf("Pressed RIGHT: Cannot increase transparency, at limit %.2f", s.Color.A)
		}
		return fmt.Sprintf("Pressed RIGHT: Increase transparency to %.2f", s.Color.A)
	case OpColorSet:
		return fmt.Sprintf("Setting color to %f %f %f", s.Color.R, s.Color.G, s.Color.B)
	case OpClear:
		return fmt.Sprintf("Cleared %d strokes", s.Cleared)
	}
	return s.Op.String()
}

package paint

// Stroke is one circular mark. It holds copies of the brush values at the
// time it was placed.
type Stroke struct {
	X, Y  float32
	Size  int
	Color Color
}

// StrokeLog is the ordered record of placed strokes. Order is paint order:
// later strokes cover earlier ones.
type StrokeLog struct {
	strokes []Stroke
}

// NewStrokeLog returns an empty log.
func NewStrokeLog() *StrokeLog {
	return &StrokeLog{}
}

// Append adds s on top of every earlier stroke.
func (l *StrokeLog) Append(s Stroke) {
	l.strokes = append(l.strokes, s)
}

// Clear drops every stroke and returns how many were released.
func (l *StrokeLog) Clear() int {
	n := len(l.strokes)
	l.strokes = nil
	return n
}

// Len returns the number of strokes.
func (l *StrokeLog) Len() int {
	return len(l.strokes)
}

// At returns the i'th stroke in paint order.
func (l *StrokeLog) At(i int) Stroke {
	return l.strokes[i]
}

// Each calls fn for every stroke in paint order.
func (l *StrokeLog) Each(fn func(Stroke)) {
	for _, s := range l.strokes {
		fn(s)
	}
}

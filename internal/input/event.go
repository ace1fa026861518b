package input

// EventKind tags the variant held by an Event.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerDown
	KeyPress
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerDown:
		return "pointer-down"
	case KeyPress:
		return "key-press"
	}
	return "unknown"
}

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Key is a decoded key identity. Backends map their own codes onto these.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyC
)

// Mod is a bit set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Event is a decoded input event. Which fields are meaningful depends on
// Kind:
//
//	PointerMove: X, Y, DX, DY, Held
//	PointerDown: X, Y, Button, Mods
//	KeyPress:    Key, Mods
type Event struct {
	Kind   EventKind
	X, Y   float32
	DX, DY float32
	Held   bool
	Button Button
	Key    Key
	Mods   Mod
}

// Move returns a pointer motion event. held reports whether the primary
// button is down during the motion.
func Move(x, y, dx, dy float32, held bool) Event {
	return Event{Kind: PointerMove, X: x, Y: y, DX: dx, DY: dy, Held: held}
}

// Press returns a pointer button event at the current pointer position.
func Press(b Button, x, y float32, mods Mod) Event {
	return Event{Kind: PointerDown, Button: b, X: x, Y: y, Mods: mods}
}

// Type returns a key press event.
func Type(k Key, mods Mod) Event {
	return Event{Kind: KeyPress, Key: k, Mods: mods}
}

package rlbackend

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/blobilism/internal/input"
)

var keyMap = map[int32]input.Key{
	rl.KeyUp:    input.KeyUp,
	rl.KeyDown:  input.KeyDown,
	rl.KeyLeft:  input.KeyLeft,
	rl.KeyRight: input.KeyRight,
	rl.KeyC:     input.KeyC,
}

var buttonMap = []struct {
	code rl.MouseButton
	b    input.Button
}{
	{rl.MouseLeftButton, input.ButtonPrimary},
	{rl.MouseRightButton, input.ButtonSecondary},
	{rl.MouseMiddleButton, input.ButtonMiddle},
}

// decodeKey maps a raylib key code to the keys the dispatcher knows.
// Anything else decodes as input.KeyUnknown.
func decodeKey(code int32) input.Key {
	if k, ok := keyMap[code]; ok {
		return k
	}
	return input.KeyUnknown
}

// decodeButton maps a raylib mouse button; ok is false for buttons the
// dispatcher has no meaning for.
func decodeButton(code rl.MouseButton) (input.Button, bool) {
	for _, b := range buttonMap {
		if b.code == code {
			return b.b, true
		}
	}
	return 0, false
}

func mods() input.Mod {
	var m input.Mod
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		m |= input.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= input.ModControl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		m |= input.ModAlt
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		m |= input.ModSuper
	}
	return m
}

// Poll drains this frame's raylib input into events: key presses first,
// then button presses, then pointer motion.
func Poll() []input.Event {
	var events []input.Event
	m := mods()

	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		events = append(events, input.Type(decodeKey(code), m))
	}

	pos := rl.GetMousePosition()
	for _, code := range []rl.MouseButton{rl.MouseLeftButton, rl.MouseRightButton, rl.MouseMiddleButton} {
		if !rl.IsMouseButtonPressed(code) {
			continue
		}
		if b, ok := decodeButton(code); ok {
			events = append(events, input.Press(b, pos.X, pos.Y, m))
		}
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		events = append(events, input.Move(pos.X, pos.Y, delta.X, delta.Y, rl.IsMouseButtonDown(rl.MouseLeftButton)))
	}
	return events
}

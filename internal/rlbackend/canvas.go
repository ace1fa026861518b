package rlbackend

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas draws with raylib immediate-mode calls. It must be used between
// BeginDrawing and EndDrawing.
type Canvas struct{}

func (Canvas) Clear(c color.NRGBA) {
	rl.ClearBackground(toColor(c))
}

func (Canvas) FillCircle(x, y, diameter float32, c color.NRGBA) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, diameter/2, toColor(c))
}

func (Canvas) FillRect(cx, cy, w, h float32, c color.NRGBA) {
	rl.DrawRectangleRec(rl.Rectangle{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}, toColor(c))
}

// raylib colors are straight alpha despite the RGBA type.
func toColor(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Package rlbackend runs the drawing window on raylib.
package rlbackend

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/blobilism/internal/config"
	"github.com/ha1tch/blobilism/internal/input"
	"github.com/ha1tch/blobilism/internal/paint"
	"github.com/ha1tch/blobilism/internal/render"
)

// Frame is called once per frame with the decoded events and a canvas that
// is ready to draw on.
type Frame func(c render.Canvas, events []input.Event) []paint.Status

// Run opens the window described by cfg, calls setup once, and then calls
// frame until the window is closed.
func Run(cfg config.Config, setup func(), frame Frame) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	if setup != nil {
		setup()
	}

	for !rl.WindowShouldClose() {
		events := Poll()
		rl.BeginDrawing()
		frame(Canvas{}, events)
		rl.EndDrawing()
	}
}

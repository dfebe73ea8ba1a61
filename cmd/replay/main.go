// Command replay steps through a trajectory JSON dump produced by
// lander-offline's --dump flag, rendering the ship, its trail, and the
// ground with raylib.
//
// Usage: go run ./cmd/replay --dump episode.json
package main

import (
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/lander/camera"
	"github.com/pthm-cable/lander/physics"
	"github.com/pthm-cable/lander/renderer"
	"github.com/pthm-cable/lander/replaydump"
	"github.com/pthm-cable/lander/simstate"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelHeight  = 70
)

func main() {
	dumpPath := flag.String("dump", "", "Path to a trajectory JSON dump")
	flag.Parse()

	if *dumpPath == "" {
		log.Fatal("replay: --dump is required")
	}

	dump, err := replaydump.Load(*dumpPath)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	ground := &physics.Ground{Points: dump.Ground, PadIndex: dump.PadIndex}

	rl.InitWindow(windowWidth, windowHeight, "lander replay")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := camera.New(windowWidth, windowHeight-panelHeight, simstate.WorldWidth, simstate.WorldHeight)
	terrain := renderer.NewTerrainRenderer()
	ship := renderer.NewShipRenderer()
	defer terrain.Unload()
	defer ship.Unload()

	toScreen := func(wx, wy float64) (float32, float32) {
		return cam.WorldToScreen(float32(wx), float32(wy))
	}

	tick := 0
	lastTick := len(dump.States) - 1
	playing := true
	ticksPerSecond := float32(20)
	var accumulator float32

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.ZoomBy(1 + wheel*0.1)
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			playing = !playing
		}
		if rl.IsKeyPressed(rl.KeyRight) && tick < lastTick {
			tick++
		}
		if rl.IsKeyPressed(rl.KeyLeft) && tick > 0 {
			tick--
		}

		if playing {
			accumulator += dt * ticksPerSecond
			for accumulator >= 1 {
				accumulator--
				if tick < lastTick {
					tick++
				} else {
					playing = false
				}
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 10, G: 10, B: 20, A: 255})

		terrain.Draw(ground, toScreen)
		ship.DrawTrail(dump.States, tick, toScreen)
		ship.Draw(dump.States[tick], 20, toScreen)

		drawHUD(dump, tick, lastTick)

		panelY := float32(windowHeight - panelHeight + 10)
		newSpeed := gui.SliderBar(
			rl.Rectangle{X: 20, Y: panelY, Width: 300, Height: 20},
			"1", "60",
			ticksPerSecond, 1, 60,
		)
		rl.DrawText(fmt.Sprintf("%.0f ticks/s", ticksPerSecond), 330, int32(panelY), 16, rl.White)
		ticksPerSecond = newSpeed

		if gui.Button(rl.Rectangle{X: 500, Y: panelY, Width: 90, Height: 24}, toggleLabel(playing)) {
			playing = !playing
		}
		if gui.Button(rl.Rectangle{X: 600, Y: panelY, Width: 90, Height: 24}, "Restart") {
			tick = 0
			accumulator = 0
		}

		rl.EndDrawing()
	}
}

func toggleLabel(playing bool) string {
	if playing {
		return "Pause"
	}
	return "Play"
}

func drawHUD(dump replaydump.Dump, tick, lastTick int) {
	s := dump.States[tick]
	rl.DrawText(fmt.Sprintf("tick %d/%d  status=%s  score=%.4f", tick, lastTick, dump.Status, dump.Score), 10, 10, 18, rl.White)
	rl.DrawText(fmt.Sprintf("pos=(%.0f,%.0f) vel=(%.1f,%.1f) fuel=%.0f rotate=%.0f power=%.0f",
		s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.Fuel, s.Rotate, s.Power), 10, 32, 16, rl.LightGray)
}

package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lander/physics"
)

// TerrainRenderer draws the ground polyline and its landing pad in world
// coordinates, translated to screen coordinates by the camera the caller
// supplies for each vertex.
type TerrainRenderer struct {
	groundColor rl.Color
	padColor    rl.Color
}

// NewTerrainRenderer creates a terrain renderer with the default color
// scheme.
func NewTerrainRenderer() *TerrainRenderer {
	return &TerrainRenderer{
		groundColor: rl.Color{R: 120, G: 90, B: 60, A: 255},
		padColor:    rl.Yellow,
	}
}

// ToScreen converts a world point to a screen point; callers pass in a
// closure over their camera so this package stays independent of the
// camera package's concrete type.
type ToScreen func(wx, wy float64) (sx, sy float32)

// Draw renders the ground polyline as connected line segments, then
// highlights the landing pad segment in a distinct color and thickness.
func (r *TerrainRenderer) Draw(ground *physics.Ground, toScreen ToScreen) {
	if ground == nil || len(ground.Points) < 2 {
		return
	}

	for i := 0; i < len(ground.Points)-1; i++ {
		sx1, sy1 := toScreen(ground.Points[i].X, ground.Points[i].Y)
		sx2, sy2 := toScreen(ground.Points[i+1].X, ground.Points[i+1].Y)

		if i == ground.PadIndex {
			rl.DrawLineEx(rl.Vector2{X: sx1, Y: sy1}, rl.Vector2{X: sx2, Y: sy2}, 4, r.padColor)
			continue
		}
		rl.DrawLineEx(rl.Vector2{X: sx1, Y: sy1}, rl.Vector2{X: sx2, Y: sy2}, 2, r.groundColor)
	}
}

// Unload frees resources. The terrain renderer allocates no GPU
// resources of its own, but the method is kept so callers can treat it
// uniformly with other renderers.
func (r *TerrainRenderer) Unload() {}

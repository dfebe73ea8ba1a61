package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lander/simstate"
)

// ShipRenderer draws the lander at one tick of a trajectory, plus the
// faded trail of positions it has already passed through.
type ShipRenderer struct {
	hullColor  rl.Color
	trailColor rl.Color
	thrustColor rl.Color
}

// NewShipRenderer creates a ship renderer with the default color scheme.
func NewShipRenderer() *ShipRenderer {
	return &ShipRenderer{
		hullColor:   rl.White,
		trailColor:  rl.Color{R: 150, G: 150, B: 180, A: 120},
		thrustColor: rl.Color{R: 255, G: 140, B: 40, A: 220},
	}
}

// DrawTrail renders the path flown so far as a thin connected line.
func (r *ShipRenderer) DrawTrail(states []simstate.State, upTo int, toScreen ToScreen) {
	for i := 0; i < upTo && i < len(states)-1; i++ {
		sx1, sy1 := toScreen(states[i].Position.X, states[i].Position.Y)
		sx2, sy2 := toScreen(states[i+1].Position.X, states[i+1].Position.Y)
		rl.DrawLineEx(rl.Vector2{X: sx1, Y: sy1}, rl.Vector2{X: sx2, Y: sy2}, 1, r.trailColor)
	}
}

// Draw renders the ship hull as a small triangle pointed along its
// rotation, plus a thrust flame scaled by the current power level.
func (r *ShipRenderer) Draw(state simstate.State, size float32, toScreen ToScreen) {
	sx, sy := toScreen(state.Position.X, state.Position.Y)

	// Rotation is measured from vertical per the contest protocol, so the
	// nose points up when rotate is 0.
	theta := state.Rotate * math.Pi / 180

	nose := rotated(0, -size, theta)
	left := rotated(-size*0.6, size*0.5, theta)
	right := rotated(size*0.6, size*0.5, theta)

	rl.DrawTriangle(
		rl.Vector2{X: sx + nose.x, Y: sy + nose.y},
		rl.Vector2{X: sx + left.x, Y: sy + left.y},
		rl.Vector2{X: sx + right.x, Y: sy + right.y},
		r.hullColor,
	)

	if state.Power > 0 {
		flameLen := size * (0.4 + float32(state.Power)/4*0.8)
		tail := rotated(0, size*0.5+flameLen, theta)
		rl.DrawTriangle(
			rl.Vector2{X: sx + left.x*0.6, Y: sy + left.y*0.6},
			rl.Vector2{X: sx + right.x*0.6, Y: sy + right.y*0.6},
			rl.Vector2{X: sx + tail.x, Y: sy + tail.y},
			r.thrustColor,
		)
	}
}

type offset struct{ x, y float32 }

func rotated(x, y float32, theta float64) offset {
	s, c := math.Sincos(theta)
	return offset{
		x: x*float32(c) - y*float32(s),
		y: x*float32(s) + y*float32(c),
	}
}

// Unload frees resources. The ship renderer allocates no GPU resources
// of its own.
func (r *ShipRenderer) Unload() {}

// Package fixture loads the offline map fixture format: an initial ship
// state followed by the ground polyline, grounded on
// original_source/src/load_file.cpp (spec.md §6).
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pthm-cable/lander/geometry"
	"github.com/pthm-cable/lander/simstate"
)

// Fixture is the parsed contents of a map file: the ship's initial state
// and the ground polyline (left-to-right, in world coordinates).
type Fixture struct {
	Initial  simstate.State
	Polyline []geometry.Point
}

// Load reads a fixture from path.
func Load(path string) (Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a fixture from r: seven whitespace-separated integers
// (position x, y, velocity x, y, fuel, rotate, power) followed by N (x y)
// integer pairs describing the ground polyline.
func Parse(r io.Reader) (Fixture, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	readInt := func(field string) (int, error) {
		if !scanner.Scan() {
			return 0, fmt.Errorf("fixture: reading %s: %w", field, scanner.Err())
		}
		var v int
		if _, err := fmt.Sscanf(scanner.Text(), "%d", &v); err != nil {
			return 0, fmt.Errorf("fixture: parsing %s %q: %w", field, scanner.Text(), err)
		}
		return v, nil
	}

	px, err := readInt("position.x")
	if err != nil {
		return Fixture{}, err
	}
	py, err := readInt("position.y")
	if err != nil {
		return Fixture{}, err
	}
	vx, err := readInt("velocity.x")
	if err != nil {
		return Fixture{}, err
	}
	vy, err := readInt("velocity.y")
	if err != nil {
		return Fixture{}, err
	}
	fuel, err := readInt("fuel")
	if err != nil {
		return Fixture{}, err
	}
	rotate, err := readInt("rotate")
	if err != nil {
		return Fixture{}, err
	}
	power, err := readInt("power")
	if err != nil {
		return Fixture{}, err
	}

	fixture := Fixture{
		Initial: simstate.State{
			Position: geometry.Point{X: float64(px), Y: float64(py)},
			Velocity: geometry.Point{X: float64(vx), Y: float64(vy)},
			Fuel:     float64(fuel),
			Rotate:   float64(rotate),
			Power:    float64(power),
		},
	}

	for {
		x, errX := readInt("polyline.x")
		if errX != nil {
			break
		}
		y, errY := readInt("polyline.y")
		if errY != nil {
			return Fixture{}, fmt.Errorf("fixture: polyline has an x with no matching y: %w", errY)
		}
		fixture.Polyline = append(fixture.Polyline, geometry.Point{X: float64(x), Y: float64(y)})
	}

	if len(fixture.Polyline) < 2 {
		return Fixture{}, fmt.Errorf("fixture: polyline has %d vertices, want at least 2", len(fixture.Polyline))
	}

	return fixture, nil
}

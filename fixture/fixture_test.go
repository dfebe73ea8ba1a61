package fixture

import (
	"strings"
	"testing"

	"github.com/pthm-cable/lander/geometry"
)

func TestParseReadsInitialStateAndPolyline(t *testing.T) {
	input := "3500 3000 0 0 500 0 0\n0 2900\n1000 100\n6000 100\n7000 2900\n"

	f, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if f.Initial.Position != (geometry.Point{X: 3500, Y: 3000}) {
		t.Errorf("position = %v", f.Initial.Position)
	}
	if f.Initial.Fuel != 500 {
		t.Errorf("fuel = %v, want 500", f.Initial.Fuel)
	}
	if len(f.Polyline) != 4 {
		t.Fatalf("polyline len = %d, want 4", len(f.Polyline))
	}
	if f.Polyline[1] != (geometry.Point{X: 1000, Y: 100}) {
		t.Errorf("polyline[1] = %v", f.Polyline[1])
	}
}

func TestParseRejectsTooFewPolylinePoints(t *testing.T) {
	input := "0 0 0 0 0 0 0\n100 100\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for a single-vertex polyline")
	}
}

func TestParseRejectsTruncatedHeader(t *testing.T) {
	input := "0 0 0\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for a truncated header")
	}
}

func TestParseRejectsDanglingXWithoutY(t *testing.T) {
	input := "0 0 0 0 0 0 0\n0 2900\n1000 100\n6000\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for a dangling x with no matching y")
	}
}

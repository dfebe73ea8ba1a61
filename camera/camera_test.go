package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Should be centered on world
	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected camera at (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom 0.5 (min zoom fitting the world), got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(1280, 720)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(1.0)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestClampPositionKeepsViewportWithinWorld(t *testing.T) {
	cam := New(1280, 720, 7000, 3000)
	cam.SetZoom(2.0)

	cam.X = -1000
	cam.Y = -1000
	cam.clampPosition()

	halfW := cam.ViewportW / (2 * cam.Zoom)
	halfH := cam.ViewportH / (2 * cam.Zoom)
	if cam.X < halfW || cam.X > cam.WorldW-halfW {
		t.Errorf("camera X %f escaped world bounds", cam.X)
	}
	if cam.Y < halfH || cam.Y > cam.WorldH-halfH {
		t.Errorf("camera Y %f escaped world bounds", cam.Y)
	}
}

func TestPanClampsAtWorldEdge(t *testing.T) {
	cam := New(1280, 720, 7000, 3000)
	cam.SetZoom(2.0)

	cam.Pan(-100000, 0)

	halfW := cam.ViewportW / (2 * cam.Zoom)
	if cam.X != halfW {
		t.Errorf("expected camera clamped to left edge %f, got %f", halfW, cam.X)
	}

	cam.Pan(100000, 0)
	if cam.X != cam.WorldW-halfW {
		t.Errorf("expected camera clamped to right edge %f, got %f", cam.WorldW-halfW, cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// MinZoom should be max(1280/2560, 720/1440) = max(0.5, 0.5) = 0.5
	if cam.MinZoom != 0.5 {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestMinZoomPreventsDeadSpace(t *testing.T) {
	// Test with asymmetric world/viewport ratios
	cam := New(800, 600, 1600, 800)

	// MinZoom should be max(800/1600, 600/800) = max(0.5, 0.75) = 0.75
	if math.Abs(float64(cam.MinZoom-0.75)) > 0.001 {
		t.Errorf("expected MinZoom 0.75, got %f", cam.MinZoom)
	}

	// At min zoom, visible area should exactly fit world in limiting dimension
	cam.SetZoom(cam.MinZoom)
	visibleH := cam.ViewportH / cam.Zoom // 600 / 0.75 = 800 = worldH
	if math.Abs(float64(visibleH-cam.WorldH)) > 0.01 {
		t.Errorf("at min zoom, visible height %f should equal world height %f", visibleH, cam.WorldH)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(1.0)

	// Camera centered at (1280, 720), viewport 1280x720
	// Visible range in world coords: (640, 360) to (1920, 1080)

	if !cam.IsVisible(1280, 720, 10) {
		t.Error("center should be visible")
	}

	if cam.IsVisible(2400, 1300, 10) {
		t.Error("far point should not be visible")
	}

	if !cam.IsVisible(600, 720, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected position (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom reset to MinZoom %f, got %f", cam.MinZoom, cam.Zoom)
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	cam := New(1280, 720, 7000, 3000)
	cam.SetZoom(1.0)
	cam.X = 3500
	cam.Y = 1500

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if math.Abs(float64(minX-2860)) > 0.01 || math.Abs(float64(maxX-4140)) > 0.01 {
		t.Errorf("unexpected X bounds: %f, %f", minX, maxX)
	}
	if math.Abs(float64(minY-1140)) > 0.01 || math.Abs(float64(maxY-1860)) > 0.01 {
		t.Errorf("unexpected Y bounds: %f, %f", minY, maxY)
	}
}

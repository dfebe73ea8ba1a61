// Command genmap procedurally sculpts a map fixture: a single-pad ground
// polyline carved from simplex noise, plus a starting ship state high
// above it, written in the format fixture.Parse reads.
//
// original_source ships hand-authored fixtures but no generator for them;
// this tool fills that gap in the teacher's own idiom rather than
// hand-authoring more maps by hand.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/lander/simstate"
)

func main() {
	outPath := flag.String("out", "", "Path to write the generated fixture")
	seed := flag.Int64("seed", 1, "Noise seed")
	points := flag.Int("points", 24, "Number of ground polyline vertices")
	padWidthFrac := flag.Float64("pad-width", 0.08, "Pad width as a fraction of world width")
	minHeight := flag.Float64("min-height", 300, "Minimum ground height (world y, larger is higher up)")
	maxHeight := flag.Float64("max-height", 2700, "Maximum ground height (world y)")
	flag.Parse()

	if *outPath == "" {
		log.Fatal("genmap: --out is required")
	}
	if *points < 4 {
		log.Fatal("genmap: --points must be at least 4")
	}

	noise := opensimplex.New(*seed)
	xs, ys := carveTerrain(noise, *points, *padWidthFrac, *minHeight, *maxHeight)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("genmap: %v", err)
	}
	defer f.Close()

	writeFixture(f, xs, ys)
	fmt.Printf("genmap: wrote %d vertices to %s (pad at x=%.0f-%.0f)\n", len(xs), *outPath, xs[padIndexOf(ys)], xs[padIndexOf(ys)+1])
}

// carveTerrain samples fractal simplex noise across the world width to
// produce ground heights, then flattens two adjacent interior vertices
// into the landing pad.
func carveTerrain(noise opensimplex.Noise, n int, padWidthFrac, minHeight, maxHeight float64) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1) * simstate.WorldWidth
		xs[i] = math.Round(x)

		height := fbm(noise, x/simstate.WorldWidth, 4)
		// height in roughly [-1,1]; map to [minHeight, maxHeight].
		y := minHeight + (height+1)/2*(maxHeight-minHeight)
		ys[i] = math.Round(y)
	}

	padIndex := n/3 + n/3/2
	if padIndex >= n-1 {
		padIndex = n - 2
	}
	padWidth := padWidthFrac * simstate.WorldWidth
	padY := ys[padIndex]
	xs[padIndex+1] = math.Round(xs[padIndex] + math.Max(padWidth, xs[padIndex+1]-xs[padIndex]))
	ys[padIndex+1] = padY

	return xs, ys
}

// padIndexOf reports the index of the first pair of equal consecutive
// heights, matching how physics.NewGround locates the pad.
func padIndexOf(ys []float64) int {
	for i := 0; i < len(ys)-1; i++ {
		if ys[i] == ys[i+1] {
			return i
		}
	}
	return 0
}

// fbm sums several octaves of simplex noise for a more natural-looking
// silhouette than a single frequency would give.
func fbm(noise opensimplex.Noise, x float64, octaves int) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 2.0
	norm := 0.0
	for o := 0; o < octaves; o++ {
		sum += noise.Eval2(x*frequency, float64(o)*97.0) * amplitude
		norm += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	return sum / norm
}

func writeFixture(f *os.File, xs, ys []float64) {
	startX := xs[len(xs)/2]
	fmt.Fprintf(f, "%d %d %d %d %d %d %d\n",
		int(startX), 2900, // position, above the default maximum ground height
		0, 0, // velocity
		simstate.MaxFuel, 0, 0, // fuel, rotate, power
	)
	for i := range xs {
		fmt.Fprintf(f, "%d %d\n", int(xs[i]), int(ys[i]))
	}
}

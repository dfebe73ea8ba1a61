package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationRecord holds aggregated statistics for one evolved
// generation, the unit of telemetry this package persists (spec.md §4.F
// "generation lifecycle").
type GenerationRecord struct {
	GenerationIndex int     `csv:"generation"`
	ElapsedMillis   float64 `csv:"elapsed_ms"`

	BestScore  float64 `csv:"best_score"`
	MeanScore  float64 `csv:"mean_score"`
	StdevScore float64 `csv:"stdev_score"`
	P10Score   float64 `csv:"p10_score"`
	P50Score   float64 `csv:"p50_score"`
	P90Score   float64 `csv:"p90_score"`

	Landed        int `csv:"landed"`
	CrashedOnPad  int `csv:"crashed_on_pad"`
	CrashedOffPad int `csv:"crashed_off_pad"`
	Lost          int `csv:"lost"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeScoreStats calculates mean, standard deviation, and percentiles
// from a generation's raw fitness scores.
func ComputeScoreStats(scores []float64) (mean, stdev, p10, p50, p90 float64) {
	n := len(scores)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(scores, nil)
	stdev = stat.StdDev(scores, nil)

	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, stdev, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (r GenerationRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", r.GenerationIndex),
		slog.Float64("elapsed_ms", r.ElapsedMillis),
		slog.Float64("best_score", r.BestScore),
		slog.Float64("mean_score", r.MeanScore),
		slog.Float64("stdev_score", r.StdevScore),
		slog.Int("landed", r.Landed),
		slog.Int("crashed_on_pad", r.CrashedOnPad),
		slog.Int("crashed_off_pad", r.CrashedOffPad),
		slog.Int("lost", r.Lost),
	)
}

// LogRecord logs the generation record using slog.
func (r GenerationRecord) LogRecord() {
	slog.Info("generation",
		"generation", r.GenerationIndex,
		"elapsed_ms", r.ElapsedMillis,
		"best_score", r.BestScore,
		"mean_score", r.MeanScore,
		"stdev_score", r.StdevScore,
		"landed", r.Landed,
		"crashed_on_pad", r.CrashedOnPad,
		"crashed_off_pad", r.CrashedOffPad,
		"lost", r.Lost,
	)
}

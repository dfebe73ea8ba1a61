package paramsio

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseReadsFieldsInOrder(t *testing.T) {
	input := "100\n1\n0\n50\n0.02\n0.14\n0.1\n1.0\n1.0\n0.98\n0.1\n5.0\n0.1\n"

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Policy.GenerationCap != 100 {
		t.Errorf("generation cap = %d, want 100", doc.Policy.GenerationCap)
	}
	if !doc.Policy.KeepRunningAfterSolution {
		t.Error("keep running after solution should be true")
	}
	if doc.Policy.KeepRunningAfterMax {
		t.Error("keep running after max should be false")
	}
	if doc.Params.PopulationSize != 50 {
		t.Errorf("population size = %d, want 50", doc.Params.PopulationSize)
	}
	if doc.Params.EliteMultiplier != 5.0 {
		t.Errorf("elite multiplier = %v, want 5.0", doc.Params.EliteMultiplier)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	doc, err := Load("/nonexistent/ga_params.ini")
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if doc.Params.PopulationSize != Default().Params.PopulationSize {
		t.Errorf("expected Default() params for a missing file")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := Default()
	original.Policy.GenerationCap = 250
	original.Policy.KeepRunningAfterSolution = true

	var buf bytes.Buffer
	if err := Encode(&buf, original); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestParseRejectsTruncatedDocument(t *testing.T) {
	if _, err := Parse(strings.NewReader("100\n1\n")); err == nil {
		t.Fatal("expected error for a truncated document")
	}
}

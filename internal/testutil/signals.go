package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-formant/table"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// VowelColumns is the column order of [VowelTable].
var VowelColumns = []string{"F1", "F2", "Vowel", "speaker"}

// VowelRecords returns four measurements from two speakers.
func VowelRecords() []map[string]any {
	return []map[string]any{
		{"F1": 500.0, "F2": 1500.0, "Vowel": "a", "speaker": "s1"},
		{"F1": 600.0, "F2": 1600.0, "Vowel": "a", "speaker": "s1"},
		{"F1": 400.0, "F2": 2000.0, "Vowel": "i", "speaker": "s2"},
		{"F1": 420.0, "F2": 2100.0, "Vowel": "i", "speaker": "s2"},
	}
}

// VowelTable builds the [VowelRecords] table or fails t.
func VowelTable(t testing.TB) *table.Table {
	t.Helper()
	tbl, err := table.FromRecords(VowelColumns, VowelRecords())
	if err != nil {
		t.Fatalf("build vowel table: %v", err)
	}
	return tbl
}

// RequireColumn returns the numeric column name of tbl or fails t.
func RequireColumn(t testing.TB, tbl *table.Table, name string) []float64 {
	t.Helper()
	col, err := tbl.Float64s(name)
	if err != nil {
		t.Fatalf("column %q: %v", name, err)
	}
	return col
}

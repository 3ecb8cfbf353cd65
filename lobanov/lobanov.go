// Package lobanov applies Lobanov (per-group z-score) normalization to
// formant measurements.
//
// For every formant column the rows are partitioned by a grouping column,
// typically the speaker, and each value is replaced in a new "zsc" column by
// (value - group mean) / group standard deviation. The standard deviation is
// the Bessel-corrected sample estimate.
package lobanov

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-formant/stats"
	"github.com/cwbudde/algo-formant/table"
)

var (
	// ErrInsufficientGroupSize is returned when a group has fewer than two
	// non-missing values, leaving its standard deviation undefined.
	ErrInsufficientGroupSize = errors.New("lobanov: group has fewer than two values")
	// ErrZeroVariance is returned when all values of a group are equal.
	ErrZeroVariance = errors.New("lobanov: group standard deviation is zero")
)

// ColumnName returns the name of the normalized column for a formant column.
func ColumnName(formant string) string {
	return "zsc" + formant
}

// Normalize returns a new table with one z-score column per formant column,
// named by [ColumnName]. Row order is preserved. Missing values, and rows
// whose group key is missing, yield NaN. The input table is not modified,
// and nothing is appended on error.
func Normalize(t *table.Table, group string, formants []string) (*table.Table, error) {
	groups, err := t.Groups(group)
	if err != nil {
		return nil, fmt.Errorf("lobanov: %w", err)
	}

	cols := make([]table.Column, 0, len(formants))

	for _, name := range formants {
		values, err := t.Float64s(name)
		if err != nil {
			return nil, fmt.Errorf("lobanov: %w", err)
		}

		z := make([]float64, len(values))
		for i := range z {
			z[i] = math.NaN()
		}

		for _, g := range groups {
			sub := gather(values, g.Rows)

			s, err := groupSummary(sub)
			if err != nil {
				return nil, fmt.Errorf("column %q group %v: %w", name, g.Key, err)
			}

			scores := make([]float64, len(sub))
			stats.ZScores(scores, sub, s.Mean, s.StdDev)

			for i, row := range g.Rows {
				z[row] = scores[i]
			}
		}

		cols = append(cols, table.FloatColumn(ColumnName(name), z))
	}

	out, err := t.WithColumns(cols...)
	if err != nil {
		return nil, fmt.Errorf("lobanov: %w", err)
	}

	return out, nil
}

func groupSummary(values []float64) (stats.Summary, error) {
	s := stats.Describe(values)

	if s.N < 2 {
		return s, fmt.Errorf("%w: n=%d", ErrInsufficientGroupSize, s.N)
	}

	if s.StdDev == 0 {
		return s, ErrZeroVariance
	}

	return s, nil
}

func gather(values []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = values[row]
	}

	return out
}

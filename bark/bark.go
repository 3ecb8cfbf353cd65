package bark

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-formant/formant"
	"github.com/cwbudde/algo-formant/table"
)

// ErrDivisionByZero is returned when a conversion denominator is zero.
var ErrDivisionByZero = errors.New("bark: division by zero")

const (
	scale  = 26.81
	corner = 1960.0
	offset = 0.53

	// Upper asymptote of the scale, reached as f tends to infinity.
	maxBark = scale - offset
)

// FromHz converts a frequency in Hz to Bark. NaN input yields NaN.
// Frequencies of 0 Hz and -1960 Hz fail with [ErrDivisionByZero].
func FromHz(hz float64) (float64, error) {
	if math.IsNaN(hz) {
		return math.NaN(), nil
	}

	d := 1 + corner/hz
	if hz == 0 || d == 0 {
		return math.NaN(), fmt.Errorf("%w: %g Hz", ErrDivisionByZero, hz)
	}

	return scale/d - offset, nil
}

// ToHz is the inverse of [FromHz]. It fails with [ErrDivisionByZero] at the
// asymptote z = 26.28.
func ToHz(z float64) (float64, error) {
	if math.IsNaN(z) {
		return math.NaN(), nil
	}

	d := maxBark - z
	if d == 0 {
		return math.NaN(), fmt.Errorf("%w: %g Bark", ErrDivisionByZero, z)
	}

	return corner * (z + offset) / d, nil
}

// Correct applies Traunmüller's (1990) end corrections to a Bark value:
// values below 2 are raised by 0.15(2-z), values above 20.1 by 0.22(z-20.1).
func Correct(z float64) float64 {
	switch {
	case z < 2:
		return z + 0.15*(2-z)
	case z > 20.1:
		return z + 0.22*(z-20.1)
	default:
		return z
	}
}

// Convert returns a new table with one Bark column appended per formant
// column. Output names follow [formant.Name.BarkColumn]. The input table is
// not modified, and nothing is appended if any value fails to convert.
func Convert(t *table.Table, formants []string, opts ...Option) (*table.Table, error) {
	cfg := applyOptions(opts)

	names, err := formant.ParseAll(formants)
	if err != nil {
		return nil, err
	}

	cols := make([]table.Column, 0, len(names))

	for _, name := range names {
		hz, err := t.Float64s(name.Original)
		if err != nil {
			return nil, fmt.Errorf("bark: %w", err)
		}

		z := make([]float64, len(hz))
		for i, f := range hz {
			v, err := FromHz(f)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", name.Original, i, err)
			}

			if cfg.correct {
				v = Correct(v)
			}

			z[i] = v
		}

		cols = append(cols, table.FloatColumn(name.BarkColumn(), z))
	}

	out, err := t.WithColumns(cols...)
	if err != nil {
		return nil, fmt.Errorf("bark: %w", err)
	}

	return out, nil
}

package vowelplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/cwbudde/algo-formant/table"
)

// ErrMixedColumnKinds is returned when [ScaleAuto] meets a color column
// holding both numbers and text.
var ErrMixedColumnKinds = errors.New("vowelplot: color column mixes numbers and text")

// missingColor is used for cells the colormap cannot place, such as NaN.
var missingColor = color.Gray{Y: 160}

// legendEntry is one color swatch in the plot legend.
type legendEntry struct {
	name  string
	color color.Color
}

// colorMapping assigns a color to every row of the named column.
func colorMapping(t *table.Table, name string, scale ColorScale) ([]color.Color, []legendEntry, error) {
	if scale == ScaleAuto {
		kind, err := t.Kind(name)
		if err != nil {
			return nil, nil, err
		}

		switch kind {
		case table.KindText:
			scale = ScaleCategorical
		case table.KindMixed:
			return nil, nil, fmt.Errorf("%w: %q", ErrMixedColumnKinds, name)
		default:
			scale = ScaleSequential
		}
	}

	if scale == ScaleSequential {
		return sequentialColors(t, name)
	}

	return categoricalColors(t, name)
}

// categoricalColors gives each distinct value an evenly spaced hue, in order
// of first appearance.
func categoricalColors(t *table.Table, name string) ([]color.Color, []legendEntry, error) {
	values, err := t.Values(name)
	if err != nil {
		return nil, nil, err
	}

	var order []string

	index := make(map[string]int)
	keys := make([]string, len(values))

	for i, v := range values {
		k := table.FormatValue(v)
		keys[i] = k

		if _, ok := index[k]; !ok {
			index[k] = len(order)
			order = append(order, k)
		}
	}

	if len(order) == 0 {
		return nil, nil, nil
	}

	hues := palette.Rainbow(len(order)+1, 0, 1, 0.75, 0.85, 1).Colors()

	colors := make([]color.Color, len(values))
	for i, k := range keys {
		colors[i] = hues[index[k]]
	}

	legend := make([]legendEntry, len(order))
	for i, k := range order {
		legend[i] = legendEntry{name: k, color: hues[i]}
	}

	return colors, legend, nil
}

// sequentialColors maps numeric values onto the Kindlmann colormap spanning
// the column's range. The legend shows the two ends of the range.
func sequentialColors(t *table.Table, name string) ([]color.Color, []legendEntry, error) {
	values, err := t.Float64s(name)
	if err != nil {
		return nil, nil, err
	}

	lo, hi, ok := finiteRange(values)
	if !ok {
		colors := make([]color.Color, len(values))
		for i := range colors {
			colors[i] = missingColor
		}
		return colors, nil, nil
	}

	cm := moreland.Kindlmann()
	if hi > lo {
		cm.SetMax(hi)
		cm.SetMin(lo)
	} else {
		cm.SetMax(lo + 0.5)
		cm.SetMin(lo - 0.5)
	}

	at := func(v float64) color.Color {
		if !isFinite(v) {
			return missingColor
		}

		c, err := cm.At(v)
		if err != nil {
			return missingColor
		}
		return c
	}

	colors := make([]color.Color, len(values))
	for i, v := range values {
		colors[i] = at(v)
	}

	legend := []legendEntry{
		{name: table.FormatValue(lo), color: at(lo)},
	}
	if hi > lo {
		legend = append(legend, legendEntry{name: table.FormatValue(hi), color: at(hi)})
	}

	return colors, legend, nil
}

func finiteRange(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if !isFinite(v) {
			continue
		}

		if !ok {
			lo, hi, ok = v, v, true
			continue
		}

		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi, ok
}

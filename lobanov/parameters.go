package lobanov

import (
	"fmt"

	"github.com/cwbudde/algo-formant/stats"
	"github.com/cwbudde/algo-formant/table"
)

// GroupParameters holds the normalization statistics of one group.
type GroupParameters struct {
	Key       any
	Rows      int
	Summaries map[string]stats.Summary
}

// Parameters returns the per-group statistics [Normalize] would use, in
// order of first appearance of each group. Unlike Normalize it does not
// fail on small or constant groups; their summaries carry NaN or zero
// deviations instead.
func Parameters(t *table.Table, group string, formants []string) ([]GroupParameters, error) {
	groups, err := t.Groups(group)
	if err != nil {
		return nil, fmt.Errorf("lobanov: %w", err)
	}

	columns := make(map[string][]float64, len(formants))
	for _, name := range formants {
		values, err := t.Float64s(name)
		if err != nil {
			return nil, fmt.Errorf("lobanov: %w", err)
		}
		columns[name] = values
	}

	out := make([]GroupParameters, len(groups))
	for i, g := range groups {
		p := GroupParameters{
			Key:       g.Key,
			Rows:      len(g.Rows),
			Summaries: make(map[string]stats.Summary, len(formants)),
		}

		for _, name := range formants {
			p.Summaries[name] = stats.Describe(gather(columns[name], g.Rows))
		}

		out[i] = p
	}

	return out, nil
}

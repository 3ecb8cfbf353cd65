package vowelplot

import (
	"strconv"

	"gonum.org/v1/plot"
)

// logTicks marks a log axis with plain numeric labels.
//
// Formant ranges usually sit inside a single decade, where plot.LogTicks
// labels nothing. The in-range intermediate ticks are labelled when fewer
// than two powers of ten fall inside the range, and linear ticks are used
// when even that leaves fewer than two labels.
type logTicks struct{}

// Ticks implements plot.Ticker.
func (logTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.LogTicks{Prec: -1}.Ticks(min, max)
	if labelledInRange(ticks, min, max) >= 2 {
		return ticks
	}

	for i := range ticks {
		// LogTicks repeats each power of ten as a minor tick.
		if i > 0 && ticks[i-1].Value == ticks[i].Value {
			continue
		}

		if ticks[i].Label == "" && ticks[i].Value >= min && ticks[i].Value <= max {
			ticks[i].Label = formatTick(ticks[i].Value)
		}
	}

	if labelledInRange(ticks, min, max) >= 2 {
		return ticks
	}

	linear := plot.DefaultTicks{}.Ticks(min, max)
	for i := range linear {
		if linear[i].Label != "" {
			linear[i].Label = formatTick(linear[i].Value)
		}
	}

	return linear
}

func labelledInRange(ticks []plot.Tick, min, max float64) int {
	n := 0

	for _, t := range ticks {
		if t.Label != "" && t.Value >= min && t.Value <= max {
			n++
		}
	}

	return n
}

// formatTick drops the floating point noise of computed tick positions.
func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

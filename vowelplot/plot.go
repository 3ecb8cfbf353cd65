package vowelplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-formant/table"
)

// ErrNonPositiveLogValue is returned when a log-scaled plot has a
// coordinate that is zero or negative.
var ErrNonPositiveLogValue = errors.New("vowelplot: log scale requires positive values")

// Figure is a rendered vowel plot together with its output size.
type Figure struct {
	*plot.Plot

	Width  vg.Length
	Height vg.Length
}

// Save writes the figure to path. The image format is chosen from the file
// extension (png, svg, pdf, eps, jpg, tif).
func (f *Figure) Save(path string) error {
	return f.Plot.Save(f.Width, f.Height, path)
}

// Encode writes the figure to w in the given format.
func (f *Figure) Encode(w io.Writer, format string) error {
	wt, err := f.Plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return fmt.Errorf("vowelplot: %w", err)
	}

	_, err = wt.WriteTo(w)

	return err
}

// Plot renders the rows of t as points in F1/F2 space.
//
// F2 is plotted on the horizontal axis and F1 on the vertical axis, both
// inverted. The axis labels are "F1 (unit)" and "F2 (unit)". Rows with a
// missing or infinite F1 or F2 are skipped. The only errors are missing or
// non-numeric columns, [ErrMixedColumnKinds] and [ErrNonPositiveLogValue].
// A log-scaled figure without any plottable row spans 1..10 on both axes.
func Plot(t *table.Table, opts ...Option) (*Figure, error) {
	cfg := applyOptions(opts)

	f1, err := t.Float64s(cfg.f1Column)
	if err != nil {
		return nil, fmt.Errorf("vowelplot: %w", err)
	}

	f2, err := t.Float64s(cfg.f2Column)
	if err != nil {
		return nil, fmt.Errorf("vowelplot: %w", err)
	}

	var labels []any
	if cfg.labelColumn != "" {
		labels, err = t.Values(cfg.labelColumn)
		if err != nil {
			return nil, fmt.Errorf("vowelplot: %w", err)
		}
	}

	var (
		colors []color.Color
		legend []legendEntry
	)

	if cfg.colorColumn != "" {
		colors, legend, err = colorMapping(t, cfg.colorColumn, cfg.scale)
		if err != nil {
			return nil, fmt.Errorf("vowelplot: %w", err)
		}
	}

	rows := make([]int, 0, len(f1))
	for i := range f1 {
		if !isFinite(f1[i]) || !isFinite(f2[i]) {
			continue
		}

		if cfg.logScale && (f1[i] <= 0 || f2[i] <= 0) {
			return nil, fmt.Errorf("%w: row %d has F1=%g F2=%g", ErrNonPositiveLogValue, i, f1[i], f2[i])
		}

		rows = append(rows, i)
	}

	xys := make(plotter.XYs, len(rows))
	for j, row := range rows {
		xys[j].X = f2[row]
		xys[j].Y = f1[row]
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "F2 (" + cfg.unit + ")"
	p.Y.Label.Text = "F1 (" + cfg.unit + ")"
	setAxes(p, cfg.logScale)
	applyStyle(p, cfg.style)

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("vowelplot: %w", err)
	}

	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = cfg.style.GlyphRadius

	if colors != nil {
		base := scatter.GlyphStyle
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			gs := base
			gs.Color = colors[rows[i]]
			return gs
		}
	}

	p.Add(scatter)

	if cfg.logScale && len(rows) == 0 {
		// Without data the axes fall back to 0..1, which a log scale cannot draw.
		p.X.Min, p.X.Max = 1, 10
		p.Y.Min, p.Y.Max = 1, 10
	}

	for _, e := range legend {
		gs := scatter.GlyphStyle
		gs.Color = e.color
		p.Legend.Add(e.name, swatch{style: gs})
	}
	p.Legend.Top = true

	if labels != nil && len(rows) > 0 {
		text := make([]string, len(rows))
		for j, row := range rows {
			text[j] = table.FormatValue(labels[row])
		}

		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
		if err != nil {
			return nil, fmt.Errorf("vowelplot: %w", err)
		}

		lbl.Offset = vg.Point{X: cfg.style.LabelOffset}
		for i := range lbl.TextStyle {
			lbl.TextStyle[i].Color = color.Black
			lbl.TextStyle[i].Font.Size = cfg.style.FontSize
			lbl.TextStyle[i].YAlign = draw.YCenter
		}

		p.Add(lbl)
	}

	return &Figure{Plot: p, Width: cfg.style.Width, Height: cfg.style.Height}, nil
}

// setAxes inverts both axes, optionally on a log scale with plain tick labels.
func setAxes(p *plot.Plot, logScale bool) {
	if logScale {
		p.X.Scale = plot.InvertedScale{Normalizer: plot.LogScale{}}
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LogScale{}}
		p.X.Tick.Marker = logTicks{}
		p.Y.Tick.Marker = logTicks{}

		return
	}

	p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
}

func applyStyle(p *plot.Plot, s Style) {
	p.Title.TextStyle.Font.Size = s.FontSize * 5 / 4
	p.X.Label.TextStyle.Font.Size = s.FontSize
	p.Y.Label.TextStyle.Font.Size = s.FontSize
	p.X.Tick.Label.Font.Size = s.FontSize * 4 / 5
	p.Y.Tick.Label.Font.Size = s.FontSize * 4 / 5
	p.Legend.TextStyle.Font.Size = s.FontSize
}

// swatch draws a single glyph as a legend thumbnail.
type swatch struct {
	style draw.GlyphStyle
}

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(s.style, c.Center())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

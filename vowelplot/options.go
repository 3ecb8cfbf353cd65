package vowelplot

import "gonum.org/v1/plot/vg"

// ColorScale selects how color-column values map to colors.
type ColorScale int

const (
	// ScaleAuto picks categorical for text columns and sequential for
	// numeric columns, inspecting every cell of the column.
	ScaleAuto ColorScale = iota
	// ScaleCategorical gives each distinct value its own hue.
	ScaleCategorical
	// ScaleSequential maps numeric values onto a perceptually ordered colormap.
	ScaleSequential
)

// Style holds the visual parameters of a figure.
type Style struct {
	Width       vg.Length
	Height      vg.Length
	FontSize    vg.Length
	GlyphRadius vg.Length
	LabelOffset vg.Length // horizontal distance of point labels from their point
}

// DefaultStyle returns a 10x10 inch figure with presentation-sized text.
func DefaultStyle() Style {
	return Style{
		Width:       10 * vg.Inch,
		Height:      10 * vg.Inch,
		FontSize:    vg.Points(16),
		GlyphRadius: vg.Points(4),
		LabelOffset: vg.Points(6),
	}
}

type config struct {
	f1Column    string
	f2Column    string
	labelColumn string
	colorColumn string
	scale       ColorScale
	title       string
	unit        string
	logScale    bool
	style       Style
}

func defaultConfig() config {
	return config{
		f1Column:    "F1",
		f2Column:    "F2",
		labelColumn: "Vowel",
		title:       "Vowel Plot",
		unit:        "Hz",
		style:       DefaultStyle(),
	}
}

// Option configures [Plot].
type Option func(*config)

// WithF1Column sets the column plotted on the vertical axis.
func WithF1Column(name string) Option {
	return func(cfg *config) {
		cfg.f1Column = name
	}
}

// WithF2Column sets the column plotted on the horizontal axis.
func WithF2Column(name string) Option {
	return func(cfg *config) {
		cfg.f2Column = name
	}
}

// WithLabelColumn sets the column whose values annotate each point.
// An empty name disables labels.
func WithLabelColumn(name string) Option {
	return func(cfg *config) {
		cfg.labelColumn = name
	}
}

// WithoutLabels disables point labels.
func WithoutLabels() Option {
	return WithLabelColumn("")
}

// WithColorColumn colors points by the values of the named column.
func WithColorColumn(name string) Option {
	return func(cfg *config) {
		cfg.colorColumn = name
	}
}

// WithColorScale declares how the color column is mapped to colors.
func WithColorScale(scale ColorScale) Option {
	return func(cfg *config) {
		cfg.scale = scale
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// WithoutTitle leaves the plot untitled.
func WithoutTitle() Option {
	return WithTitle("")
}

// WithUnit sets the unit shown in the axis labels, e.g. "Hz" or "Bark".
func WithUnit(unit string) Option {
	return func(cfg *config) {
		cfg.unit = unit
	}
}

// WithLogScale switches both axes to a logarithmic scale.
func WithLogScale(enabled bool) Option {
	return func(cfg *config) {
		cfg.logScale = enabled
	}
}

// WithStyle sets the visual style. Zero fields keep their defaults.
func WithStyle(style Style) Option {
	return func(cfg *config) {
		if style.Width > 0 {
			cfg.style.Width = style.Width
		}
		if style.Height > 0 {
			cfg.style.Height = style.Height
		}
		if style.FontSize > 0 {
			cfg.style.FontSize = style.FontSize
		}
		if style.GlyphRadius > 0 {
			cfg.style.GlyphRadius = style.GlyphRadius
		}
		if style.LabelOffset > 0 {
			cfg.style.LabelOffset = style.LabelOffset
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-formant/bark"
	"github.com/cwbudde/algo-formant/lobanov"
	"github.com/cwbudde/algo-formant/stats"
	"github.com/cwbudde/algo-formant/table"
	"github.com/cwbudde/algo-formant/vowelplot"
)

func newFlagSet(name, usage string, e env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: formant %s [flags] %s\n\nFlags:\n", name, usage)
		fs.PrintDefaults()
	}

	return fs
}

// parseArgs parses flags and returns the single positional input path.
func parseArgs(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", errUsage, err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return "", fmt.Errorf("%w: expected one input file, got %d", errUsage, fs.NArg())
	}

	return fs.Arg(0), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func readTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := table.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("read table", "path", path, "rows", tbl.Len(), "columns", tbl.Columns())

	return tbl, nil
}

// writeTable writes CSV to path, or to stdout when path is empty.
func writeTable(tbl *table.Table, path string, stdout io.Writer) error {
	if path == "" {
		return tbl.WriteCSV(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := tbl.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("wrote table", "path", path, "rows", tbl.Len())

	return nil
}

func runBark(args []string, e env) error {
	fs := newFlagSet("bark", "<input.csv>", e)
	formants := fs.String("formants", "F1,F2", "comma-separated formant columns, each ending in one digit")
	correct := fs.Bool("correct", false, "apply Traunmüller low/high-end corrections")
	output := fs.String("o", "", "output CSV file (default stdout)")

	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	tbl, err := readTable(path)
	if err != nil {
		return err
	}

	var opts []bark.Option
	if *correct {
		opts = append(opts, bark.WithTraunmullerCorrection())
	}

	out, err := bark.Convert(tbl, splitList(*formants), opts...)
	if err != nil {
		return err
	}

	return writeTable(out, *output, e.stdout)
}

func runLobanov(args []string, e env) error {
	fs := newFlagSet("lobanov", "<input.csv>", e)
	group := fs.String("group", "speaker", "column whose values define normalization groups")
	formants := fs.String("formants", "F1,F2", "comma-separated columns to normalize")
	output := fs.String("o", "", "output CSV file (default stdout)")

	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	tbl, err := readTable(path)
	if err != nil {
		return err
	}

	out, err := lobanov.Normalize(tbl, *group, splitList(*formants))
	if err != nil {
		return err
	}

	return writeTable(out, *output, e.stdout)
}

func runDescribe(args []string, e env) error {
	fs := newFlagSet("describe", "<input.csv>", e)
	group := fs.String("group", "", "grouping column (default: whole table)")
	formants := fs.String("formants", "F1,F2", "comma-separated columns to summarize")

	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	tbl, err := readTable(path)
	if err != nil {
		return err
	}

	names := splitList(*formants)

	var params []lobanov.GroupParameters
	if *group != "" {
		params, err = lobanov.Parameters(tbl, *group, names)
		if err != nil {
			return err
		}
	} else {
		all := lobanov.GroupParameters{
			Key:       "(all)",
			Rows:      tbl.Len(),
			Summaries: make(map[string]stats.Summary, len(names)),
		}

		for _, name := range names {
			values, err := tbl.Float64s(name)
			if err != nil {
				return err
			}
			all.Summaries[name] = stats.Describe(values)
		}

		params = []lobanov.GroupParameters{all}
	}

	return printSummaries(e.stdout, params, names)
}

func printSummaries(w io.Writer, params []lobanov.GroupParameters, names []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Group\tColumn\tN\tMean\tSD\tMin\tMax\n")
	fmt.Fprintf(tw, "-----\t------\t-\t----\t--\t---\t---\n")

	for _, p := range params {
		for _, name := range names {
			s := p.Summaries[name]
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
				table.FormatValue(p.Key), name, s.N, s.Mean, s.StdDev, s.Min, s.Max)
		}
	}

	return tw.Flush()
}

func parseScale(s string) (vowelplot.ColorScale, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return vowelplot.ScaleAuto, nil
	case "categorical":
		return vowelplot.ScaleCategorical, nil
	case "sequential":
		return vowelplot.ScaleSequential, nil
	default:
		return 0, fmt.Errorf("%w: unknown color scale %q", errUsage, s)
	}
}

func runPlot(args []string, e env) error {
	fs := newFlagSet("plot", "<input.csv>", e)
	f1 := fs.String("f1", "F1", "column plotted on the vertical axis")
	f2 := fs.String("f2", "F2", "column plotted on the horizontal axis")
	label := fs.String("label", "Vowel", "column used to label points (empty: no labels)")
	colorCol := fs.String("color", "", "column used to color points")
	scale := fs.String("scale", "auto", "color scale: auto, categorical, sequential")
	title := fs.String("title", "Vowel Plot", "plot title (empty: no title)")
	unit := fs.String("unit", "Hz", "unit shown in the axis labels")
	logScale := fs.Bool("log", false, "use logarithmic axes")
	size := fs.Float64("size", 10, "figure width and height in inches")
	output := fs.String("o", "vowels.png", "output image; format from extension")

	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	colorScale, err := parseScale(*scale)
	if err != nil {
		return err
	}

	tbl, err := readTable(path)
	if err != nil {
		return err
	}

	fig, err := vowelplot.Plot(tbl,
		vowelplot.WithF1Column(*f1),
		vowelplot.WithF2Column(*f2),
		vowelplot.WithLabelColumn(*label),
		vowelplot.WithColorColumn(*colorCol),
		vowelplot.WithColorScale(colorScale),
		vowelplot.WithTitle(*title),
		vowelplot.WithUnit(*unit),
		vowelplot.WithLogScale(*logScale),
		vowelplot.WithStyle(vowelplot.Style{
			Width:  vg.Length(*size) * vg.Inch,
			Height: vg.Length(*size) * vg.Inch,
		}),
	)
	if err != nil {
		return err
	}

	if err := fig.Save(*output); err != nil {
		return err
	}

	slog.Info("wrote plot", "path", *output, "rows", tbl.Len())

	return nil
}

func runSpectrum(args []string, e env) error {
	fs := newFlagSet("spectrum", "<input.wav>", e)
	at := fs.Float64("at", 0, "frame start in seconds")
	size := fs.Int("size", 1024, "frame length in samples")

	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	if *size <= 0 || *at < 0 {
		return fmt.Errorf("%w: -size must be > 0 and -at >= 0", errUsage)
	}

	samples, sampleRate, err := loadWAV(path)
	if err != nil {
		return err
	}

	frame, err := frameAt(samples, sampleRate, *at, *size)
	if err != nil {
		return err
	}

	bands, err := bark.BandLevels(frame, sampleRate)
	if err != nil {
		return err
	}

	return printBands(e.stdout, bands)
}

func printBands(w io.Writer, bands []bark.Band) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tLow [Hz]\tHigh [Hz]\tLevel [dB]\n")
	fmt.Fprintf(tw, "----\t--------\t---------\t----------\n")

	for _, b := range bands {
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.2f\n", b.Number, b.LowHz, b.HighHz, b.Level_dB)
	}

	return tw.Flush()
}

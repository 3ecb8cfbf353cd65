package vowelplot_test

import (
	"fmt"

	"github.com/cwbudde/algo-formant/table"
	"github.com/cwbudde/algo-formant/vowelplot"
)

func ExamplePlot() {
	tbl, _ := table.New("F1", "F2", "Vowel")
	_ = tbl.AppendRow(280, 2250, "i")
	_ = tbl.AppendRow(710, 1100, "a")
	_ = tbl.AppendRow(310, 870, "u")

	fig, err := vowelplot.Plot(tbl, vowelplot.WithUnit("Hz"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(fig.Title.Text)
	fmt.Println(fig.X.Label.Text, "/", fig.Y.Label.Text)

	// Output:
	// Vowel Plot
	// F2 (Hz) / F1 (Hz)
}

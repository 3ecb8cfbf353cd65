package bark_test

import (
	"fmt"

	"github.com/cwbudde/algo-formant/bark"
	"github.com/cwbudde/algo-formant/table"
)

func ExampleFromHz() {
	z, _ := bark.FromHz(1000)
	fmt.Printf("%.3f\n", z)

	// Output:
	// 8.527
}

func ExampleConvert() {
	tbl, _ := table.New("F1", "F2")
	_ = tbl.AppendRow(500, 1500)

	out, _ := bark.Convert(tbl, []string{"F1", "F2"})
	z1, _ := out.Value(0, "z1")
	z2, _ := out.Value(0, "z2")
	fmt.Printf("%v z1=%.3f z2=%.3f\n", out.Columns(), z1, z2)

	// Output:
	// [F1 F2 z1 z2] z1=4.919 z2=11.093
}

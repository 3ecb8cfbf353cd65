// Package vowelplot draws vowel measurements in articulatory F1/F2 space.
//
// [Plot] renders a scatter plot with F2 on the horizontal axis and F1 on the
// vertical axis. Both axes are inverted so that high front vowels appear at
// the top left, as in the vowel quadrilateral. Points may be colored by a
// categorical or sequential column and annotated with vowel labels.
//
// Rendering is done with gonum/plot. The returned [Figure] embeds the
// *plot.Plot for further customization before saving.
//
//	fig, err := vowelplot.Plot(tbl,
//		vowelplot.WithColorColumn("speaker"),
//		vowelplot.WithLogScale(true),
//	)
//	if err != nil {
//		return err
//	}
//	return fig.Save("vowels.png")
package vowelplot

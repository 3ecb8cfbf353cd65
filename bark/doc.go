// Package bark converts formant frequencies between Hertz and the Bark
// psychoacoustic scale using Traunmüller's closed form
//
//	z = 26.81 / (1 + 1960/f) - 0.53
//
// [Convert] derives Bark columns for formant columns of a [table.Table]:
// "F1" yields "z1", "F2" yields "z2". [BandLevels] groups the power spectrum
// of an audio frame into one-Bark critical bands.
package bark

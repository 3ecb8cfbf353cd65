// Package stats provides the descriptive statistics used for formant
// normalization: count, mean, Bessel-corrected variance and standard
// deviation, extrema, and z-scores.
//
// NaN values are treated as missing and skipped by [Describe] and
// [Accumulator].
package stats

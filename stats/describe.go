package stats

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	N        int
	Mean     float64
	Variance float64 // sample variance, divides by N-1
	StdDev   float64
	Min      float64
	Max      float64
}

func emptySummary() Summary {
	return Summary{
		Mean:     math.NaN(),
		Variance: math.NaN(),
		StdDev:   math.NaN(),
		Min:      math.NaN(),
		Max:      math.NaN(),
	}
}

// Describe computes a [Summary] of values using Welford's online algorithm.
// With fewer than two non-missing values Variance and StdDev are NaN.
func Describe(values []float64) Summary {
	var acc Accumulator
	acc.Update(values)

	return acc.Summary()
}

// Accumulator computes a [Summary] incrementally. It gives the same result
// as [Describe] over the concatenation of all added values.
//
// The zero value is ready to use.
type Accumulator struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add adds one value. NaN is ignored.
func (a *Accumulator) Add(x float64) {
	if math.IsNaN(x) {
		return
	}

	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)

	if a.n == 1 || x < a.min {
		a.min = x
	}

	if a.n == 1 || x > a.max {
		a.max = x
	}
}

// Update adds a block of values.
func (a *Accumulator) Update(values []float64) {
	for _, x := range values {
		a.Add(x)
	}
}

// Summary returns the statistics of all values added so far.
func (a *Accumulator) Summary() Summary {
	if a.n == 0 {
		return emptySummary()
	}

	s := Summary{
		N:        a.n,
		Mean:     a.mean,
		Variance: math.NaN(),
		StdDev:   math.NaN(),
		Min:      a.min,
		Max:      a.max,
	}

	if a.n > 1 {
		s.Variance = a.m2 / float64(a.n-1)
		s.StdDev = math.Sqrt(s.Variance)
	}

	return s
}

// ZScores writes (src[i]-mean)/std into dst. NaN inputs stay NaN.
// dst and src must have the same length and must not overlap.
func ZScores(dst, src []float64, mean, std float64) {
	if len(dst) != len(src) {
		panic("stats: ZScores length mismatch")
	}

	for i := range dst {
		dst[i] = -mean
	}

	vecmath.AddBlockInPlace(dst, src)
	vecmath.ScaleBlock(dst, dst, 1/std)
}

package bark

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidFrame is returned by [BandLevels] for an empty frame or a
// non-positive sample rate.
var ErrInvalidFrame = errors.New("bark: invalid analysis frame")

// Band is the spectral power inside one critical band.
//
//nolint:revive
type Band struct {
	Number   int // 1-based; band k spans [k-1, k) Bark
	LowHz    float64
	HighHz   float64
	Power    float64
	Level_dB float64
}

// BandLevels computes the power of a Hann-windowed frame per one-Bark
// critical band from 0 Hz up to the Nyquist frequency.
//
// The frame is zero-padded to the next power of two. Power is the
// unnormalized sum of |X[k]|^2 over the bins inside each band; bins below
// 0 Bark are counted in band 1.
func BandLevels(frame []float64, sampleRate float64) ([]Band, error) {
	if len(frame) == 0 || !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %d samples at %g Hz", ErrInvalidFrame, len(frame), sampleRate)
	}

	fftSize := nextPowerOf2(len(frame))
	if fftSize < 2 {
		fftSize = 2
	}

	windowed := make([]float64, len(frame))
	copy(windowed, frame)
	vecmath.MulBlockInPlace(windowed, hann(len(frame)))

	inData := make([]complex128, fftSize)
	for i, x := range windowed {
		inData[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("bark: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("bark: fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	nyquist := sampleRate / 2
	top, _ := FromHz(nyquist)

	bands := make([]Band, max(int(math.Ceil(top)), 1))
	for k := range bands {
		bands[k].Number = k + 1

		if k > 0 {
			bands[k].LowHz, _ = ToHz(float64(k))
		}

		bands[k].HighHz = nyquist
		if float64(k+1) < top {
			bands[k].HighHz, _ = ToHz(float64(k + 1))
		}
	}

	binHz := sampleRate / float64(fftSize)
	for bin, p := range power {
		idx := 0

		if bin > 0 {
			z, _ := FromHz(float64(bin) * binHz)
			idx = min(max(int(math.Floor(z)), 0), len(bands)-1)
		}

		bands[idx].Power += p
	}

	for k := range bands {
		bands[k].Level_dB = powerTodB(bands[k].Power)
	}

	return bands, nil
}

// hann returns a symmetric Hann window of the given length.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	return w
}

// powerTodB converts a power value to decibels: 10 * log10(p).
// Returns -Inf for zero.
func powerTodB(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(p)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

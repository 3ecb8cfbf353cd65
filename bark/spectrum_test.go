package bark

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-formant/internal/testutil"
)

func TestBandLevelsSinePeak(t *testing.T) {
	const sr = 16000.0

	frame := testutil.DeterministicSine(1000, sr, 0.8, 1024)

	bands, err := BandLevels(frame, sr)
	if err != nil {
		t.Fatalf("BandLevels: %v", err)
	}

	powers := make([]float64, len(bands))
	for i, b := range bands {
		powers[i] = b.Power
	}
	testutil.RequireFinite(t, powers)

	z, _ := FromHz(1000)
	want := int(math.Floor(z)) + 1

	peak := bands[0]
	for _, b := range bands[1:] {
		if b.Power > peak.Power {
			peak = b
		}
	}

	if peak.Number != want {
		t.Fatalf("peak band=%d, want %d", peak.Number, want)
	}
	if peak.LowHz > 1000 || peak.HighHz < 1000 {
		t.Fatalf("peak band [%g, %g] does not contain 1000 Hz", peak.LowHz, peak.HighHz)
	}
}

func TestBandLevelsLayout(t *testing.T) {
	const sr = 16000.0

	bands, err := BandLevels(make([]float64, 300), sr)
	if err != nil {
		t.Fatal(err)
	}

	top, _ := FromHz(sr / 2)
	if len(bands) != int(math.Ceil(top)) {
		t.Fatalf("got %d bands, want %d", len(bands), int(math.Ceil(top)))
	}

	if bands[0].LowHz != 0 {
		t.Fatalf("first band starts at %g Hz", bands[0].LowHz)
	}
	if last := bands[len(bands)-1]; last.HighHz != sr/2 {
		t.Fatalf("last band ends at %g Hz, want Nyquist", last.HighHz)
	}

	for i := 1; i < len(bands); i++ {
		if bands[i].LowHz != bands[i-1].HighHz {
			t.Fatalf("gap between band %d and %d", i, i+1)
		}
	}

	for _, b := range bands {
		if !math.IsInf(b.Level_dB, -1) {
			t.Fatalf("silent frame band %d level=%v, want -Inf", b.Number, b.Level_dB)
		}
	}
}

func TestBandLevelsInvalid(t *testing.T) {
	if _, err := BandLevels(nil, 16000); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("err=%v, want ErrInvalidFrame", err)
	}
	if _, err := BandLevels([]float64{1}, 0); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("err=%v, want ErrInvalidFrame", err)
	}
}

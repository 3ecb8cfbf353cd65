package main

import (
	"fmt"
	"os"

	"github.com/faiface/beep/wav"
)

// loadWAV decodes a WAV file and returns its first channel.
func loadWAV(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	defer stream.Close()

	var out []float64

	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}

		if !ok {
			break
		}
	}

	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return out, float64(format.SampleRate), nil
}

// frameAt cuts size samples starting at the given time. A frame running
// past the end of the signal is truncated.
func frameAt(samples []float64, sampleRate, at float64, size int) ([]float64, error) {
	start := int(at * sampleRate)
	if start >= len(samples) {
		return nil, fmt.Errorf("%w: -at %.3fs is past the end of the %.3fs signal",
			errUsage, at, float64(len(samples))/sampleRate)
	}

	end := min(start+size, len(samples))

	return samples[start:end], nil
}

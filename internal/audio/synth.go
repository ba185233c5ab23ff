package audio

import (
	"fmt"
	"math"
)

// Generate synthesizes a stereo buffer from the given parameters. The frame
// count is int(SampleRate * Duration); sub-sample durations fail with
// ErrInvalidDuration. Binaural and isochronic output is fully deterministic;
// the choir draws one detune factor per voice from Params.Rand.
func Generate(p Params) (*Buffer, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	n := p.frames()
	switch p.Kind {
	case Binaural:
		return binaural(p, n), nil
	case Isochronic:
		return isochronic(p, n), nil
	case Choir:
		return choir(p, n), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidParameter, p.Kind)
}

// binaural puts the base tone on the left ear and base+delta on the right.
// Both channels start at sine phase 0 so the beat is purely the frequency
// difference between ears.
func binaural(p Params, n int) *Buffer {
	left := make([]float64, n)
	right := make([]float64, n)
	wl := 2 * math.Pi * p.BaseFreq
	wr := 2 * math.Pi * (p.BaseFreq + p.SecondaryFreq)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(p.SampleRate)
		left[i] = p.Amplitude * math.Sin(wl*t)
		right[i] = p.Amplitude * math.Sin(wr*t)
	}
	return &Buffer{Left: left, Right: right}
}

// isochronic gates the carrier hard on/off at the pulse rate, 50% duty, no
// edge smoothing. The abrupt edges produce the characteristic pulsing timbre.
func isochronic(p Params, n int) *Buffer {
	left := make([]float64, n)
	wc := 2 * math.Pi * p.BaseFreq
	wg := 2 * math.Pi * p.SecondaryFreq
	for i := 0; i < n; i++ {
		t := float64(i) / float64(p.SampleRate)
		if math.Sin(wg*t) > 0 {
			left[i] = p.Amplitude * math.Sin(wc*t)
		}
	}
	right := make([]float64, n)
	copy(right, left)
	return &Buffer{Left: left, Right: right}
}

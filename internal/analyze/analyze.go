// Package analyze decodes and summarizes PCM WAV streams. It is the
// independent reader used to verify encoder output.
package analyze

import (
	"errors"
	"fmt"
	"io"
	"math/cmplx"

	"github.com/go-audio/wav"
	"github.com/mjibson/go-dsp/fft"
)

var ErrNotWAV = errors.New("not a RIFF/WAVE stream")

// Info summarizes a decoded WAV stream.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int
	Peak       int     // largest absolute integer sample
	DominantHz float64 // strongest non-DC FFT bin of the mono mix
}

// maxFFTSamples caps the spectral window so inspecting long files stays cheap.
const maxFFTSamples = 1 << 16

// Inspect decodes a WAV stream and reports its format, peak amplitude and
// dominant frequency.
func Inspect(r io.ReadSeeker) (*Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	ch := buf.Format.NumChannels
	if ch < 1 {
		return nil, fmt.Errorf("decode wav: %w: no channels", ErrNotWAV)
	}
	frames := len(buf.Data) / ch

	window := frames
	if window > maxFFTSamples {
		window = maxFFTSamples
	}
	mono := make([]float64, window)

	peak := 0
	for i := 0; i < frames; i++ {
		sum := 0
		for c := 0; c < ch; c++ {
			s := buf.Data[i*ch+c]
			sum += s
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
		if i < window {
			mono[i] = float64(sum) / float64(ch)
		}
	}

	return &Info{
		SampleRate: buf.Format.SampleRate,
		Channels:   ch,
		BitDepth:   int(dec.BitDepth),
		Frames:     frames,
		Peak:       peak,
		DominantHz: DominantFreq(mono, buf.Format.SampleRate),
	}, nil
}

// DominantFreq returns the frequency of the strongest non-DC bin in the
// signal's spectrum, in Hz.
func DominantFreq(samples []float64, sampleRate int) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0
	}
	spectrum := fft.FFTReal(samples)
	best, bestMag := 0, 0.0
	for i := 1; i <= len(samples)/2; i++ {
		if m := cmplx.Abs(spectrum[i]); m > bestMag {
			best, bestMag = i, m
		}
	}
	return float64(best) * float64(sampleRate) / float64(len(samples))
}

package audio

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	DefaultSampleRate = 44100
	Channels          = 2
	BitDepth          = 16
)

// Kind selects the synthesis formula and the meaning of SecondaryFreq.
type Kind string

const (
	Binaural   Kind = "binaural"
	Isochronic Kind = "isochronic"
	Choir      Kind = "choir"
)

// Kinds lists the supported signal kinds in display order.
func Kinds() []Kind {
	return []Kind{Binaural, Isochronic, Choir}
}

func (k Kind) Valid() bool {
	switch k {
	case Binaural, Isochronic, Choir:
		return true
	}
	return false
}

// NeedsSecondary reports whether the kind requires a secondary frequency
// (beat delta for binaural, pulse rate for isochronic).
func (k Kind) NeedsSecondary() bool {
	return k == Binaural || k == Isochronic
}

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrSilentSignal     = errors.New("silent signal")
)

// Params describes one generation request. All fields are read once per call;
// callers may reuse the struct freely.
type Params struct {
	Kind          Kind
	BaseFreq      float64 // base/carrier frequency in Hz
	SecondaryFreq float64 // binaural: beat delta; isochronic: pulse rate; choir: unused
	Duration      float64 // seconds
	Amplitude     float64 // nominal (0, 1]; larger values survive until normalization clips them
	SampleRate    int

	// Rand supplies the choir detune draws. Nil uses the global source.
	// Tests pin a seed here to make the choir deterministic.
	Rand *rand.Rand
}

func (p Params) frames() int {
	return int(float64(p.SampleRate) * p.Duration)
}

func (p Params) validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidParameter, p.Kind)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, p.SampleRate)
	}
	if p.BaseFreq <= 0 {
		return fmt.Errorf("%w: base frequency %g Hz", ErrInvalidParameter, p.BaseFreq)
	}
	if p.Amplitude <= 0 {
		return fmt.Errorf("%w: amplitude %g", ErrInvalidParameter, p.Amplitude)
	}
	if p.Kind.NeedsSecondary() && p.SecondaryFreq <= 0 {
		return fmt.Errorf("%w: %s requires a secondary frequency", ErrInvalidParameter, p.Kind)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("%w: %g seconds", ErrInvalidDuration, p.Duration)
	}
	if p.frames() < 1 {
		return fmt.Errorf("%w: %g seconds is below one sample period", ErrInvalidDuration, p.Duration)
	}
	return nil
}

// Buffer holds one generated stereo signal, one float64 sample per channel
// per frame. Channels always have equal length.
type Buffer struct {
	Left  []float64
	Right []float64
}

func (b *Buffer) Frames() int { return len(b.Left) }

// Peak returns the largest absolute sample across both channels.
func (b *Buffer) Peak() float64 {
	peak := 0.0
	for _, ch := range [2][]float64{b.Left, b.Right} {
		for _, s := range ch {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
	}
	return peak
}

// Package preset maps named healing-tone presets to generation parameters.
package preset

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"healwave/internal/audio"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrCustomPreset signals the sentinel entry: the caller must collect an
	// explicit configuration and use ResolveCustom instead.
	ErrCustomPreset = errors.New("custom preset requires explicit configuration")
)

// CustomName is the sentinel preset that defers all parameters to user input.
const CustomName = "Custom Configuration"

// Default amplitudes per kind. The encoder peak-normalizes, so these only
// shape the pre-normalization mix headroom.
const (
	choirAmplitude = 0.2
	toneAmplitude  = 0.5
)

type entry struct {
	kind      audio.Kind
	base      float64
	secondary float64
}

var table = map[string]entry{
	"Angelic Choir (A=220Hz)":       {kind: audio.Choir, base: 220},
	"Celestial Harmonics (A=440Hz)": {kind: audio.Choir, base: 440},
	"Deep Meditation (7Hz Theta)":   {kind: audio.Binaural, base: 200, secondary: 7},
	"Relaxation (10Hz Alpha)":       {kind: audio.Binaural, base: 300, secondary: 10},
	"Focus (15Hz Beta)":             {kind: audio.Isochronic, base: 432, secondary: 15},
	"Deep Sleep (4Hz Delta)":        {kind: audio.Binaural, base: 150, secondary: 4},
}

// order fixes the display order; the custom sentinel always comes last.
var order = []string{
	"Angelic Choir (A=220Hz)",
	"Celestial Harmonics (A=440Hz)",
	"Deep Meditation (7Hz Theta)",
	"Relaxation (10Hz Alpha)",
	"Focus (15Hz Beta)",
	"Deep Sleep (4Hz Delta)",
	CustomName,
}

// Names returns the preset names in display order, custom sentinel included.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// KindOf returns the signal kind for a named preset, or "" for the custom
// sentinel and unknown names.
func KindOf(name string) audio.Kind {
	if e, ok := table[name]; ok {
		return e.kind
	}
	return ""
}

var (
	mu    sync.Mutex
	cache = map[string]audio.Params{}
)

// Reset drops all memoized resolutions. Called once at process start so a
// fresh process never observes state from a previous run.
func Reset() {
	mu.Lock()
	cache = map[string]audio.Params{}
	mu.Unlock()
}

// Resolve maps a preset name to generation parameters for the given duration
// and sample rate. The custom sentinel fails with ErrCustomPreset; unknown
// names fail with ErrUnknownPreset.
func Resolve(name string, duration float64, sampleRate int) (audio.Params, error) {
	if name == CustomName {
		return audio.Params{}, fmt.Errorf("%w: %q", ErrCustomPreset, name)
	}

	mu.Lock()
	p, ok := cache[name]
	if !ok {
		e, found := table[name]
		if !found {
			mu.Unlock()
			return audio.Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		}
		p = audio.Params{
			Kind:          e.kind,
			BaseFreq:      e.base,
			SecondaryFreq: e.secondary,
			Amplitude:     amplitudeFor(e.kind),
		}
		cache[name] = p
	}
	mu.Unlock()

	p.Duration = duration
	p.SampleRate = sampleRate
	return p, nil
}

// Custom is a user-supplied configuration for the sentinel preset.
type Custom struct {
	Kind      audio.Kind `json:"kind"`
	Base      float64    `json:"base"`
	Secondary float64    `json:"secondary"`
}

// ResolveCustom validates a custom configuration and builds generation
// parameters from it. A missing secondary frequency for a kind that requires
// one fails with audio.ErrInvalidParameter.
func ResolveCustom(c Custom, duration float64, sampleRate int) (audio.Params, error) {
	if !c.Kind.Valid() {
		return audio.Params{}, fmt.Errorf("%w: unknown kind %q", audio.ErrInvalidParameter, c.Kind)
	}
	if c.Kind.NeedsSecondary() && c.Secondary <= 0 {
		return audio.Params{}, fmt.Errorf("%w: %s requires a secondary frequency",
			audio.ErrInvalidParameter, c.Kind)
	}
	return audio.Params{
		Kind:          c.Kind,
		BaseFreq:      c.Base,
		SecondaryFreq: c.Secondary,
		Amplitude:     amplitudeFor(c.Kind),
		Duration:      duration,
		SampleRate:    sampleRate,
	}, nil
}

func amplitudeFor(k audio.Kind) float64 {
	if k == audio.Choir {
		return choirAmplitude
	}
	return toneAmplitude
}

// Filename returns the download name for a preset, spaces replaced with
// underscores: healing_<name>.wav.
func Filename(name string) string {
	return "healing_" + strings.ReplaceAll(name, " ", "_") + ".wav"
}

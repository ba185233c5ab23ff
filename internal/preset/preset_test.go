package preset

import (
	"errors"
	"testing"

	"healwave/internal/audio"
)

func TestResolveDeepSleep(t *testing.T) {
	p, err := Resolve("Deep Sleep (4Hz Delta)", 60, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != audio.Binaural {
		t.Errorf("Kind = %q, want binaural", p.Kind)
	}
	if p.BaseFreq != 150 {
		t.Errorf("BaseFreq = %g, want 150", p.BaseFreq)
	}
	if p.SecondaryFreq != 4 {
		t.Errorf("SecondaryFreq = %g, want 4", p.SecondaryFreq)
	}
	if p.Duration != 60 || p.SampleRate != 44100 {
		t.Errorf("Duration/SampleRate = %g/%d, want 60/44100", p.Duration, p.SampleRate)
	}
}

func TestResolveAllPresets(t *testing.T) {
	for _, name := range Names() {
		if name == CustomName {
			continue
		}
		p, err := Resolve(name, 10, 44100)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", name, err)
			continue
		}
		if p.Kind != KindOf(name) {
			t.Errorf("Resolve(%q).Kind = %q, want %q", name, p.Kind, KindOf(name))
		}
		if p.Amplitude <= 0 || p.Amplitude > 1 {
			t.Errorf("Resolve(%q).Amplitude = %g, want in (0, 1]", name, p.Amplitude)
		}
		// Resolved params must generate without further tweaking.
		if _, err := audio.Generate(withShortDuration(p)); err != nil {
			t.Errorf("Generate(Resolve(%q)) error = %v", name, err)
		}
	}
}

func withShortDuration(p audio.Params) audio.Params {
	p.Duration = 0.01
	return p
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve("Quantum Healing (528Hz)", 10, 44100); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("error = %v, want ErrUnknownPreset", err)
	}
}

func TestResolveCustomSentinel(t *testing.T) {
	if _, err := Resolve(CustomName, 10, 44100); !errors.Is(err, ErrCustomPreset) {
		t.Errorf("error = %v, want ErrCustomPreset", err)
	}
}

func TestResolveCustom(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Custom
		wantErr error
	}{
		{"binaural ok", Custom{Kind: audio.Binaural, Base: 432, Secondary: 7}, nil},
		{"isochronic ok", Custom{Kind: audio.Isochronic, Base: 432, Secondary: 10}, nil},
		{"choir needs no secondary", Custom{Kind: audio.Choir, Base: 220}, nil},
		{"binaural missing delta", Custom{Kind: audio.Binaural, Base: 432}, audio.ErrInvalidParameter},
		{"isochronic missing beat", Custom{Kind: audio.Isochronic, Base: 432}, audio.ErrInvalidParameter},
		{"unknown kind", Custom{Kind: "square", Base: 432}, audio.ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ResolveCustom(tt.cfg, 10, 44100)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Kind != tt.cfg.Kind || p.BaseFreq != tt.cfg.Base {
				t.Errorf("params = %+v, want kind %q base %g", p, tt.cfg.Kind, tt.cfg.Base)
			}
		})
	}
}

func TestCustomAmplitudes(t *testing.T) {
	choir, err := ResolveCustom(Custom{Kind: audio.Choir, Base: 220}, 10, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if choir.Amplitude != 0.2 {
		t.Errorf("choir amplitude = %g, want 0.2", choir.Amplitude)
	}
	tone, err := ResolveCustom(Custom{Kind: audio.Binaural, Base: 200, Secondary: 7}, 10, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if tone.Amplitude != 0.5 {
		t.Errorf("binaural amplitude = %g, want 0.5", tone.Amplitude)
	}
}

func TestResetKeepsResolutionStable(t *testing.T) {
	before, err := Resolve("Focus (15Hz Beta)", 10, 44100)
	if err != nil {
		t.Fatal(err)
	}
	Reset()
	after, err := Resolve("Focus (15Hz Beta)", 10, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("resolution changed across Reset: %+v vs %+v", before, after)
	}
}

func TestNamesOrder(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("len(Names()) = %d, want 7", len(names))
	}
	if names[len(names)-1] != CustomName {
		t.Errorf("last name = %q, want the custom sentinel", names[len(names)-1])
	}
	for _, name := range names[:len(names)-1] {
		if KindOf(name) == "" {
			t.Errorf("KindOf(%q) is empty", name)
		}
	}
}

func TestFilename(t *testing.T) {
	got := Filename("Deep Sleep (4Hz Delta)")
	want := "healing_Deep_Sleep_(4Hz_Delta).wav"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

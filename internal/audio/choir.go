package audio

import (
	"math"
	"math/rand"
)

const choirVoices = 8

// choir layers 8 harmonic voices via additive synthesis. Each voice carries a
// slight random detune, its own vibrato depth and rate, and a shared linear
// 0.8 -> 0.2 envelope. Per voice the output is a fundamental plus two
// attenuated overtones (0.3 and 0.1 weights). Both channels get the same mix
// scaled by 0.8.
func choir(p Params, n int) *Buffer {
	uniform := rand.Float64
	if p.Rand != nil {
		uniform = p.Rand.Float64
	}

	mix := make([]float64, n)
	for v := 0; v < choirVoices; v++ {
		freq := p.BaseFreq * float64(v+1) * 0.5
		detune := 1 + (uniform()*0.02 - 0.01)
		vibDepth := 0.5 + 0.1*float64(v)
		vibRate := 5 + 0.5*float64(v)

		for i := 0; i < n; i++ {
			t := float64(i) / float64(p.SampleRate)
			env := 0.8
			if n > 1 {
				env = 0.8 + (0.2-0.8)*float64(i)/float64(n-1)
			}
			vib := math.Sin(2*math.Pi*vibRate*t) * vibDepth
			phi := (freq*detune + vib) * t
			mix[i] += p.Amplitude * 0.5 * env *
				(math.Sin(2*math.Pi*phi) +
					0.3*math.Sin(2*math.Pi*2*phi) +
					0.1*math.Sin(2*math.Pi*3*phi))
		}
	}

	left := make([]float64, n)
	right := make([]float64, n)
	for i, s := range mix {
		left[i] = s * 0.8
		right[i] = s * 0.8
	}
	return &Buffer{Left: left, Right: right}
}

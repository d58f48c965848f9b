package effect

import "math"

// Bitcrusher decimates both sample rate (by holding a sample across a
// configurable number of samples) and bit depth (by quantizing to a
// reduced step count), the two classic chiptune-style degradations.
type Bitcrusher struct {
	toggle

	FreqStep float64 // samples held per output step, >= 1
	Bits     float64 // effective bit depth, e.g. 4..16

	heldSample float64
	phase      float64
}

// NewBitcrusher creates a bypassed-by-default bitcrusher at full
// fidelity (no decimation).
func NewBitcrusher() *Bitcrusher {
	return &Bitcrusher{FreqStep: 1, Bits: 16}
}

// Process applies sample-and-hold decimation followed by quantization.
func (b *Bitcrusher) Process(in float64) float64 {
	if !b.enabled {
		return in
	}

	step := b.FreqStep
	if step < 1 {
		step = 1
	}
	b.phase++
	if b.phase >= step {
		b.phase -= step
		b.heldSample = in
	}

	levels := math.Pow(2.0, b.Bits)
	if levels < 2 {
		levels = 2
	}
	return math.Round(b.heldSample*levels) / levels
}

// Stop clears the hold state, so re-enabling doesn't replay a stale
// sample.
func (b *Bitcrusher) Stop() {
	b.heldSample = 0
	b.phase = 0
}

package effect

import "math"

// panningDelayMax is the largest inter-channel delay in samples,
// enough headroom for a few hundred microseconds at typical audio
// sample rates.
const panningDelayMax = 32

// Panning converts the mono signal into stereo with constant-power
// gain and an optional short delay on the lagging channel (the one
// away from the pan direction), giving the
// extremes of the pan range a wider stereo image instead of a hard
// single-speaker sound.
type Panning struct {
	toggle

	Position float64 // -1 (full left) .. 1 (full right)
	Delay    float64 // 0..1, inter-channel delay amount

	left, right [panningDelayMax]float64
	writePos    int
}

// NewPanning creates a centered panner with no inter-channel delay.
func NewPanning() *Panning {
	p := &Panning{Position: 0, Delay: 0}
	p.enabled = true // panning runs unconditionally; it is the mono->stereo seam
	return p
}

// Process takes one mono sample and returns a stereo pair.
func (p *Panning) Process(in float64) (l, r float64) {
	pos := clamp(p.Position, -1, 1)
	angle := (pos + 1.0) * math.Pi / 4.0
	leftGain := math.Cos(angle)
	rightGain := math.Sin(angle)

	p.left[p.writePos] = in
	p.right[p.writePos] = in
	p.writePos = (p.writePos + 1) % panningDelayMax

	delaySamples := int(clamp(p.Delay, 0, 1) * (panningDelayMax - 1))

	leadReadPos := (p.writePos - 1 + panningDelayMax) % panningDelayMax
	lagReadPos := (p.writePos - 1 - delaySamples + panningDelayMax*2) % panningDelayMax

	if pos >= 0 {
		// Panned right: right channel leads, left lags.
		l = p.left[lagReadPos] * leftGain
		r = p.right[leadReadPos] * rightGain
	} else {
		l = p.left[leadReadPos] * leftGain
		r = p.right[lagReadPos] * rightGain
	}
	return l, r
}

// Stop clears the delay lines.
func (p *Panning) Stop() {
	for i := range p.left {
		p.left[i] = 0
		p.right[i] = 0
	}
}

package effect

import "math"

const (
	chorusVoices    = 3
	chorusDelayLine = 4096 // samples; enough for a multi-ms modulated delay at typical rates
)

type chorusVoiceState struct {
	lfoPhase float64
}

// Chorus is a multi-voice pitched-delay stereo effect: each voice reads
// from a shared delay line at an LFO-modulated offset, and voices are
// spread across the stereo field.
type Chorus struct {
	toggle

	sampleRate float64
	Rate       float64 // LFO rate in Hz
	Depth      float64 // modulation depth, 0..1 scaling a +/-10 ms delay swing
	Mix        float64 // 0 = dry, 1 = fully wet

	lineL, lineR [chorusDelayLine]float64
	writePos     int
	voices       [chorusVoices]chorusVoiceState
}

// NewChorus creates a chorus with a gentle default rate/depth and an
// even wet/dry mix.
func NewChorus(sampleRate float64) *Chorus {
	c := &Chorus{sampleRate: sampleRate, Rate: 0.5, Depth: 0.3, Mix: 0.5}
	for i := range c.voices {
		c.voices[i].lfoPhase = float64(i) / float64(chorusVoices)
	}
	return c
}

func (c *Chorus) readDelayed(line *[chorusDelayLine]float64, delaySamples float64) float64 {
	readPos := float64(c.writePos) - delaySamples
	for readPos < 0 {
		readPos += chorusDelayLine
	}
	i0 := int(readPos) % chorusDelayLine
	i1 := (i0 + 1) % chorusDelayLine
	frac := readPos - math.Floor(readPos)
	return line[i0]*(1-frac) + line[i1]*frac
}

// Process runs one stereo sample pair through the chorus.
func (c *Chorus) Process(inL, inR float64) (outL, outR float64) {
	if !c.enabled {
		return inL, inR
	}

	c.lineL[c.writePos] = inL
	c.lineR[c.writePos] = inR

	baseDelay := 0.015 * c.sampleRate // 15ms center delay
	depthSamples := c.Depth * 0.010 * c.sampleRate

	var wetL, wetR float64
	for i := range c.voices {
		c.voices[i].lfoPhase += c.Rate / c.sampleRate
		if c.voices[i].lfoPhase >= 1.0 {
			c.voices[i].lfoPhase -= math.Floor(c.voices[i].lfoPhase)
		}
		lfo := math.Sin(2.0 * math.Pi * c.voices[i].lfoPhase)
		delay := baseDelay + depthSamples*lfo

		sampleL := c.readDelayed(&c.lineL, delay)
		sampleR := c.readDelayed(&c.lineR, delay)
		wetL += sampleL
		wetR += sampleR
	}
	wetL /= float64(chorusVoices)
	wetR /= float64(chorusVoices)

	c.writePos = (c.writePos + 1) % chorusDelayLine

	mix := clamp(c.Mix, 0, 1)
	outL = inL*(1-mix) + wetL*mix
	outR = inR*(1-mix) + wetR*mix
	return outL, outR
}

// Stop clears the delay lines and resets LFO phases.
func (c *Chorus) Stop() {
	for i := range c.lineL {
		c.lineL[i] = 0
		c.lineR[i] = 0
	}
	for i := range c.voices {
		c.voices[i].lfoPhase = float64(i) / float64(chorusVoices)
	}
}

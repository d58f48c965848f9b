package effect

// Chain runs the fixed effect processing order: distortion, bitcrusher,
// and EQ in mono, panning as the mono->stereo seam, then chorus, echo,
// reverb, and the fader in stereo.
type Chain struct {
	Distortion *Distortion
	Bitcrusher *Bitcrusher
	EQ         *EQ
	Panning    *Panning
	Chorus     *Chorus
	Echo       *Echo
	Reverb     *Reverb
	Fader      *Fader
}

// NewChain builds a chain with every optional stage disabled (the
// Panning seam and Fader are always active, since they are not
// optional effects but the mandatory mono->stereo and output stages).
func NewChain(sampleRate float64) *Chain {
	return &Chain{
		Distortion: NewDistortion(),
		Bitcrusher: NewBitcrusher(),
		EQ:         NewEQ(sampleRate),
		Panning:    NewPanning(),
		Chorus:     NewChorus(sampleRate),
		Echo:       NewEcho(sampleRate),
		Reverb:     NewReverb(sampleRate),
		Fader:      NewFader(),
	}
}

// Tick applies any pending enable/disable transitions and advances
// tick-resolution smoothing (the echo's delay-length interpolation).
// Called once per tick boundary, before Process runs the block's
// samples.
func (c *Chain) Tick() {
	c.Distortion.Tick()
	c.Bitcrusher.Tick()
	c.EQ.Tick()
	c.Chorus.Tick()
	c.Echo.Tick()
	c.Reverb.Tick()
}

// Process runs one mono input sample through the full chain and
// returns the resulting stereo pair. ageSeconds is the fader's
// fade-in reference (see Fader.Process).
func (c *Chain) Process(in, ageSeconds float64) (l, r float64) {
	mono := in
	mono = c.Distortion.Process(mono)
	mono = c.Bitcrusher.Process(mono)
	mono = c.EQ.Process(mono)

	l, r = c.Panning.Process(mono)
	l, r = c.Chorus.Process(l, r)
	l, r = c.Echo.Process(l, r)
	l, r = c.Reverb.Process(l, r)
	l, r = c.Fader.Process(l, r, ageSeconds)
	return l, r
}

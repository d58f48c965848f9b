package effect

// reverbCombCount and reverbAllpassCount set the diffusion network
// size: four parallel feedback combs per channel summed together, then
// two series allpass stages to smear the comb structure's periodicity.
const (
	reverbCombCount    = 4
	reverbAllpassCount = 2
)

type comb struct {
	buf      []float64
	pos      int
	feedback float64
	damp     float64
	filterStore float64
}

func newComb(length int, feedback, damp float64) *comb {
	return &comb{buf: make([]float64, length), feedback: feedback, damp: damp}
}

func (c *comb) process(in float64) float64 {
	out := c.buf[c.pos]
	c.filterStore = out*(1-c.damp) + c.filterStore*c.damp
	c.buf[c.pos] = in + c.filterStore*c.feedback
	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	return out
}

func (c *comb) reset() {
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.filterStore = 0
}

type allpass struct {
	buf []float64
	pos int
}

func newAllpass(length int) *allpass {
	return &allpass{buf: make([]float64, length)}
}

func (a *allpass) process(in float64) float64 {
	const feedback = 0.5
	bufOut := a.buf[a.pos]
	out := -in + bufOut
	a.buf[a.pos] = in + bufOut*feedback
	a.pos++
	if a.pos >= len(a.buf) {
		a.pos = 0
	}
	return out
}

func (a *allpass) reset() {
	for i := range a.buf {
		a.buf[i] = 0
	}
}

// Reverb is a Schroeder-style diffusion network: parallel feedback
// combs per channel, summed and smoothed by series allpass stages.
type Reverb struct {
	toggle

	combsL, combsR       [reverbCombCount]*comb
	allpassesL, allpassesR [reverbAllpassCount]*allpass

	RoomSize float64 // 0..1, maps to comb feedback
	Damping  float64 // 0..1
	Mix      float64 // 0 = dry, 1 = fully wet
}

// combTuningsL and combTuningsR are prime-ish sample lengths (at a
// 44.1kHz reference) offset between channels so the two ears don't
// hear an identical comb structure.
var combTuningsL = [reverbCombCount]int{1557, 1617, 1491, 1422}
var combTuningsR = [reverbCombCount]int{1577, 1637, 1511, 1442}
var allpassTunings = [reverbAllpassCount]int{556, 441}

// NewReverb creates a reverb scaled to sampleRate, with a mid-sized
// room and moderate damping.
func NewReverb(sampleRate float64) *Reverb {
	scale := sampleRate / 44100.0
	r := &Reverb{RoomSize: 0.5, Damping: 0.5, Mix: 0.3}
	for i := 0; i < reverbCombCount; i++ {
		r.combsL[i] = newComb(int(float64(combTuningsL[i])*scale), 0.84, 0.2)
		r.combsR[i] = newComb(int(float64(combTuningsR[i])*scale), 0.84, 0.2)
	}
	for i := 0; i < reverbAllpassCount; i++ {
		r.allpassesL[i] = newAllpass(int(float64(allpassTunings[i]) * scale))
		r.allpassesR[i] = newAllpass(int(float64(allpassTunings[i]) * scale))
	}
	return r
}

func (r *Reverb) applyCoefficients() {
	feedback := 0.28 + clamp(r.RoomSize, 0, 1)*0.7
	damp := clamp(r.Damping, 0, 1)
	for i := 0; i < reverbCombCount; i++ {
		r.combsL[i].feedback = feedback
		r.combsL[i].damp = damp
		r.combsR[i].feedback = feedback
		r.combsR[i].damp = damp
	}
}

// Process runs one stereo sample pair through the diffusion network.
func (r *Reverb) Process(inL, inR float64) (outL, outR float64) {
	if !r.enabled {
		return inL, inR
	}
	r.applyCoefficients()

	var wetL, wetR float64
	for i := 0; i < reverbCombCount; i++ {
		wetL += r.combsL[i].process(inL)
		wetR += r.combsR[i].process(inR)
	}
	wetL /= reverbCombCount
	wetR /= reverbCombCount

	for i := 0; i < reverbAllpassCount; i++ {
		wetL = r.allpassesL[i].process(wetL)
		wetR = r.allpassesR[i].process(wetR)
	}

	mix := clamp(r.Mix, 0, 1)
	outL = inL*(1-mix) + wetL*mix
	outR = inR*(1-mix) + wetR*mix
	return outL, outR
}

// Stop clears every comb and allpass delay line.
func (r *Reverb) Stop() {
	for i := 0; i < reverbCombCount; i++ {
		r.combsL[i].reset()
		r.combsR[i].reset()
	}
	for i := 0; i < reverbAllpassCount; i++ {
		r.allpassesL[i].reset()
		r.allpassesR[i].reset()
	}
}

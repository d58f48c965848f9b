package instrument

// TransitionType selects how a newly begun note interacts with one
// already sounding on the same instrument: cut it off and retrigger
// from zero phase, cut it off but keep phase continuity, hold the
// prior voice without a fresh attack, or glide pitch into the new key.
type TransitionType uint8

const (
	// TransitionNormal steals the oldest voice and retriggers from
	// zero phase, the default polyphonic behavior.
	TransitionNormal TransitionType = iota
	// TransitionInterrupt immediately ends the previous note (forcing
	// its release fade) before the new one begins, rather than letting
	// the pool's steal-oldest-Releasing-first policy pick a victim.
	TransitionInterrupt
	// TransitionContinue treats a new key press as re-using the
	// currently sounding voice: no note-off is emitted for the prior
	// key, and the new key's note-on is suppressed too, leaving it to
	// the caller to simply retarget the existing voice's pitch.
	TransitionContinue
	// TransitionSlide behaves like Continue but asks for a pitch
	// glide into the new key rather than an instant retarget.
	TransitionSlide
)

// ChordType selects how multiple simultaneously-held keys map onto the
// voices an instrument sounds.
type ChordType uint8

const (
	// ChordSimultaneous sounds every held key as its own voice at once.
	ChordSimultaneous ChordType = iota
	// ChordStrum sounds every held key as its own voice, staggered a
	// short, fixed number of samples apart in press order.
	ChordStrum
	// ChordArpeggio sounds one held key at a time, cycling through the
	// held set at a speed-controlled rate.
	ChordArpeggio
	// ChordCustomInterval sounds the most recently pressed key plus a
	// fixed list of semitone offsets from it, as a single chord.
	ChordCustomInterval
)

// strumSampleStride is the fixed gap between successive strummed
// voices' attacks.
const strumSampleStride = 1200

// arpeggioMinTicksPerStep and arpeggioMaxTicksPerStep bound the
// tick-length of one arpeggio step; ArpeggioSpeed of 0 is slowest, 1 is
// fastest.
const (
	arpeggioMinTicksPerStep = 1.0
	arpeggioMaxTicksPerStep = 12.0
)

// ChordScheduler turns a stack of held keys into the set of keys that
// should be sounding right now, honoring the instrument's configured
// chord type. It tracks no audio state itself; the instrument's synth
// core still owns the actual voices.
type ChordScheduler struct {
	Chord           ChordType
	ArpeggioSpeed   float64 // 0..1
	CustomIntervals []int32

	held []int32 // keys in press order, oldest first

	ticksSinceStep int
	arpIndex       int
}

// NoteOn records a newly pressed key.
func (c *ChordScheduler) NoteOn(key int32) {
	c.held = append(c.held, key)
}

// NoteOff removes a released key from the held stack. A no-op if the
// key isn't currently held.
func (c *ChordScheduler) NoteOff(key int32) {
	for i, k := range c.held {
		if k == key {
			c.held = append(c.held[:i], c.held[i+1:]...)
			if c.arpIndex > 0 && c.arpIndex >= len(c.held) {
				c.arpIndex = 0
			}
			return
		}
	}
}

// HeldCount reports how many keys are currently held.
func (c *ChordScheduler) HeldCount() int { return len(c.held) }

// arpeggioTicksPerStep maps the 0..1 speed knob onto a tick count,
// halving it under the fast two-note rule: exactly two held keys
// alternate at double the base rate.
func (c *ChordScheduler) arpeggioTicksPerStep() int {
	speed := c.ArpeggioSpeed
	if speed < 0 {
		speed = 0
	}
	if speed > 1 {
		speed = 1
	}
	ticks := arpeggioMaxTicksPerStep - speed*(arpeggioMaxTicksPerStep-arpeggioMinTicksPerStep)
	if len(c.held) == 2 {
		ticks /= 2
	}
	if ticks < 1 {
		ticks = 1
	}
	return int(ticks + 0.5)
}

// AdvanceTick steps the arpeggio's internal clock by one tick. Call
// once per synth tick boundary, regardless of chord type (it is a
// no-op unless Chord is ChordArpeggio and more than one key is held).
func (c *ChordScheduler) AdvanceTick() {
	if c.Chord != ChordArpeggio || len(c.held) == 0 {
		c.ticksSinceStep = 0
		c.arpIndex = 0
		return
	}
	c.ticksSinceStep++
	if c.ticksSinceStep >= c.arpeggioTicksPerStep() {
		c.ticksSinceStep = 0
		c.arpIndex = (c.arpIndex + 1) % len(c.held)
	}
}

// ActiveKeys returns the keys that should currently be sounding, given
// the held stack and configured chord type.
func (c *ChordScheduler) ActiveKeys() []int32 {
	switch c.Chord {
	case ChordArpeggio:
		if len(c.held) == 0 {
			return nil
		}
		return []int32{c.held[c.arpIndex%len(c.held)]}
	case ChordCustomInterval:
		if len(c.held) == 0 {
			return nil
		}
		base := c.held[len(c.held)-1]
		keys := make([]int32, 0, 1+len(c.CustomIntervals))
		keys = append(keys, base)
		for _, iv := range c.CustomIntervals {
			keys = append(keys, base+iv)
		}
		return keys
	default: // ChordSimultaneous, ChordStrum sound every held key
		out := make([]int32, len(c.held))
		copy(out, c.held)
		return out
	}
}

// StrumOffset returns the sample offset, relative to the chord's
// nominal attack, that the voiceIndex'th held key (in press order)
// should begin at. Zero for every chord type except ChordStrum.
func (c *ChordScheduler) StrumOffset(voiceIndex int) uint32 {
	if c.Chord != ChordStrum {
		return 0
	}
	return uint32(voiceIndex * strumSampleStride)
}

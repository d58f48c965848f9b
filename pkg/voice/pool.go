package voice

// Pool manages a fixed number of voice slots and the allocation
// strategy: prefer an Idle or Dead slot, and failing that steal the
// oldest Releasing voice, and failing that the oldest Active voice.
// Pool only tracks the Voice half of each slot; a synth core wraps
// Pool (or indexes its own parallel slice by the same index) to carry
// oscillator state per slot.
type Pool struct {
	voices []Voice
}

// NewPool creates a pool of n Idle voice slots.
func NewPool(n int) *Pool {
	return &Pool{voices: make([]Voice, n)}
}

// Len returns the pool's fixed voice count.
func (p *Pool) Len() int { return len(p.voices) }

// At returns a pointer to the voice at slot i for direct inspection or
// mutation by the owning synth core.
func (p *Pool) At(i int) *Voice { return &p.voices[i] }

// Allocate finds a slot for a new note: first an Idle or Dead slot (in
// slot order), then the oldest Releasing voice, then the oldest Active
// voice. Returns the chosen slot index and whether an existing note
// was stolen (its prior Identity, for the caller to emit a stolen
// note-end before re-triggering the slot).
func (p *Pool) Allocate() (slot int, stolen bool, stolenIdentity Identity) {
	for i := range p.voices {
		if p.voices[i].State == Idle || p.voices[i].State == Dead {
			return i, false, Identity{}
		}
	}

	if i, ok := p.oldestInState(Releasing); ok {
		return i, true, p.voices[i].Identity
	}
	if i, ok := p.oldestInState(Active); ok {
		return i, true, p.voices[i].Identity
	}

	// Unreachable for len(voices) > 0: every slot is Idle, Dead,
	// Releasing, or Active.
	return 0, true, p.voices[0].Identity
}

func (p *Pool) oldestInState(s State) (int, bool) {
	best := -1
	var bestAge uint64
	for i := range p.voices {
		if p.voices[i].State != s {
			continue
		}
		age := p.voices[i].AgeTicks
		if best == -1 || age > bestAge {
			best = i
			bestAge = age
		}
	}
	return best, best != -1
}

// FindActive returns the slot holding the given identity, if any,
// among Active or Releasing voices, for note-off/note-choke/pitch-bend
// event routing.
func (p *Pool) FindActive(id Identity) (int, bool) {
	for i := range p.voices {
		if p.voices[i].Audible() && p.voices[i].Identity.Matches(id) {
			return i, true
		}
	}
	return 0, false
}

// ForEachAudible visits every Active or Releasing voice slot in order.
func (p *Pool) ForEachAudible(fn func(slot int, v *Voice)) {
	for i := range p.voices {
		if p.voices[i].Audible() {
			fn(i, &p.voices[i])
		}
	}
}

// ForEachSlot visits every voice slot regardless of state, used to
// drain a Dead voice's pending note-end after its last audible tick.
func (p *Pool) ForEachSlot(fn func(slot int, v *Voice)) {
	for i := range p.voices {
		fn(i, &p.voices[i])
	}
}

// ActiveCount returns the number of Active or Releasing voices.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.voices {
		if p.voices[i].Audible() {
			n++
		}
	}
	return n
}

// ReleaseAll moves every Active voice to Releasing, used on an
// all-notes-off/panic host request.
func (p *Pool) ReleaseAll(fadeOutTicks float64) {
	for i := range p.voices {
		p.voices[i].BeginRelease(fadeOutTicks)
	}
}

// Reset clears every slot back to Idle, discarding any pending
// note-ends; used on plugin deactivate.
func (p *Pool) Reset() {
	for i := range p.voices {
		p.voices[i].Clear()
	}
}

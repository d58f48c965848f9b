// Package voice implements the engine's polyphonic voice pool: a fixed
// set of slots cycling through an Idle -> Active -> Releasing -> Dead
// lifecycle, with identity and age bookkeeping a synth core consults to
// derive envelope and oscillator state. The per-operator oscillator
// state itself (phase, phase-delta, expression, ...) is synth-specific
// and lives alongside a Voice in the owning core's own slice, indexed
// by the same slot number.
package voice

// State is a voice's position in its lifecycle.
type State uint8

const (
	// Idle voices hold no note and are immediately eligible for allocation.
	Idle State = iota
	// Active voices are sounding a currently-held note.
	Active
	// Releasing voices have received end-note and are fading out over
	// fade-out-ticks before becoming Dead.
	Releasing
	// Dead voices have finished their release fade and produce no
	// output; like Idle they are eligible for allocation, but carry a
	// pending note-end the instrument must still emit.
	Dead
)

// Identity is the host-supplied addressing of a note, echoed back
// verbatim in note-end output events.
type Identity struct {
	NoteID  int32
	Port    int16
	Channel int16
	Key     int16
}

// Matches reports whether id addresses the same note, channel, and
// port as other. A wildcard NoteID of -1 matches any note id on the
// same port/channel/key, mirroring CLAP's note-id matching rules.
func (id Identity) Matches(other Identity) bool {
	if id.Port != other.Port || id.Channel != other.Channel || id.Key != other.Key {
		return false
	}
	return id.NoteID == -1 || other.NoteID == -1 || id.NoteID == other.NoteID
}

// Voice is one polyphony slot's lifecycle and age state. A synth core
// embeds Voice in its own per-voice struct alongside oscillator fields.
type Voice struct {
	Identity
	State State
	Velocity float64

	// NoteLengthTicks is -1 for a live (host-controlled) note, or a
	// non-negative scheduled length in ticks for a known-length note,
	// which the synth core uses to begin its natural fade-out so the
	// note ends exactly at the scheduled tick.
	NoteLengthTicks int64

	AgeTicks   uint64
	AgeSeconds float64

	ReleaseAgeTicks   uint64
	ReleaseAgeSeconds float64

	// FadeOutTicks is the release duration resolved (via
	// envelope.TicksFadeOut) at the moment BeginRelease was called, so
	// later changes to the fade-out setting don't perturb a release
	// already in flight.
	FadeOutTicks float64

	// PendingNoteEnd is set when the Releasing->Dead transition
	// happens mid-block; the instrument reads and clears it once the
	// corresponding output event has been emitted, recording the
	// sample offset within the block at which the fade completed.
	PendingNoteEnd     bool
	NoteEndSampleOffset uint32
}

// Trigger resets a voice into Active for a new note. Any previous
// per-op oscillator state belongs to the synth core, which must
// reinitialize its own slot fields when it sees a fresh Trigger.
func (v *Voice) Trigger(id Identity, velocity float64, noteLengthTicks int64) {
	v.Identity = id
	v.Velocity = velocity
	v.NoteLengthTicks = noteLengthTicks
	v.State = Active
	v.AgeTicks = 0
	v.AgeSeconds = 0
	v.ReleaseAgeTicks = 0
	v.ReleaseAgeSeconds = 0
	v.FadeOutTicks = 0
	v.PendingNoteEnd = false
}

// BeginRelease moves an Active voice to Releasing, recording the
// fade-out duration to use for this particular release. A no-op on a
// voice that is already Releasing or Dead.
func (v *Voice) BeginRelease(fadeOutTicks float64) {
	if v.State != Active {
		return
	}
	v.State = Releasing
	v.ReleaseAgeTicks = 0
	v.ReleaseAgeSeconds = 0
	v.FadeOutTicks = fadeOutTicks
}

// Audible reports whether the voice should still be rendered.
func (v *Voice) Audible() bool {
	return v.State == Active || v.State == Releasing
}

// TickElapsed advances per-tick age counters by one tick and, for a
// Releasing voice whose fade-out has elapsed, transitions to Dead and
// records sampleOffset as the note-end's sample-accurate position.
func (v *Voice) TickElapsed(sampleOffset uint32) {
	switch v.State {
	case Active:
		v.AgeTicks++
	case Releasing:
		v.AgeTicks++
		v.ReleaseAgeTicks++
		if float64(v.ReleaseAgeTicks) >= v.FadeOutTicks {
			v.State = Dead
			v.PendingNoteEnd = true
			v.NoteEndSampleOffset = sampleOffset
		}
	}
}

// AdvanceSeconds accumulates wall-clock age, used by seconds-based
// envelope curves (flare/twang/swell/tremolo/decay/blip) alongside the
// tick-based counters tracked by TickElapsed.
func (v *Voice) AdvanceSeconds(dt float64) {
	switch v.State {
	case Active:
		v.AgeSeconds += dt
	case Releasing:
		v.AgeSeconds += dt
		v.ReleaseAgeSeconds += dt
	}
}

// Kill immediately forces an Active or Releasing voice to Dead without
// waiting for its fade-out, recording sampleOffset as the note-end
// position. A no-op on an Idle or Dead voice.
func (v *Voice) Kill(sampleOffset uint32) {
	if v.State == Idle || v.State == Dead {
		return
	}
	v.State = Dead
	v.PendingNoteEnd = true
	v.NoteEndSampleOffset = sampleOffset
}

// Clear returns a Dead or Idle voice to Idle, ready for reuse.
func (v *Voice) Clear() {
	*v = Voice{}
}

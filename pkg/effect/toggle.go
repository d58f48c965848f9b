// Package effect implements the post-synthesis processing chain:
// distortion, bitcrusher, equalizer, panning, chorus, echo, reverb, and
// a final fader, run in that fixed order with the mono-to-stereo
// transition happening at panning.
package effect

// Toggleable is the subset of behavior an optional effect exposes to
// code that turns it on and off without knowing its concrete type.
type Toggleable interface {
	SetEnabled(on bool)
	Stop()
}

// toggle is the enable/disable deferral every effect embeds. Disabling
// takes hold immediately (and resets the effect's internal state, to
// avoid a dangling delay line producing a stale tail later); enabling
// is deferred to the next tick boundary so a parameter change mid-block
// never introduces a zipper click.
type toggle struct {
	enabled       bool
	pendingEnable bool
}

// Enabled reports whether the effect is currently processing.
func (t *toggle) Enabled() bool { return t.enabled }

// SetEnabled requests the effect be turned on or off. Turning off is
// immediate; turning on takes effect at the next Tick.
func (t *toggle) SetEnabled(on bool) {
	if on {
		if !t.enabled {
			t.pendingEnable = true
		}
		return
	}
	t.enabled = false
	t.pendingEnable = false
}

// Tick applies any pending enable requested since the last call.
func (t *toggle) Tick() {
	if t.pendingEnable {
		t.enabled = true
		t.pendingEnable = false
	}
}

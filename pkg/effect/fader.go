package effect

import (
	"math"

	"github.com/bbxsynth/chipvoice/pkg/envelope"
)

// Fader is the chain's final stage: overall gain plus a per-note
// fade-in ramp. Release fade-out is scheduled by the instrument (via
// FadeOutTicks, which converts the fade-out setting to a tick count
// used to time the voice's release and note-end), not applied again
// here, since the synth core already folds its release gain into the
// signal before the chain runs.
type Fader struct {
	toggle

	GainDb        float64 // overall gain in decibels
	FadeInSetting float64 // 0..1-ish, converted via envelope.SecsFadeIn
}

// NewFader creates a unity-gain fader with an instant fade-in.
func NewFader() *Fader {
	f := &Fader{GainDb: 0, FadeInSetting: 0}
	f.enabled = true // the fader is the mandatory final stage, never bypassed
	return f
}

// FadeOutTicks resolves setting (the instrument's fade-out knob) to a
// tick count for note-end scheduling.
func FadeOutTicks(setting float64) float64 {
	return envelope.TicksFadeOut(setting)
}

// fadeInGain returns the 0..1 linear ramp for a voice ageSeconds old.
func (f *Fader) fadeInGain(ageSeconds float64) float64 {
	fadeInSecs := envelope.SecsFadeIn(f.FadeInSetting)
	if fadeInSecs <= 0 {
		return 1.0
	}
	return clamp(ageSeconds/fadeInSecs, 0, 1)
}

// Process applies overall gain and the per-note fade-in ramp to one
// stereo sample pair. The instrument passes the seconds elapsed since
// its most recent BeginNote as ageSeconds, so the ramp applies to the
// whole mixed signal rather than to each voice separately.
func (f *Fader) Process(inL, inR float64, ageSeconds float64) (outL, outR float64) {
	gain := math.Pow(10.0, f.GainDb/20.0) * f.fadeInGain(ageSeconds)
	return inL * gain, inR * gain
}

// Stop is a no-op: the fader holds no delay-line state.
func (f *Fader) Stop() {}

// Package synth implements the three voice-synthesis cores the
// instrument can select between: four-operator FM, chip wavetable, and
// harmonics additive. All three share the Synth interface so the
// instrument aggregate can drive whichever is active without knowing
// its internals.
package synth

import (
	"math"

	"github.com/bbxsynth/chipvoice/pkg/envelope"
	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/bbxsynth/chipvoice/pkg/wavetable"
)

// MaxVoices bounds every core's voice pool, matching the original
// tracker's fixed 8-voice-per-instrument polyphony.
const MaxVoices = 8

// TickContext carries the per-tick transport state a synth core needs
// to evaluate beat-relative envelopes and derive its sample period.
type TickContext struct {
	SampleRate float64
	BPM        float64
	Beat       float64
	TickSecs   float64 // wall-clock duration of one tick at the current bpm
}

// NoteEnd is one voice's completed release, reported by DrainNoteEnds.
type NoteEnd struct {
	Identity     voice.Identity
	SampleOffset uint32
}

// Synth is the behavior common to every voice-synthesis core.
type Synth interface {
	// BeginNote allocates (or steals) a voice for id, returning the
	// slot used. noteLengthTicks is -1 for a live, host-controlled
	// note or a non-negative scheduled length.
	BeginNote(id voice.Identity, velocity float64, noteLengthTicks int64) int

	// EndNote begins the release of the voice matching id, if any.
	EndNote(id voice.Identity)

	// Tick advances tick-boundary state: envelope re-evaluation and
	// per-voice oscillator increment recomputation.
	Tick(ctx TickContext)

	// Run renders frameCount samples of mono output, accumulating
	// into outMono (which the caller has already zeroed as needed).
	Run(outMono []float64, frameCount int)

	// Param and SetParam access the core's own parameter table by
	// local index (module-local, not the packed global id).
	Param(localIndex int) float64
	SetParam(localIndex int, value float64)

	// SetEnvelopes replaces the envelope binding list the core
	// evaluates against ModTarget each tick, owned canonically by the
	// instrument and pushed down on every edit.
	SetEnvelopes(list []EnvelopeBinding)

	// ActiveVoiceCount reports currently audible voices, for the
	// instrument's diagnostics and for deciding whether to keep
	// calling Run when otherwise silent.
	ActiveVoiceCount() int

	// DrainNoteEnds invokes fn once per voice that completed its
	// release fade since the last drain, then clears the pending set.
	DrainNoteEnds(fn func(NoteEnd))
}

// operatorAmplitudeCurve reshapes a linear 0..1 amplitude knob into the
// original tracker's exponential response, so the low end of the knob
// still has usable resolution.
func operatorAmplitudeCurve(amplitude float64) float64 {
	return (math.Pow(16.0, amplitude) - 1.0) / 15.0
}

// carrierIntervals nudges each operator's perceived pitch very
// slightly apart when it is treated as its own carrier, reproducing a
// faint chorus-like beating between simultaneous carriers.
var carrierIntervals = [4]float64{0.0, 0.04, -0.073, 0.091}

// evalEnvelopesFor folds every envelope in list whose Target equals
// target into a single multiplier, per spec's "multiple envelopes
// targeting the same index multiply" rule.
func evalEnvelopesFor(list []EnvelopeBinding, target ModTarget, ctx envelope.Context) float64 {
	mult := 1.0
	for _, e := range list {
		if e.Target != target {
			continue
		}
		mult *= envelope.Eval(e.Preset, envelope.Context{
			ElapsedSeconds: ctx.ElapsedSeconds,
			ElapsedBeats:   ctx.ElapsedBeats,
			SinceRelease:   ctx.SinceRelease,
			Released:       ctx.Released,
			Velocity:       ctx.Velocity,
			ModX:           ctx.ModX,
			ModY:           ctx.ModY,
			Speed:          e.Speed,
		})
	}
	return mult
}

// ModTarget is the compute-index enum an Envelope binds to.
type ModTarget uint16

const (
	ModTargetNoteVolume ModTarget = iota
	ModTargetOperatorFreq0
	ModTargetOperatorFreq1
	ModTargetOperatorFreq2
	ModTargetOperatorFreq3
	ModTargetOperatorAmp0
	ModTargetOperatorAmp1
	ModTargetOperatorAmp2
	ModTargetOperatorAmp3
	ModTargetFeedbackAmp
	ModTargetPulseWidth
	ModTargetUnison
	ModTargetPitchShift
	ModTargetDetune
	ModTargetVibratoDepth
	ModTargetNoteFilterAllFreqs
)

// EnvelopeBinding is one entry of an instrument's up-to-12 envelope
// list: a target and the curve preset driving it.
type EnvelopeBinding struct {
	Target ModTarget
	Preset envelope.Preset
	Speed  float64
}

func clampPhase(phase float64) float64 {
	return phase - math.Floor(phase/wavetable.SineLength)*wavetable.SineLength
}

package synth

import (
	"github.com/bbxsynth/chipvoice/pkg/envelope"
	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/bbxsynth/chipvoice/pkg/wavetable"
)

// FM parameter local indices, matching the original tracker's
// FM_PARAM_* layout (algorithm, per-operator freq-ratio/volume pairs,
// feedback type and amount).
const (
	FMParamAlgorithm = iota
	FMParamFreq0
	FMParamVolume0
	FMParamFreq1
	FMParamVolume1
	FMParamFreq2
	FMParamVolume2
	FMParamFreq3
	FMParamVolume3
	FMParamFeedbackType
	FMParamFeedbackVolume
	fmParamCount
)

type fmOpState struct {
	phase      float64
	phaseDelta float64
	expression float64
	output     float64 // previous sample, read by feedback links
}

type fmVoiceState struct {
	ops      [FMOpCount]fmOpState
	gain     float64 // tick-resolution release/velocity gain applied in Run
}

// FMCore is the four-operator FM synthesis voice, implementing Synth.
type FMCore struct {
	params [fmParamCount]float64

	pool   *voice.Pool
	states [MaxVoices]fmVoiceState

	sampleRate float64
	noteEnds   []NoteEnd

	// Envelopes and ModX/ModY are supplied by the owning instrument
	// each tick so operator-freq/amp/feedback-amp envelope targets
	// can be evaluated without FMCore depending on the instrument
	// package.
	Envelopes []EnvelopeBinding
	ModX, ModY float64

	// FadeOutTicks is the resolved tick count the instrument's
	// fader/volume fade-out setting currently maps to; the instrument
	// writes this whenever that setting changes.
	FadeOutTicks float64
}

// NewFMCore creates an FM core at the given sample rate with every
// parameter at a plain, audible default (algorithm 0, unity op0
// volume, the rest silent, freq ratio 4 = 1x, no feedback).
func NewFMCore(sampleRate float64) *FMCore {
	c := &FMCore{
		pool:       voice.NewPool(MaxVoices),
		sampleRate: sampleRate,
	}
	c.params[FMParamAlgorithm] = 0
	c.params[FMParamFreq0] = 4
	c.params[FMParamFreq1] = 4
	c.params[FMParamFreq2] = 4
	c.params[FMParamFreq3] = 4
	c.params[FMParamVolume0] = 1.0
	c.params[FMParamFeedbackType] = 0
	c.params[FMParamFeedbackVolume] = 0
	return c
}

func (c *FMCore) Param(i int) float64 {
	if i < 0 || i >= fmParamCount {
		return 0
	}
	return c.params[i]
}

func (c *FMCore) SetParam(i int, v float64) {
	if i < 0 || i >= fmParamCount {
		return
	}
	c.params[i] = v
}

func (c *FMCore) SetEnvelopes(list []EnvelopeBinding) {
	c.Envelopes = list
}

// BeginNote allocates a voice slot, emitting a stolen voice's note-end
// (at sample offset 0, since stealing happens at a tick/event
// boundary) before resetting every operator to zero phase.
func (c *FMCore) BeginNote(id voice.Identity, velocity float64, noteLengthTicks int64) int {
	slot, stolen, stolenID := c.pool.Allocate()
	if stolen {
		c.noteEnds = append(c.noteEnds, NoteEnd{Identity: stolenID, SampleOffset: 0})
	}
	c.pool.At(slot).Trigger(id, velocity, noteLengthTicks)
	c.states[slot] = fmVoiceState{gain: 1.0}
	return slot
}

func (c *FMCore) EndNote(id voice.Identity) {
	if slot, ok := c.pool.FindActive(id); ok {
		fadeOutTicks := c.fadeOutTicksSetting()
		c.pool.At(slot).BeginRelease(fadeOutTicks)
	}
}

// fadeOutTicksSetting resolves the fade-out tick count. A bare FMCore
// used outside an instrument (e.g. in a test) falls back to a plain
// default rather than releasing instantly.
func (c *FMCore) fadeOutTicksSetting() float64 {
	if c.FadeOutTicks > 0 {
		return c.FadeOutTicks
	}
	return 12.0
}

func (c *FMCore) Tick(ctx TickContext) {
	algoIdx := wavetable.ClampInt(int(c.params[FMParamAlgorithm]), 0, FMAlgorithmCount-1)
	algo := fmAlgorithms[algoIdx]

	c.pool.ForEachAudible(func(slot int, v *voice.Voice) {
		v.TickElapsed(0)
		st := &c.states[slot]

		envCtx := envelope.Context{
			ElapsedSeconds: v.AgeSeconds,
			ElapsedBeats:   ctx.Beat,
			SinceRelease:   v.ReleaseAgeSeconds,
			Released:       v.State == voice.Releasing,
			Velocity:       v.Velocity,
			ModX:           c.ModX,
			ModY:           c.ModY,
		}

		for op := 0; op < FMOpCount; op++ {
			ratioIdx := wavetable.ClampInt(int(c.params[fmFreqParamIndex(op)]), 0, FMFreqRatioCount-1)
			ratio := fmFreqRatios[ratioIdx]

			freqEnv := evalEnvelopesFor(c.Envelopes, fmFreqTarget(op), envCtx)
			ampEnv := evalEnvelopesFor(c.Envelopes, fmAmpTarget(op), envCtx)

			key := float64(v.Key) + carrierIntervals[op%len(carrierIntervals)]
			hz := wavetable.KeyToHz(key)*ratio.Mult*ratio.AmplitudeSign*freqEnv + ratio.HzOffset*ratio.AmplitudeSign

			st.ops[op].phaseDelta = hz / c.sampleRate * wavetable.SineLength

			expr := operatorAmplitudeCurve(c.params[fmVolumeParamIndex(op)]) * ampEnv
			if !isCarrier(algo.Carriers, op) {
				// A modulator's expression is in phase-table units,
				// not the carrier's linear amplitude, so it must be
				// scaled up to meaningfully shift another operator's
				// phase.
				expr *= wavetable.SineLength * 1.5
			}
			st.ops[op].expression = expr
		}

		releaseFade := 1.0
		if v.State == voice.Releasing && v.FadeOutTicks > 0 {
			releaseFade = wavetable.Clamp(1.0-float64(v.ReleaseAgeTicks)/v.FadeOutTicks, 0, 1)
		}
		st.gain = releaseFade * evalEnvelopesFor(c.Envelopes, ModTargetNoteVolume, envCtx)
	})
}

func fmFreqParamIndex(op int) int   { return [4]int{FMParamFreq0, FMParamFreq1, FMParamFreq2, FMParamFreq3}[op] }
func fmVolumeParamIndex(op int) int { return [4]int{FMParamVolume0, FMParamVolume1, FMParamVolume2, FMParamVolume3}[op] }
func fmFreqTarget(op int) ModTarget {
	return [4]ModTarget{ModTargetOperatorFreq0, ModTargetOperatorFreq1, ModTargetOperatorFreq2, ModTargetOperatorFreq3}[op]
}
func fmAmpTarget(op int) ModTarget {
	return [4]ModTarget{ModTargetOperatorAmp0, ModTargetOperatorAmp1, ModTargetOperatorAmp2, ModTargetOperatorAmp3}[op]
}

func isCarrier(carriers []int, op int) bool {
	for _, c := range carriers {
		if c == op {
			return true
		}
	}
	return false
}

func (c *FMCore) Run(outMono []float64, frameCount int) {
	algoIdx := wavetable.ClampInt(int(c.params[FMParamAlgorithm]), 0, FMAlgorithmCount-1)
	algo := fmAlgorithms[algoIdx]
	fbIdx := wavetable.ClampInt(int(c.params[FMParamFeedbackType]), 0, FMFeedbackCount-1)
	feedback := fmFeedbackTopologies[fbIdx]
	feedbackAmp := 0.3 * wavetable.SineLength * c.params[FMParamFeedbackVolume]

	for frame := 0; frame < frameCount; frame++ {
		var sample float64
		c.pool.ForEachAudible(func(slot int, v *voice.Voice) {
			st := &c.states[slot]

			var feedbackMix [FMOpCount]float64
			for _, link := range feedback {
				feedbackMix[link.Target] += feedbackAmp * st.ops[link.Source].output
			}

			for op := 0; op < FMOpCount; op++ {
				phaseMix := st.ops[op].phase + feedbackMix[op]
				for _, mod := range algo.Modulators[op] {
					phaseMix += st.ops[mod].output
				}
				st.ops[op].output = fmCalcOp(phaseMix, st.ops[op].expression)
			}

			var carrierSum float64
			for _, ci := range algo.Carriers {
				carrierSum += st.ops[ci].output
			}

			sample += carrierSum * v.Velocity * st.gain

			for op := 0; op < FMOpCount; op++ {
				st.ops[op].phase = clampPhase(st.ops[op].phase + st.ops[op].phaseDelta)
			}
		})
		outMono[frame] += sample
	}
}

// fmCalcOp is the operator core: an interpolated sine-table lookup
// scaled by expression, matching the original's fm_calc_op.
func fmCalcOp(phaseMix, expression float64) float64 {
	return expression * wavetable.Lookup(phaseMix)
}

func (c *FMCore) ActiveVoiceCount() int { return c.pool.ActiveCount() }

func (c *FMCore) DrainNoteEnds(fn func(NoteEnd)) {
	c.pool.ForEachSlot(func(slot int, v *voice.Voice) {
		if v.PendingNoteEnd {
			fn(NoteEnd{Identity: v.Identity, SampleOffset: v.NoteEndSampleOffset})
			v.PendingNoteEnd = false
			v.Clear()
		}
	})
	for _, ne := range c.noteEnds {
		fn(ne)
	}
	c.noteEnds = c.noteEnds[:0]
}

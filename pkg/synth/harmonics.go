package synth

import (
	"math"

	"github.com/bbxsynth/chipvoice/pkg/envelope"
	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/bbxsynth/chipvoice/pkg/wavetable"
)

// HarmonicsMax is the number of harmonic-amplitude controls the
// additive bank drives, a fixed bank matching the tracker's harmonics
// control surface (fundamental plus seven overtones).
const HarmonicsMax = 8

// Harmonics parameter local indices: one amplitude control per
// harmonic, followed by the shared unison controls.
const (
	HarmonicsParamAmp0 = iota
	HarmonicsParamAmp1
	HarmonicsParamAmp2
	HarmonicsParamAmp3
	HarmonicsParamAmp4
	HarmonicsParamAmp5
	HarmonicsParamAmp6
	HarmonicsParamAmp7
	HarmonicsParamUnisonVoices
	HarmonicsParamUnisonDetune
	HarmonicsParamVolume
	harmonicsParamCount
)

type harmonicsUnisonState struct {
	phase      float64
	phaseDelta float64
}

type harmonicsVoiceState struct {
	unison [ChipUnisonMax]harmonicsUnisonState
	gain   float64
}

// HarmonicsCore is the additive voice: a fixed bank of harmonic
// partials, each independently scaled, summed per unison copy.
type HarmonicsCore struct {
	params [harmonicsParamCount]float64

	pool   *voice.Pool
	states [MaxVoices]harmonicsVoiceState

	sampleRate float64
	noteEnds   []NoteEnd

	Envelopes    []EnvelopeBinding
	ModX, ModY   float64
	FadeOutTicks float64
}

// NewHarmonicsCore creates a harmonics core with only the fundamental
// active and a single (non-unison) voice.
func NewHarmonicsCore(sampleRate float64) *HarmonicsCore {
	c := &HarmonicsCore{pool: voice.NewPool(MaxVoices), sampleRate: sampleRate}
	c.params[HarmonicsParamAmp0] = 1.0
	c.params[HarmonicsParamUnisonVoices] = 1
	c.params[HarmonicsParamUnisonDetune] = 0.0
	c.params[HarmonicsParamVolume] = 1.0
	return c
}

func (c *HarmonicsCore) Param(i int) float64 {
	if i < 0 || i >= harmonicsParamCount {
		return 0
	}
	return c.params[i]
}

func (c *HarmonicsCore) SetParam(i int, v float64) {
	if i < 0 || i >= harmonicsParamCount {
		return
	}
	c.params[i] = v
}

func (c *HarmonicsCore) SetEnvelopes(list []EnvelopeBinding) {
	c.Envelopes = list
}

func (c *HarmonicsCore) harmonicAmp(h int) float64 {
	return c.params[HarmonicsParamAmp0+h]
}

func (c *HarmonicsCore) BeginNote(id voice.Identity, velocity float64, noteLengthTicks int64) int {
	slot, stolen, stolenID := c.pool.Allocate()
	if stolen {
		c.noteEnds = append(c.noteEnds, NoteEnd{Identity: stolenID, SampleOffset: 0})
	}
	c.pool.At(slot).Trigger(id, velocity, noteLengthTicks)
	c.states[slot] = harmonicsVoiceState{gain: 1.0}
	return slot
}

func (c *HarmonicsCore) EndNote(id voice.Identity) {
	if slot, ok := c.pool.FindActive(id); ok {
		c.pool.At(slot).BeginRelease(c.fadeOutTicksSetting())
	}
}

func (c *HarmonicsCore) fadeOutTicksSetting() float64 {
	if c.FadeOutTicks > 0 {
		return c.FadeOutTicks
	}
	return 12.0
}

func (c *HarmonicsCore) Tick(ctx TickContext) {
	unisonCount := wavetable.ClampInt(int(c.params[HarmonicsParamUnisonVoices]), 1, ChipUnisonMax)
	detuneCents := c.params[HarmonicsParamUnisonDetune]

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
		unisonEnv := evalEnvelopesFor(c.Envelopes, ModTargetUnison, envCtx)
		pitchShift := evalEnvelopesFor(c.Envelopes, ModTargetPitchShift, envCtx)

		baseHz := wavetable.KeyToHz(float64(v.Key)) * math.Pow(2.0, pitchShift/12.0)

		for u := 0; u < ChipUnisonMax; u++ {
			if u >= unisonCount {
				st.unison[u].phaseDelta = 0
				continue
			}
			spread := unisonSpread(u, unisonCount) * detuneCents * unisonEnv
			hz := baseHz * math.Pow(2.0, spread/1200.0)
			st.unison[u].phaseDelta = hz / c.sampleRate
		}

		releaseFade := 1.0
		if v.State == voice.Releasing && v.FadeOutTicks > 0 {
			releaseFade = wavetable.Clamp(1.0-float64(v.ReleaseAgeTicks)/v.FadeOutTicks, 0, 1)
		}
		st.gain = releaseFade * evalEnvelopesFor(c.Envelopes, ModTargetNoteVolume, envCtx)
	})
}

func (c *HarmonicsCore) Run(outMono []float64, frameCount int) {
	unisonCount := wavetable.ClampInt(int(c.params[HarmonicsParamUnisonVoices]), 1, ChipUnisonMax)
	volume := c.params[HarmonicsParamVolume]

	var amps [HarmonicsMax]float64
	var ampSum float64
	for h := 0; h < HarmonicsMax; h++ {
		amps[h] = c.harmonicAmp(h)
		ampSum += amps[h]
	}
	if ampSum <= 0 {
		ampSum = 1
	}

	for frame := 0; frame < frameCount; frame++ {
		var sample float64
		c.pool.ForEachAudible(func(slot int, v *voice.Voice) {
			st := &c.states[slot]
			var mix float64
			for u := 0; u < unisonCount; u++ {
				var partialSum float64
				for h := 0; h < HarmonicsMax; h++ {
					if amps[h] == 0 {
						continue
					}
					partialPhase := st.unison[u].phase * float64(h+1)
					partialPhase -= math.Floor(partialPhase)
					partialSum += amps[h] * wavetable.Lookup(partialPhase*wavetable.SineLength)
				}
				mix += partialSum / ampSum
				st.unison[u].phase += st.unison[u].phaseDelta
				if st.unison[u].phase >= 1.0 {
					st.unison[u].phase -= math.Floor(st.unison[u].phase)
				}
			}
			mix /= float64(unisonCount)
			sample += mix * volume * v.Velocity * st.gain
		})
		outMono[frame] += sample
	}
}

func (c *HarmonicsCore) ActiveVoiceCount() int { return c.pool.ActiveCount() }

func (c *HarmonicsCore) DrainNoteEnds(fn func(NoteEnd)) {
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

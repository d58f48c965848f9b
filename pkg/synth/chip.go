package synth

import (
	"math"

	"github.com/bbxsynth/chipvoice/pkg/envelope"
	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/bbxsynth/chipvoice/pkg/wavetable"
)

// Waveform identifies one entry of the chip core's fixed waveform bank.
type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSawtooth
	WaveSquare
	WavePulse
	WaveNoise

	waveformCount
)

// ChipUnisonMax bounds the number of detuned copies one chip voice can
// spread across.
const ChipUnisonMax = 4

// Chip parameter local indices.
const (
	ChipParamWaveform = iota
	ChipParamPulseWidth
	ChipParamUnisonVoices
	ChipParamUnisonDetune
	ChipParamVolume
	chipParamCount
)

type chipUnisonState struct {
	phase      float64
	phaseDelta float64
}

type chipVoiceState struct {
	unison [ChipUnisonMax]chipUnisonState
	gain   float64
}

// ChipCore is the wavetable voice: a single selectable waveform spread
// across up to ChipUnisonMax detuned unison copies.
type ChipCore struct {
	params [chipParamCount]float64

	pool   *voice.Pool
	states [MaxVoices]chipVoiceState

	sampleRate float64
	noteEnds   []NoteEnd

	Envelopes    []EnvelopeBinding
	ModX, ModY   float64
	FadeOutTicks float64
}

// NewChipCore creates a chip core with a sine waveform, no pulse
// narrowing, and a single (non-unison) voice.
func NewChipCore(sampleRate float64) *ChipCore {
	c := &ChipCore{pool: voice.NewPool(MaxVoices), sampleRate: sampleRate}
	c.params[ChipParamWaveform] = float64(WaveSine)
	c.params[ChipParamPulseWidth] = 0.5
	c.params[ChipParamUnisonVoices] = 1
	c.params[ChipParamUnisonDetune] = 0.0
	c.params[ChipParamVolume] = 1.0
	return c
}

func (c *ChipCore) Param(i int) float64 {
	if i < 0 || i >= chipParamCount {
		return 0
	}
	return c.params[i]
}

func (c *ChipCore) SetParam(i int, v float64) {
	if i < 0 || i >= chipParamCount {
		return
	}
	c.params[i] = v
}

func (c *ChipCore) SetEnvelopes(list []EnvelopeBinding) {
	c.Envelopes = list
}

func (c *ChipCore) BeginNote(id voice.Identity, velocity float64, noteLengthTicks int64) int {
	slot, stolen, stolenID := c.pool.Allocate()
	if stolen {
		c.noteEnds = append(c.noteEnds, NoteEnd{Identity: stolenID, SampleOffset: 0})
	}
	c.pool.At(slot).Trigger(id, velocity, noteLengthTicks)
	// Every trigger resets the slot's unison phases and gain, whether
	// the slot was idle or taken over from a sounding note.
	c.states[slot] = chipVoiceState{gain: 1.0}
	return slot
}

func (c *ChipCore) EndNote(id voice.Identity) {
	if slot, ok := c.pool.FindActive(id); ok {
		c.pool.At(slot).BeginRelease(c.fadeOutTicksSetting())
	}
}

func (c *ChipCore) fadeOutTicksSetting() float64 {
	if c.FadeOutTicks > 0 {
		return c.FadeOutTicks
	}
	return 12.0
}

func (c *ChipCore) Tick(ctx TickContext) {
	unisonCount := wavetable.ClampInt(int(c.params[ChipParamUnisonVoices]), 1, ChipUnisonMax)
	detuneCents := c.params[ChipParamUnisonDetune]

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

// unisonSpread places unison voice u of count symmetrically around
// zero detune: for count=1 the single voice is centered; for count>1
// voices are evenly spread across [-1,1] before scaling by the detune
// setting.
func unisonSpread(u, count int) float64 {
	if count <= 1 {
		return 0
	}
	return 2.0*float64(u)/float64(count-1) - 1.0
}

func (c *ChipCore) Run(outMono []float64, frameCount int) {
	waveform := Waveform(wavetable.ClampInt(int(c.params[ChipParamWaveform]), 0, int(waveformCount)-1))
	pulseWidth := wavetable.Clamp(c.params[ChipParamPulseWidth], 0.01, 0.99)
	unisonCount := wavetable.ClampInt(int(c.params[ChipParamUnisonVoices]), 1, ChipUnisonMax)
	volume := c.params[ChipParamVolume]

	for frame := 0; frame < frameCount; frame++ {
		var sample float64
		c.pool.ForEachAudible(func(slot int, v *voice.Voice) {
			st := &c.states[slot]
			var mix float64
			for u := 0; u < unisonCount; u++ {
				mix += chipWaveformSample(waveform, st.unison[u].phase, pulseWidth)
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

// chipWaveformSample evaluates one entry of the fixed waveform bank at
// phase in [0,1). Sine reuses the shared sine table; the rest are
// direct closed-form shapes, matching a chiptune voice's usual
// non-bandlimited rendering.
func chipWaveformSample(w Waveform, phase, pulseWidth float64) float64 {
	switch w {
	case WaveSine:
		return wavetable.Lookup(phase * wavetable.SineLength)
	case WaveTriangle:
		if phase < 0.5 {
			return 4.0*phase - 1.0
		}
		return -4.0*phase + 3.0
	case WaveSawtooth:
		return 2.0*phase - 1.0
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WavePulse:
		if phase < pulseWidth {
			return 1.0
		}
		return -1.0
	case WaveNoise:
		x := math.Sin(phase*12.9898+78.233) * 43758.5453
		return 2.0*(x-math.Floor(x)) - 1.0
	default:
		return 0
	}
}

func (c *ChipCore) ActiveVoiceCount() int { return c.pool.ActiveCount() }

func (c *ChipCore) DrainNoteEnds(fn func(NoteEnd)) {
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

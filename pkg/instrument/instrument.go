// Package instrument assembles one synth core and its effect chain into
// the per-instrument block-processing engine: tick scheduling, event
// splicing at sample-accurate offsets, and the mono-to-stereo render
// path the plugin controller drives once per host callback.
package instrument

import (
	"math"

	"github.com/bbxsynth/chipvoice/pkg/effect"
	"github.com/bbxsynth/chipvoice/pkg/synth"
	"github.com/bbxsynth/chipvoice/pkg/voice"
)

const (
	partsPerBeat = 24
	ticksPerPart = 2
)

// NoteEvent is a begin- or end-note request tagged with the block-local
// sample offset it should take effect at.
type NoteEvent struct {
	SampleOffset uint32
	Begin        bool
	Identity     voice.Identity
	Velocity     float64
	LengthTicks  int64 // -1 for a live, host-controlled note
}

// Transport carries the host's playback position, when available.
type Transport struct {
	Present   bool
	BPM       float64
	Playing   bool
	BeatPos   float64
	HasBeat   bool
}

// Instrument owns one synth core and its effect chain and renders
// stereo blocks from a sorted list of note events.
type Instrument struct {
	Synth synth.Synth
	Chain *effect.Chain

	SampleRate float64

	ExternalBPM      float64
	TempoMultiplier  float64
	TempoOverride    float64
	TempoUseOverride bool

	GainDb float64

	UseDistortion bool
	UseBitcrusher bool
	UseChorus     bool
	UseEcho       bool
	UseReverb     bool

	// Transition governs how the synth core should treat a new note
	// arriving while another is still sounding; it's read by whatever
	// translates host note events into NoteEvents, not by Process
	// itself. Chord, if set, is ticked here so its arpeggio clock stays
	// in lockstep with the synth's own tick boundary.
	Transition TransitionType
	Chord      *ChordScheduler

	envelopes []synth.EnvelopeBinding

	curBeat              float64
	framesUntilNextTick  uint32
	samplesSinceLastNote float64

	monoBuf []float64
}

// New creates an instrument around an already-constructed synth core
// and effect chain, both already sized for sampleRate.
func New(s synth.Synth, chain *effect.Chain, sampleRate float64) *Instrument {
	return &Instrument{
		Synth:           s,
		Chain:           chain,
		SampleRate:      sampleRate,
		TempoMultiplier: 1.0,
		TempoOverride:   150.0,
		ExternalBPM:     150.0,
	}
}

// Envelopes returns the envelope binding list currently driving the
// instrument's synth core, for state persistence.
func (inst *Instrument) Envelopes() []synth.EnvelopeBinding {
	return inst.envelopes
}

// SetEnvelopes replaces the envelope binding list and pushes it down
// into the active synth core, which is the thing that actually
// evaluates it each tick.
func (inst *Instrument) SetEnvelopes(list []synth.EnvelopeBinding) {
	inst.envelopes = list
	inst.Synth.SetEnvelopes(list)
}

// activeBPM resolves the tempo in effect this block, honoring the
// override switch and clamping away from zero (a zero-bpm tick period
// would never advance and stall all subsequent scheduling).
func (inst *Instrument) activeBPM() float64 {
	bpm := inst.ExternalBPM
	if inst.TempoUseOverride {
		bpm = inst.TempoOverride
	}
	bpm *= inst.TempoMultiplier
	if bpm < 1.0 {
		bpm = 1.0
	}
	return bpm
}

func samplesPerTick(bpm, sampleRate float64) float64 {
	beatsPerSec := bpm / 60.0
	partsPerSec := partsPerBeat * beatsPerSec
	ticksPerSec := ticksPerPart * partsPerSec
	return sampleRate / ticksPerSec
}

// ApplyTransport jumps the instrument's beat clock to the host's
// timeline position on a play-state change, so loop/seek doesn't leave
// beat-relative envelopes (tremolo) out of phase with the transport.
func (inst *Instrument) ApplyTransport(t Transport) {
	if !t.Present {
		return
	}
	if t.BPM > 0 {
		inst.ExternalBPM = t.BPM
	}
	if t.HasBeat {
		inst.curBeat = t.BeatPos
	}
}

// tickEffects applies pending enable/disable transitions and
// tick-resolution smoothing to every effect that honors an enable
// toggle; panning and the fader are unconditional and always ticked.
func (inst *Instrument) tickEffects() {
	inst.Chain.EQ.Tick()
	if inst.UseDistortion {
		inst.Chain.Distortion.Tick()
	}
	if inst.UseBitcrusher {
		inst.Chain.Bitcrusher.Tick()
	}
	if inst.UseChorus {
		inst.Chain.Chorus.Tick()
	}
	if inst.UseEcho {
		inst.Chain.Echo.Tick()
	}
	if inst.UseReverb {
		inst.Chain.Reverb.Tick()
	}
}

// SetEffectActive toggles one of the optional effects, stopping it
// (resetting its delay lines) immediately when turned off.
func (inst *Instrument) SetEffectActive(which *bool, e effect.Toggleable, on bool) {
	if *which == on {
		return
	}
	if !on {
		e.Stop()
	}
	e.SetEnabled(on)
	*which = on
}

// Process renders frameCount samples of stereo output starting at the
// instrument's current scheduling state, splicing in events (already
// sorted by SampleOffset) at their exact sample boundary and ticking
// the synth/effects whenever frames_until_next_tick reaches zero.
// drainedNoteEnds receives every voice whose release completed during
// this block, with the sample offset (relative to the block start) the
// fade finished at.
func (inst *Instrument) Process(outL, outR []float64, frameCount int, events []NoteEvent, drainedNoteEnds func(synth.NoteEnd)) {
	if cap(inst.monoBuf) < frameCount {
		inst.monoBuf = make([]float64, frameCount)
	}
	inst.monoBuf = inst.monoBuf[:frameCount]

	activeBPM := inst.activeBPM()
	beatsPerSec := activeBPM / 60.0
	sampleLen := 1.0 / inst.SampleRate

	eventIdx := 0
	frame := 0
	for frame < frameCount {
		for eventIdx < len(events) && int(events[eventIdx].SampleOffset) == frame {
			ev := events[eventIdx]
			if ev.Begin {
				inst.Synth.BeginNote(ev.Identity, ev.Velocity, ev.LengthTicks)
				inst.samplesSinceLastNote = 0
			} else {
				inst.Synth.EndNote(ev.Identity)
			}
			eventIdx++
		}

		if inst.framesUntilNextTick == 0 {
			inst.Synth.Tick(synth.TickContext{
				SampleRate: inst.SampleRate,
				BPM:        activeBPM,
				Beat:       inst.curBeat,
			})
			inst.tickEffects()
			if inst.Chord != nil {
				inst.Chord.AdvanceTick()
			}

			inst.framesUntilNextTick = uint32(math.Ceil(samplesPerTick(activeBPM, inst.SampleRate)))
			inst.curBeat += beatsPerSec * sampleLen * float64(inst.framesUntilNextTick)
		}

		chunk := frameCount - frame
		if int(inst.framesUntilNextTick) < chunk {
			chunk = int(inst.framesUntilNextTick)
		}
		if eventIdx < len(events) {
			if untilNextEvent := int(events[eventIdx].SampleOffset) - frame; untilNextEvent < chunk {
				chunk = untilNextEvent
			}
		}
		if chunk == 0 {
			chunk = 1
		}

		for i := frame; i < frame+chunk; i++ {
			inst.monoBuf[i] = 0
		}
		inst.Synth.Run(inst.monoBuf[frame:frame+chunk], chunk)

		for i := frame; i < frame+chunk; i++ {
			ageSeconds := inst.samplesSinceLastNote / inst.SampleRate
			l, r := inst.Chain.Process(inst.monoBuf[i], ageSeconds)
			outL[i] = l
			outR[i] = r
			inst.samplesSinceLastNote++
		}

		frame += chunk
		inst.framesUntilNextTick -= uint32(chunk)
	}

	controlGain := math.Pow(10.0, inst.GainDb/10.0)
	for i := 0; i < frameCount; i++ {
		outL[i] *= controlGain
		outR[i] *= controlGain
	}

	if drainedNoteEnds != nil {
		inst.Synth.DrainNoteEnds(drainedNoteEnds)
	} else {
		inst.Synth.DrainNoteEnds(func(synth.NoteEnd) {})
	}
}

// ActiveVoiceCount reports whether the instrument should keep being
// processed (a host can let an instrument with none sleep).
func (inst *Instrument) ActiveVoiceCount() int {
	return inst.Synth.ActiveVoiceCount()
}

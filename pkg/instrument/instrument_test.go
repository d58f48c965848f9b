package instrument

import (
	"math"
	"testing"

	"github.com/bbxsynth/chipvoice/pkg/effect"
	"github.com/bbxsynth/chipvoice/pkg/synth"
	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstrument(sr float64) *Instrument {
	core := synth.NewChipCore(sr)
	core.SetParam(synth.ChipParamWaveform, float64(synth.WaveSawtooth))
	chain := effect.NewChain(sr)
	return New(core, chain, sr)
}

func TestSamplesPerTickMatchesFortyEightTicksPerBeat(t *testing.T) {
	sr := 48000.0
	bpm := 150.0
	got := samplesPerTick(bpm, sr)
	want := sr / (48.0 * bpm / 60.0)
	assert.InDelta(t, want, got, 1e-9)
}

func TestInstrumentRendersNonSilentBlock(t *testing.T) {
	sr := 48000.0
	inst := newTestInstrument(sr)

	events := []NoteEvent{
		{SampleOffset: 0, Begin: true, Identity: voice.Identity{NoteID: 1, Key: 60}, Velocity: 1.0, LengthTicks: -1},
	}

	frameCount := int(sr)
	outL := make([]float64, frameCount)
	outR := make([]float64, frameCount)
	inst.Process(outL, outR, frameCount, events, nil)

	var rms float64
	for i := range outL {
		rms += outL[i]*outL[i] + outR[i]*outR[i]
	}
	rms = math.Sqrt(rms / float64(2*frameCount))
	assert.Greater(t, rms, 0.001)
}

func TestInstrumentEmitsNoteEndAfterRelease(t *testing.T) {
	sr := 48000.0
	inst := newTestInstrument(sr)

	id := voice.Identity{NoteID: 5, Key: 64}
	events := []NoteEvent{
		{SampleOffset: 0, Begin: true, Identity: id, Velocity: 1.0, LengthTicks: -1},
		{SampleOffset: 10, Begin: false, Identity: id},
	}

	frameCount := int(sr)
	outL := make([]float64, frameCount)
	outR := make([]float64, frameCount)

	var ends []synth.NoteEnd
	inst.Process(outL, outR, frameCount, events, func(ne synth.NoteEnd) { ends = append(ends, ne) })

	require.Len(t, ends, 1)
	assert.Equal(t, int32(5), ends[0].Identity.NoteID)
}

func TestActiveBPMClampsAwayFromZero(t *testing.T) {
	inst := newTestInstrument(48000.0)
	inst.ExternalBPM = 0
	inst.TempoMultiplier = 0
	assert.Equal(t, 1.0, inst.activeBPM())
}

func TestActiveBPMHonorsOverride(t *testing.T) {
	inst := newTestInstrument(48000.0)
	inst.TempoUseOverride = true
	inst.TempoOverride = 90
	inst.TempoMultiplier = 2
	assert.Equal(t, 180.0, inst.activeBPM())
}

func TestApplyTransportJumpsBeat(t *testing.T) {
	inst := newTestInstrument(48000.0)
	inst.curBeat = 3.0
	inst.ApplyTransport(Transport{Present: true, BPM: 140, HasBeat: true, BeatPos: 7.5})
	assert.Equal(t, 140.0, inst.ExternalBPM)
	assert.Equal(t, 7.5, inst.curBeat)
}

package synth

import (
	"math"
	"testing"

	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChipWaveformSampleRanges(t *testing.T) {
	for w := Waveform(0); w < waveformCount; w++ {
		for _, phase := range []float64{0, 0.25, 0.5, 0.75, 0.99} {
			s := chipWaveformSample(w, phase, 0.5)
			assert.LessOrEqual(t, s, 1.0001)
			assert.GreaterOrEqual(t, s, -1.0001)
		}
	}
}

func TestChipCoreProducesNonSilentOutput(t *testing.T) {
	sr := 48000.0
	c := NewChipCore(sr)
	c.SetParam(ChipParamWaveform, float64(WaveSawtooth))

	c.BeginNote(voice.Identity{NoteID: 1, Key: 60}, 1.0, -1)
	c.Tick(TickContext{SampleRate: sr})

	out := make([]float64, int(sr))
	c.Run(out, len(out))

	var rms float64
	for _, s := range out {
		rms += s * s
	}
	rms = math.Sqrt(rms / float64(len(out)))
	assert.Greater(t, rms, 0.01)
}

func TestChipCoreUnisonSpreadSymmetric(t *testing.T) {
	assert.Equal(t, 0.0, unisonSpread(0, 1))
	assert.Equal(t, -1.0, unisonSpread(0, 3))
	assert.Equal(t, 0.0, unisonSpread(1, 3))
	assert.Equal(t, 1.0, unisonSpread(2, 3))
}

func TestChipCoreNoteEndAfterReleaseFade(t *testing.T) {
	sr := 48000.0
	c := NewChipCore(sr)
	c.FadeOutTicks = 4
	id := voice.Identity{NoteID: 3, Key: 64}
	c.BeginNote(id, 1.0, -1)
	c.Tick(TickContext{SampleRate: sr})
	c.EndNote(id)

	var ends []NoteEnd
	for i := 0; i < 10; i++ {
		c.Tick(TickContext{SampleRate: sr})
		c.DrainNoteEnds(func(ne NoteEnd) { ends = append(ends, ne) })
		if len(ends) > 0 {
			break
		}
	}
	require.Len(t, ends, 1)
	assert.Equal(t, int32(3), ends[0].Identity.NoteID)
}

func TestChipCoreStealReportsNoteEnd(t *testing.T) {
	sr := 48000.0
	c := NewChipCore(sr)
	for i := 0; i < MaxVoices; i++ {
		c.BeginNote(voice.Identity{NoteID: int32(i), Key: int16(60 + i)}, 1.0, -1)
	}
	c.BeginNote(voice.Identity{NoteID: 99, Key: 72}, 1.0, -1)

	var ends []NoteEnd
	c.DrainNoteEnds(func(ne NoteEnd) { ends = append(ends, ne) })
	require.Len(t, ends, 1)
	assert.Equal(t, int32(0), ends[0].Identity.NoteID)
}

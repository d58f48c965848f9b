package synth

import (
	"math"
	"testing"

	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFMAlgorithmTableShape(t *testing.T) {
	require.Len(t, fmAlgorithms, FMAlgorithmCount)
	for i, a := range fmAlgorithms {
		assert.NotEmpty(t, a.Carriers, "algorithm %d has no carrier operators", i)
		for _, c := range a.Carriers {
			assert.True(t, c >= 0 && c < FMOpCount)
		}
	}
}

func TestFMFeedbackTableShape(t *testing.T) {
	require.Len(t, fmFeedbackTopologies, FMFeedbackCount)
	for i, links := range fmFeedbackTopologies {
		assert.NotEmpty(t, links, "feedback topology %d is empty", i)
	}
}

func TestFMFreqRatioTableShape(t *testing.T) {
	require.Len(t, fmFreqRatios, FMFreqRatioCount)
	assert.Equal(t, 0.125, fmFreqRatios[0].Mult)
	assert.Equal(t, 250.0, fmFreqRatios[FMFreqRatioCount-1].Mult)
}

func TestFMCoreProducesNonSilentOutput(t *testing.T) {
	sr := 48000.0
	c := NewFMCore(sr)
	c.SetParam(FMParamVolume0, 1.0)

	slot := c.BeginNote(voice.Identity{NoteID: 7, Key: 69}, 1.0, -1)
	assert.Equal(t, 0, slot)

	c.Tick(TickContext{SampleRate: sr, BPM: 120})

	out := make([]float64, int(sr))
	c.Run(out, len(out))

	var rms float64
	for _, s := range out {
		rms += s * s
	}
	rms = math.Sqrt(rms / float64(len(out)))
	assert.Greater(t, rms, 0.01)
}

func TestFMCoreNoteEndAfterReleaseFade(t *testing.T) {
	sr := 48000.0
	c := NewFMCore(sr)
	c.FadeOutTicks = 4
	id := voice.Identity{NoteID: 7, Key: 69}
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
	assert.Equal(t, int32(7), ends[0].Identity.NoteID)
}

func TestFMCoreStealReportsNoteEnd(t *testing.T) {
	sr := 48000.0
	c := NewFMCore(sr)
	for i := 0; i < MaxVoices; i++ {
		c.BeginNote(voice.Identity{NoteID: int32(i), Key: int16(60 + i)}, 1.0, -1)
	}
	c.BeginNote(voice.Identity{NoteID: 99, Key: 72}, 1.0, -1)

	var ends []NoteEnd
	c.DrainNoteEnds(func(ne NoteEnd) { ends = append(ends, ne) })
	require.Len(t, ends, 1)
	assert.Equal(t, int32(0), ends[0].Identity.NoteID)
}

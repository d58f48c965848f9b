package synth

import (
	"math"
	"testing"

	"github.com/bbxsynth/chipvoice/pkg/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarmonicsCoreProducesNonSilentOutput(t *testing.T) {
	sr := 48000.0
	c := NewHarmonicsCore(sr)
	c.SetParam(HarmonicsParamAmp2, 0.5)

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

func TestHarmonicsCoreAllZeroAmpsStaysSilent(t *testing.T) {
	sr := 48000.0
	c := NewHarmonicsCore(sr)
	c.SetParam(HarmonicsParamAmp0, 0)

	c.BeginNote(voice.Identity{NoteID: 1, Key: 60}, 1.0, -1)
	c.Tick(TickContext{SampleRate: sr})

	out := make([]float64, 512)
	c.Run(out, len(out))

	for _, s := range out {
		assert.Equal(t, 0.0, s)
	}
}

func TestHarmonicsCoreNoteEndAfterReleaseFade(t *testing.T) {
	sr := 48000.0
	c := NewHarmonicsCore(sr)
	c.FadeOutTicks = 4
	id := voice.Identity{NoteID: 5, Key: 67}
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
	assert.Equal(t, int32(5), ends[0].Identity.NoteID)
}

func TestHarmonicsCoreStealReportsNoteEnd(t *testing.T) {
	sr := 48000.0
	c := NewHarmonicsCore(sr)
	for i := 0; i < MaxVoices; i++ {
		c.BeginNote(voice.Identity{NoteID: int32(i), Key: int16(60 + i)}, 1.0, -1)
	}
	c.BeginNote(voice.Identity{NoteID: 99, Key: 72}, 1.0, -1)

	var ends []NoteEnd
	c.DrainNoteEnds(func(ne NoteEnd) { ends = append(ends, ne) })
	require.Len(t, ends, 1)
	assert.Equal(t, int32(0), ends[0].Identity.NoteID)
}

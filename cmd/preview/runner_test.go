package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbxsynth/chipvoice/pkg/instrument"
	"github.com/bbxsynth/chipvoice/pkg/param"
	"github.com/bbxsynth/chipvoice/pkg/state"
)

func TestNewRunnerRegistersFMParameterSurface(t *testing.T) {
	r := NewRunner(48000.0)
	assert.Greater(t, r.Params.Count(), 0)

	globalID, _, ok := r.Params.InfoByStringID(param.NewStringID("fm_algo"))
	require.True(t, ok)
	v, ok := r.Params.Get(globalID)
	require.True(t, ok)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestRunnerTriggerRendersNonSilentBlock(t *testing.T) {
	r := NewRunner(48000.0)
	r.Trigger(60, 1.0, -1)

	frames := int(r.Instrument.SampleRate)
	outL := make([]float64, frames)
	outR := make([]float64, frames)
	r.RenderBlock(outL, outR, frames)

	nonZero := false
	for i := range outL {
		if outL[i] != 0 || outR[i] != 0 {
			nonZero = true
			break
		}
	}
	assert.True(t, nonZero, "expected triggered note to render audible samples")
}

func TestRunnerQueueParamAppliesAcrossRenderBlock(t *testing.T) {
	r := NewRunner(48000.0)
	globalID, _, ok := r.Params.InfoByStringID(param.NewStringID("volume"))
	require.True(t, ok)

	r.QueueParam(globalID, 0.25)

	outL := make([]float64, 64)
	outR := make([]float64, 64)
	r.RenderBlock(outL, outR, 64)

	v, ok := r.Params.Get(globalID)
	require.True(t, ok)
	assert.InDelta(t, 0.25, v, 1e-9)
}

func TestRunnerSaveLoadStateRoundTrips(t *testing.T) {
	r := NewRunner(48000.0)
	globalID, _, ok := r.Params.InfoByStringID(param.NewStringID("pan"))
	require.True(t, ok)
	r.QueueParam(globalID, 0.5)
	outL := make([]float64, 8)
	outR := make([]float64, 8)
	r.RenderBlock(outL, outR, 8)

	codec := state.NewCodec(state.SynthVersion{Major: 1, Minor: 0, Revision: 0}, instrument.TypeFM)
	var buf bytes.Buffer
	require.NoError(t, r.SaveState(codec, &buf))

	r2 := NewRunner(48000.0)
	require.NoError(t, r2.LoadState(codec, &buf))

	v, ok := r2.Params.Get(globalID)
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)
}

package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbxsynth/chipvoice/pkg/envelope"
	"github.com/bbxsynth/chipvoice/pkg/instrument"
	"github.com/bbxsynth/chipvoice/pkg/param"
	"github.com/bbxsynth/chipvoice/pkg/synth"
)

func newTestManager(t *testing.T) *param.Manager {
	t.Helper()
	m := param.NewManager()
	volume := param.NewBuilder("volume", "Volume").Range(0, 1, 0.8).MustBuild()
	pan := param.NewBuilder("pan", "Pan").Range(-1, 1, 0).MustBuild()
	require.NoError(t, m.Register(param.GlobalID(param.ModuleVolume, 0), volume))
	require.NoError(t, m.Register(param.GlobalID(param.ModulePanning, 0), pan))
	return m
}

func TestSaveThenLoadRestoresParametersAndEnvelopes(t *testing.T) {
	codec := NewCodec(SynthVersion{Major: 1, Minor: 2, Revision: 3}, instrument.TypeFM)
	params := newTestManager(t)

	volumeID := param.GlobalID(param.ModuleVolume, 0)
	panID := param.GlobalID(param.ModulePanning, 0)
	_, err := params.Set(volumeID, 0.33)
	require.NoError(t, err)
	_, err = params.Set(panID, -0.5)
	require.NoError(t, err)

	envelopes := []synth.EnvelopeBinding{
		{Target: synth.ModTargetNoteVolume, Preset: envelope.PresetFlare, Speed: 1.0},
		{Target: synth.ModTargetPitchShift, Preset: envelope.PresetTwang, Speed: 1.0},
	}

	var buf bytes.Buffer
	require.NoError(t, codec.Save(&buf, params, envelopes))

	loadedParams := newTestManager(t)
	loadedEnvelopes, err := codec.Load(&buf, loadedParams)
	require.NoError(t, err)

	volumeValue, _ := loadedParams.Get(volumeID)
	panValue, _ := loadedParams.Get(panID)
	assert.InDelta(t, 0.33, volumeValue, 1e-9)
	assert.InDelta(t, -0.5, panValue, 1e-9)
	assert.Equal(t, envelopes, loadedEnvelopes)
}

func TestLoadRejectsMismatchedSynthVersion(t *testing.T) {
	writer := NewCodec(SynthVersion{Major: 1}, instrument.TypeFM)
	reader := NewCodec(SynthVersion{Major: 2}, instrument.TypeFM)
	params := newTestManager(t)

	var buf bytes.Buffer
	require.NoError(t, writer.Save(&buf, params, nil))

	_, err := reader.Load(&buf, newTestManager(t))
	assert.ErrorIs(t, err, ErrSynthVersionMismatch)
}

func TestLoadRejectsMismatchedInstrumentType(t *testing.T) {
	writer := NewCodec(SynthVersion{Major: 1}, instrument.TypeFM)
	reader := NewCodec(SynthVersion{Major: 1}, instrument.TypeChip)
	params := newTestManager(t)

	var buf bytes.Buffer
	require.NoError(t, writer.Save(&buf, params, nil))

	_, err := reader.Load(&buf, newTestManager(t))
	assert.ErrorIs(t, err, ErrInstrumentTypeMismatch)
}

func TestLoadRejectsUnknownParameterStringID(t *testing.T) {
	codec := NewCodec(SynthVersion{Major: 1}, instrument.TypeFM)
	writerParams := newTestManager(t)

	var buf bytes.Buffer
	require.NoError(t, codec.Save(&buf, writerParams, nil))

	readerParams := param.NewManager()
	_, err := codec.Load(&buf, readerParams)
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestLoadedEnvelopeSpeedDefaultsToOne(t *testing.T) {
	codec := NewCodec(SynthVersion{Major: 1}, instrument.TypeChip)
	params := newTestManager(t)

	var buf bytes.Buffer
	require.NoError(t, codec.Save(&buf, params, []synth.EnvelopeBinding{
		{Target: synth.ModTargetUnison, Preset: envelope.PresetSwell, Speed: 4.0},
	}))

	loaded, err := codec.Load(&buf, newTestManager(t))
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 1.0, loaded[0].Speed)
}

package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalNone(t *testing.T) {
	assert.Equal(t, 1.0, Eval(PresetNone, Context{}))
}

func TestEvalNoteVolume(t *testing.T) {
	assert.Equal(t, 0.75, Eval(PresetNoteVolume, Context{Velocity: 0.75}))
}

func TestEvalTwangDecaysTowardZero(t *testing.T) {
	early := Eval(PresetTwang, Context{ElapsedSeconds: 0, Speed: 4})
	later := Eval(PresetTwang, Context{ElapsedSeconds: 10, Speed: 4})
	assert.Equal(t, 1.0, early)
	assert.Less(t, later, 0.1)
}

func TestEvalSwellRisesTowardOne(t *testing.T) {
	early := Eval(PresetSwell, Context{ElapsedSeconds: 0, Speed: 4})
	later := Eval(PresetSwell, Context{ElapsedSeconds: 10, Speed: 4})
	assert.Equal(t, 0.0, early)
	assert.Greater(t, later, 0.9)
}

func TestEvalTremoloBounds(t *testing.T) {
	v := Eval(PresetTremolo, Context{ElapsedBeats: 0, Speed: 1})
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestEvalBlipCutoff(t *testing.T) {
	assert.Equal(t, 1.0, Eval(PresetBlip, Context{ElapsedSeconds: 0, Speed: 2}))
	assert.Equal(t, 0.0, Eval(PresetBlip, Context{ElapsedSeconds: 1, Speed: 2}))
}

func TestEvalModXY(t *testing.T) {
	assert.Equal(t, 0.3, Eval(PresetModX, Context{ModX: 0.3, ModY: 0.8}))
	assert.Equal(t, 0.8, Eval(PresetModY, Context{ModX: 0.3, ModY: 0.8}))
}

func TestPresetValid(t *testing.T) {
	assert.True(t, PresetModY.Valid())
	assert.False(t, Preset(200).Valid())
}

func TestSecsFadeInMonotonic(t *testing.T) {
	a := SecsFadeIn(0)
	b := SecsFadeIn(5)
	c := SecsFadeIn(10)
	assert.Equal(t, 0.0, a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestTicksFadeOutTableValues(t *testing.T) {
	assert.Equal(t, 1.0, TicksFadeOut(0))
	assert.Equal(t, 3.0, TicksFadeOut(1))
	assert.Equal(t, 96.0, TicksFadeOut(7))
	assert.InDelta(t, 4.5, TicksFadeOut(1.5), 1e-9)
}

func TestTicksFadeOutExtrapolatesAbove7(t *testing.T) {
	v := TicksFadeOut(10)
	assert.InDelta(t, 1.95918*100, v, 1e-6)
	assert.Greater(t, v, 96.0)
}

func TestTicksFadeOutNegativeClampsToOne(t *testing.T) {
	assert.Equal(t, 1.0, TicksFadeOut(-5))
}

func TestEvalDecayIsPowerOfTwo(t *testing.T) {
	v := Eval(PresetDecay, Context{ElapsedSeconds: 1, Speed: 1})
	assert.InDelta(t, 0.5, v, 1e-9)
	v = Eval(PresetDecay, Context{ElapsedSeconds: 0, Speed: 1})
	assert.Equal(t, 1.0, v)
}

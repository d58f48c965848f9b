package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyToNoteMapsPianoRows(t *testing.T) {
	assert.EqualValues(t, 48, keyToNote("z", 4))
	assert.EqualValues(t, 60, keyToNote("q", 4))
	assert.EqualValues(t, -1, keyToNote("", 4))
	assert.EqualValues(t, -1, keyToNote("k", 4))
}

func TestNewModelCollectsParamsInRegistrationOrder(t *testing.T) {
	r := NewRunner(48000.0)
	m := NewModel(r)
	assert.Equal(t, r.Params.Count(), len(m.params))
}

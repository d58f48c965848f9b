package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimultaneousChordSoundsEveryHeldKey(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordSimultaneous
	c.NoteOn(60)
	c.NoteOn(64)
	c.NoteOn(67)
	assert.ElementsMatch(t, []int32{60, 64, 67}, c.ActiveKeys())
}

func TestStrumSoundsEveryKeyWithIncreasingOffsets(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordStrum
	c.NoteOn(60)
	c.NoteOn(64)
	c.NoteOn(67)
	assert.ElementsMatch(t, []int32{60, 64, 67}, c.ActiveKeys())
	assert.Equal(t, uint32(0), c.StrumOffset(0))
	assert.Less(t, c.StrumOffset(0), c.StrumOffset(1))
	assert.Less(t, c.StrumOffset(1), c.StrumOffset(2))
}

func TestArpeggioSoundsOneKeyAtATimeAndCycles(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordArpeggio
	c.ArpeggioSpeed = 1.0 // fastest: 1 tick per step
	c.NoteOn(60)
	c.NoteOn(64)
	c.NoteOn(67)

	first := c.ActiveKeys()
	assert.Len(t, first, 1)
	assert.Equal(t, int32(60), first[0])

	c.AdvanceTick()
	assert.Equal(t, int32(64), c.ActiveKeys()[0])

	c.AdvanceTick()
	assert.Equal(t, int32(67), c.ActiveKeys()[0])

	c.AdvanceTick()
	assert.Equal(t, int32(60), c.ActiveKeys()[0], "arpeggio should wrap back to the first held key")
}

func TestArpeggioFastTwoNoteRuleHalvesStepLength(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordArpeggio
	c.ArpeggioSpeed = 0.0 // slowest base rate: 12 ticks/step
	c.NoteOn(60)
	c.NoteOn(64)

	assert.Equal(t, 6, c.arpeggioTicksPerStep(), "two held notes should halve the base step length")
}

func TestArpeggioWithNoHeldKeysReportsNothing(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordArpeggio
	assert.Empty(t, c.ActiveKeys())
	c.AdvanceTick() // must not panic with nothing held
}

func TestNoteOffRemovesKeyAndClampsArpeggioIndex(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordArpeggio
	c.ArpeggioSpeed = 1.0
	c.NoteOn(60)
	c.NoteOn(64)
	c.AdvanceTick() // arpIndex now 1 (key 64)
	assert.Equal(t, int32(64), c.ActiveKeys()[0])

	c.NoteOff(64)
	assert.Equal(t, 1, c.HeldCount())
	assert.Equal(t, int32(60), c.ActiveKeys()[0])
}

func TestCustomIntervalBuildsChordFromOneHeldKey(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordCustomInterval
	c.CustomIntervals = []int32{4, 7}
	c.NoteOn(60)
	assert.ElementsMatch(t, []int32{60, 64, 67}, c.ActiveKeys())
}

func TestCustomIntervalUsesMostRecentlyPressedKeyAsBase(t *testing.T) {
	var c ChordScheduler
	c.Chord = ChordCustomInterval
	c.CustomIntervals = []int32{3}
	c.NoteOn(60)
	c.NoteOn(62)
	assert.ElementsMatch(t, []int32{62, 65}, c.ActiveKeys())
}

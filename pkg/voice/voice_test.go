package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerSetsActive(t *testing.T) {
	var v Voice
	v.Trigger(Identity{NoteID: 7, Key: 69}, 1.0, -1)
	assert.Equal(t, Active, v.State)
	assert.True(t, v.Audible())
	assert.Equal(t, int32(7), v.NoteID)
}

func TestBeginReleaseOnlyFromActive(t *testing.T) {
	var v Voice
	v.BeginRelease(10)
	assert.Equal(t, Idle, v.State, "release on an idle voice is a no-op")

	v.Trigger(Identity{NoteID: 1}, 1.0, -1)
	v.BeginRelease(10)
	assert.Equal(t, Releasing, v.State)
	assert.Equal(t, 10.0, v.FadeOutTicks)
}

func TestTickElapsedTransitionsToDead(t *testing.T) {
	var v Voice
	v.Trigger(Identity{NoteID: 1}, 1.0, -1)
	v.BeginRelease(3)
	for i := 0; i < 2; i++ {
		v.TickElapsed(0)
		assert.Equal(t, Releasing, v.State)
	}
	v.TickElapsed(123)
	assert.Equal(t, Dead, v.State)
	assert.True(t, v.PendingNoteEnd)
	assert.Equal(t, uint32(123), v.NoteEndSampleOffset)
	assert.False(t, v.Audible())
}

func TestPoolAllocatesIdleFirst(t *testing.T) {
	p := NewPool(4)
	slot, stolen, _ := p.Allocate()
	assert.Equal(t, 0, slot)
	assert.False(t, stolen)
}

func TestPoolStealsOldestReleasedBeforeActive(t *testing.T) {
	p := NewPool(2)
	p.At(0).Trigger(Identity{NoteID: 1}, 1.0, -1)
	p.At(0).AgeTicks = 100
	p.At(1).Trigger(Identity{NoteID: 2}, 1.0, -1)
	p.At(1).AgeTicks = 5
	p.At(1).BeginRelease(999)

	slot, stolen, identity := p.Allocate()
	require.True(t, stolen)
	assert.Equal(t, 1, slot, "releasing voice is stolen even though it's younger than the active one")
	assert.Equal(t, int32(2), identity.NoteID)
}

func TestPoolStealsOldestActiveWhenNoneReleasing(t *testing.T) {
	p := NewPool(2)
	p.At(0).Trigger(Identity{NoteID: 1}, 1.0, -1)
	p.At(0).AgeTicks = 3
	p.At(1).Trigger(Identity{NoteID: 2}, 1.0, -1)
	p.At(1).AgeTicks = 30

	slot, stolen, identity := p.Allocate()
	require.True(t, stolen)
	assert.Equal(t, 1, slot)
	assert.Equal(t, int32(2), identity.NoteID)
}

func TestFindActiveMatchesWildcardNoteID(t *testing.T) {
	p := NewPool(2)
	p.At(0).Trigger(Identity{NoteID: 42, Port: 0, Channel: 0, Key: 60}, 1.0, -1)

	slot, ok := p.FindActive(Identity{NoteID: -1, Port: 0, Channel: 0, Key: 60})
	require.True(t, ok)
	assert.Equal(t, 0, slot)
}

func TestReleaseAllMovesActiveVoicesOnly(t *testing.T) {
	p := NewPool(2)
	p.At(0).Trigger(Identity{NoteID: 1}, 1.0, -1)
	p.ReleaseAll(8)
	assert.Equal(t, Releasing, p.At(0).State)
	assert.Equal(t, Idle, p.At(1).State)
}

func TestResetClearsAllSlots(t *testing.T) {
	p := NewPool(2)
	p.At(0).Trigger(Identity{NoteID: 1}, 1.0, -1)
	p.Reset()
	assert.Equal(t, Idle, p.At(0).State)
}

package queue

import (
	"testing"

	"github.com/bbxsynth/chipvoice/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopPreservesFIFOOrder(t *testing.T) {
	r := New()
	for i := 0; i < 5; i++ {
		r.Push(instrument.ParamEvent{Kind: instrument.ParamChange, ParamID: uint32(i), Value: float64(i)})
	}
	for i := 0; i < 5; i++ {
		ev, ok := r.Pop()
		require.True(t, ok)
		assert.Equal(t, uint32(i), ev.ParamID)
	}
	_, ok := r.Pop()
	assert.False(t, ok, "ring should be empty after draining everything pushed")
}

func TestPopOnEmptyRingReportsFalse(t *testing.T) {
	r := New()
	_, ok := r.Pop()
	assert.False(t, ok)
}

func TestPushBeyondCapacityOverwritesOldest(t *testing.T) {
	r := New()
	for i := 0; i < Capacity+3; i++ {
		r.Push(instrument.ParamEvent{ParamID: uint32(i)})
	}
	assert.Equal(t, Capacity, r.Len())

	ev, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(3), ev.ParamID, "the three oldest entries should have been evicted")

	diag := r.GetDiagnostics()
	assert.Equal(t, uint64(3), diag.Overwrites)
	assert.Equal(t, uint64(Capacity+3), diag.Pushes)
}

func TestDrainInvokesCallbackForEveryEntryInOrder(t *testing.T) {
	r := New()
	r.Push(instrument.ParamEvent{Kind: instrument.EnvelopeAdd, EnvelopeIx: 1})
	r.Push(instrument.ParamEvent{Kind: instrument.EnvelopeModify, EnvelopeIx: 2})
	r.Push(instrument.ParamEvent{Kind: instrument.EnvelopeRemove, EnvelopeIx: 3})

	var got []instrument.ParamEventKind
	r.Drain(func(ev instrument.ParamEvent) { got = append(got, ev.Kind) })

	require.Len(t, got, 3)
	assert.Equal(t, []instrument.ParamEventKind{
		instrument.EnvelopeAdd, instrument.EnvelopeModify, instrument.EnvelopeRemove,
	}, got)
	assert.Equal(t, 0, r.Len())
}

func TestLenTracksOutstandingEntries(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Len())
	r.Push(instrument.ParamEvent{})
	r.Push(instrument.ParamEvent{})
	assert.Equal(t, 2, r.Len())
	r.Pop()
	assert.Equal(t, 1, r.Len())
}

func TestConcurrentProducerConsumerDeliversEveryPush(t *testing.T) {
	r := New()
	const n = 10000
	done := make(chan struct{})

	go func() {
		for i := 0; i < n; i++ {
			r.Push(instrument.ParamEvent{ParamID: uint32(i)})
		}
		close(done)
	}()

	received := 0
	for received < n {
		r.Drain(func(instrument.ParamEvent) { received++ })
	}
	<-done

	diag := r.GetDiagnostics()
	assert.Equal(t, uint64(n), diag.Pushes)
	assert.Equal(t, uint64(n), diag.Pops)
	assert.Equal(t, uint64(0), diag.Overwrites, "single consumer keeping pace should never force an overwrite")
}

// Package queue implements the lock-free single-producer/single-consumer
// ring the plugin controller uses to move parameter events between the
// GUI thread and the realtime audio thread in both directions. Pushes
// never block: a full ring overwrites its oldest unread entry rather
// than stalling the producer, since a stale parameter event is far
// cheaper than an audio-thread stall.
package queue

import (
	"sync/atomic"

	"github.com/bbxsynth/chipvoice/pkg/instrument"
)

// Capacity is the ring's fixed size: a power of two so the head/tail
// wrap is a cheap bitmask instead of a modulo.
const Capacity = 256

const mask = Capacity - 1

// Ring is an SPSC ring buffer of instrument.ParamEvent. One goroutine
// may call Push, and a different single goroutine may call Pop;
// calling either from more than one goroutine concurrently is a race.
type Ring struct {
	buf  [Capacity]instrument.ParamEvent
	head uint64 // next slot Pop will read
	tail uint64 // next slot Push will write

	// Diagnostics, read with GetDiagnostics from any goroutine.
	pushes    uint64
	pops      uint64
	overwrites uint64
}

// New creates an empty ring.
func New() *Ring {
	return &Ring{}
}

// Push appends ev, overwriting the oldest unread entry (and advancing
// head past it) if the ring is full. Never blocks.
func (r *Ring) Push(ev instrument.ParamEvent) {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)

	if tail-head >= Capacity {
		atomic.AddUint64(&r.head, 1)
		atomic.AddUint64(&r.overwrites, 1)
	}

	r.buf[tail&mask] = ev
	atomic.StoreUint64(&r.tail, tail+1)
	atomic.AddUint64(&r.pushes, 1)
}

// Pop removes and returns the oldest unread entry, reporting false if
// the ring is empty.
func (r *Ring) Pop() (instrument.ParamEvent, bool) {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)

	if head == tail {
		return instrument.ParamEvent{}, false
	}

	ev := r.buf[head&mask]
	atomic.StoreUint64(&r.head, head+1)
	atomic.AddUint64(&r.pops, 1)
	return ev, true
}

// Drain pops every currently available entry in order, invoking fn for
// each. Safe to call once per block from the ring's single consumer.
func (r *Ring) Drain(fn func(instrument.ParamEvent)) {
	for {
		ev, ok := r.Pop()
		if !ok {
			return
		}
		fn(ev)
	}
}

// Len reports the number of unread entries. Approximate under
// concurrent Push/Pop, exact when called from the consumer between
// Drain calls.
func (r *Ring) Len() int {
	return int(atomic.LoadUint64(&r.tail) - atomic.LoadUint64(&r.head))
}

// Diagnostics reports lifetime push/pop/overwrite counts, for the
// same kind of health logging the teacher's event pool exposes.
type Diagnostics struct {
	Pushes     uint64
	Pops       uint64
	Overwrites uint64
}

// GetDiagnostics returns the ring's lifetime counters.
func (r *Ring) GetDiagnostics() Diagnostics {
	return Diagnostics{
		Pushes:     atomic.LoadUint64(&r.pushes),
		Pops:       atomic.LoadUint64(&r.pops),
		Overwrites: atomic.LoadUint64(&r.overwrites),
	}
}

package param

import (
	"math"
	"sync"
	"sync/atomic"
)

// ChangeListener is called whenever a parameter's stored value changes,
// including changes written by the audio thread itself (e.g. the
// vibrato-preset cross-write). The gui mirror and the host output-event
// path both register listeners here.
type ChangeListener func(globalID uint32, value float64)

// entry is one managed parameter: its static descriptor plus an
// atomically-stored current value.
type entry struct {
	desc  Descriptor
	value int64 // atomic float64 bits
}

func (e *entry) load() float64 {
	return math.Float64frombits(uint64(atomic.LoadInt64(&e.value)))
}

func (e *entry) store(v float64) {
	atomic.StoreInt64(&e.value, int64(math.Float64bits(v)))
}

// VibratoPreset is one row of the vibrato preset table referenced by
// spec section 4.1's cross-parameter linkage.
type VibratoPreset struct {
	Name  string
	Depth float64
	Speed float64
	Delay float64
	Type  float64
}

// vibratoLink binds a preset-selector parameter to the four derived
// parameters it writes, and back.
type vibratoLink struct {
	presetID                       uint32
	depthID, speedID, delayID, typeID uint32
	presets                        []VibratoPreset
	customIndex                    int
	inLinkage                      bool // single-level recursion guard
}

// Manager owns the live values of every registered parameter. Only the
// audio thread writes through Manager.Set in the realtime path; the gui
// thread reads via Get/GetInfo and writes by pushing a ParamEvent onto
// the gui->audio queue (see pkg/queue), never directly into the
// Manager, per spec section 5's shared-resource policy.
type Manager struct {
	mu         sync.RWMutex
	byGlobalID map[uint32]*entry
	order      []uint32
	byStringID map[StringID]uint32

	listenersMu sync.Mutex
	listeners   []ChangeListener

	vibrato *vibratoLink
}

// NewManager creates an empty parameter manager.
func NewManager() *Manager {
	return &Manager{
		byGlobalID: make(map[uint32]*entry),
		byStringID: make(map[StringID]uint32),
	}
}

// Register adds a parameter under the given global id. Registration
// only happens at Instrument construction time, never from the audio
// thread.
func (m *Manager) Register(globalID uint32, desc Descriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byGlobalID[globalID]; exists {
		return ErrParamExists
	}
	e := &entry{desc: desc}
	e.store(desc.Default)
	m.byGlobalID[globalID] = e
	m.order = append(m.order, globalID)
	m.byStringID[desc.StringID] = globalID
	return nil
}

// RegisterTable registers every descriptor in a Table under sequential
// local indices within module.
func (m *Manager) RegisterTable(module Module, t Table) error {
	for i := 0; i < t.Count(); i++ {
		if err := m.Register(GlobalID(module, uint16(i)), t.ByIndex(i)); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of registered parameters.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// InfoByIndex returns the (global id, descriptor) pair at registration
// order index i, used for the host's "info by index" API.
func (m *Manager) InfoByIndex(i int) (uint32, Descriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.order) {
		return 0, Descriptor{}, false
	}
	id := m.order[i]
	return id, m.byGlobalID[id].desc, true
}

// Info looks up a descriptor by global id.
func (m *Manager) Info(globalID uint32) (Descriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.byGlobalID[globalID]
	if !ok {
		return Descriptor{}, false
	}
	return e.desc, true
}

// InfoByStringID looks up a descriptor by its persisted string id, used
// by the state codec loader.
func (m *Manager) InfoByStringID(id StringID) (uint32, Descriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	globalID, ok := m.byStringID[id]
	if !ok {
		return 0, Descriptor{}, false
	}
	return globalID, m.byGlobalID[globalID].desc, true
}

// Get returns the current value of a parameter, or 0 if unknown (an
// absent lookup per spec section 7's InvalidParam handling).
func (m *Manager) Get(globalID uint32) (float64, bool) {
	m.mu.RLock()
	e, ok := m.byGlobalID[globalID]
	m.mu.RUnlock()
	if !ok {
		return 0, false
	}
	return e.load(), true
}

// clampAndQuantize applies the per-kind clamping rule from spec section
// 4.1: stepped params round to nearest integer then clamp; enum params
// clamp to [0, max]; real params clamp to range. NaN is rejected
// (ErrValueNotFinite); +Inf and -Inf clamp to Max and Min.
func clampAndQuantize(d Descriptor, value float64) (float64, error) {
	if math.IsNaN(value) {
		return 0, ErrValueNotFinite
	}
	if math.IsInf(value, 0) {
		if value > 0 {
			value = d.Max
		} else {
			value = d.Min
		}
		return value, nil
	}
	if d.Flags&FlagEnum != 0 {
		value = math.Round(value)
		return clampRange(value, 0, d.Max), nil
	}
	if d.Flags&FlagStepped != 0 {
		value = math.Round(value)
	}
	return clampRange(value, d.Min, d.Max), nil
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Set stores a new value for globalID, clamping/quantizing per the
// parameter's kind and flags, then notifies listeners (the gui mirror
// and the host output-event sink) with the clamped value so they stay
// consistent with storage even when the caller's value was out of
// range. Setting an unknown parameter is a no-op error, never a panic.
func (m *Manager) Set(globalID uint32, value float64) (clamped float64, err error) {
	m.mu.RLock()
	e, ok := m.byGlobalID[globalID]
	m.mu.RUnlock()
	if !ok {
		return 0, ErrUnknownParam
	}

	clamped, err = clampAndQuantize(e.desc, value)
	if err != nil {
		return 0, err
	}
	e.store(clamped)
	m.notify(globalID, clamped)
	m.applyVibratoLinkage(globalID, clamped)
	return clamped, nil
}

// AddListener registers a callback invoked on every successful Set,
// including ones generated internally by vibrato linkage.
func (m *Manager) AddListener(l ChangeListener) {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	m.listeners = append(m.listeners, l)
}

func (m *Manager) notify(globalID uint32, value float64) {
	m.listenersMu.Lock()
	ls := make([]ChangeListener, len(m.listeners))
	copy(ls, m.listeners)
	m.listenersMu.Unlock()
	for _, l := range ls {
		l(globalID, value)
	}
}

// ForEach visits every registered parameter in registration order.
func (m *Manager) ForEach(fn func(globalID uint32, desc Descriptor, value float64)) {
	m.mu.RLock()
	ids := append([]uint32(nil), m.order...)
	m.mu.RUnlock()
	for _, id := range ids {
		m.mu.RLock()
		e := m.byGlobalID[id]
		m.mu.RUnlock()
		fn(id, e.desc, e.load())
	}
}

// RegisterVibratoLink wires the vibrato-preset cross-parameter linkage:
// setting presetID to a non-custom index writes depth/speed/delay/type;
// setting any of those four directly switches presetID to customIndex,
// when the current preset isn't already custom. Guarded against
// recursion by a single-level flag, per spec section 4.1.
func (m *Manager) RegisterVibratoLink(presetID, depthID, speedID, delayID, typeID uint32, presets []VibratoPreset, customIndex int) {
	m.vibrato = &vibratoLink{
		presetID: presetID, depthID: depthID, speedID: speedID, delayID: delayID, typeID: typeID,
		presets: presets, customIndex: customIndex,
	}
}

func (m *Manager) applyVibratoLinkage(changedID uint32, value float64) {
	v := m.vibrato
	if v == nil || v.inLinkage {
		return
	}

	switch changedID {
	case v.presetID:
		idx := int(math.Round(value))
		if idx == v.customIndex || idx < 0 || idx >= len(v.presets) {
			return
		}
		p := v.presets[idx]
		v.inLinkage = true
		m.Set(v.depthID, p.Depth)
		m.Set(v.speedID, p.Speed)
		m.Set(v.delayID, p.Delay)
		m.Set(v.typeID, p.Type)
		v.inLinkage = false

	case v.depthID, v.speedID, v.delayID, v.typeID:
		current, ok := m.Get(v.presetID)
		if !ok || int(math.Round(current)) == v.customIndex {
			return
		}
		v.inLinkage = true
		m.Set(v.presetID, float64(v.customIndex))
		v.inLinkage = false
	}
}

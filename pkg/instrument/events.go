package instrument

// ParamEventKind distinguishes the gui<->audio bridge messages an
// instrument's parameter queue carries.
type ParamEventKind uint8

const (
	// ParamChange sets a parameter to an absolute value.
	ParamChange ParamEventKind = iota
	// ParamGestureBegin/End bracket a UI drag, so the host can group the
	// resulting automation into one gesture instead of many tiny ones.
	ParamGestureBegin
	ParamGestureEnd
	// EnvelopeAdd appends a new envelope binding.
	EnvelopeAdd
	// EnvelopeModify replaces the preset/speed of an existing binding.
	EnvelopeModify
	// EnvelopeRemove deletes a binding by index.
	EnvelopeRemove
)

// ParamEvent is one gui<->audio bridge message: a parameter change, a
// gesture boundary, or an envelope-list edit, tagged by the packed
// global parameter id it targets (module<<16 | local index).
type ParamEvent struct {
	Kind       ParamEventKind
	ParamID    uint32
	Value      float64
	EnvelopeIx int // index into the instrument's envelope list, for Envelope* kinds
}

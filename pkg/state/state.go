// Package state implements the little-endian versioned save format: a
// save-format version, a synth version triple, an instrument type tag,
// a parameter record list keyed by each parameter's persisted 8-byte
// string id, and an envelope binding list. Loading is strict: any
// version or instrument-type mismatch aborts the whole load and
// leaves the caller's prior state untouched.
package state

import (
	"errors"
	"io"

	"github.com/bbxsynth/chipvoice/pkg/envelope"
	"github.com/bbxsynth/chipvoice/pkg/instrument"
	"github.com/bbxsynth/chipvoice/pkg/param"
	"github.com/bbxsynth/chipvoice/pkg/synth"
)

// CurrentSaveVersion is the save-format version this codec writes.
const CurrentSaveVersion uint32 = 0

// Common state errors.
var (
	ErrSaveVersionMismatch = errors.New("state: save format version mismatch")
	ErrSynthVersionMismatch = errors.New("state: synth version mismatch")
	ErrInstrumentTypeMismatch = errors.New("state: instrument type mismatch")
	ErrUnknownParameter     = errors.New("state: unknown parameter string id")
)

// SynthVersion is the three-part version stamped into every save,
// compared for strict equality on load (no format migration: an
// older or newer synth version is rejected outright).
type SynthVersion struct {
	Major, Minor, Revision uint32
}

// EnvelopeRecord is one persisted envelope binding: its target index
// and curve preset. Speed isn't persisted; a loaded binding always
// gets the default speed of 1.0, matching a freshly-added binding.
type EnvelopeRecord struct {
	Target synth.ModTarget
	Preset envelope.Preset
}

// Codec saves and loads an instrument's parameters and envelope list
// against a fixed synth version and instrument type.
type Codec struct {
	SynthVersion   SynthVersion
	InstrumentType instrument.Type
}

// NewCodec creates a codec stamping and checking the given synth
// version and instrument type.
func NewCodec(v SynthVersion, t instrument.Type) *Codec {
	return &Codec{SynthVersion: v, InstrumentType: t}
}

// Save writes every parameter currently held by params, in
// registration order, followed by the envelope list.
func (c *Codec) Save(w io.Writer, params *param.Manager, envelopes []synth.EnvelopeBinding) error {
	out := NewOutputStream(w)

	if err := out.WriteUint32(CurrentSaveVersion); err != nil {
		return err
	}
	if err := out.WriteUint32(c.SynthVersion.Major); err != nil {
		return err
	}
	if err := out.WriteUint32(c.SynthVersion.Minor); err != nil {
		return err
	}
	if err := out.WriteUint32(c.SynthVersion.Revision); err != nil {
		return err
	}
	if err := out.WriteUint8(uint8(c.InstrumentType)); err != nil {
		return err
	}

	count := params.Count()
	if err := out.WriteUint32(uint32(count)); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		globalID, desc, ok := params.InfoByIndex(i)
		if !ok {
			continue
		}
		value, _ := params.Get(globalID)
		if err := out.WriteBytes(desc.StringID[:]); err != nil {
			return err
		}
		if err := out.WriteFloat64(value); err != nil {
			return err
		}
	}

	if err := out.WriteUint8(uint8(len(envelopes))); err != nil {
		return err
	}
	for _, e := range envelopes {
		if err := out.WriteUint32(uint32(e.Target)); err != nil {
			return err
		}
		if err := out.WriteUint8(uint8(e.Preset)); err != nil {
			return err
		}
	}

	return out.Error()
}

// Load reads a save written by Save, applying every parameter value
// through the normal Set path (so it is clamped and triggers the
// same listeners a live edit would) and returning the reconstructed
// envelope list. On any error the returned envelope list is nil and
// params is left exactly as partially-written as the point of
// failure; callers implementing the "abort, preserve pre-load state"
// policy should snapshot params before calling Load and restore the
// snapshot on error.
func (c *Codec) Load(r io.Reader, params *param.Manager) ([]synth.EnvelopeBinding, error) {
	in := NewInputStream(r)

	saveVersion, err := in.ReadUint32()
	if err != nil {
		return nil, err
	}
	if saveVersion != CurrentSaveVersion {
		return nil, ErrSaveVersionMismatch
	}

	major, err := in.ReadUint32()
	if err != nil {
		return nil, err
	}
	minor, err := in.ReadUint32()
	if err != nil {
		return nil, err
	}
	revision, err := in.ReadUint32()
	if err != nil {
		return nil, err
	}
	if major != c.SynthVersion.Major || minor != c.SynthVersion.Minor || revision != c.SynthVersion.Revision {
		return nil, ErrSynthVersionMismatch
	}

	typeTag, err := in.ReadUint8()
	if err != nil {
		return nil, err
	}
	if instrument.Type(typeTag) != c.InstrumentType {
		return nil, ErrInstrumentTypeMismatch
	}

	count, err := in.ReadUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		idBytes, err := in.ReadBytes(8)
		if err != nil {
			return nil, err
		}
		var sid param.StringID
		copy(sid[:], idBytes)

		value, err := in.ReadFloat64()
		if err != nil {
			return nil, err
		}

		globalID, _, ok := params.InfoByStringID(sid)
		if !ok {
			return nil, ErrUnknownParameter
		}
		if _, err := params.Set(globalID, value); err != nil {
			return nil, err
		}
	}

	envelopeCount, err := in.ReadUint8()
	if err != nil {
		return nil, err
	}
	envelopes := make([]synth.EnvelopeBinding, 0, envelopeCount)
	for i := uint8(0); i < envelopeCount; i++ {
		target, err := in.ReadUint32()
		if err != nil {
			return nil, err
		}
		preset, err := in.ReadUint8()
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, synth.EnvelopeBinding{
			Target: synth.ModTarget(target),
			Preset: envelope.Preset(preset),
			Speed:  1.0,
		})
	}

	return envelopes, in.Error()
}

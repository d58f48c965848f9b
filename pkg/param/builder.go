package param

// Builder provides a fluent interface for constructing Descriptors,
// mirroring the teacher's original parameter builder but targeting the
// spec's Descriptor shape (string id, kind, group, enum labels).
type Builder struct {
	d   Descriptor
	err error
}

// NewBuilder starts a descriptor for the given stable string id.
func NewBuilder(stringID, name string) *Builder {
	return &Builder{
		d: Descriptor{
			StringID: NewStringID(stringID),
			Name:     name,
			Kind:     KindReal,
			Min:      0.0,
			Max:      1.0,
			Default:  0.5,
			Flags:    FlagAutomatable,
		},
	}
}

func (b *Builder) Group(group string) *Builder {
	if b.err == nil {
		b.d.Group = group
	}
	return b
}

func (b *Builder) Kind(k Kind) *Builder {
	if b.err == nil {
		b.d.Kind = k
	}
	return b
}

func (b *Builder) Range(min, max, def float64) *Builder {
	if b.err != nil {
		return b
	}
	if min >= max {
		b.err = ErrDescriptorInvalid
		return b
	}
	b.d.Min, b.d.Max, b.d.Default = min, max, def
	return b
}

func (b *Builder) Flags(f Flag) *Builder {
	if b.err == nil {
		b.d.Flags = f
	}
	return b
}

func (b *Builder) AddFlags(f Flag) *Builder {
	if b.err == nil {
		b.d.Flags |= f
	}
	return b
}

func (b *Builder) Stepped() *Builder { return b.AddFlags(FlagStepped) }

// Enum marks the parameter as enumerated with the given labels; Max is
// set to len(labels)-1 and Kind to KindInt.
func (b *Builder) Enum(labels ...string) *Builder {
	if b.err != nil {
		return b
	}
	if len(labels) == 0 {
		b.err = ErrDescriptorInvalid
		return b
	}
	b.d.Kind = KindInt
	b.d.Flags |= FlagEnum | FlagStepped
	b.d.Max = float64(len(labels) - 1)
	b.d.EnumLabels = labels
	return b
}

// Build finalizes the descriptor, validating ranges and enum tables.
func (b *Builder) Build() (Descriptor, error) {
	if b.err != nil {
		return Descriptor{}, b.err
	}
	if err := b.d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return b.d, nil
}

// MustBuild builds or panics; used for package-level static tables that
// are constructed once at init time and must never fail.
func (b *Builder) MustBuild() Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

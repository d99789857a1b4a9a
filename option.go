package nswitch

// Option is the contract for every kind of option slot.  Kinds hold a
// raw (textual) value and compute their typed value from it.
//
// New kinds are written by embedding Base and implementing Set:
//
//	type DurationOption struct {
//		nswitch.Base
//	}
//
//	func (o *DurationOption) Set(raw string) error {
//		if _, err := time.ParseDuration(raw); err != nil {
//			return nswitch.InvalidOptionValue(err, "%s is not a duration", raw)
//		}
//		o.SetRaw(raw)
//		return nil
//	}
//
// Kinds that can be given without a value, like BoolOption, report
// IsBoolFlag() == true.  Kinds that want default metadata (for example
// a default name) implement DefaultMeta() Meta.
type Option interface {
	// Set stores a raw value.  If the value isn't acceptable for the kind,
	// Set must return an error and leave the option unchanged.
	Set(raw string) error
	// Raw returns the raw value and whether there is one
	Raw() (string, bool)
	// IsDefined reports if the option was set on the command line.
	IsDefined() bool
	base() *Base
}

// Getter is an Option that can return its typed value.  Options must be
// Getters to use Meta.Validate.
type Getter interface {
	Option
	Get() any
}

type hasIsBool interface {
	IsBoolFlag() bool
}

type hasDefaultMeta interface {
	DefaultMeta() Meta
}

type resetter interface {
	reset()
}

// Base holds the state common to all option kinds.  It is meant to be
// embedded.
type Base struct {
	meta    Meta
	raw     *string
	defined bool
}

func (b *Base) base() *Base { return b }

// Raw returns the raw value.  The boolean is false if there is no raw value.
func (b *Base) Raw() (string, bool) {
	if b.raw == nil {
		return "", false
	}
	return *b.raw, true
}

// SetRaw stores a raw value without validation.  Kinds call it from Set once
// they have accepted the value.
func (b *Base) SetRaw(raw string) {
	b.raw = &raw
}

func (b *Base) IsDefined() bool { return b.defined }

// Meta returns the merged metadata the option was bound with.
func (b *Base) Meta() Meta { return b.meta }

// Name is a shortcut for Meta().Name
func (b *Base) Name() string { return b.meta.Name }

func (b *Base) clear() {
	b.raw = nil
	b.defined = false
}

func isBoolKind(o Option) bool {
	if ib, ok := o.(hasIsBool); ok {
		return ib.IsBoolFlag()
	}
	return false
}

package nswitch

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IntOption holds a base-10 integer.  Any text is accepted when set;
// Value is 0 if the raw value doesn't parse.
type IntOption struct {
	Base
}

var _ Getter = &IntOption{}

func (o *IntOption) Set(raw string) error {
	o.SetRaw(raw)
	return nil
}

func (o *IntOption) Value() int {
	raw, _ := o.Raw()
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return i
}

func (o *IntOption) Get() any { return o.Value() }

// BoolOption holds a boolean.  On the command line it can be given alone
// ("-v") or followed by a value ("-v false").
//
// The value is true only for "true", in any case.  Any other text is
// accepted and reads as false.
//
// Unlike other kinds, a BoolOption is defined only when its value is true.
type BoolOption struct {
	Base
}

var _ Getter = &BoolOption{}

func (o *BoolOption) Set(raw string) error {
	o.SetRaw(raw)
	return nil
}

func (o *BoolOption) Value() bool {
	raw, _ := o.Raw()
	return strings.EqualFold(raw, boolTrue)
}

func (o *BoolOption) IsDefined() bool { return o.Value() }
func (o *BoolOption) IsBoolFlag() bool { return true }
func (o *BoolOption) Get() any         { return o.Value() }

// StringOption holds its raw value verbatim.
type StringOption struct {
	Base
}

var _ Getter = &StringOption{}

func (o *StringOption) Set(raw string) error {
	o.SetRaw(raw)
	return nil
}

func (o *StringOption) Value() string {
	raw, _ := o.Raw()
	return raw
}

func (o *StringOption) Get() any { return o.Value() }

// PathOption is a StringOption that names a file system path.
type PathOption struct {
	StringOption
}

func (o *PathOption) Path() string { return o.Value() }

// GUIDOption holds a UUID.  Values that don't parse are rejected.
type GUIDOption struct {
	Base
}

var _ Getter = &GUIDOption{}

func (o *GUIDOption) Set(raw string) error {
	if _, err := uuid.Parse(raw); err != nil {
		return InvalidOptionValue(err, "%s is not a valid GUID", raw)
	}
	o.SetRaw(raw)
	return nil
}

// Value returns the UUID or uuid.Nil if there isn't one
func (o *GUIDOption) Value() uuid.UUID {
	raw, ok := o.Raw()
	if !ok {
		return uuid.Nil
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return u
}

func (o *GUIDOption) Get() any { return o.Value() }

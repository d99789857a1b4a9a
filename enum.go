package nswitch

import (
	"strings"

	"github.com/pkg/errors"
)

// EnumConstant pairs the name of an enum constant with its value.
type EnumConstant[E comparable] struct {
	Name  string
	Value E
}

// Const is a shortcut for building an EnumConstant
func Const[E comparable](name string, value E) EnumConstant[E] {
	return EnumConstant[E]{Name: name, Value: value}
}

// EnumType describes the constants of an enumeration so that they can be
// matched by name.  Go has no way to list the constants of a type so
// they must be given explicitly:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//	)
//
//	var ColorType = nswitch.NewEnumType("Color",
//		nswitch.Const("Red", Red),
//		nswitch.Const("Green", Green))
//
// The name of the EnumType also identifies the switch group of
// SwitchOptions and CommandOptions that use it.
type EnumType[E comparable] struct {
	name      string
	constants []EnumConstant[E]
}

// NewEnumType panics if a constant name is used twice (ignoring case)
// since such an enum can't be parsed.
func NewEnumType[E comparable](name string, constants ...EnumConstant[E]) *EnumType[E] {
	seen := make(map[string]struct{})
	for _, c := range constants {
		l := strings.ToLower(c.Name)
		if _, ok := seen[l]; ok {
			panic(DeclarationError(errors.Errorf("enum %s: constant %s is defined more than once", name, c.Name)).Error())
		}
		seen[l] = struct{}{}
	}
	return &EnumType[E]{
		name:      name,
		constants: constants,
	}
}

func (t *EnumType[E]) Name() string { return t.name }

// Names returns the constant names in declaration order
func (t *EnumType[E]) Names() []string {
	names := make([]string, len(t.constants))
	for i, c := range t.constants {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a constant by name, ignoring case.
func (t *EnumType[E]) Lookup(name string) (EnumConstant[E], bool) {
	for _, c := range t.constants {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return EnumConstant[E]{}, false
}

// NameOf returns the name of the constant with the given value
func (t *EnumType[E]) NameOf(value E) (string, bool) {
	for _, c := range t.constants {
		if c.Value == value {
			return c.Name, true
		}
	}
	return "", false
}

// Parse is Lookup returning the value.  The zero value of E is
// returned when there is no match.
func (t *EnumType[E]) Parse(name string) (E, bool) {
	c, ok := t.Lookup(name)
	return c.Value, ok
}

func (t *EnumType[E]) check(raw string) error {
	if _, ok := t.Lookup(raw); ok {
		return nil
	}
	return InvalidOptionValue(nil, "accepted values are: %s", quotedList(t.Names()))
}

// EnumOption holds one of the constants of an EnumType.  Names are
// matched without regard to case.
type EnumOption[E comparable] struct {
	Base
	enum *EnumType[E]
}

var _ Getter = &EnumOption[int]{}

// NewEnumOption creates an option for an enum.  Enum() is the usual way
// to create and declare one.
func NewEnumOption[E comparable](t *EnumType[E]) *EnumOption[E] {
	return &EnumOption[E]{enum: t}
}

func (o *EnumOption[E]) Type() *EnumType[E] { return o.enum }

func (o *EnumOption[E]) Set(raw string) error {
	if err := o.enum.check(raw); err != nil {
		return err
	}
	o.SetRaw(raw)
	return nil
}

// Value returns the selected constant or the zero value of E
func (o *EnumOption[E]) Value() E {
	raw, _ := o.Raw()
	v, _ := o.enum.Parse(raw)
	return v
}

func (o *EnumOption[E]) Get() any { return o.Value() }

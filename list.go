package nswitch

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mohae/deepcopy"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

const listSeparator = ","

// ListOption holds a comma separated list of T.  The whole list is set
// at once: if any element fails to parse, nothing is stored.
type ListOption[T any] struct {
	Base
	parse  func(string) (T, error)
	values []T
}

var _ Getter = &ListOption[int]{}

// NewListOption creates a list option whose elements are parsed with
// parse.  When parse is nil, elements are parsed the same way as
// reflectutils.MakeStringSetter would: that covers numbers, strings,
// booleans, durations and anything that implements encoding.TextUnmarshaler.
func NewListOption[T any](parse func(string) (T, error)) *ListOption[T] {
	return &ListOption[T]{parse: parse}
}

func (o *ListOption[T]) elementParser() (func(string) (T, error), error) {
	if o.parse != nil {
		return o.parse, nil
	}
	var zero T
	setter, err := reflectutils.MakeStringSetter(reflect.TypeOf(&zero).Elem())
	if err != nil {
		return nil, DeclarationError(errors.Wrapf(err, "list of %T", zero))
	}
	o.parse = func(s string) (T, error) {
		var t T
		err := setter(reflect.ValueOf(&t).Elem(), s)
		return t, err
	}
	return o.parse, nil
}

func (o *ListOption[T]) checkMeta(Meta) error {
	_, err := o.elementParser()
	return err
}

func (o *ListOption[T]) Set(raw string) error {
	parse, err := o.elementParser()
	if err != nil {
		return err
	}
	pieces := strings.Split(raw, listSeparator)
	values := make([]T, 0, len(pieces))
	for _, piece := range pieces {
		v, err := parse(piece)
		if err != nil {
			return InvalidOptionValue(err, "invalid value %s for type %s", piece, typeName[T]())
		}
		values = append(values, v)
	}
	o.values = values
	return nil
}

// Raw is the comma-joined textual form of the elements
func (o *ListOption[T]) Raw() (string, bool) {
	if o.values == nil {
		return "", false
	}
	s := make([]string, len(o.values))
	for i, v := range o.values {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, listSeparator), true
}

// Value returns a copy of the list, nil if it was never set
func (o *ListOption[T]) Value() []T {
	if o.values == nil {
		return nil
	}
	return deepcopy.Copy(o.values).([]T)
}

func (o *ListOption[T]) Get() any { return o.Value() }

func (o *ListOption[T]) reset() {
	o.values = nil
}

func typeName[T any]() string {
	var zero T
	return reflect.TypeOf(&zero).Elem().String()
}

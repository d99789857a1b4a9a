package nswitch

import (
	"github.com/AlekSi/pointer"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

const (
	// DefaultIndex is the display position of options that don't set one.
	DefaultIndex = 998
	// HelpIndex is the display position of the implicit help option.
	HelpIndex = 999
)

// Meta is the metadata declared for an option slot.  Optional fields
// are pointers so that an unset field can be told apart from an empty
// one: when metadata is merged, only fields that are set override.
//
//	p.Add(&opt, nswitch.Meta{
//		Name:      "--int-option",
//		ShortName: pointer.ToString("-i"),
//		Default:   pointer.ToString("3"),
//	})
type Meta struct {
	Name        string  // the primary token, eg "--output"
	ShortName   *string // an alternate token, eg "-o"
	Description *string
	Required    bool
	Default     *string // initial raw value
	EnumValue   *string // the enum constant that a switch or command stands for
	Index       *int    // display order in usage text, DefaultIndex if unset
	Validate    string  // validator rule(s) applied to the typed value, eg "min=1,max=9"
}

// Merge returns m with every field that is set in over replaced.
func (m Meta) Merge(over Meta) Meta {
	if over.Name != "" {
		m.Name = over.Name
	}
	if over.ShortName != nil {
		m.ShortName = over.ShortName
	}
	if over.Description != nil {
		m.Description = over.Description
	}
	if over.Required {
		m.Required = true
	}
	if over.Default != nil {
		m.Default = over.Default
	}
	if over.EnumValue != nil {
		m.EnumValue = over.EnumValue
	}
	if over.Index != nil {
		m.Index = over.Index
	}
	if over.Validate != "" {
		m.Validate = over.Validate
	}
	return m
}

func (m Meta) index() int {
	if m.Index == nil {
		return DefaultIndex
	}
	return *m.Index
}

func (m Meta) shortName() string   { return pointer.GetString(m.ShortName) }
func (m Meta) description() string { return pointer.GetString(m.Description) }
func (m Meta) enumValue() string   { return pointer.GetString(m.EnumValue) }

// matches reports if token is the name or short name
func (m Meta) matches(token string) bool {
	return token == m.Name || (m.ShortName != nil && token == *m.ShortName)
}

type metaTag struct {
	Names       []string `pt:"0,split=space"`
	Required    bool     `pt:"required"`
	Default     *string  `pt:"default"`
	Enum        *string  `pt:"enum"`
	Index       *int     `pt:"index"`
	Description *string  `pt:"desc"`
}

// ParseMeta builds Meta from a compact declaration in the same format
// as a struct tag value:
//
//	"--int-option -i,required,default=3,index=2,desc=how many"
//
// The first element is the name optionally followed by a space and the
// short name.  Values can't contain commas.
func ParseMeta(decl string) (Meta, error) {
	var t metaTag
	err := reflectutils.Tag{
		Tag:   "nswitch",
		Value: decl,
	}.Fill(&t)
	if err != nil {
		return Meta{}, DeclarationError(errors.Wrapf(err, "parse %q", decl))
	}
	m := Meta{
		Required:    t.Required,
		Default:     t.Default,
		EnumValue:   t.Enum,
		Index:       t.Index,
		Description: t.Description,
	}
	switch len(t.Names) {
	case 0:
	case 1:
		m.Name = t.Names[0]
	case 2:
		m.Name = t.Names[0]
		m.ShortName = pointer.ToString(t.Names[1])
	default:
		return Meta{}, DeclarationError(errors.Errorf("parse %q: at most a name and a short name can be given", decl))
	}
	return m, nil
}

// MustParseMeta is ParseMeta for declarations known to be well formed.
func MustParseMeta(decl string) Meta {
	m, err := ParseMeta(decl)
	if err != nil {
		panic(err.Error())
	}
	return m
}

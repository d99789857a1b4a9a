package nswitch

import (
	"github.com/AlekSi/pointer"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// SwitchGroups tracks which value has been selected in each switch
// group during one parse.  A Parser owns one and resets it at the start
// of every Parse.
//
// SwitchGroups is not safe for concurrent use.  Parsers that are used
// from more than one goroutine need external locking.
type SwitchGroups struct {
	selected map[string]string
}

func NewSwitchGroups() *SwitchGroups {
	return &SwitchGroups{
		selected: make(map[string]string),
	}
}

// Reset forgets all selections
func (g *SwitchGroups) Reset() {
	g.selected = make(map[string]string)
}

// Selected returns the raw value selected for a group
func (g *SwitchGroups) Selected(group string) (string, bool) {
	if g == nil {
		return "", false
	}
	raw, ok := g.selected[group]
	return raw, ok
}

func (g *SwitchGroups) selectValue(group string, raw string) error {
	if prior, ok := g.selected[group]; ok {
		return InvalidOptionValue(ErrSwitchGroupTaken,
			"only one value may be selected for switch group %s (%s already selected)", group, prior)
	}
	g.selected[group] = raw
	return nil
}

// Selected returns the constant selected by the switch group named after
// the enum type, or the zero value if nothing has been selected.
func (t *EnumType[E]) Selected(g *SwitchGroups) E {
	return t.SelectedIn(g, t.name)
}

// SelectedIn is Selected for switches that were moved to another
// group with InGroup.
func (t *EnumType[E]) SelectedIn(g *SwitchGroups, group string) E {
	raw, _ := g.Selected(group)
	v, _ := t.Parse(raw)
	return v
}

type switchKind interface {
	Option
	attach(*SwitchGroups)
	isCommand() bool
}

// SwitchOption is a member of a switch group: a set of options that
// share one enum type where at most one can be selected per parse.
// A switch takes no argument on the command line; selecting it
// selects its enum constant.
//
//	dry := nswitch.Switch(p, ModeType, DryRun, nswitch.Meta{})   // --dry-run
//	live := nswitch.Switch(p, ModeType, Live, nswitch.Meta{})    // --live
//
// By default, the name of a switch is derived from its constant: DryRun
// becomes "--dry-run".
type SwitchOption[E comparable] struct {
	Base
	enum     *EnumType[E]
	constant string
	group    string
	groups   *SwitchGroups
	command  bool
}

var (
	_ Getter     = &SwitchOption[int]{}
	_ switchKind = &SwitchOption[int]{}
)

// NewSwitchOption creates a switch for one constant of an enum type.  It
// panics if value is not one of the constants.
func NewSwitchOption[E comparable](t *EnumType[E], value E) *SwitchOption[E] {
	name, ok := t.NameOf(value)
	if !ok {
		panic(DeclarationError(errors.Errorf("switch for enum %s: %v is not a constant", t.name, value)).Error())
	}
	return &SwitchOption[E]{
		enum:     t,
		constant: name,
		group:    t.name,
	}
}

// InGroup moves the switch to a differently named switch group.  Use it
// when one enum type backs more than one independent group.
func (o *SwitchOption[E]) InGroup(group string) *SwitchOption[E] {
	o.group = group
	return o
}

func (o *SwitchOption[E]) Group() string { return o.group }

func (o *SwitchOption[E]) DefaultMeta() Meta {
	name := xstrings.ToKebabCase(o.constant)
	if !o.command {
		name = "--" + name
	}
	return Meta{
		Name:      name,
		EnumValue: pointer.ToString(o.constant),
	}
}

func (o *SwitchOption[E]) checkMeta(m Meta) error {
	if m.Default != nil {
		return errors.Errorf("%s: switches cannot have a default value", m.Name)
	}
	if _, ok := o.enum.Lookup(m.enumValue()); !ok {
		return errors.Errorf("%s: enum value %q is not one of %s", m.Name, m.enumValue(), quotedList(o.enum.Names()))
	}
	return nil
}

func (o *SwitchOption[E]) attach(g *SwitchGroups) { o.groups = g }
func (o *SwitchOption[E]) isCommand() bool        { return o.command }

// Set selects raw for the switch's group.  It fails if anything in the
// group has already been selected.
func (o *SwitchOption[E]) Set(raw string) error {
	if err := o.enum.check(raw); err != nil {
		return err
	}
	if o.groups == nil {
		o.groups = NewSwitchGroups()
	}
	return o.groups.selectValue(o.group, raw)
}

// Raw returns the value selected for the group, which is not necessarily
// this switch's own constant.
func (o *SwitchOption[E]) Raw() (string, bool) {
	return o.groups.Selected(o.group)
}

// Value returns the constant selected in the group or the zero value
func (o *SwitchOption[E]) Value() E {
	raw, _ := o.Raw()
	v, _ := o.enum.Parse(raw)
	return v
}

func (o *SwitchOption[E]) Get() any { return o.Value() }

// CommandOption is a switch that ends option processing.  The tokens
// after a command are left in Remaining() for another parser.
//
//	type Cmd int
//	const (
//		Build Cmd = iota + 1
//		Test
//	)
//	var CmdType = nswitch.NewEnumType("Cmd", nswitch.Const("Build", Build), nswitch.Const("Test", Test))
//
//	nswitch.Command(p, CmdType, Build, nswitch.Meta{})   // "build"
//	nswitch.Command(p, CmdType, Test, nswitch.Meta{})    // "test"
//
// The default name of a command is its constant in kebab-case without
// leading dashes.
type CommandOption[E comparable] struct {
	SwitchOption[E]
}

// NewCommandOption creates a command for one constant of an enum type.
// It panics if value is not one of the constants.
func NewCommandOption[E comparable](t *EnumType[E], value E) *CommandOption[E] {
	c := &CommandOption[E]{
		SwitchOption: *NewSwitchOption(t, value),
	}
	c.command = true
	return c
}

package nswitch

import (
	"github.com/AlekSi/pointer"
	"github.com/go-playground/validator/v10"
	"github.com/muir/nject"
)

const (
	terminator = "--"
	helpName   = "--help"
	helpShort  = "/?"
	boolTrue   = "true"
)

// Parser turns command line tokens into values for the options declared
// on it.  Declare options with Add or the typed helpers, then call Parse.
//
//	p := nswitch.NewParser("copy", "copies things")
//	n := p.Int(nswitch.MustParseMeta("--count -n,default=1"))
//	v := p.Bool(nswitch.MustParseMeta("--verbose -v"))
//	if err := p.Parse(os.Args[1:]...); err != nil {
//		if nswitch.IsSyntaxError(err) {
//			_ = p.Usage(os.Stderr)
//		}
//		return err
//	}
//
// Every call to Parse starts over: values, selections in switch groups,
// processed options, and remaining arguments are all rebuilt.
//
// A Parser must not be used by more than one goroutine at a time.
type Parser struct {
	name        string
	description string
	copyright   string
	slots       []slot
	help        *BoolOption
	groups      *SwitchGroups
	validate    *validator.Validate
	usageWidth  int
	color       *bool
	onComplete  func(*Parser, []string) error
	delayedErr  error
	registry    *registry
}

type slot struct {
	opt      Option
	declared Meta
}

// ParserOpt is a functional argument for NewParser
type ParserOpt func(*Parser) error

// NewParser creates a parser.  The name and description are shown in
// the usage text.  Errors from opts are returned by Bind and Parse.
func NewParser(name string, description string, opts ...ParserOpt) *Parser {
	p := &Parser{
		name:        name,
		description: description,
		help:        &BoolOption{},
		groups:      NewSwitchGroups(),
	}
	for _, f := range opts {
		if err := f(p); err != nil && p.delayedErr == nil {
			p.delayedErr = err
		}
	}
	return p
}

// WithCopyright adds a copyright notice to the top of the usage text
func WithCopyright(copyright string) ParserOpt {
	return func(p *Parser) error {
		p.copyright = copyright
		return nil
	}
}

// WithValidator overrides the validator used for Meta.Validate rules.
// Use it to register custom validations.
func WithValidator(v *validator.Validate) ParserOpt {
	return func(p *Parser) error {
		p.validate = v
		return nil
	}
}

// WithUsageWidth sets the line width for the usage text.  Without it,
// the width of the terminal is used or 80 when not writing to a terminal.
func WithUsageWidth(width int) ParserOpt {
	return func(p *Parser) error {
		p.usageWidth = width
		return nil
	}
}

// WithColor forces highlighting in the usage text on or off.  By default,
// highlighting is used when writing to a terminal.
func WithColor(enabled bool) ParserOpt {
	return func(p *Parser) error {
		p.color = pointer.ToBool(enabled)
		return nil
	}
}

// OnComplete is called after a successful Parse.  The chain is an
// nject injection chain that can receive the *Parser and the remaining
// arguments ([]string).  The final function may return an error which
// is then returned by Parse.  Use it to hand the arguments after a
// command to the parser for that command:
//
//	p := nswitch.NewParser("tool", "", nswitch.OnComplete(func(p *nswitch.Parser, args []string) error {
//		switch CmdType.Selected(p.Switches()) {
//		case Build:
//			return buildParser.Parse(args...)
//		}
//		return nil
//	}))
func OnComplete(chain ...interface{}) ParserOpt {
	return func(p *Parser) error {
		return nject.Sequence("default-error-responder",
			nject.Provide("default-error", func() nject.TerminalError {
				return nil
			})).Append("on-complete", chain...).Bind(&p.onComplete, nil)
	}
}

func (p *Parser) Name() string        { return p.name }
func (p *Parser) Description() string { return p.description }

// Add declares an option slot.  Problems with the declaration are
// reported by Bind and Parse.
func (p *Parser) Add(opt Option, meta Meta) {
	p.slots = append(p.slots, slot{
		opt:      opt,
		declared: meta,
	})
}

// Help is the implicit "--help" ("/?") option
func (p *Parser) Help() *BoolOption { return p.help }

// HelpRequested is true if help was asked for in the last Parse
func (p *Parser) HelpRequested() bool { return p.help.IsDefined() }

// Switches returns the switch group selections of the last Parse
func (p *Parser) Switches() *SwitchGroups { return p.groups }

// Remaining returns the arguments that were not consumed as options or
// option values by the last Parse.
func (p *Parser) Remaining() []string {
	if p.registry == nil {
		return nil
	}
	return p.registry.arguments
}

// Processed returns the options consumed by the last Parse in the order
// they were found.
func (p *Parser) Processed() []Option {
	if p.registry == nil {
		return nil
	}
	return p.registry.processed
}

// Options returns every option, including the help option, in
// declaration order.
func (p *Parser) Options() []Option {
	opts := make([]Option, 0, len(p.slots)+1)
	for _, s := range p.slots {
		opts = append(opts, s.opt)
	}
	return append(opts, p.help)
}

func (p *Parser) Int(meta Meta) *IntOption {
	o := &IntOption{}
	p.Add(o, meta)
	return o
}

func (p *Parser) Bool(meta Meta) *BoolOption {
	o := &BoolOption{}
	p.Add(o, meta)
	return o
}

func (p *Parser) String(meta Meta) *StringOption {
	o := &StringOption{}
	p.Add(o, meta)
	return o
}

func (p *Parser) Path(meta Meta) *PathOption {
	o := &PathOption{}
	p.Add(o, meta)
	return o
}

func (p *Parser) GUID(meta Meta) *GUIDOption {
	o := &GUIDOption{}
	p.Add(o, meta)
	return o
}

// Enum declares an option that takes one of the constants of t
func Enum[E comparable](p *Parser, t *EnumType[E], meta Meta) *EnumOption[E] {
	o := NewEnumOption(t)
	p.Add(o, meta)
	return o
}

// List declares an option that takes a comma separated list.  See
// NewListOption for how elements are parsed when parse is nil.
func List[T any](p *Parser, parse func(string) (T, error), meta Meta) *ListOption[T] {
	o := NewListOption(parse)
	p.Add(o, meta)
	return o
}

// Switch declares a member of the switch group for t
func Switch[E comparable](p *Parser, t *EnumType[E], value E, meta Meta) *SwitchOption[E] {
	o := NewSwitchOption(t, value)
	p.Add(o, meta)
	return o
}

// Command declares a command: a switch that ends parsing
func Command[E comparable](p *Parser, t *EnumType[E], value E, meta Meta) *CommandOption[E] {
	o := NewCommandOption(t, value)
	p.Add(o, meta)
	return o
}

func (p *Parser) validator() *validator.Validate {
	if p.validate == nil {
		p.validate = validator.New()
	}
	return p.validate
}

package nswitch

import (
	"flag"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hue int

const (
	red hue = iota + 1
	green
	blue
)

var hueType = NewEnumType("hue", Const("Red", red), Const("Green", green), Const("Blue", blue))

type mode int

const (
	dryRun mode = iota + 1
	live
)

var modeType = NewEnumType("mode", Const("DryRun", dryRun), Const("Live", live))

type cmd int

const (
	command1 cmd = iota + 1
	command2
)

var cmdType = NewEnumType("cmd", Const("Command1", command1), Const("Command2", command2))

func TestParseEmpty(t *testing.T) {
	cases := []struct {
		name     string
		declare  func(p *Parser)
		args     []string
		required bool
	}{
		{
			name:    "nothing declared",
			declare: func(p *Parser) {},
		},
		{
			name: "optional only",
			declare: func(p *Parser) {
				p.Int(Meta{Name: "-i"})
				p.String(Meta{Name: "-s"})
			},
		},
		{
			name: "required",
			declare: func(p *Parser) {
				p.Int(Meta{Name: "-i", Required: true})
			},
			required: true,
		},
		{
			name: "required with help",
			declare: func(p *Parser) {
				p.Int(Meta{Name: "-i", Required: true})
			},
			args: []string{"--help"},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser("test", "")
			tc.declare(p)
			err := p.Parse(tc.args...)
			if tc.required {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingRequired), "kind")
				assert.True(t, IsSyntaxError(err), "syntax error")
				return
			}
			require.NoError(t, err)
			assert.Empty(t, p.Remaining())
		})
	}
}

func TestParseScalars(t *testing.T) {
	p := NewParser("test", "")
	i := p.Int(Meta{Name: "--int", ShortName: pointer.ToString("-i")})
	s := p.String(Meta{Name: "--string", ShortName: pointer.ToString("-s")})
	b := p.Bool(Meta{Name: "--bool", ShortName: pointer.ToString("-b")})
	g := p.GUID(Meta{Name: "--guid"})

	cases := []struct {
		args  []string
		opt   Getter
		value any
	}{
		{args: []string{"-i", "5"}, opt: i, value: 5},
		{args: []string{"--int", "-12"}, opt: i, value: -12},
		{args: []string{"-s", "hello"}, opt: s, value: "hello"},
		{args: []string{"--bool", "true"}, opt: b, value: true},
		{args: []string{"-b", "TRUE"}, opt: b, value: true},
		{args: []string{"--guid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, opt: g, value: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.args[0]+" "+tc.args[1], func(t *testing.T) {
			require.NoError(t, p.Parse(tc.args...))
			assert.True(t, tc.opt.IsDefined(), "defined")
			assert.Equal(t, tc.value, tc.opt.Get())
			raw, ok := tc.opt.Raw()
			assert.True(t, ok, "has raw")
			assert.Equal(t, tc.args[1], raw)
			assert.Equal(t, []Option{tc.opt}, p.Processed())
		})
	}
}

func TestLenientValues(t *testing.T) {
	p := NewParser("test", "")
	i := p.Int(Meta{Name: "-i"})
	b := p.Bool(Meta{Name: "-b"})
	require.NoError(t, p.Parse("-i", "many", "-b", "false"))
	assert.True(t, i.IsDefined(), "int is defined")
	assert.Equal(t, 0, i.Value(), "unparsable int")
	assert.False(t, b.Value(), "bool value")
	assert.False(t, b.IsDefined(), "bool is defined only when true")
	assert.Equal(t, []Option{i, b}, p.Processed())
}

func TestBoolText(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{raw: "true", want: true},
		{raw: "True", want: true},
		{raw: "TRUE", want: true},
		{raw: "false"},
		{raw: "1"},
		{raw: "t"},
		{raw: "T"},
		{raw: "yes"},
		{raw: ""},
	}
	p := NewParser("test", "")
	b := p.Bool(Meta{Name: "-b"})
	for _, tc := range cases {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			require.NoError(t, p.Parse("-b", tc.raw))
			assert.Equal(t, tc.want, b.Value(), "value")
			assert.Equal(t, tc.want, b.IsDefined(), "defined")
			raw, _ := b.Raw()
			assert.Equal(t, tc.raw, raw)
		})
	}
}

func TestBareBool(t *testing.T) {
	p := NewParser("test", "")
	b := p.Bool(Meta{Name: "--bool", ShortName: pointer.ToString("-b")})
	i := p.Int(Meta{Name: "-i"})

	require.NoError(t, p.Parse("-b"))
	raw, ok := b.Raw()
	assert.True(t, ok)
	assert.Equal(t, "true", raw)
	assert.True(t, b.Value())

	require.NoError(t, p.Parse("--bool", "-i", "3"))
	assert.True(t, b.Value(), "bool")
	assert.Equal(t, 3, i.Value(), "next switch was not consumed")
	assert.Equal(t, []Option{b, i}, p.Processed())

	require.NoError(t, p.Parse("-b", "--", "extra"))
	assert.True(t, b.Value(), "terminator is a switch token")
	assert.Equal(t, []string{"extra"}, p.Remaining())
}

func TestEnum(t *testing.T) {
	p := NewParser("test", "")
	c := Enum(p, hueType, Meta{Name: "--color", ShortName: pointer.ToString("-c")})

	err := p.Parse("--color", "purple")
	require.Error(t, err)
	assert.True(t, IsSyntaxError(err), "syntax error")
	assert.True(t, errors.Is(err, ErrInvalidValue), "invalid value")
	assert.True(t, errors.Is(err, ErrInvalidOptionValue), "rejected by the option")
	assert.Contains(t, err.Error(), `the value "purple" is invalid for switch `+"`--color'")
	assert.Contains(t, err.Error(), `accepted values are: "Red", "Green", "Blue"`)
	var se *SwitchError
	require.True(t, errors.As(err, &se), "as SwitchError")
	assert.Equal(t, "--color", se.Switch)
	assert.Equal(t, "purple", se.Value)

	require.NoError(t, p.Parse("-c", "gReEn"))
	assert.True(t, c.IsDefined())
	assert.Equal(t, green, c.Value())
	assert.Equal(t, green, c.Get())
}

func TestSwitchGroup(t *testing.T) {
	p := NewParser("test", "")
	dry := Switch(p, modeType, dryRun, Meta{})
	lv := Switch(p, modeType, live, Meta{ShortName: pointer.ToString("-l")})

	err := p.Parse("--dry-run", "--live")
	require.Error(t, err)
	assert.True(t, IsSyntaxError(err), "syntax error")
	assert.True(t, errors.Is(err, ErrSwitchGroupTaken), "group taken")
	assert.Contains(t, err.Error(), "only one value may be selected for switch group mode")

	err = p.Parse("-l", "--live")
	require.Error(t, err, "same switch twice")
	assert.True(t, errors.Is(err, ErrSwitchGroupTaken), "group taken")

	require.NoError(t, p.Parse("-l"))
	assert.Equal(t, live, modeType.Selected(p.Switches()))
	assert.Equal(t, live, SelectedSwitch(p, modeType))
	assert.True(t, lv.IsDefined(), "selected switch")
	assert.False(t, dry.IsDefined(), "other switch")
	assert.Equal(t, live, dry.Value(), "group value is shared")
	assert.Equal(t, "--dry-run", dry.Name())
	assert.Equal(t, "mode", dry.Group())
}

func TestSwitchGroupsAreSeparate(t *testing.T) {
	p := NewParser("test", "")
	Switch(p, modeType, dryRun, Meta{})
	Switch(p, modeType, live, Meta{Name: "--live-in"}).InGroup("in")
	Switch(p, modeType, live, Meta{Name: "--live-out"}).InGroup("out")

	require.NoError(t, p.Parse("--dry-run", "--live-in", "--live-out"))
	assert.Equal(t, dryRun, modeType.Selected(p.Switches()))
	assert.Equal(t, live, modeType.SelectedIn(p.Switches(), "in"))
	assert.Equal(t, live, modeType.SelectedIn(p.Switches(), "out"))
}

func TestReparse(t *testing.T) {
	p := NewParser("test", "")
	lv := Switch(p, modeType, live, Meta{})
	Switch(p, modeType, dryRun, Meta{})
	i := p.Int(Meta{Name: "-i", Default: pointer.ToString("7")})
	l := List[int](p, nil, Meta{Name: "--list"})

	require.NoError(t, p.Parse("--live", "-i", "3", "--list", "4,5"))
	assert.Equal(t, live, modeType.Selected(p.Switches()))
	assert.Equal(t, 3, i.Value())

	require.NoError(t, p.Parse())
	assert.Equal(t, mode(0), modeType.Selected(p.Switches()), "selection cleared")
	assert.False(t, lv.IsDefined())
	_, ok := lv.Raw()
	assert.False(t, ok, "switch raw")
	assert.False(t, i.IsDefined())
	assert.Equal(t, 7, i.Value(), "default restored")
	assert.Nil(t, l.Value(), "list cleared")
	assert.Empty(t, p.Processed())

	require.Error(t, p.Parse("--live", "--dry-run"))
	require.NoError(t, p.Parse("--dry-run"), "failed parse does not leak")
	assert.Equal(t, dryRun, modeType.Selected(p.Switches()))
}

func TestList(t *testing.T) {
	p := NewParser("test", "")
	ints := List[int](p, nil, Meta{Name: "--int"})
	ids := List(p, uuid.Parse, Meta{Name: "--ids"})

	require.NoError(t, p.Parse("--int", "1,2,3"))
	if diff := cmp.Diff([]int{1, 2, 3}, ints.Value()); diff != "" {
		t.Errorf("list (-want +got):\n%s", diff)
	}
	raw, _ := ints.Raw()
	assert.Equal(t, "1,2,3", raw)

	got := ints.Value()
	got[0] = 99
	assert.Equal(t, 1, ints.Value()[0], "value is a copy")

	err := p.Parse("--int", "1,x,3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Contains(t, err.Error(), "invalid value x for type int")
	assert.Nil(t, ints.Value(), "nothing stored")
	_, ok := ints.Raw()
	assert.False(t, ok)

	a := uuid.New()
	b := uuid.New()
	require.NoError(t, p.Parse("--ids", a.String()+","+b.String()))
	if diff := cmp.Diff([]uuid.UUID{a, b}, ids.Value()); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	require.Error(t, p.Parse("--ids", a.String()+",nope"))
	assert.Nil(t, ids.Value())
}

func TestCommand(t *testing.T) {
	p := NewParser("test", "")
	i := p.Int(Meta{Name: "-i"})
	c1 := Command(p, cmdType, command1, Meta{Name: "Command1"})
	c2 := Command(p, cmdType, command2, Meta{Name: "Command2"})

	require.NoError(t, p.Parse("Command2", "-i", "10"))
	assert.Equal(t, []string{"-i", "10"}, p.Remaining())
	assert.False(t, i.IsDefined(), "tokens after the command are not parsed")
	assert.True(t, c2.IsDefined())
	assert.False(t, c1.IsDefined())
	assert.Equal(t, command2, cmdType.Selected(p.Switches()))

	require.NoError(t, p.Parse("-i", "4", "Command1"))
	assert.Equal(t, 4, i.Value())
	assert.Empty(t, p.Remaining())
	assert.Equal(t, command1, c1.Value())
}

func TestCommandDefaultName(t *testing.T) {
	type verb int
	const (
		build verb = iota + 1
		test
	)
	verbType := NewEnumType("verb", Const("Build", build), Const("Test", test))
	p := NewParser("test", "")
	Command(p, verbType, build, Meta{})
	Command(p, verbType, test, Meta{})
	require.NoError(t, p.Parse("test", "more"))
	assert.Equal(t, test, verbType.Selected(p.Switches()))
	assert.Equal(t, []string{"more"}, p.Remaining())
}

func TestRequired(t *testing.T) {
	p := NewParser("test", "")
	b := p.Bool(Meta{Name: "--b", Required: true})

	err := p.Parse()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequired))
	assert.Contains(t, err.Error(), "required switch `--b' is missing")

	require.NoError(t, p.Parse("--help"))
	assert.True(t, p.HelpRequested())
	assert.False(t, b.IsDefined())

	require.NoError(t, p.Parse("/?"))
	assert.True(t, p.HelpRequested())

	require.NoError(t, p.Parse("--b"))
	assert.False(t, p.HelpRequested())
}

func TestHelpAfterTerminator(t *testing.T) {
	p := NewParser("test", "")
	p.Int(Meta{Name: "-i", Required: true})
	require.NoError(t, p.Parse("--", "--help"), "help anywhere skips required checks")
	assert.False(t, p.HelpRequested())
	assert.Equal(t, []string{"--help"}, p.Remaining())
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		kind error
		msg  string
	}{
		{
			name: "unknown",
			args: []string{"--nope"},
			kind: ErrUnknownSwitch,
			msg:  "unknown switch `--nope'",
		},
		{
			name: "positional before terminator",
			args: []string{"file.txt"},
			kind: ErrUnknownSwitch,
			msg:  "unknown switch `file.txt'",
		},
		{
			name: "missing at end",
			args: []string{"-i"},
			kind: ErrMissingArgument,
			msg:  "switch `--int' requires an argument",
		},
		{
			name: "missing before switch",
			args: []string{"-i", "-s", "x"},
			kind: ErrMissingArgument,
			msg:  "switch `--int' requires an argument",
		},
		{
			name: "missing before terminator",
			args: []string{"-s", "--"},
			kind: ErrMissingArgument,
			msg:  "switch `-s' requires an argument",
		},
		{
			name: "bad guid",
			args: []string{"--guid", "xyz"},
			kind: ErrInvalidValue,
			msg:  "xyz is not a valid GUID",
		},
		{
			name: "validation",
			args: []string{"-i", "9"},
			kind: ErrInvalidValue,
			msg:  "must satisfy max=5",
		},
	}
	p := NewParser("test", "")
	p.Int(Meta{Name: "--int", ShortName: pointer.ToString("-i"), Validate: "min=1,max=5"})
	p.String(Meta{Name: "-s"})
	p.GUID(Meta{Name: "--guid"})
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := p.Parse(tc.args...)
			require.Error(t, err)
			assert.True(t, IsSyntaxError(err), "syntax error")
			assert.False(t, IsDeclarationError(err), "declaration error")
			assert.True(t, errors.Is(err, tc.kind), "kind")
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestTerminator(t *testing.T) {
	p := NewParser("test", "")
	i := p.Int(Meta{Name: "-i"})
	require.NoError(t, p.Parse("-i", "1", "--", "-i", "2"))
	assert.Equal(t, 1, i.Value())
	assert.Equal(t, []string{"-i", "2"}, p.Remaining())
}

type plainOption struct {
	Base
}

func (o *plainOption) Set(raw string) error {
	o.SetRaw(raw)
	return nil
}

func TestDeclarationErrors(t *testing.T) {
	cases := []struct {
		name    string
		declare func(p *Parser)
		opts    []ParserOpt
	}{
		{
			name:    "no name",
			declare: func(p *Parser) { p.Int(Meta{}) },
		},
		{
			name: "duplicate name",
			declare: func(p *Parser) {
				p.Int(Meta{Name: "-i"})
				p.String(Meta{Name: "-i"})
			},
		},
		{
			name: "short name collides",
			declare: func(p *Parser) {
				p.Int(Meta{Name: "--int", ShortName: pointer.ToString("-x")})
				p.String(Meta{Name: "-x"})
			},
		},
		{
			name:    "help is taken",
			declare: func(p *Parser) { p.Bool(Meta{Name: "--help"}) },
		},
		{
			name:    "terminator",
			declare: func(p *Parser) { p.Bool(Meta{Name: "--"}) },
		},
		{
			name:    "bad default",
			declare: func(p *Parser) { p.GUID(Meta{Name: "--id", Default: pointer.ToString("zz")}) },
		},
		{
			name:    "switch default",
			declare: func(p *Parser) { Switch(p, modeType, live, Meta{Default: pointer.ToString("Live")}) },
		},
		{
			name:    "switch enum value",
			declare: func(p *Parser) { Switch(p, modeType, live, Meta{EnumValue: pointer.ToString("Dead")}) },
		},
		{
			name:    "validate without Get",
			declare: func(p *Parser) { p.Add(&plainOption{}, Meta{Name: "-p", Validate: "required"}) },
		},
		{
			name:    "nil option",
			declare: func(p *Parser) { p.Add(nil, Meta{Name: "-p"}) },
		},
		{
			name:    "bad list element",
			declare: func(p *Parser) { List[chan int](p, nil, Meta{Name: "-c"}) },
		},
		{
			name:    "bad list element with default",
			declare: func(p *Parser) { List[chan int](p, nil, Meta{Name: "-c", Default: pointer.ToString("x")}) },
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser("test", "", tc.opts...)
			tc.declare(p)
			err := p.Bind()
			require.Error(t, err, "bind")
			assert.True(t, IsDeclarationError(err), "declaration error: %s", err)
			assert.False(t, IsSyntaxError(err), "syntax error")

			err = p.Parse("--help")
			require.Error(t, err, "parse")
			assert.True(t, IsDeclarationError(err), "declaration error: %s", err)
		})
	}
}

func TestCustomOption(t *testing.T) {
	p := NewParser("test", "")
	o := &plainOption{}
	p.Add(o, MustParseMeta("--plain -p,required"))
	require.NoError(t, p.Parse("-p", "x"))
	assert.True(t, o.IsDefined())
	raw, _ := o.Raw()
	assert.Equal(t, "x", raw)
	assert.Equal(t, "--plain", o.Name())
	assert.Equal(t, []Option{o}, p.Processed())
}

func TestOnComplete(t *testing.T) {
	var called int
	p := NewParser("test", "", OnComplete(func(args []string) {
		assert.Equal(t, []string{"x", "y"}, args, "remaining args")
		called++
	}))
	Command(p, cmdType, command1, Meta{Name: "run"})
	require.NoError(t, p.Parse("run", "x", "y"))
	assert.Equal(t, 1, called, "call count")

	require.Error(t, p.Parse("--what"))
	assert.Equal(t, 1, called, "not called on failure")
}

func TestOnCompleteChainsParsers(t *testing.T) {
	sub := NewParser("build", "")
	verbose := sub.Bool(Meta{Name: "-v"})
	p := NewParser("tool", "", OnComplete(func(p *Parser, args []string) error {
		if cmdType.Selected(p.Switches()) == command1 {
			return sub.Parse(args...)
		}
		return nil
	}))
	Command(p, cmdType, command1, Meta{Name: "build"})
	Command(p, cmdType, command2, Meta{Name: "clean"})

	require.NoError(t, p.Parse("build", "-v"))
	assert.True(t, verbose.Value())

	err := p.Parse("build", "--bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSwitch))

	require.NoError(t, p.Parse("clean", "--bogus"))
}

func TestOptionErrorsAreDelayed(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))
	p := NewParser("test", "", ImportFlagSet(fs))
	require.Error(t, p.Bind())
	require.Error(t, p.Parse())
}

func TestParseLine(t *testing.T) {
	p := NewParser("test", "")
	s := p.String(Meta{Name: "-s"})
	require.NoError(t, p.ParseLine(`-s 'hello world' -- "a b"`))
	assert.Equal(t, "hello world", s.Value())
	assert.Equal(t, []string{"a b"}, p.Remaining())

	err := p.ParseLine(`-s "unterminated`)
	require.Error(t, err)
	assert.True(t, IsSyntaxError(err))
}

func TestDefaults(t *testing.T) {
	p := NewParser("test", "")
	i := p.Int(Meta{Name: "-i", Default: pointer.ToString("42")})
	b := p.Bool(Meta{Name: "-b", Default: pointer.ToString("true")})
	c := Enum(p, hueType, MustParseMeta("--color,default=blue"))

	require.NoError(t, p.Parse())
	assert.Equal(t, 42, i.Value())
	assert.False(t, i.IsDefined(), "default is not defined")
	raw, ok := i.Raw()
	assert.True(t, ok)
	assert.Equal(t, "42", raw)
	assert.True(t, b.Value())
	assert.Equal(t, blue, c.Value())

	require.NoError(t, p.Parse("-i", "1", "-b", "False"))
	assert.Equal(t, 1, i.Value())
	assert.False(t, b.Value())
}

package nswitch

import (
	"flag"
	"unicode/utf8"

	"github.com/AlekSi/pointer"
	"github.com/pkg/errors"
)

// ImportFlagSet pulls in flags defined with the standard "flag"
// package.  This is useful when there are libaries being used
// that define flags.
//
// Flags with single character names become "-x", the others "--name".
// flag.CommandLine is the default FlagSet.
//
// ImportFlagSet is not the recommended way to use nswitch, but sometimes
// there is no choice.
func ImportFlagSet(fs *flag.FlagSet) ParserOpt {
	return func(p *Parser) error {
		if fs.Parsed() {
			return errors.New("Cannot import FlagSets that have been parsed")
		}
		var err error
		fs.VisitAll(func(f *flag.Flag) {
			meta := Meta{
				Description: pointer.ToString(f.Usage),
			}
			switch utf8.RuneCountInString(f.Name) {
			case 0:
				err = DeclarationError(errors.New("Invalid flag in FlagSet with no Name"))
				return
			case 1:
				meta.Name = "-" + f.Name
			default:
				meta.Name = "--" + f.Name
			}
			if f.DefValue != "" {
				meta.Default = pointer.ToString(f.DefValue)
			}
			p.Add(&flagOption{flag: f}, meta)
		})
		return err
	}
}

// flagOption adapts a flag.Value.  The value of the flag is updated
// as it is parsed and put back to its DefValue at the start of every
// parse.
type flagOption struct {
	Base
	flag *flag.Flag
}

var _ Getter = &flagOption{}

func (o *flagOption) Set(raw string) error {
	if err := o.flag.Value.Set(raw); err != nil {
		return InvalidOptionValue(err, "Cannot set value for flag '%s': %s", o.flag.Name, err)
	}
	o.SetRaw(raw)
	return nil
}

func (o *flagOption) reset() {
	_ = o.flag.Value.Set(o.flag.DefValue)
}

func (o *flagOption) IsBoolFlag() bool {
	if hib, ok := o.flag.Value.(hasIsBool); ok {
		return hib.IsBoolFlag()
	}
	return false
}

func (o *flagOption) Get() any {
	if g, ok := o.flag.Value.(flag.Getter); ok {
		return g.Get()
	}
	return o.flag.Value.String()
}

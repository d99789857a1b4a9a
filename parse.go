package nswitch

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// Parse binds the declared options and consumes args.  Tokens that are
// not switches or switch values are left in Remaining().  A "--" stops
// parsing, as does a command.
//
// Errors caused by args satisfy IsSyntaxError.  Errors caused by the
// declarations satisfy IsDeclarationError.
func (p *Parser) Parse(args ...string) error {
	p.groups.Reset()
	p.registry = nil
	r, err := p.bind()
	if err != nil {
		return err
	}
	p.registry = r
	r.arguments = append([]string{}, args...)
	debugf("parse %s %v", p.name, args)

	err = p.dispatch(r)
	if err != nil {
		return err
	}
	err = p.checkRequired(r, args)
	if err != nil {
		return err
	}
	if debugging {
		debugf("parsed %s: %s", p.name, r)
	}
	if p.onComplete != nil {
		return p.onComplete(p, r.arguments)
	}
	return nil
}

// ParseLine splits line the way a shell would and parses the result
func (p *Parser) ParseLine(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return SyntaxError(errors.Wrap(err, "split command line"))
	}
	return p.Parse(args...)
}

func (p *Parser) dispatch(r *registry) error {
	for len(r.arguments) > 0 {
		token := r.arguments[0]
		if token == terminator {
			r.arguments = r.arguments[1:]
			debugf("found %s, %d arguments remain", terminator, len(r.arguments))
			return nil
		}
		o := r.lookup(token)
		if o == nil {
			return switchError(ErrUnknownSwitch, token)
		}
		meta := o.base().meta
		valueFollows := len(r.arguments) > 1 && !r.isSwitch(r.arguments[1])

		var raw string
		consumed := 1
		sk, isSwitch := o.(switchKind)
		switch {
		case isSwitch:
			raw = meta.enumValue()
		case isBoolKind(o) && !valueFollows:
			raw = boolTrue
		case !valueFollows:
			return switchError(ErrMissingArgument, meta.Name)
		default:
			raw = r.arguments[1]
			consumed = 2
		}

		if err := p.assign(o, raw); err != nil {
			return err
		}
		o.base().defined = true
		r.markProcessed(o)
		r.arguments = r.arguments[consumed:]
		debugf("%s = %q", meta.Name, raw)

		if isSwitch && sk.isCommand() {
			debugf("command %s, %d arguments remain", meta.Name, len(r.arguments))
			return nil
		}
	}
	return nil
}

func (p *Parser) assign(o Option, raw string) error {
	meta := o.base().meta
	err := o.Set(raw)
	if err == nil && meta.Validate != "" {
		err = p.validateValue(o.(Getter), meta.Validate)
	}
	if err != nil {
		return SyntaxError(&SwitchError{
			Switch: meta.Name,
			Value:  raw,
			Kind:   ErrInvalidValue,
			Cause:  err,
		})
	}
	return nil
}

func (p *Parser) validateValue(g Getter, rule string) error {
	err := p.validator().Var(g.Get(), rule)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		failed := make([]string, len(fieldErrors))
		for i, fe := range fieldErrors {
			failed[i] = fe.Tag()
			if fe.Param() != "" {
				failed[i] += "=" + fe.Param()
			}
		}
		return InvalidOptionValue(err, "must satisfy %s", strings.Join(failed, ","))
	}
	return InvalidOptionValue(err, "%s", err)
}

func (p *Parser) checkRequired(r *registry, args []string) error {
	if p.help.IsDefined() || containsAny(args, helpName, helpShort) {
		debug("help requested, required options are not checked")
		return nil
	}
	for _, o := range r.options {
		meta := o.base().meta
		if meta.Required && !r.wasProcessed(o) {
			return switchError(ErrMissingRequired, meta.Name)
		}
	}
	return nil
}

// SelectedSwitch returns the constant selected from t's switch group in
// the last Parse.
func SelectedSwitch[E comparable](p *Parser, t *EnumType[E]) E {
	return t.Selected(p.groups)
}

func (r *registry) String() string {
	return fmt.Sprintf("%d options, %d processed, remaining %v", len(r.options), len(r.processed), r.arguments)
}

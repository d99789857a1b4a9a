package nswitch

import (
	"github.com/AlekSi/pointer"
	"github.com/pkg/errors"
)

// registry is the per-parse state: the bound options, what has been
// consumed so far, and the arguments that remain.
type registry struct {
	options   []Option
	processed []Option
	seen      map[Option]struct{}
	arguments []string
}

type resolved struct {
	opt  Option
	meta Meta
}

func helpMeta() Meta {
	return Meta{
		Name:        helpName,
		ShortName:   pointer.ToString(helpShort),
		Description: pointer.ToString("Shows this usage information."),
		Index:       pointer.ToInt(HelpIndex),
	}
}

// resolve merges the metadata of every slot and checks it without
// touching option values.
func (p *Parser) resolve() ([]resolved, error) {
	if p.delayedErr != nil {
		return nil, p.delayedErr
	}
	all := make([]resolved, 0, len(p.slots)+1)
	tokens := make(map[string]string)
	slots := append(p.slots[:len(p.slots):len(p.slots)], slot{opt: p.help, declared: helpMeta()})
	for i, s := range slots {
		if s.opt == nil {
			return nil, DeclarationError(errors.Errorf("option #%d is nil", i))
		}
		var meta Meta
		if dm, ok := s.opt.(hasDefaultMeta); ok {
			meta = dm.DefaultMeta()
		}
		meta = meta.Merge(s.declared)
		if meta.Index == nil {
			meta.Index = pointer.ToInt(DefaultIndex)
		}
		if meta.Name == "" {
			return nil, DeclarationError(errors.Errorf("option #%d (%T) has no name", i, s.opt))
		}
		for _, token := range []string{meta.Name, meta.shortName()} {
			if token == "" {
				continue
			}
			if token == terminator {
				return nil, DeclarationError(errors.Errorf("%s: %s is reserved", meta.Name, terminator))
			}
			if prior, ok := tokens[token]; ok {
				return nil, DeclarationError(errors.Errorf("%s: %s is already used by %s", meta.Name, token, prior))
			}
			tokens[token] = meta.Name
		}
		if c, ok := s.opt.(interface{ checkMeta(Meta) error }); ok {
			if err := c.checkMeta(meta); err != nil {
				return nil, DeclarationError(err)
			}
		}
		if meta.Validate != "" {
			if _, ok := s.opt.(Getter); !ok {
				return nil, DeclarationError(errors.Errorf("%s: validation requires an option with a Get method, not %T", meta.Name, s.opt))
			}
		}
		all = append(all, resolved{opt: s.opt, meta: meta})
	}
	return all, nil
}

// bind starts a parse: it resets every option and applies defaults.
func (p *Parser) bind() (*registry, error) {
	all, err := p.resolve()
	if err != nil {
		return nil, err
	}
	r := &registry{
		options: make([]Option, 0, len(all)),
		seen:    make(map[Option]struct{}),
	}
	for _, rs := range all {
		o := rs.opt
		b := o.base()
		b.meta = rs.meta
		b.clear()
		if rr, ok := o.(resetter); ok {
			rr.reset()
		}
		if sk, ok := o.(switchKind); ok {
			sk.attach(p.groups)
		}
		if rs.meta.Default != nil {
			if err := o.Set(*rs.meta.Default); err != nil {
				return nil, DeclarationError(errors.Wrapf(err, "%s: default %q", rs.meta.Name, *rs.meta.Default))
			}
		}
		debugf("bound %s (%T)", rs.meta.Name, o)
		r.options = append(r.options, o)
	}
	return r, nil
}

// Bind checks the declarations and resets every option to its default.
// Parse binds on its own; call Bind to find declaration errors early.
func (p *Parser) Bind() error {
	p.groups.Reset()
	r, err := p.bind()
	if err != nil {
		return err
	}
	p.registry = r
	return nil
}

// lookup finds the option for a token, first by name then by short name
func (r *registry) lookup(token string) Option {
	for _, o := range r.options {
		if o.base().meta.Name == token {
			return o
		}
	}
	for _, o := range r.options {
		if o.base().meta.matches(token) {
			return o
		}
	}
	return nil
}

// isSwitch reports if a token would be taken as a switch rather than as
// a value
func (r *registry) isSwitch(token string) bool {
	return token == terminator || r.lookup(token) != nil
}

func (r *registry) markProcessed(o Option) {
	if _, ok := r.seen[o]; ok {
		return
	}
	r.seen[o] = struct{}{}
	r.processed = append(r.processed, o)
}

func (r *registry) wasProcessed(o Option) bool {
	_, ok := r.seen[o]
	return ok
}

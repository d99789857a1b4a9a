package nswitch

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/muir/nswitch/internal/textwrap"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	defaultUsageWidth = 80
	usageSeparator    = "    "
)

// OptionInfo is the metadata of one option as shown in the usage text
type OptionInfo struct {
	Name        string
	ShortName   string
	Description string
	Required    bool
	Default     *string
	Index       int
}

// Key is the name followed by the short name in parenthesis
func (i OptionInfo) Key() string {
	if i.ShortName == "" {
		return i.Name
	}
	return i.Name + prependSpace("("+i.ShortName+")")
}

// Describe returns the metadata of all options, including help, ordered
// for display: by index and then by name.
func (p *Parser) Describe() ([]OptionInfo, error) {
	all, err := p.resolve()
	if err != nil {
		return nil, err
	}
	infos := make([]OptionInfo, len(all))
	for i, rs := range all {
		infos[i] = OptionInfo{
			Name:        rs.meta.Name,
			ShortName:   rs.meta.shortName(),
			Description: rs.meta.description(),
			Required:    rs.meta.Required,
			Default:     rs.meta.Default,
			Index:       rs.meta.index(),
		}
	}
	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].Index != infos[j].Index {
			return infos[i].Index < infos[j].Index
		}
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Usage writes the usage text to w.  The width is taken from
// WithUsageWidth or from the terminal that w writes to.  When w is not a
// terminal, the width is 80.
func (p *Parser) Usage(w io.Writer) error {
	width := p.usageWidth
	if width <= 0 {
		width = defaultUsageWidth
		if fd, ok := terminal(w); ok {
			if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
				width = tw
			}
		}
	}
	return p.UsageWidth(w, width)
}

// UsageWidth writes the usage text to w wrapped to width columns
func (p *Parser) UsageWidth(w io.Writer, width int) error {
	infos, err := p.Describe()
	if err != nil {
		return err
	}
	highlight := color.New(color.Bold)
	if p.useColor(w) {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}

	var b strings.Builder
	if p.copyright != "" {
		b.WriteString(textwrap.Wrap(p.copyright, width, 0))
		b.WriteString("\n\n")
	}
	b.WriteString(highlight.Sprint(p.name))
	if p.description != "" {
		b.WriteString(" -- ")
		b.WriteString(textwrap.Wrap(p.description, width, len(p.name)+4))
	}
	b.WriteString("\n\nUsage:\n")

	keyLength := 0
	for _, info := range infos {
		if l := len(info.Key()); l > keyLength {
			keyLength = l
		}
	}
	for _, info := range infos {
		var required, dflt string
		if info.Required {
			required = "(required)."
		}
		if info.Default != nil {
			dflt = fmt.Sprintf("(default: %s).", *info.Default)
		}
		text := strings.Join(notEmpty(info.Description, required, dflt), " ")
		b.WriteString(highlight.Sprintf("%-*s", keyLength, info.Key()))
		b.WriteString(usageSeparator)
		b.WriteString(textwrap.Wrap(text, width, keyLength+len(usageSeparator)))
		b.WriteString("\n")
	}
	_, err = io.WriteString(w, b.String())
	return errors.Wrap(err, "write usage")
}

func (p *Parser) useColor(w io.Writer) bool {
	if p.color != nil {
		return *p.color
	}
	_, ok := terminal(w)
	return ok
}

func terminal(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// Package textwrap breaks text into lines for display in a fixed
// width column.
package textwrap

import (
	"io"
	"strings"

	"github.com/kr/text"
)

// minimum column width, narrower columns are widened to this
const minColumn = 10

// Wrap breaks s between words into lines of at most width minus indent
// characters, unless a single word is longer, keeping the line lengths
// as even as possible.  Lines after the first are prefixed with indent
// spaces: the caller is expected to have already written indent
// characters on the first line.
func Wrap(s string, width int, indent int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	column := width - indent
	if column < minColumn {
		column = minColumn
	}
	var b strings.Builder
	w := text.NewIndentWriter(&b, nil, []byte(strings.Repeat(" ", indent)))
	_, _ = io.WriteString(w, text.Wrap(strings.Join(words, " "), column))
	return b.String()
}

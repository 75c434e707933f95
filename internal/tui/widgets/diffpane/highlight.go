package diffpane

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"

	"diffpad/internal/langs"
	"diffpad/internal/options"
)

// chroma styles backing the two themes.
const (
	darkStyle  = "monokai"
	lightStyle = "github"
)

// highlight syntax-colors a context line for the selected language and
// theme. Tokenization failures degrade to the plain line; highlighting is
// presentation sugar, never load-bearing.
func highlight(line string, o Options) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	lexer := chroma.Coalesce(langs.Lexer(o.Language))
	name := darkStyle
	if o.Theme == options.ThemeLight {
		name = lightStyle
	}
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}
	f := formatters.Get("terminal256")
	if f == nil {
		f = formatters.Fallback
	}
	it, err := lexer.Tokenise(nil, line)
	if err != nil {
		return faint.Render(line)
	}
	var b strings.Builder
	if err := f.Format(&b, style, it); err != nil {
		return faint.Render(line)
	}
	return strings.TrimRight(b.String(), "\n")
}

package helpoverlay

import (
	"fmt"
	"strings"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns the grouped key reference.
func (HelpOverlay) View() string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"Panes", []string{"tab: switch pane", "type/paste to edit"}},
		{"Options", []string{"f2: language", "f3: theme", "f4: layout", "f5: whitespace", "f6/f7: font size -/+"}},
		{"Actions", []string{"ctrl+s: swap buffers", "ctrl+y: copy original", "ctrl+u: copy modified", "ctrl+r: reset all"}},
		{"General", []string{"f1: close help", "ctrl+c: quit"}},
	}
	var b strings.Builder
	b.WriteString("Help\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}

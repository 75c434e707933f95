package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var noticeStyle = lipgloss.NewStyle().Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// Props carries the option values the bar reflects. The bar renders state;
// it never owns any.
type Props struct {
	Language         string
	Theme            string
	Layout           string
	IgnoreWhitespace bool
	FontSize         int
	Focus            string
	Notice           string
}

// View composes a concise status line reflecting the current options.
func (StatusBar) View(p Props) string {
	ws := "WS: keep"
	if p.IgnoreWhitespace {
		ws = "WS: ignore"
	}
	parts := []string{
		fmt.Sprintf("[%s]", p.Focus),
		p.Language,
		p.Theme,
		p.Layout,
		ws,
		fmt.Sprintf("Font: %d", p.FontSize),
	}
	if p.Notice != "" {
		parts = append(parts, noticeStyle.Render(p.Notice))
	}
	return strings.Join(parts, "  ")
}

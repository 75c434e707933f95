// Package editor wraps a bubbles textarea as one editable region of the
// diff pad. It implements bufsync.Region: the synchronizer reads text and
// subscribes to content-changed events through the interface only.
package editor

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/bufsync"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	focusedFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"})
	blurredFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"})
)

// Pane is one editable buffer region.
type Pane struct {
	title     string
	area      textarea.Model
	listeners map[int]func()
	nextID    int
}

// New creates a pane titled title holding content.
func New(title, content string) *Pane {
	ta := textarea.New()
	ta.Placeholder = "Paste text here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.SetValue(content)
	return &Pane{title: title, area: ta, listeners: map[int]func(){}}
}

// Text returns the region's current content.
func (p *Pane) Text() string { return p.area.Value() }

// SetText replaces the content without firing change events; the caller is
// the state side, and the synchronizer's dedup would drop the echo anyway.
func (p *Pane) SetText(s string) { p.area.SetValue(s) }

// OnChange registers a content-changed listener and returns its handle.
func (p *Pane) OnChange(fn func()) bufsync.Subscription {
	p.nextID++
	id := p.nextID
	p.listeners[id] = fn
	return &subscription{pane: p, id: id}
}

// Listeners reports the number of live subscriptions.
func (p *Pane) Listeners() int { return len(p.listeners) }

type subscription struct {
	pane *Pane
	id   int
}

func (s *subscription) Dispose() { delete(s.pane.listeners, s.id) }

// Focus gives the pane keyboard focus.
func (p *Pane) Focus() tea.Cmd { return p.area.Focus() }

// Blur removes keyboard focus.
func (p *Pane) Blur() { p.area.Blur() }

func (p *Pane) Focused() bool { return p.area.Focused() }

// SetSize resizes the inner textarea; the frame adds two cells per axis.
func (p *Pane) SetSize(width, height int) {
	if width < 4 {
		width = 4
	}
	if height < 1 {
		height = 1
	}
	p.area.SetWidth(width)
	p.area.SetHeight(height)
}

// Update forwards msg to the textarea. Key events fire the content-changed
// listeners whether or not the text actually changed; the widget reports
// events, the synchronizer dedups.
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.area, cmd = p.area.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		for _, fn := range p.listeners {
			fn()
		}
	}
	return cmd
}

// View renders the titled, framed pane.
func (p *Pane) View() string {
	frame := blurredFrame
	if p.area.Focused() {
		frame = focusedFrame
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(p.title),
		frame.Render(p.area.View()),
	)
}

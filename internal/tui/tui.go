// Package tui hosts the diff pad: two editable panes, the rendered diff,
// a status bar, and the keymap that drives the option registry.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"diffpad/internal/bufsync"
	"diffpad/internal/langs"
	"diffpad/internal/notify"
	"diffpad/internal/options"
	"diffpad/internal/store"
	"diffpad/internal/tui/state"
	"diffpad/internal/tui/widgets/diffpane"
	"diffpad/internal/tui/widgets/editor"
	"diffpad/internal/tui/widgets/helpoverlay"
	"diffpad/internal/tui/widgets/statusbar"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// NoticeExpiredMsg is sent by the notification service's expiry hook so the
// cleared message disappears from the status bar without user input.
type NoticeExpiredMsg struct{}

// paneWidget adapts the two editor panes to the widget interface the
// synchronizer consumes.
type paneWidget struct {
	orig, mod *editor.Pane
}

func (w paneWidget) Original() bufsync.Region { return w.orig }
func (w paneWidget) Modified() bufsync.Region { return w.mod }

// Model is the top-level bubbletea model. It owns the UI state and the
// widget instance; all field mutation happens inside Update (one logical
// writer per tick).
type Model struct {
	st      *store.Store
	reg     *options.Registry
	sync    *bufsync.Synchronizer
	notices *notify.Service

	ui   state.UIState
	orig *editor.Pane
	mod  *editor.Pane
	vp   viewport.Model
	bar  statusbar.StatusBar
	help helpoverlay.HelpOverlay

	ready bool
}

// New builds the model and attaches the synchronizer to the freshly mounted
// panes.
func New(st *store.Store, reg *options.Registry, sync *bufsync.Synchronizer, notices *notify.Service) *Model {
	m := &Model{
		st:      st,
		reg:     reg,
		sync:    sync,
		notices: notices,
		orig:    editor.New("Original", reg.Original.Get()),
		mod:     editor.New("Modified", reg.Modified.Get()),
		vp:      viewport.New(0, 0),
		bar:     statusbar.NewStatusBar(),
		help:    helpoverlay.NewHelpOverlay(),
	}
	sync.Attach(paneWidget{m.orig, m.mod})
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.orig.Focus())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		m.ready = true
		m.refreshDiff()
		return m, nil

	case NoticeExpiredMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages go to both panes.
	cmds := []tea.Cmd{m.orig.Update(msg), m.mod.Update(msg)}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.teardown()
		return m, tea.Quit

	case "f1":
		m.ui = state.ToggleHelp(m.ui)
		return m, nil
	}

	if m.ui.ShowHelp {
		// Help swallows everything except its toggle and quit.
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.ui = state.ToggleFocus(m.ui)
		if m.ui.Focus == state.OriginalPane {
			m.mod.Blur()
			return m, m.orig.Focus()
		}
		m.orig.Blur()
		return m, m.mod.Focus()

	case "f2":
		next := langs.Next(m.reg.Language.Get())
		m.reg.Language.Set(next)
		m.notices.Show(langs.Name(next))

	case "f3":
		m.reg.ToggleTheme()

	case "f4":
		m.reg.ToggleLayout()

	case "f5":
		m.reg.IgnoreWhitespace.Set(!m.reg.IgnoreWhitespace.Get())

	case "f6":
		m.reg.BumpFontSize(-1)

	case "f7":
		m.reg.BumpFontSize(1)

	case "ctrl+s":
		m.sync.Swap()
		m.orig.SetText(m.reg.Original.Get())
		m.mod.SetText(m.reg.Modified.Get())
		m.notices.Show("Swapped")

	case "ctrl+y":
		m.sync.Copy(bufsync.Original)

	case "ctrl+u":
		m.sync.Copy(bufsync.Modified)

	case "ctrl+r":
		m.reg.ResetAll()
		m.orig.SetText(m.reg.Original.Get())
		m.mod.SetText(m.reg.Modified.Get())

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	default:
		// Everything else edits the focused pane; its change event flows
		// through the synchronizer into the persisted buffer.
		var cmd tea.Cmd
		if m.ui.Focus == state.OriginalPane {
			cmd = m.orig.Update(msg)
		} else {
			cmd = m.mod.Update(msg)
		}
		m.refreshDiff()
		return m, cmd
	}

	m.refreshDiff()
	return m, nil
}

// layout distributes the terminal between panes and diff view.
func (m *Model) layout() {
	w, h := m.ui.Width, m.ui.Height
	paneInnerW := (w - 6) / 2
	paneInnerH := (h - 4) / 3
	if paneInnerH < 3 {
		paneInnerH = 3
	}
	if paneInnerH > 12 {
		paneInnerH = 12
	}
	m.orig.SetSize(paneInnerW, paneInnerH)
	m.mod.SetSize(paneInnerW, paneInnerH)

	vpH := h - (paneInnerH + 3) - 3
	if vpH < 3 {
		vpH = 3
	}
	// Resize in place; rebuilding the viewport would drop the scroll
	// position on every terminal resize.
	m.vp.Width = w
	m.vp.Height = vpH
}

// refreshDiff re-renders the diff view from current buffers and options.
func (m *Model) refreshDiff() {
	if !m.ready {
		return
	}
	layout := m.reg.Layout.Get()
	if m.ui.NarrowFallback {
		layout = options.LayoutInline
	}
	m.vp.SetContent(diffpane.Render(
		m.reg.Original.Get(), m.reg.Modified.Get(),
		diffpane.Options{
			Layout:           layout,
			Language:         m.reg.Language.Get(),
			Theme:            m.reg.Theme.Get(),
			IgnoreWhitespace: m.reg.IgnoreWhitespace.Get(),
			Width:            m.ui.Width,
		},
	))
}

// teardown releases everything that outlives a tick: subscriptions, the
// pending notification timer, and the last unflushed state write.
func (m *Model) teardown() {
	m.sync.Detach()
	m.notices.Stop()
	m.st.Flush()
	logrus.Debug("teardown complete")
}

func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.ui.ShowHelp {
		return m.help.View()
	}

	focus := "original"
	if m.ui.Focus == state.ModifiedPane {
		focus = "modified"
	}
	bar := m.bar.View(statusbar.Props{
		Language:         m.reg.Language.Get(),
		Theme:            m.reg.Theme.Get(),
		Layout:           m.reg.Layout.Get(),
		IgnoreWhitespace: m.reg.IgnoreWhitespace.Get(),
		FontSize:         m.reg.FontSize.Get(),
		Focus:            focus,
		Notice:           m.notices.Current(),
	})

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.orig.View(), "  ", m.mod.View())

	var b strings.Builder
	b.WriteString(titleStyle.Render("diffpad") + "\n")
	b.WriteString(panes + "\n")
	b.WriteString(m.vp.View() + "\n")
	b.WriteString(bar)
	return b.String()
}

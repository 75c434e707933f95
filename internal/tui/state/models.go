package state

// Focus identifies which editable pane receives keystrokes.
type Focus int

const (
	OriginalPane Focus = iota
	ModifiedPane
)

// UIState holds cross-widget view state used by the panes, diff view, and
// status bar. Option values live in the option registry; this is only the
// per-mount presentation state.
type UIState struct {
	Focus  Focus
	Width  int
	Height int

	// ShowHelp replaces the main view with the key reference.
	ShowHelp bool

	// NarrowFallback is set when the terminal is too narrow for a
	// side-by-side diff and the view degrades to inline.
	NarrowFallback bool
}

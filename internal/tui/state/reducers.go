package state

// MinColumn is the narrowest useful diff column.
const MinColumn = 20

// ToggleFocus moves keyboard focus to the other pane and returns a new
// state copy.
func ToggleFocus(s UIState) UIState {
	if s.Focus == OriginalPane {
		s.Focus = ModifiedPane
	} else {
		s.Focus = OriginalPane
	}
	return s
}

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// Resize updates dimensions and decides whether side-by-side rendering
// still fits. Threshold heuristic: two minimum columns plus 3 chars for the
// separator.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	s.NarrowFallback = width < 2*MinColumn+3
	return s
}

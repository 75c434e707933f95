// Package options holds the user-configurable display options and the two
// text buffers, each bound to a persisted store key.
package options

import (
	"strconv"

	"diffpad/internal/store"
)

// Stored identifiers and defaults. Theme identifiers keep their original
// editor-style names so existing state files keep working.
const (
	ThemeDark  = "vs-dark"
	ThemeLight = "vs-light"

	LayoutSideBySide = "side-by-side"
	LayoutInline     = "inline"

	DefaultLanguage = "javascript"
	DefaultTheme    = ThemeDark
	DefaultLayout   = LayoutSideBySide

	DefaultFontSize = 14
	MinFontSize     = 10
	MaxFontSize     = 24
)

// Sample snippets shown on first run and restored by ResetAll.
const (
	DefaultOriginal = "function greet(name) {\n  return \"Hello, \" + name;\n}\n"
	DefaultModified = "function greet(name) {\n  const msg = `Hello, ${name}!`;\n  return msg;\n}\n"
)

// Notifier is the sliver of the notification service the registry needs.
type Notifier interface {
	Show(msg string)
}

// Registry exposes one bound field per option plus the two buffers. Fields
// are mutated only through their setters, from the UI goroutine.
type Registry struct {
	Language         *store.Field[string]
	Theme            *store.Field[string]
	Layout           *store.Field[string]
	IgnoreWhitespace *store.Field[bool]
	FontSize         *store.Field[int]

	Original *store.Field[string]
	Modified *store.Field[string]

	notifier Notifier
}

// New binds every field against s. notifier may not be nil.
func New(s *store.Store, notifier Notifier) *Registry {
	return &Registry{
		Language:         store.Bind(s, "diffpad.language", DefaultLanguage),
		Theme:            store.Bind(s, "diffpad.theme", DefaultTheme),
		Layout:           store.Bind(s, "diffpad.layout", DefaultLayout),
		IgnoreWhitespace: store.Bind(s, "diffpad.ignoreWhitespace", true),
		FontSize:         store.Bind(s, "diffpad.fontSize", DefaultFontSize),
		Original:         store.Bind(s, "diffpad.original", DefaultOriginal),
		Modified:         store.Bind(s, "diffpad.modified", DefaultModified),
		notifier:         notifier,
	}
}

// SetFontSizeInput coerces free-form input to a number. Non-numeric input
// falls back to the default instead of propagating a parse error. Bounds
// are a UI concern; storage accepts any integer.
func (r *Registry) SetFontSizeInput(in string) {
	n, err := strconv.Atoi(in)
	if err != nil {
		n = DefaultFontSize
	}
	r.FontSize.Set(n)
}

// ToggleTheme flips between the dark and light themes.
func (r *Registry) ToggleTheme() {
	if r.Theme.Get() == ThemeDark {
		r.Theme.Set(ThemeLight)
	} else {
		r.Theme.Set(ThemeDark)
	}
}

// ToggleLayout flips between side-by-side and inline diff layouts.
func (r *Registry) ToggleLayout() {
	if r.Layout.Get() == LayoutSideBySide {
		r.Layout.Set(LayoutInline)
	} else {
		r.Layout.Set(LayoutSideBySide)
	}
}

// BumpFontSize adjusts the font size by delta, clamped to the UI bounds.
func (r *Registry) BumpFontSize(delta int) {
	n := r.FontSize.Get() + delta
	if n < MinFontSize {
		n = MinFontSize
	}
	if n > MaxFontSize {
		n = MaxFontSize
	}
	r.FontSize.Set(n)
}

// ResetAll restores every option and both buffers to their defaults and
// emits a "Reset" notification. All sets complete before the caller regains
// control, so no reader observes a partial reset.
func (r *Registry) ResetAll() {
	r.Language.Set(DefaultLanguage)
	r.Theme.Set(DefaultTheme)
	r.Layout.Set(DefaultLayout)
	r.IgnoreWhitespace.Set(true)
	r.FontSize.Set(DefaultFontSize)
	r.Original.Set(DefaultOriginal)
	r.Modified.Set(DefaultModified)
	r.notifier.Show("Reset")
}

package options

import (
	"path/filepath"
	"testing"

	"diffpad/internal/store"
)

type recordingNotifier struct {
	msgs []string
}

func (n *recordingNotifier) Show(msg string) { n.msgs = append(n.msgs, msg) }

func newRegistry(t *testing.T) (*Registry, *recordingNotifier) {
	t.Helper()
	s := store.Open(filepath.Join(t.TempDir(), "state.json"))
	n := &recordingNotifier{}
	return New(s, n), n
}

func TestDefaults(t *testing.T) {
	r, _ := newRegistry(t)
	if r.Language.Get() != "javascript" {
		t.Fatalf("language default: %q", r.Language.Get())
	}
	if r.Theme.Get() != "vs-dark" {
		t.Fatalf("theme default: %q", r.Theme.Get())
	}
	if r.Layout.Get() != LayoutSideBySide {
		t.Fatalf("layout default: %q", r.Layout.Get())
	}
	if !r.IgnoreWhitespace.Get() {
		t.Fatal("ignore-whitespace should default to true")
	}
	if r.FontSize.Get() != 14 {
		t.Fatalf("font size default: %d", r.FontSize.Get())
	}
	if r.Original.Get() != DefaultOriginal || r.Modified.Get() != DefaultModified {
		t.Fatal("buffers should default to the sample snippets")
	}
}

func TestSetFontSizeInputCoercion(t *testing.T) {
	r, _ := newRegistry(t)
	r.SetFontSizeInput("18")
	if r.FontSize.Get() != 18 {
		t.Fatalf("numeric input: %d", r.FontSize.Get())
	}
	r.SetFontSizeInput("large")
	if r.FontSize.Get() != DefaultFontSize {
		t.Fatalf("non-numeric input should fall back to %d, got %d", DefaultFontSize, r.FontSize.Get())
	}
}

func TestBumpFontSizeClamps(t *testing.T) {
	r, _ := newRegistry(t)
	for i := 0; i < 30; i++ {
		r.BumpFontSize(1)
	}
	if r.FontSize.Get() != MaxFontSize {
		t.Fatalf("upper clamp: %d", r.FontSize.Get())
	}
	for i := 0; i < 30; i++ {
		r.BumpFontSize(-1)
	}
	if r.FontSize.Get() != MinFontSize {
		t.Fatalf("lower clamp: %d", r.FontSize.Get())
	}
}

func TestToggles(t *testing.T) {
	r, _ := newRegistry(t)
	r.ToggleTheme()
	if r.Theme.Get() != ThemeLight {
		t.Fatalf("theme after toggle: %q", r.Theme.Get())
	}
	r.ToggleLayout()
	if r.Layout.Get() != LayoutInline {
		t.Fatalf("layout after toggle: %q", r.Layout.Get())
	}
}

func TestResetAllRestoresDefaultsAndNotifies(t *testing.T) {
	r, n := newRegistry(t)

	r.Language.Set("rust")
	r.ToggleTheme()
	r.ToggleLayout()
	r.IgnoreWhitespace.Set(false)
	r.FontSize.Set(22)
	r.Original.Set("left")
	r.Modified.Set("right")

	r.ResetAll()

	if r.Language.Get() != "javascript" ||
		r.Theme.Get() != "vs-dark" ||
		r.Layout.Get() != LayoutSideBySide ||
		!r.IgnoreWhitespace.Get() ||
		r.FontSize.Get() != 14 ||
		r.Original.Get() != DefaultOriginal ||
		r.Modified.Get() != DefaultModified {
		t.Fatal("ResetAll did not restore all defaults")
	}
	if len(n.msgs) == 0 || n.msgs[len(n.msgs)-1] != "Reset" {
		t.Fatalf("expected Reset notification, got %v", n.msgs)
	}
}

package diffpane

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"diffpad/internal/options"
)

func plain(s string) string { return ansi.Strip(s) }

func TestInlineMarksDeletesAndAdds(t *testing.T) {
	out := plain(Render("a\nb\nc", "a\nx\nc", Options{
		Layout:   options.LayoutInline,
		Language: "plaintext",
		Theme:    options.ThemeDark,
	}))
	if !strings.Contains(out, "- b") || !strings.Contains(out, "+ x") {
		t.Fatalf("missing +/- rows:\n%s", out)
	}
	if !strings.Contains(out, "  a") || !strings.Contains(out, "  c") {
		t.Fatalf("missing context rows:\n%s", out)
	}
}

func TestSideBySideHasSeparatorAndBothSides(t *testing.T) {
	out := plain(Render("left", "right", Options{
		Layout:   options.LayoutSideBySide,
		Language: "plaintext",
		Theme:    options.ThemeDark,
		Width:    60,
	}))
	if !strings.Contains(out, " │ ") {
		t.Fatalf("missing column separator:\n%s", out)
	}
	if !strings.Contains(out, "left") || !strings.Contains(out, "right") {
		t.Fatalf("missing content:\n%s", out)
	}
}

func TestPureInsertion(t *testing.T) {
	out := plain(Render("a\nc", "a\nb\nc", Options{
		Layout:   options.LayoutInline,
		Language: "plaintext",
		Theme:    options.ThemeDark,
	}))
	if !strings.Contains(out, "+ b") {
		t.Fatalf("missing inserted row:\n%s", out)
	}
	if strings.Contains(out, "- a") || strings.Contains(out, "- c") {
		t.Fatalf("context wrongly marked deleted:\n%s", out)
	}
}

func TestIgnoreWhitespaceTreatsTrimEqualLinesAsContext(t *testing.T) {
	opts := Options{
		Layout:   options.LayoutInline,
		Language: "plaintext",
		Theme:    options.ThemeDark,
	}

	out := plain(Render("  a", "a  ", opts))
	if !strings.Contains(out, "- ") || !strings.Contains(out, "+ ") {
		t.Fatalf("whitespace change should diff when flag is off:\n%s", out)
	}

	opts.IgnoreWhitespace = true
	out = plain(Render("  a", "a  ", opts))
	if strings.Contains(out, "- ") || strings.Contains(out, "+ ") {
		t.Fatalf("whitespace-only change should not diff when flag is on:\n%s", out)
	}
}

func TestIdenticalBuffersRenderAllContext(t *testing.T) {
	out := plain(Render("a\nb", "a\nb", Options{
		Layout:   options.LayoutInline,
		Language: "plaintext",
		Theme:    options.ThemeDark,
	}))
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "+ ") {
			t.Fatalf("unexpected change row %q", line)
		}
	}
}

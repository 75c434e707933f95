// Package diffpane renders the diff between the two buffers, side-by-side
// or inline, with character-level change highlights and syntax-highlighted
// context lines.
package diffpane

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"diffpad/internal/options"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
	sep     = faint.Render(" │ ")
)

// Options controls one render pass.
type Options struct {
	Layout           string // options.LayoutSideBySide or options.LayoutInline
	Language         string
	Theme            string // options.ThemeDark or options.ThemeLight
	IgnoreWhitespace bool
	Width            int
}

type rowKind int

const (
	rowSame rowKind = iota
	rowDelete
	rowAdd
	rowChange
)

// row is one aligned display line: left from the original, right from the
// modified buffer. Delete rows have no right side, add rows no left.
type row struct {
	kind  rowKind
	left  string
	right string
}

// Render produces the diff view for the given buffers and options.
func Render(original, modified string, o Options) string {
	rows := alignRows(original, modified, o.IgnoreWhitespace)
	if o.Layout == options.LayoutSideBySide {
		return sideBySide(rows, o)
	}
	return inline(rows, o)
}

// alignRows line-diffs the buffers into display rows. With ignoreWS set,
// lines differing only in leading/trailing whitespace compare equal; the
// displayed text is always the original, untrimmed line.
func alignRows(original, modified string, ignoreWS bool) []row {
	aLines := strings.Split(original, "\n")
	bLines := strings.Split(modified, "\n")

	key := func(lines []string) string {
		if !ignoreWS {
			return strings.Join(lines, "\n")
		}
		trimmed := make([]string, len(lines))
		for i, l := range lines {
			trimmed[i] = strings.TrimSpace(l)
		}
		return strings.Join(trimmed, "\n")
	}

	d := dmp.New()
	c1, c2, _ := d.DiffLinesToChars(key(aLines), key(bLines))
	diffs := d.DiffMain(c1, c2, false)

	// Each placeholder rune stands for one line; walk the diff consuming
	// lines from both sides, pairing delete+insert runs into change rows.
	var rows []row
	i, j := 0, 0
	for idx := 0; idx < len(diffs); idx++ {
		df := diffs[idx]
		n := len([]rune(df.Text))
		switch df.Type {
		case dmp.DiffEqual:
			for k := 0; k < n; k++ {
				rows = append(rows, row{kind: rowSame, left: aLines[i], right: bLines[j]})
				i++
				j++
			}
		case dmp.DiffDelete:
			m := 0
			if idx+1 < len(diffs) && diffs[idx+1].Type == dmp.DiffInsert {
				m = len([]rune(diffs[idx+1].Text))
				idx++
			}
			span := n
			if m > span {
				span = m
			}
			for k := 0; k < span; k++ {
				switch {
				case k < n && k < m:
					rows = append(rows, row{kind: rowChange, left: aLines[i+k], right: bLines[j+k]})
				case k < n:
					rows = append(rows, row{kind: rowDelete, left: aLines[i+k]})
				default:
					rows = append(rows, row{kind: rowAdd, right: bLines[j+k]})
				}
			}
			i += n
			j += m
		case dmp.DiffInsert:
			for k := 0; k < n; k++ {
				rows = append(rows, row{kind: rowAdd, right: bLines[j]})
				j++
			}
		}
	}
	return rows
}

func sideBySide(rows []row, o Options) string {
	colWidth := 40
	if o.Width > 0 {
		colWidth = (o.Width - lipgloss.Width(sep)) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}
	col := lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth).MaxHeight(1)

	var b strings.Builder
	for _, r := range rows {
		var left, right string
		switch r.kind {
		case rowSame:
			hl := highlight(r.left, o)
			left, right = hl, hl
			if r.left != r.right {
				right = highlight(r.right, o) // differs only in whitespace
			}
		case rowDelete:
			left = delLine.Render("- ") + markChars(r.left, r.left, o, true)
		case rowAdd:
			right = addLine.Render("+ ") + markChars(r.right, r.right, o, false)
		case rowChange:
			left = delLine.Render("- ") + markChars(r.left, r.right, o, true)
			right = addLine.Render("+ ") + markChars(r.left, r.right, o, false)
		}
		b.WriteString(col.Render(left))
		b.WriteString(sep)
		b.WriteString(col.Render(right))
		b.WriteString("\n")
	}
	return b.String()
}

func inline(rows []row, o Options) string {
	var b strings.Builder
	for _, r := range rows {
		switch r.kind {
		case rowSame:
			b.WriteString("  " + highlight(r.left, o) + "\n")
		case rowDelete:
			b.WriteString(delLine.Render("- ") + markChars(r.left, r.left, o, true) + "\n")
		case rowAdd:
			b.WriteString(addLine.Render("+ ") + markChars(r.right, r.right, o, false) + "\n")
		case rowChange:
			b.WriteString(delLine.Render("- ") + markChars(r.left, r.right, o, true) + "\n")
			b.WriteString(addLine.Render("+ ") + markChars(r.left, r.right, o, false) + "\n")
		}
	}
	return b.String()
}

// markChars renders one side of a changed line pair with character-level
// spans underlined. For pure delete/add rows both inputs are the same line
// and the whole text renders in the line color.
func markChars(before, after string, o Options, leftSide bool) string {
	if before == after {
		if leftSide {
			return delLine.Render(before)
		}
		return addLine.Render(after)
	}
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	diffs = d.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			if leftSide {
				b.WriteString(delChar.Render(df.Text))
			}
		case dmp.DiffInsert:
			if !leftSide {
				b.WriteString(addChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			if leftSide {
				b.WriteString(delLine.Render(df.Text))
			} else {
				b.WriteString(addLine.Render(df.Text))
			}
		}
	}
	return b.String()
}

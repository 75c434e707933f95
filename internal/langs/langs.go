// Package langs defines the fixed set of selectable languages and maps them
// to chroma lexers for context-line highlighting.
package langs

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Language pairs a stored identifier with its display name. Identifiers are
// what the state file holds, so they never change even if labels do.
type Language struct {
	ID   string
	Name string
}

// All is the selectable set, in cycle order.
var All = []Language{
	{"plaintext", "Plain Text"},
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"json", "JSON"},
	{"css", "CSS"},
	{"html", "HTML"},
	{"markdown", "Markdown"},
	{"python", "Python"},
	{"go", "Go"},
	{"java", "Java"},
	{"rust", "Rust"},
	{"php", "PHP"},
	{"ruby", "Ruby"},
	{"c", "C"},
	{"cpp", "C++"},
	{"csharp", "C#"},
	{"sql", "SQL"},
	{"yaml", "YAML"},
}

// Valid reports whether id is a member of the fixed set.
func Valid(id string) bool {
	for _, l := range All {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Name returns the display name for id, or the id itself when unknown.
func Name(id string) string {
	for _, l := range All {
		if l.ID == id {
			return l.Name
		}
	}
	return id
}

// Next returns the identifier after id in cycle order, wrapping around.
// Unknown ids restart the cycle at the first language.
func Next(id string) string {
	for i, l := range All {
		if l.ID == id {
			return All[(i+1)%len(All)].ID
		}
	}
	return All[0].ID
}

// Lexer returns the chroma lexer for id. Plain text and anything chroma
// does not recognize fall back to the passthrough lexer.
func Lexer(id string) chroma.Lexer {
	if id == "plaintext" {
		return lexers.Fallback
	}
	if l := lexers.Get(id); l != nil {
		return l
	}
	return lexers.Fallback
}

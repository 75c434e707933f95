package langs

import "testing"

func TestNextCyclesThroughAll(t *testing.T) {
	seen := map[string]bool{}
	id := All[0].ID
	for range All {
		if seen[id] {
			t.Fatalf("cycle revisited %q before covering the set", id)
		}
		seen[id] = true
		id = Next(id)
	}
	if id != All[0].ID {
		t.Fatalf("cycle did not wrap: ended at %q", id)
	}
}

func TestNextUnknownRestartsCycle(t *testing.T) {
	if got := Next("klingon"); got != All[0].ID {
		t.Fatalf("got %q, want %q", got, All[0].ID)
	}
}

func TestValid(t *testing.T) {
	if !Valid("javascript") || !Valid("cpp") {
		t.Fatal("expected members to be valid")
	}
	if Valid("klingon") {
		t.Fatal("unexpected member")
	}
}

func TestLexerNeverNil(t *testing.T) {
	for _, l := range All {
		if Lexer(l.ID) == nil {
			t.Fatalf("nil lexer for %q", l.ID)
		}
	}
	if Lexer("klingon") == nil {
		t.Fatal("nil lexer for unknown id")
	}
}

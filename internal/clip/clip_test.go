package clip

import (
	"errors"
	"testing"
)

func TestCopyTextSuccess(t *testing.T) {
	var got string
	a := NewWithWriter(func(s string) error {
		got = s
		return nil
	})
	if !a.CopyText("hello") {
		t.Fatal("expected success")
	}
	if got != "hello" {
		t.Fatalf("writer received %q", got)
	}
}

func TestCopyTextFailureReturnsFalse(t *testing.T) {
	a := NewWithWriter(func(string) error {
		return errors.New("no clipboard utilities found")
	})
	if a.CopyText("hello") {
		t.Fatal("expected failure")
	}
}

func TestCopyTextAbsorbsPanic(t *testing.T) {
	a := NewWithWriter(func(string) error {
		panic("platform clipboard exploded")
	})
	if a.CopyText("hello") {
		t.Fatal("expected failure on panic")
	}
}

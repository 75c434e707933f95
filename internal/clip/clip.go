// Package clip wraps the system clipboard behind a best-effort boolean API.
package clip

import (
	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
)

// Adapter writes text to the clipboard. All failures (no display, tool
// missing, permission denied) collapse into a false return; nothing
// propagates past this boundary.
type Adapter struct {
	write func(string) error
}

// New returns an Adapter backed by the platform clipboard.
func New() *Adapter {
	return &Adapter{write: clipboard.WriteAll}
}

// NewWithWriter returns an Adapter with a custom write func. Used by tests
// to simulate clipboard failure without a real clipboard.
func NewWithWriter(write func(string) error) *Adapter {
	return &Adapter{write: write}
}

// CopyText attempts a clipboard write and reports success.
func (a *Adapter) CopyText(text string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Debug("clipboard write panicked")
			ok = false
		}
	}()
	if err := a.write(text); err != nil {
		logrus.WithError(err).Debug("clipboard write failed")
		return false
	}
	return true
}

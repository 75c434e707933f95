// Package bufsync keeps the two persisted text buffers consistent with a
// live widget's editable regions. The widget is the presentation surface;
// the in-memory fields are authoritative for persistence.
package bufsync

// Subscription is a disposable handle for one content-changed listener.
type Subscription interface {
	Dispose()
}

// Region is one editable side of the hosted diff widget.
type Region interface {
	Text() string
	OnChange(fn func()) Subscription
}

// Widget exposes the two editable regions of a mounted diff widget. The
// synchronizer never constructs widgets; it only subscribes to them.
type Widget interface {
	Original() Region
	Modified() Region
}

// Side selects one of the two buffers.
type Side int

const (
	Original Side = iota
	Modified
)

func (s Side) String() string {
	if s == Original {
		return "original"
	}
	return "modified"
}

// TextField is the buffer binding the synchronizer writes through;
// *store.Field[string] satisfies it.
type TextField interface {
	Get() string
	Set(string)
}

// Notifier reports copy outcomes to the user.
type Notifier interface {
	Show(msg string)
}

// Copier writes text to the clipboard, best effort.
type Copier interface {
	CopyText(text string) bool
}

// Synchronizer owns the live subscription set for the current widget. At
// most one set is active: Attach releases the previous one before
// subscribing, unconditionally, so listeners cannot accumulate across
// remounts.
type Synchronizer struct {
	orig, mod TextField
	notifier  Notifier
	copier    Copier
	subs      []Subscription
}

func New(orig, mod TextField, notifier Notifier, copier Copier) *Synchronizer {
	return &Synchronizer{orig: orig, mod: mod, notifier: notifier, copier: copier}
}

// Attach subscribes to both regions of w, first releasing any held
// subscriptions, even when w is the same widget as before.
func (s *Synchronizer) Attach(w Widget) {
	s.Detach()
	or, mr := w.Original(), w.Modified()
	s.subs = append(s.subs,
		or.OnChange(func() { s.pull(or, s.orig) }),
		mr.OnChange(func() { s.pull(mr, s.mod) }),
	)
}

// pull copies region text into the field only when it actually changed.
// The dedup stops the feedback loop: a redundant set would trigger a
// persistence write and a re-render for nothing.
func (s *Synchronizer) pull(r Region, f TextField) {
	if t := r.Text(); t != f.Get() {
		f.Set(t)
	}
}

// Detach disposes every held subscription. Safe to call when none are
// active.
func (s *Synchronizer) Detach() {
	for _, sub := range s.subs {
		sub.Dispose()
	}
	s.subs = nil
}

// Attached reports whether a subscription set is live.
func (s *Synchronizer) Attached() bool { return len(s.subs) > 0 }

// Text returns the stored value of one buffer.
func (s *Synchronizer) Text(side Side) string {
	if side == Original {
		return s.orig.Get()
	}
	return s.mod.Get()
}

// Swap exchanges the two buffers in one logical step; no reader between the
// two sets can run, since everything happens on the update goroutine.
func (s *Synchronizer) Swap() {
	o, m := s.orig.Get(), s.mod.Get()
	s.orig.Set(m)
	s.mod.Set(o)
}

// Copy sends one buffer to the clipboard and reports the outcome. Buffer
// state is never mutated here.
func (s *Synchronizer) Copy(side Side) {
	if s.copier.CopyText(s.Text(side)) {
		s.notifier.Show("Copied")
	} else {
		s.notifier.Show("Copy failed")
	}
}

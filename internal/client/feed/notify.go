package feed

import "sync"

// Notifier delivers "the last visible item is near the edge" signals, the
// terminal-side analog of a viewport intersection observer.
//
// Subscribe registers fn and returns a cancel func. Implementations must
// not invoke fn synchronously from within Subscribe; the Feed re-subscribes
// while holding its own lock.
type Notifier interface {
	Subscribe(fn func()) (cancel func())
}

// Attach wires a notifier into the feed. The feed keeps at most one live
// subscription: it is torn down and re-established whenever the last
// visible item changes (page change, term change, watermark advance), and
// not re-established once the window covers the whole candidate set.
func (f *Feed) Attach(n Notifier) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifier = n
	f.rearmLocked()
}

// rearmLocked replaces the current subscription. Called with f.mu held.
func (f *Feed) rearmLocked() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if f.notifier == nil {
		return
	}
	if f.state != Ready {
		return
	}
	if f.watermark >= len(f.filteredLocked()) {
		return
	}
	f.cancel = f.notifier.Subscribe(f.onEndProximity)
}

// onEndProximity handles one proximity signal: advance the window and
// re-arm for the new last visible item.
func (f *Feed) onEndProximity() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Ready {
		return
	}
	if f.advanceLocked() {
		f.rearmLocked()
	}
}

// SignalNotifier is a manual Notifier: Fire delivers one signal to the
// current subscriber, if any. The CLI fires it for the "more" command;
// tests use it to simulate scroll events.
type SignalNotifier struct {
	mu sync.Mutex
	id uint64
	fn func()
}

func NewSignalNotifier() *SignalNotifier {
	return &SignalNotifier{}
}

// Subscribe installs fn, replacing any previous subscriber so at most one
// is ever live. The returned cancel clears only its own registration: a
// stale cancel invoked after a newer Subscribe is a no-op.
func (n *SignalNotifier) Subscribe(fn func()) (cancel func()) {
	n.mu.Lock()
	n.id++
	token := n.id
	n.fn = fn
	n.mu.Unlock()
	return func() {
		n.mu.Lock()
		if n.id == token {
			n.fn = nil
		}
		n.mu.Unlock()
	}
}

// Fire delivers one signal outside the lock, so subscribers may call back
// into Subscribe/cancel freely.
func (n *SignalNotifier) Fire() {
	n.mu.Lock()
	fn := n.fn
	n.mu.Unlock()
	if fn != nil {
		fn()
	}
}

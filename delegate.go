package disposer

// Delegate adapts a zero-argument cleanup callback to the Disposable contract.
// It is not safe for concurrent use, see SafeDelegate.
type Delegate struct {
	disposed bool
	callback func()
}

func NewDelegate(callback func()) *Delegate {
	return &Delegate{callback: callback}
}

func (t *Delegate) IsDisposed() bool {
	return t.disposed
}

// Dispose invokes the callback on the first call and does nothing on subsequent calls.
// The disposed state is set before the callback runs, so a callback that re-enters
// Dispose or reads IsDisposed observes the delegate as already disposed.
// A panic raised by the callback propagates to the caller, the delegate stays disposed.
func (t *Delegate) Dispose() {
	if t.disposed {
		return
	}

	callback := t.callback
	t.disposed = true
	t.callback = nil
	if callback != nil {
		callback()
	}
}

package disposer

// Observable is a Disposable that signals completion of its teardown.
// The channel returned by Disposed is closed exactly once, after the first
// Dispose call finished its work (same shape as context.Done).
type Observable interface {
	Disposable
	Disposed() <-chan struct{}
}

// ObservableDelegate is a Delegate that closes a channel once its callback ran.
type ObservableDelegate struct {
	Delegate
	done chan struct{}
}

func NewObservableDelegate(callback func()) *ObservableDelegate {
	return &ObservableDelegate{
		Delegate: Delegate{callback: callback},
		done:     make(chan struct{}),
	}
}

func (t *ObservableDelegate) Disposed() <-chan struct{} {
	return t.done
}

func (t *ObservableDelegate) Dispose() {
	if t.IsDisposed() {
		return
	}

	t.Delegate.Dispose()
	close(t.done)
}

// ObservableCollection is a Collection that closes a channel once all members were disposed.
type ObservableCollection struct {
	Collection
	done chan struct{}
}

func NewObservableCollection(items ...Disposable) *ObservableCollection {
	t := &ObservableCollection{done: make(chan struct{})}
	for _, item := range items {
		t.add(item)
	}
	return t
}

func (t *ObservableCollection) Disposed() <-chan struct{} {
	return t.done
}

func (t *ObservableCollection) Dispose() {
	if t.IsDisposed() {
		return
	}

	t.Collection.Dispose()
	close(t.done)
}

package disposer

import (
	"sync"

	"github.com/develar/errors"
	"go.uber.org/atomic"
)

// SafeDelegate is a Delegate variant that is safe for concurrent use.
// The first Dispose wins a compare-and-swap on the disposed flag, so the callback
// runs at most once even when Dispose is called from multiple goroutines.
type SafeDelegate struct {
	disposed atomic.Bool

	// written once at construction, read only by the CAS winner
	callback func()
}

func NewSafeDelegate(callback func()) *SafeDelegate {
	return &SafeDelegate{callback: callback}
}

func (t *SafeDelegate) IsDisposed() bool {
	return t.disposed.Load()
}

func (t *SafeDelegate) Dispose() {
	if !t.disposed.CAS(false, true) {
		return
	}

	callback := t.callback
	t.callback = nil
	if callback != nil {
		callback()
	}
}

// SafeCollection is a Collection variant guarded by a mutex.
type SafeCollection struct {
	collection Collection

	lock *sync.Mutex
}

func NewSafeCollection(items ...Disposable) *SafeCollection {
	t := &SafeCollection{lock: &sync.Mutex{}}
	for _, item := range items {
		t.collection.add(item)
	}
	return t
}

func (t *SafeCollection) IsDisposed() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.collection.disposed
}

func (t *SafeCollection) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.collection.Len()
}

func (t *SafeCollection) Contains(item Disposable) bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.collection.Contains(item)
}

func (t *SafeCollection) Add(item Disposable) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.collection.disposed {
		return errors.WithStack(ErrDisposed)
	}
	t.collection.add(item)
	return nil
}

func (t *SafeCollection) Remove(item Disposable) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.collection.Remove(item)
}

func (t *SafeCollection) Clear() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.collection.Clear()
}

// Dispose captures the membership and clears the bookkeeping under the lock, then
// disposes the members outside it, so a member may call back into the collection
// without deadlock. Concurrent Dispose callers race on the disposed flag, the loser
// returns immediately without waiting for the winner's teardown to finish.
func (t *SafeCollection) Dispose() {
	t.lock.Lock()

	if t.collection.disposed {
		t.lock.Unlock()
		return
	}

	items := t.collection.items
	t.collection.disposed = true
	t.collection.items = nil
	t.collection.members = nil
	t.lock.Unlock()

	for _, item := range items {
		item.Dispose()
	}
}

package disposer

import (
	"github.com/develar/errors"
)

// Collection is an insertion-ordered set of disposables that are disposed together.
// Membership is unique per reference identity — adding an already present item is
// a no-op and later disposal invokes each member once, in first-insertion order.
// It is not safe for concurrent use, see SafeCollection.
type Collection struct {
	disposed bool
	items    []Disposable
	members  map[Disposable]struct{}
}

func NewCollection(items ...Disposable) *Collection {
	t := &Collection{}
	for _, item := range items {
		t.add(item)
	}
	return t
}

func (t *Collection) IsDisposed() bool {
	return t.disposed
}

// Len returns the number of members. It is 0 once the collection is disposed.
func (t *Collection) Len() int {
	return len(t.items)
}

// Contains reports whether item is a member. It is false once the collection is disposed.
func (t *Collection) Contains(item Disposable) bool {
	_, ok := t.members[item]
	return ok
}

// Add inserts item if not already a member. Returns ErrDisposed if the collection is disposed.
func (t *Collection) Add(item Disposable) error {
	if t.disposed {
		return errors.WithStack(ErrDisposed)
	}

	t.add(item)
	return nil
}

func (t *Collection) add(item Disposable) {
	if _, ok := t.members[item]; ok {
		return
	}

	if t.members == nil {
		t.members = make(map[Disposable]struct{})
	}
	t.members[item] = struct{}{}
	t.items = append(t.items, item)
}

// Remove removes item without disposing it, a non-member is a no-op.
// Returns ErrDisposed if the collection is disposed.
func (t *Collection) Remove(item Disposable) error {
	if t.disposed {
		return errors.WithStack(ErrDisposed)
	}

	if _, ok := t.members[item]; !ok {
		return nil
	}

	delete(t.members, item)
	for i, existing := range t.items {
		if existing == item {
			t.items = append(t.items[:i], t.items[i+1:]...)
			break
		}
	}
	return nil
}

// Clear forgets all members without disposing them.
// Returns ErrDisposed if the collection is disposed.
func (t *Collection) Clear() error {
	if t.disposed {
		return errors.WithStack(ErrDisposed)
	}

	t.items = nil
	t.members = nil
	return nil
}

// Dispose disposes every member in insertion order. The collection transitions to the
// disposed state before members are torn down, so further Add/Remove/Clear calls fail
// even when issued from inside a member's own disposal. A panic raised by a member
// propagates immediately and leaves the remaining members undisposed.
func (t *Collection) Dispose() {
	if t.disposed {
		return
	}

	items := t.items
	t.disposed = true
	t.items = nil
	t.members = nil

	for _, item := range items {
		item.Dispose()
	}
}

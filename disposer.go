package disposer

import (
	"io"
	"sync"

	"github.com/develar/errors"
	"go.uber.org/zap"
)

// Disposer collects cleanup callbacks and runs them together on Dispose,
// in the order they were added. It is safe for concurrent use.
// Unlike Collection it does not deduplicate — every added callback runs once.
type Disposer struct {
	disposables []func()
	disposed    bool

	lock *sync.Mutex
}

func NewDisposer() *Disposer {
	return &Disposer{lock: &sync.Mutex{}}
}

func (t *Disposer) IsDisposed() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.disposed
}

// Add registers a cleanup callback. Returns ErrDisposed if Dispose already ran.
func (t *Disposer) Add(disposable func()) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.disposed {
		return errors.WithStack(ErrDisposed)
	}

	t.disposables = append(t.disposables, disposable)
	return nil
}

// AddCloser registers closer to be closed on disposal.
// The close error is logged, not returned (see Close).
func (t *Disposer) AddCloser(closer io.Closer, logger *zap.Logger) error {
	return t.Add(func() {
		Close(closer, logger)
	})
}

func (t *Disposer) Dispose() {
	t.lock.Lock()

	if t.disposed {
		t.lock.Unlock()
		return
	}

	disposables := t.disposables
	t.disposed = true
	t.disposables = nil
	t.lock.Unlock()

	for _, disposable := range disposables {
		disposable()
	}
}

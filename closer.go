package disposer

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Close closes c and logs the error if any, ignoring os.ErrClosed.
// For defer and teardown paths where the error cannot be returned.
func Close(c io.Closer, logger *zap.Logger) {
	err := c.Close()
	if err != nil && err != os.ErrClosed {
		logger.Error("cannot close", zap.Error(err))
	}
}

// FromCloser adapts an io.Closer to the Disposable contract.
// Dispose cannot return the close error, so it is logged instead.
func FromCloser(c io.Closer, logger *zap.Logger) *Delegate {
	return NewDelegate(func() {
		Close(c, logger)
	})
}

// AsCloser adapts a Disposable to an io.Closer. Close always returns nil.
func AsCloser(disposable Disposable) io.Closer {
	return &disposableCloser{disposable: disposable}
}

type disposableCloser struct {
	disposable Disposable
}

func (t *disposableCloser) Close() error {
	t.disposable.Dispose()
	return nil
}

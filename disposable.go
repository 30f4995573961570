// Package disposer provides a minimal idiom for deterministic resource cleanup:
// a Disposable contract that values implement to release resources exactly once,
// a Delegate that adapts a plain callback to that contract and a Collection that
// disposes an ordered group of disposables together.
package disposer

// Disposable is implemented by values that release resources exactly once.
type Disposable interface {
	// IsDisposed reports whether Dispose already ran.
	// It is side-effect free and safe to call at any point of the lifecycle.
	IsDisposed() bool

	// Dispose releases the held resources.
	// Only the first call has effect, subsequent calls are no-ops.
	Dispose()
}

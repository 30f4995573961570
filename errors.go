package disposer

import (
	"github.com/develar/errors"
)

// ErrDisposed is returned by mutating operations invoked after disposal.
// Returned errors carry a stack, use errors.Cause to compare.
var ErrDisposed = errors.New("already disposed")

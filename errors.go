package void2d

import (
	"fmt"

	"github.com/pkg/errors"
)

// NoSlot is the slot, unit or batch index returned along with an error by
// operations that hand out slots.
//
const NoSlot = -1

// Errors returned by void2d. Use errors.Cause to test for them when they have
// been wrapped.
var (
	// ErrNoContext is returned when a GPU resource pool is created before the
	// graphics context is initialized.
	ErrNoContext = errors.New("graphics context not initialized")
	// ErrCapacity signals that a fixed size pool has no free slot left. It is
	// recoverable: callers may retry with an explicit slot or drop the request.
	ErrCapacity = errors.New("no free slot")
	// ErrLayoutDefined is returned when defining the vertex layout of a slot twice.
	ErrLayoutDefined = errors.New("vertex layout already defined")
	// ErrLayoutUndefined is returned when using a slot without a vertex layout.
	ErrLayoutUndefined = errors.New("vertex layout not defined")
	// ErrStride is returned when appending a number of floats that is not a
	// multiple of the vertex stride.
	ErrStride = errors.New("vertex data does not match layout stride")
	// ErrElementRange is returned when an element index refers to a vertex
	// outside of the vertices appended with it.
	ErrElementRange = errors.New("element index out of range")
	// ErrNilPixels is returned by AddTexture when no pixel data is given.
	ErrNilPixels = errors.New("nil pixel data")
	// ErrState is returned by Engine methods called in the wrong lifecycle state.
	ErrState = errors.New("invalid engine state")
)

// IndexError reports an out of range slot or batch index. Unlike ErrCapacity,
// it denotes a programming error at the call site.
//
type IndexError struct {
	What  string
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Limit)
}

// IsIndexError returns true if the cause of err is an *IndexError.
//
func IsIndexError(err error) bool {
	_, ok := errors.Cause(err).(*IndexError)
	return ok
}

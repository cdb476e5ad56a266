package delegate

import "errors"

// Common errors.
//
// These are the Go rendering of the runtime's three-valued status contract:
// nil is success, an error wrapping ErrDelegate is a delegate-specific
// failure, anything else is a generic runtime error.
var (
	// ErrDelegate marks failures local to delegate execution, such as an
	// impossible operand size combination for a claimed node.
	ErrDelegate = errors.New("delegate error")

	// ErrUnsupportedType reports an operand element type the backend has no
	// kernel for.
	ErrUnsupportedType = errors.New("unsupported tensor type")
)

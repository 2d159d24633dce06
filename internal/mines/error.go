package mines

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid game config")
	ErrOutOfBounds   = errors.New("cell out of bounds")
)

// AssertionError is raised (via panic) when the engine is driven in an order
// that can never happen through [Session].
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "mines: assertion failed: " + e.message
}

func assert(ok bool, message string) {
	if !ok {
		Log.Error("assertion failed", "message", message)
		panic(AssertionError{message})
	}
}

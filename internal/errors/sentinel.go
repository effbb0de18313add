package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrNameNotResolved indicates a panel name has no matching module.
	ErrNameNotResolved = errors.New("panel name not resolved")

	// ErrModuleNotFound indicates a module is not active in the registry.
	ErrModuleNotFound = errors.New("module not found")

	// ErrPrecondition indicates a caller broke an operation's precondition,
	// such as navigating from a module that is not active.
	ErrPrecondition = errors.New("precondition violation")

	// ErrValidation indicates invalid configuration or flag values.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or other resource was not found.
	ErrNotFound = errors.New("not found")
)

package curly

import "errors"

// Sentinel errors for programmatic error handling. All errors returned by
// the formatter wrap one of these, so callers can match with errors.Is.
var (
	// ErrInvalidSpec reports a malformed format specifier after ':'.
	ErrInvalidSpec = errors.New("invalid format spec")

	// ErrInvalidPlaceholder reports a malformed argument reference
	// between '{' and '}'.
	ErrInvalidPlaceholder = errors.New("invalid placeholder")

	// ErrUnterminated reports a '{' with no matching '}'.
	ErrUnterminated = errors.New("unterminated placeholder")

	// ErrMissingArgument reports an index out of range or a name with no
	// matching argument.
	ErrMissingArgument = errors.New("missing argument")
)

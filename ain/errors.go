package ain

import "errors"

// Sentinel errors returned (wrapped) by constructors and operations.
// Match them with errors.Is; the wrapped message carries the offending
// values.
var (
	// ErrValidation reports bounds that do not form a proper interval.
	ErrValidation = errors.New("not a proper interval")

	// ErrDomain reports an operand outside the mathematical domain of
	// the operation, such as a logarithm touching zero or a divisor
	// interval straddling zero.
	ErrDomain = errors.New("outside operation domain")

	// ErrComplexResult reports an operation whose exact result would
	// leave the real line, such as a fractional power of a negative
	// bound.
	ErrComplexResult = errors.New("result is not real")

	// ErrRange reports an argument outside its documented range, such
	// as a quantile probability beyond [0, 1] or an unsupported
	// operand type.
	ErrRange = errors.New("argument out of range")
)

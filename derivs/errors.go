package derivs

import "errors"

var (
	// ErrUndefinedDerivative indicates the model cannot be differentiated at the
	// requested state (non-positive T or ρ, a model domain violation, or a
	// non-finite result).
	ErrUndefinedDerivative = errors.New("derivs: derivative undefined at state")
	// ErrUnsupportedOrder indicates a derivative order beyond what the back end carries.
	ErrUnsupportedOrder = errors.New("derivs: unsupported derivative order")
	// ErrUnknownBackend indicates a Backend value with no implementation.
	ErrUnknownBackend = errors.New("derivs: unknown backend")
)

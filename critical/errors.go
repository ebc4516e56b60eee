package critical

import "errors"

var (
	// ErrSingularJacobian indicates the 2×2 Newton system could not be solved.
	ErrSingularJacobian = errors.New("critical: singular or ill-conditioned Jacobian")
	// ErrInvalidFlags indicates solver configuration outside its documented range.
	ErrInvalidFlags = errors.New("critical: invalid solver flags")
)

package utils

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrSingular indicates a linear system whose matrix is singular, ill-conditioned
// beyond mat.ConditionTolerance, or contains NaN entries.
var ErrSingular = errors.New("utils: singular or ill-conditioned system")

// SolveDense solves a·x = b for square a with a partially pivoted LU
// factorization. The matrices used here are small (2×2 Newton Jacobians), so
// no factorization is retained between calls.
func SolveDense(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r != c || b.Len() != r {
		return nil, fmt.Errorf("%w: shape %dx%d with rhs length %d", ErrSingular, r, c, b.Len())
	}
	if floats.HasNaN(a.RawMatrix().Data) || floats.HasNaN(b.RawVector().Data) {
		return nil, fmt.Errorf("%w: NaN in system", ErrSingular)
	}

	var lu mat.LU
	lu.Factorize(a)
	x := mat.NewVecDense(r, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}
	return x, nil
}

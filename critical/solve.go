package critical

import (
	"fmt"

	"github.com/notargets/critpure/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Solution is the outcome of a SolvePureDetailed call
type Solution struct {
	T, Rho     float64
	Iterations int
	// StepNorms holds the Euclidean norm of each Newton step (ΔT, Δρ)
	StepNorms []float64
	// Converged is set only when Flags.Tolerance > 0 stopped the iteration early
	Converged bool
}

// SolvePure refines (T0, ρ0) into the critical point (Tc, ρc) of the fluid
// selected by flags. nil flags means DefaultFlags().
//
// Exactly flags.MaxSteps Newton steps are taken, with no convergence test,
// unless flags.Tolerance is positive. The result is returned whether or not
// the iteration actually converged.
func SolvePure(p DerivativeProvider, T0, rho0 float64, flags *Flags) (Tc, rhoc float64, err error) {
	sol, err := SolvePureDetailed(p, T0, rho0, flags)
	if err != nil {
		return 0, 0, err
	}
	return sol.T, sol.Rho, nil
}

// SolvePureDetailed is SolvePure that also reports the iteration history
func SolvePureDetailed(p DerivativeProvider, T0, rho0 float64, flags *Flags) (*Solution, error) {
	f := DefaultFlags()
	if flags != nil {
		f = *flags
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	x := mat.NewVecDense(2, []float64{T0, rho0})
	rhs := mat.NewVecDense(2, nil)
	sol := &Solution{StepNorms: make([]float64, 0, f.MaxSteps)}

	for counter := 0; counter < f.MaxSteps; counter++ {
		T, rho := x.AtVec(0), x.AtVec(1)
		resids, J, err := ConditionsJacobian(p, T, rho, f.Selection)
		if err != nil {
			return nil, fmt.Errorf("newton step %d: %w", counter, err)
		}
		rhs.ScaleVec(-1, resids)
		v, err := utils.SolveDense(J, rhs)
		if err != nil {
			return nil, fmt.Errorf("newton step %d: %w: %w", counter, ErrSingularJacobian, err)
		}
		x.AddVec(x, v)

		sol.Iterations++
		sol.StepNorms = append(sol.StepNorms, floats.Norm(v.RawVector().Data, 2))
		if f.Logger != nil {
			f.Logger.Printf("critical: step %d: T = %.12g rho = %.12g dpdrho = %.3e d2pdrho2 = %.3e |dx| = %.3e",
				counter, x.AtVec(0), x.AtVec(1), resids.AtVec(0), resids.AtVec(1), sol.StepNorms[counter])
		}
		if f.Tolerance > 0 &&
			scalar.EqualWithinRel(T, x.AtVec(0), f.Tolerance) &&
			scalar.EqualWithinRel(rho, x.AtVec(1), f.Tolerance) {
			sol.Converged = true
			break
		}
	}

	sol.T, sol.Rho = x.AtVec(0), x.AtVec(1)
	return sol, nil
}

// Package critical locates the liquid-vapor critical point of a pure fluid
// and extrapolates near-critical coexisting densities.
//
// The criticality conditions are
//
//	(∂p/∂ρ)_T = 0,   (∂²p/∂ρ²)_T = 0
//
// evaluated from reduced residual Helmholtz-energy derivatives supplied by a
// DerivativeProvider (see package derivs). ConditionsJacobian assembles the
// two residuals and their Jacobian with respect to (T, ρ); SolvePure runs a
// fixed number of Newton steps on them; ExtrapolateFromCritical applies the
// classical square-root law below Tc.
//
// Usage:
//
//	model, _ := models.NewVdWFromCritical(150.687, 4.863e6)
//	tdx, _ := derivs.New(model, derivs.Taylor)
//	Tc, rhoc, err := critical.SolvePure(tdx, 135, 1.2e4, nil)
//	rhoL, rhoV, err := critical.ExtrapolateFromCritical(tdx, Tc, rhoc, 0.99*Tc)
//
// SolvePure is not a globally convergent root finder: it expects a starting
// point near the solution and reports nothing about convergence unless the
// opt-in Flags.Tolerance is set.
package critical

import (
	"github.com/notargets/critpure/derivs"
	"gonum.org/v1/gonum/mat"
)

// DerivativeProvider is the capability the solver consumes. *derivs.TDX
// implements it.
type DerivativeProvider interface {
	R(molefrac []float64) float64
	Ar0n(n int, T, rho float64, molefrac []float64) ([]float64, error)
	Arxy(itau, idelta int, T, rho float64, molefrac []float64) (float64, error)
	// ArMatrix returns Ar[i,j] for i ≤ maxTau in one evaluation; row 0 holds
	// Ar0n(4)
	ArMatrix(maxTau int, T, rho float64, molefrac []float64) (*mat.Dense, error)
}

var _ DerivativeProvider = (*derivs.TDX)(nil)

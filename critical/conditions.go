package critical

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ConditionsJacobian evaluates the pure-fluid criticality conditions at (T, ρ)
//
//	r = [ (∂p/∂ρ)_T, (∂²p/∂ρ²)_T ]
//
// and their Jacobian with respect to T (column 0) and ρ (column 1). Both
// residuals vanish at the critical point.
//
// The derivatives are taken in τ = 1/T and converted to T here; the -1/T²
// chain factor is already part of the closed forms below.
func ConditionsJacobian(p DerivativeProvider, T, rho float64, sel Selection) (*mat.VecDense, *mat.Dense, error) {
	z, err := sel.moleFractions()
	if err != nil {
		return nil, nil, err
	}
	R := p.R(z)

	// row 0 is Ar0k, row 1 is Ar1k: first order in τ, k-th order in ρ
	ar, err := p.ArMatrix(1, T, rho, z)
	if err != nil {
		return nil, nil, fmt.Errorf("criticality conditions: %w", err)
	}
	ders := ar.RawRowView(0)

	dpdrho := R * T * (1 + 2*ders[1] + ders[2])
	d2pdrho2 := R * T / rho * (2*ders[1] + 4*ders[2] + ders[3])
	resids := mat.NewVecDense(2, []float64{dpdrho, d2pdrho2})

	Ar11, Ar12, Ar13 := ar.At(1, 1), ar.At(1, 2), ar.At(1, 3)

	d3pdrho3 := R * T / (rho * rho) * (6*ders[2] + 6*ders[3] + ders[4])
	dDpdrhoDT := R * (-(Ar12 + 2*Ar11) + ders[2] + 2*ders[1] + 1)
	dD2pdrho2DT := R / rho * (-(Ar13 + 4*Ar12 + 2*Ar11) + ders[3] + 4*ders[2] + 2*ders[1])

	// ∂(dp/dρ)/∂ρ and ∂(d²p/dρ²)/∂ρ are the next density derivatives
	J := mat.NewDense(2, 2, []float64{
		dDpdrhoDT, d2pdrho2,
		dD2pdrho2DT, d3pdrho3,
	})
	return resids, J, nil
}

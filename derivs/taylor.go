package derivs

import (
	"fmt"

	"github.com/notargets/critpure/autodiff"
	"gonum.org/v1/gonum/mat"
)

// alphaRJet evaluates αr with both variables seeded as τ(1+ε) and ρ(1+η), so
// that the jet derivatives are already the reduced Ar[i,j].
func (d *TDX) alphaRJet(T, rho float64, molefrac []float64) (autodiff.Jet, error) {
	tau := autodiff.Scaled(1/T, autodiff.Tau)
	delta := autodiff.Scaled(rho, autodiff.Rho)
	ar, err := d.model.AlphaR(tau, delta, molefrac)
	if err != nil {
		return autodiff.Jet{}, fmt.Errorf("%w: %w", ErrUndefinedDerivative, err)
	}
	return ar, nil
}

func (d *TDX) taylorAr0n(n int, T, rho float64, molefrac []float64) ([]float64, error) {
	ar, err := d.alphaRJet(T, rho, molefrac)
	if err != nil {
		return nil, err
	}
	ders := make([]float64, n+1)
	for k := range ders {
		ders[k] = ar.Derivative(0, k)
	}
	return ders, nil
}

func (d *TDX) taylorArxy(itau, idelta int, T, rho float64, molefrac []float64) (float64, error) {
	ar, err := d.alphaRJet(T, rho, molefrac)
	if err != nil {
		return 0, err
	}
	return ar.Derivative(itau, idelta), nil
}

func (d *TDX) taylorArMatrix(maxTau int, T, rho float64, molefrac []float64) (*mat.Dense, error) {
	ar, err := d.alphaRJet(T, rho, molefrac)
	if err != nil {
		return nil, err
	}
	m := mat.NewDense(maxTau+1, autodiff.MaxOrder+1, nil)
	for i := 0; i <= maxTau; i++ {
		for j := 0; i+j <= autodiff.MaxOrder; j++ {
			m.Set(i, j, ar.Derivative(i, j))
		}
	}
	return m, nil
}

package derivs

import (
	"fmt"
	"math"

	"github.com/notargets/critpure/autodiff"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Fourth-order accurate central stencils, indexed by derivative order. The
// step is relative: the function is sampled at x·(1 + Step·Loc), which makes
// the result the reduced derivative x^k d^k/dx^k directly.
var stencils = [autodiff.MaxOrder + 1]fd.Formula{
	1: {
		Stencil: []fd.Point{
			{Loc: -2, Coeff: 1. / 12}, {Loc: -1, Coeff: -2. / 3},
			{Loc: 1, Coeff: 2. / 3}, {Loc: 2, Coeff: -1. / 12},
		},
		Derivative: 1,
		Step:       1.e-3,
	},
	2: {
		Stencil: []fd.Point{
			{Loc: -2, Coeff: -1. / 12}, {Loc: -1, Coeff: 4. / 3}, {Loc: 0, Coeff: -5. / 2},
			{Loc: 1, Coeff: 4. / 3}, {Loc: 2, Coeff: -1. / 12},
		},
		Derivative: 2,
		Step:       2.e-3,
	},
	3: {
		Stencil: []fd.Point{
			{Loc: -3, Coeff: 1. / 8}, {Loc: -2, Coeff: -1}, {Loc: -1, Coeff: 13. / 8},
			{Loc: 1, Coeff: -13. / 8}, {Loc: 2, Coeff: 1}, {Loc: 3, Coeff: -1. / 8},
		},
		Derivative: 3,
		Step:       5.e-3,
	},
	4: {
		Stencil: []fd.Point{
			{Loc: -3, Coeff: -1. / 6}, {Loc: -2, Coeff: 2}, {Loc: -1, Coeff: -13. / 2}, {Loc: 0, Coeff: 28. / 3},
			{Loc: 1, Coeff: -13. / 2}, {Loc: 2, Coeff: 2}, {Loc: 3, Coeff: -1. / 6},
		},
		Derivative: 4,
		Step:       1.e-2,
	},
}

// sampler evaluates αr(τ(1+u), ρ(1+v)) in plain floating point, remembering
// the first model error encountered.
type sampler struct {
	d        *TDX
	tau, rho float64
	molefrac []float64
	err      error
}

func (s *sampler) at(u, v float64) float64 {
	ar, err := s.d.model.AlphaR(
		autodiff.Constant(s.tau*(1+u)), autodiff.Constant(s.rho*(1+v)), s.molefrac)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return math.NaN()
	}
	return ar.Value()
}

// reduced returns the idelta-th reduced density derivative at fixed u
func (s *sampler) reduced(u float64, idelta int) float64 {
	if idelta == 0 {
		return s.at(u, 0)
	}
	f := func(v float64) float64 { return s.at(u, v) }
	return fd.Derivative(f, 0, &fd.Settings{Formula: stencils[idelta]})
}

func (s *sampler) arxy(itau, idelta int) float64 {
	if itau == 0 {
		return s.reduced(0, idelta)
	}
	f := func(u float64) float64 { return s.reduced(u, idelta) }
	return fd.Derivative(f, 0, &fd.Settings{Formula: stencils[itau]})
}

func (d *TDX) fdArxy(itau, idelta int, T, rho float64, molefrac []float64) (float64, error) {
	s := &sampler{d: d, tau: 1 / T, rho: rho, molefrac: molefrac}
	v := s.arxy(itau, idelta)
	if s.err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUndefinedDerivative, s.err)
	}
	return v, nil
}

func (d *TDX) fdAr0n(n int, T, rho float64, molefrac []float64) ([]float64, error) {
	s := &sampler{d: d, tau: 1 / T, rho: rho, molefrac: molefrac}
	ders := make([]float64, n+1)
	for k := range ders {
		ders[k] = s.arxy(0, k)
	}
	if s.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndefinedDerivative, s.err)
	}
	return ders, nil
}

func (d *TDX) fdArMatrix(maxTau int, T, rho float64, molefrac []float64) (*mat.Dense, error) {
	s := &sampler{d: d, tau: 1 / T, rho: rho, molefrac: molefrac}
	m := mat.NewDense(maxTau+1, autodiff.MaxOrder+1, nil)
	for i := 0; i <= maxTau; i++ {
		for j := 0; i+j <= autodiff.MaxOrder; j++ {
			m.Set(i, j, s.arxy(i, j))
		}
	}
	if s.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndefinedDerivative, s.err)
	}
	return m, nil
}

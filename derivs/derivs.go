// Package derivs produces reduced residual Helmholtz-energy derivatives
//
//	Ar[iτ,iδ] = τ^iτ ρ^iδ ∂^(iτ+iδ) αr / ∂τ^iτ ∂ρ^iδ,   τ = 1/T
//
// for any Model that can evaluate αr in autodiff.Jet arithmetic. The back end
// computing the derivatives is chosen per provider.
package derivs

import (
	"fmt"
	"math"

	"github.com/notargets/critpure/autodiff"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Model is a residual Helmholtz-energy model
type Model interface {
	// R returns the molar gas constant for the composition
	R(molefrac []float64) float64
	// AlphaR evaluates the reduced residual Helmholtz energy αr(τ, ρ, x)
	AlphaR(tau, rho autodiff.Jet, molefrac []float64) (autodiff.Jet, error)
}

// Backend selects how derivatives of αr are computed
type Backend uint8

const (
	Taylor           Backend = iota // exact, truncated Taylor jets
	FiniteDifference                // gonum diff/fd central stencils
)

func (b Backend) String() string {
	switch b {
	case Taylor:
		return "Taylor"
	case FiniteDifference:
		return "FiniteDifference"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// TDX provides temperature/density/composition derivatives of a Model.
// It holds no mutable state and is safe for concurrent use.
type TDX struct {
	model   Model
	backend Backend
}

// New wraps model with the chosen derivative back end
func New(model Model, backend Backend) (*TDX, error) {
	if backend != Taylor && backend != FiniteDifference {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, backend)
	}
	return &TDX{model: model, backend: backend}, nil
}

func (d *TDX) Model() Model     { return d.model }
func (d *TDX) Backend() Backend { return d.backend }

// R returns the model gas constant for the composition
func (d *TDX) R(molefrac []float64) float64 {
	return d.model.R(molefrac)
}

// Ar0n returns ders[k] = Ar[0,k] for k = 0..n at constant τ
func (d *TDX) Ar0n(n int, T, rho float64, molefrac []float64) ([]float64, error) {
	if n < 0 || n > autodiff.MaxOrder {
		return nil, fmt.Errorf("%w: Ar0n with n = %d", ErrUnsupportedOrder, n)
	}
	if err := checkState(T, rho); err != nil {
		return nil, err
	}

	var (
		ders []float64
		err  error
	)
	switch d.backend {
	case Taylor:
		ders, err = d.taylorAr0n(n, T, rho, molefrac)
	default:
		ders, err = d.fdAr0n(n, T, rho, molefrac)
	}
	if err != nil {
		return nil, err
	}
	if floats.HasNaN(ders) || hasInf(ders) {
		return nil, fmt.Errorf("%w: non-finite Ar0n at T = %g, rho = %g", ErrUndefinedDerivative, T, rho)
	}
	return ders, nil
}

// Arxy returns Ar[itau,idelta]
func (d *TDX) Arxy(itau, idelta int, T, rho float64, molefrac []float64) (float64, error) {
	if itau < 0 || idelta < 0 || itau+idelta > autodiff.MaxOrder {
		return 0, fmt.Errorf("%w: Ar%d%d", ErrUnsupportedOrder, itau, idelta)
	}
	if err := checkState(T, rho); err != nil {
		return 0, err
	}

	var (
		v   float64
		err error
	)
	switch d.backend {
	case Taylor:
		v, err = d.taylorArxy(itau, idelta, T, rho, molefrac)
	default:
		v, err = d.fdArxy(itau, idelta, T, rho, molefrac)
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite Ar%d%d at T = %g, rho = %g", ErrUndefinedDerivative, itau, idelta, T, rho)
	}
	return v, nil
}

// ArMatrix returns every Ar[i,j] with i ≤ maxTau and i+j ≤ autodiff.MaxOrder
// from a single evaluation of the model, as a (maxTau+1)×(MaxOrder+1) matrix.
// Entries past the total order are zero. Row 0 is Ar0n(MaxOrder).
func (d *TDX) ArMatrix(maxTau int, T, rho float64, molefrac []float64) (*mat.Dense, error) {
	if maxTau < 0 || maxTau > autodiff.MaxOrder {
		return nil, fmt.Errorf("%w: ArMatrix with maxTau = %d", ErrUnsupportedOrder, maxTau)
	}
	if err := checkState(T, rho); err != nil {
		return nil, err
	}

	var (
		ar  *mat.Dense
		err error
	)
	switch d.backend {
	case Taylor:
		ar, err = d.taylorArMatrix(maxTau, T, rho, molefrac)
	default:
		ar, err = d.fdArMatrix(maxTau, T, rho, molefrac)
	}
	if err != nil {
		return nil, err
	}
	if raw := ar.RawMatrix().Data; floats.HasNaN(raw) || hasInf(raw) {
		return nil, fmt.Errorf("%w: non-finite ArMatrix at T = %g, rho = %g", ErrUndefinedDerivative, T, rho)
	}
	return ar, nil
}

func checkState(T, rho float64) error {
	if !(T > 0) || math.IsInf(T, 0) {
		return fmt.Errorf("%w: T = %g", ErrUndefinedDerivative, T)
	}
	if !(rho > 0) || math.IsInf(rho, 0) {
		return fmt.Errorf("%w: rho = %g", ErrUndefinedDerivative, rho)
	}
	return nil
}

func hasInf(s []float64) bool {
	for _, v := range s {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

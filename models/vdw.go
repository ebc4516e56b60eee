package models

import (
	"fmt"

	"github.com/notargets/critpure/autodiff"
)

// VdW is the single-component van der Waals equation of state
//
//	p = ρRT/(1 - bρ) - aρ²,   αr = -ln(1 - bρ) - aρ/(RT)
type VdW struct {
	a, b float64
}

// NewVdW builds the model from its attraction a (Pa m⁶/mol²) and covolume b (m³/mol)
func NewVdW(a, b float64) (*VdW, error) {
	if !(a > 0) || !(b > 0) {
		return nil, fmt.Errorf("%w: vdW a = %g, b = %g", ErrInvalidParameters, a, b)
	}
	return &VdW{a: a, b: b}, nil
}

// NewVdWFromCritical chooses a and b so the model's critical point sits at (Tc, pc)
func NewVdWFromCritical(Tc, pc float64) (*VdW, error) {
	if !(Tc > 0) || !(pc > 0) {
		return nil, fmt.Errorf("%w: vdW Tc = %g, pc = %g", ErrInvalidParameters, Tc, pc)
	}
	return NewVdW(27*RGas*RGas*Tc*Tc/(64*pc), RGas*Tc/(8*pc))
}

func (m *VdW) Kind() Kind         { return VanDerWaals }
func (m *VdW) NumComponents() int { return 1 }
func (m *VdW) GetA() float64      { return m.a }
func (m *VdW) GetB() float64      { return m.b }

func (m *VdW) R(molefrac []float64) float64 { return RGas }

// CriticalPoint returns the closed-form Tc = 8a/(27bR) and ρc = 1/(3b)
func (m *VdW) CriticalPoint() (Tc, rhoc float64) {
	return 8 * m.a / (27 * m.b * RGas), 1 / (3 * m.b)
}

func (m *VdW) AlphaR(tau, rho autodiff.Jet, molefrac []float64) (autodiff.Jet, error) {
	if err := checkComposition(molefrac, 1); err != nil {
		return autodiff.Jet{}, err
	}
	if m.b*rho.Value() >= 1 {
		return autodiff.Jet{}, fmt.Errorf("%w: b*rho = %g", ErrOutOfDomain, m.b*rho.Value())
	}
	repulsive := autodiff.Log(rho.Scale(-m.b).AddConst(1)).Neg()
	attractive := rho.Mul(tau).Scale(m.a / RGas)
	return repulsive.Sub(attractive), nil
}

package models

import (
	"fmt"
	"math"

	"github.com/notargets/critpure/autodiff"
)

// GenericCubic is a two-parameter cubic equation of state
//
//	p = ρRT/(1 - bρ) - aρ²/((1 + Δ1bρ)(1 + Δ2bρ))
//
// with the van der Waals one-fluid mixing rules and α(T) of Soave form.
// Use NewPengRobinson or NewSoaveRedlichKwong to build one.
//
// A GenericCubic is immutable: the constructors copy every slice they are
// given and the parameters are only readable through methods.
type GenericCubic struct {
	kind           Kind
	delta1, delta2 float64
	omegaA, omegaB float64

	tc, pc, acentric []float64
	kmat             [][]float64

	ai0 []float64 // ΩaR²Tc²/pc
	bi  []float64 // ΩbRTc/pc
	m   []float64 // α(T) slope from the acentric factor
}

// NewPengRobinson builds the canonical Peng-Robinson model. kmat may be nil,
// meaning all binary interaction parameters are zero.
func NewPengRobinson(Tc, pc, acentric []float64, kmat [][]float64) (*GenericCubic, error) {
	m := make([]float64, len(acentric))
	for i, w := range acentric {
		m[i] = 0.37464 + 1.54226*w - 0.26992*w*w
	}
	return newGenericCubic(PengRobinson, 1+math.Sqrt2, 1-math.Sqrt2,
		0.45723552892138218938, 0.077796073903888455972, Tc, pc, acentric, m, kmat)
}

// NewSoaveRedlichKwong builds the canonical Soave-Redlich-Kwong model
func NewSoaveRedlichKwong(Tc, pc, acentric []float64, kmat [][]float64) (*GenericCubic, error) {
	m := make([]float64, len(acentric))
	for i, w := range acentric {
		m[i] = 0.480 + 1.574*w - 0.176*w*w
	}
	return newGenericCubic(SoaveRedlichKwong, 1, 0,
		0.42748023354034140439, 0.086640349964957702672, Tc, pc, acentric, m, kmat)
}

func newGenericCubic(kind Kind, d1, d2, omegaA, omegaB float64, Tc, pc, acentric, m []float64,
	kmat [][]float64) (*GenericCubic, error) {
	n := len(Tc)
	if n == 0 || len(pc) != n || len(acentric) != n {
		return nil, fmt.Errorf("%w: %v needs equal-length Tc, pc, acentric (got %d, %d, %d)",
			ErrInvalidParameters, kind, len(Tc), len(pc), len(acentric))
	}
	if kmat != nil && len(kmat) != n {
		return nil, fmt.Errorf("%w: kmat has %d rows, want %d", ErrInvalidParameters, len(kmat), n)
	}
	k := make([][]float64, n)
	for i := range k {
		k[i] = make([]float64, n)
		if kmat == nil {
			continue
		}
		if len(kmat[i]) != n {
			return nil, fmt.Errorf("%w: kmat row %d has %d entries, want %d", ErrInvalidParameters, i, len(kmat[i]), n)
		}
		copy(k[i], kmat[i])
	}

	gc := &GenericCubic{
		kind:   kind,
		delta1: d1, delta2: d2,
		omegaA: omegaA, omegaB: omegaB,
		tc:       append([]float64(nil), Tc...),
		pc:       append([]float64(nil), pc...),
		acentric: append([]float64(nil), acentric...),
		kmat:     k,
		ai0:      make([]float64, n),
		bi:       make([]float64, n),
		m:        m,
	}
	for i := 0; i < n; i++ {
		if !(Tc[i] > 0) || !(pc[i] > 0) {
			return nil, fmt.Errorf("%w: component %d has Tc = %g, pc = %g", ErrInvalidParameters, i, Tc[i], pc[i])
		}
		gc.ai0[i] = omegaA * RGas * RGas * Tc[i] * Tc[i] / pc[i]
		gc.bi[i] = omegaB * RGas * Tc[i] / pc[i]
	}
	return gc, nil
}

func (c *GenericCubic) Kind() Kind         { return c.kind }
func (c *GenericCubic) NumComponents() int { return len(c.tc) }

// Deltas returns the Δ1, Δ2 of the cubic family (PR: 1 ± √2, SRK: 1, 0)
func (c *GenericCubic) Deltas() (d1, d2 float64) { return c.delta1, c.delta2 }

// Omegas returns the Ωa, Ωb constants of the cubic family
func (c *GenericCubic) Omegas() (omegaA, omegaB float64) { return c.omegaA, c.omegaB }

func (c *GenericCubic) CriticalTemperature(i int) float64 { return c.tc[i] }
func (c *GenericCubic) CriticalPressure(i int) float64    { return c.pc[i] }
func (c *GenericCubic) AcentricFactor(i int) float64      { return c.acentric[i] }
func (c *GenericCubic) Kij(i, j int) float64              { return c.kmat[i][j] }

// CriticalDensity returns ρc of component i, at which the pure component has
// its critical point at exactly (Tc, pc). The compressibility factor of the
// triple root is Zc = (1 + Ωb(1 - Δ1 - Δ2))/3.
func (c *GenericCubic) CriticalDensity(i int) float64 {
	Zc := (1 + c.omegaB*(1-c.delta1-c.delta2)) / 3
	return c.pc[i] / (Zc * RGas * c.tc[i])
}

func (c *GenericCubic) R(molefrac []float64) float64 { return RGas }

// sqrtAlphaA returns √(a_i(T)) = √(a_i0)·(1 + m_i(1 - √(T/Tc_i))) as a jet in τ
func (c *GenericCubic) sqrtAlphaA(i int, tau autodiff.Jet) autodiff.Jet {
	sqrtTr := autodiff.Pow(tau.Scale(c.tc[i]), -0.5)
	return sqrtTr.Neg().AddConst(1).Scale(c.m[i]).AddConst(1).Scale(math.Sqrt(c.ai0[i]))
}

func (c *GenericCubic) mixA(tau autodiff.Jet, molefrac []float64) autodiff.Jet {
	n := len(c.tc)
	sa := make([]autodiff.Jet, n)
	for i := 0; i < n; i++ {
		if molefrac[i] != 0 {
			sa[i] = c.sqrtAlphaA(i, tau)
		}
	}
	var a autodiff.Jet
	for i := 0; i < n; i++ {
		if molefrac[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if molefrac[j] == 0 {
				continue
			}
			a = a.Add(sa[i].Mul(sa[j]).Scale(molefrac[i] * molefrac[j] * (1 - c.kmat[i][j])))
		}
	}
	return a
}

func (c *GenericCubic) mixB(molefrac []float64) float64 {
	var b float64
	for i, x := range molefrac {
		b += x * c.bi[i]
	}
	return b
}

// GetA returns the mixture attraction parameter a(T, x)
func (c *GenericCubic) GetA(T float64, molefrac []float64) (float64, error) {
	if err := checkComposition(molefrac, len(c.tc)); err != nil {
		return 0, err
	}
	return c.mixA(autodiff.Constant(1/T), molefrac).Value(), nil
}

// GetB returns the mixture covolume b(x); it does not depend on T
func (c *GenericCubic) GetB(T float64, molefrac []float64) (float64, error) {
	if err := checkComposition(molefrac, len(c.tc)); err != nil {
		return 0, err
	}
	return c.mixB(molefrac), nil
}

//	αr = -ln(1 - bρ) - a/(RTb(Δ1-Δ2)) · ln((1 + Δ1bρ)/(1 + Δ2bρ))
func (c *GenericCubic) AlphaR(tau, rho autodiff.Jet, molefrac []float64) (autodiff.Jet, error) {
	if err := checkComposition(molefrac, len(c.tc)); err != nil {
		return autodiff.Jet{}, err
	}
	b := c.mixB(molefrac)
	if !(b > 0) {
		return autodiff.Jet{}, fmt.Errorf("%w: mixture covolume %g", ErrOutOfDomain, b)
	}
	if !(tau.Value() > 0) {
		return autodiff.Jet{}, fmt.Errorf("%w: tau = %g", ErrOutOfDomain, tau.Value())
	}
	brho := rho.Scale(b)
	if brho.Value() >= 1 {
		return autodiff.Jet{}, fmt.Errorf("%w: b*rho = %g", ErrOutOfDomain, brho.Value())
	}

	repulsive := autodiff.Log(brho.Neg().AddConst(1)).Neg()
	ratio := brho.Scale(c.delta1).AddConst(1).Div(brho.Scale(c.delta2).AddConst(1))
	attractive := c.mixA(tau, molefrac).Mul(tau).Scale(1 / (RGas * b * (c.delta1 - c.delta2))).Mul(autodiff.Log(ratio))
	return repulsive.Sub(attractive), nil
}

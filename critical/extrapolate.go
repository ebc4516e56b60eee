package critical

import (
	"fmt"
	"math"
)

// ExtrapolateFromCritical predicts the coexisting liquid and vapor densities
// at T < Tc from derivatives at the critical point (Tc, ρc), using classical
// (mean-field) scaling
//
//	ρ - ρc ∝ ±√(1 - T/Tc)
//
// The prediction is only meaningful close to Tc. T ≥ Tc is not rejected: the
// densities come back as NaN or ±Inf.
func ExtrapolateFromCritical(p DerivativeProvider, Tc, rhoc, T float64) (rhoL, rhoV float64, err error) {
	z := []float64{1.0}
	R := p.R(z)

	ar, err := p.ArMatrix(1, Tc, rhoc, z)
	if err != nil {
		return 0, 0, fmt.Errorf("extrapolation: %w", err)
	}
	ders := ar.RawRowView(0)
	Ar11, Ar12 := ar.At(1, 1), ar.At(1, 2)

	d3pdrho3 := R * Tc / (rhoc * rhoc) * (6*ders[2] + 6*ders[3] + ders[4])
	d2pdrhodT := R * (1 + 2*ders[1] + ders[2] - 2*Ar11 - Ar12)
	Brho := math.Sqrt(6 * d2pdrhodT * Tc / d3pdrho3)

	drhohatdT := Brho / Tc
	dT := T - Tc
	drhohat := dT * drhohatdT

	rhoL = -drhohat/math.Sqrt(1-T/Tc) + rhoc
	rhoV = drhohat/math.Sqrt(1-T/Tc) + rhoc
	return rhoL, rhoV, nil
}

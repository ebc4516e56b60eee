package critical

import (
	"fmt"
	"testing"

	"github.com/notargets/critpure/derivs"
	"github.com/notargets/critpure/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func TestConditionsVanishAtAnalyticCriticalPoint(t *testing.T) {
	tdx, m := newVdWProvider(t)
	Tc, rhoc := m.CriticalPoint()
	assert.InDelta(t, argonTc, Tc, 1.e-10)

	resids, J, err := ConditionsJacobian(tdx, Tc, rhoc, Pure())
	require.NoError(t, err)

	// dp/dρ scales like RT, d²p/dρ² like RT/ρ
	scale := models.RGas * Tc
	assert.InDelta(t, 0., resids.AtVec(0)/scale, 1.e-12)
	assert.InDelta(t, 0., resids.AtVec(1)*rhoc/scale, 1.e-12)

	// (0,1) reuses d²p/dρ², which is zero here
	assert.Equal(t, resids.AtVec(1), J.At(0, 1))
	assert.Greater(t, J.At(0, 0), 0.)
	assert.Greater(t, J.At(1, 1), 0.)
}

func TestConditionsVanishForCubics(t *testing.T) {
	Tc, pc, acentric := []float64{305.32}, []float64{4872200}, []float64{0.0995}
	for _, kind := range []models.Kind{models.PengRobinson, models.SoaveRedlichKwong} {
		t.Run(kind.String(), func(t *testing.T) {
			tdx, m := newCubicProvider(t, kind, Tc, pc, acentric)
			rhoc := m.CriticalDensity(0)
			resids, _, err := ConditionsJacobian(tdx, Tc[0], rhoc, Pure())
			require.NoError(t, err)
			scale := models.RGas * Tc[0]
			assert.InDelta(t, 0., resids.AtVec(0)/scale, 1.e-9)
			assert.InDelta(t, 0., resids.AtVec(1)*rhoc/scale, 1.e-9)
		})
	}
}

// The closed-form Jacobian must match numerical derivatives of the residuals.
func TestConditionsJacobianMatchesFiniteDifferences(t *testing.T) {
	tdx, m := newCubicProvider(t, models.PengRobinson,
		[]float64{190.564}, []float64{4599200}, []float64{0.0114})
	rhoc := m.CriticalDensity(0)

	states := [][2]float64{{1.05 * 190.564, 0.9 * rhoc}, {0.95 * 190.564, 1.2 * rhoc}, {1.3 * 190.564, 0.5 * rhoc}}
	for _, s := range states {
		T, rho := s[0], s[1]
		t.Run(fmt.Sprintf("T=%.3f,rho=%.1f", T, rho), func(t *testing.T) {
			_, J, err := ConditionsJacobian(tdx, T, rho, Pure())
			require.NoError(t, err)

			resid := func(i int, T, rho float64) float64 {
				r, _, err := ConditionsJacobian(tdx, T, rho, Pure())
				require.NoError(t, err)
				return r.AtVec(i)
			}
			for i := 0; i < 2; i++ {
				dT := fd.Derivative(func(x float64) float64 { return resid(i, x, rho) }, T,
					&fd.Settings{Formula: fd.Central, Step: 1.e-4 * T})
				drho := fd.Derivative(func(x float64) float64 { return resid(i, T, x) }, rho,
					&fd.Settings{Formula: fd.Central, Step: 1.e-4 * rho})
				assert.InEpsilonf(t, dT, J.At(i, 0), 1.e-6, "dr%d/dT", i)
				assert.InEpsilonf(t, drho, J.At(i, 1), 1.e-6, "dr%d/drho", i)
			}
		})
	}
}

func TestConditionsPseudoPureMatchesPure(t *testing.T) {
	Tc := []float64{190.564, 305.32}
	pc := []float64{4599200, 4872200}
	acentric := []float64{0.0114, 0.0995}

	for i := range Tc {
		t.Run(fmt.Sprintf("component %d", i), func(t *testing.T) {
			mix, _ := newCubicProvider(t, models.PengRobinson, Tc, pc, acentric)
			pure, m := newCubicProvider(t, models.PengRobinson, Tc[i:i+1], pc[i:i+1], acentric[i:i+1])

			T, rho := 0.97*Tc[i], 1.05*m.CriticalDensity(0)
			rMix, JMix, err := ConditionsJacobian(mix, T, rho, Selection{Index: i, Length: 2})
			require.NoError(t, err)
			rPure, JPure, err := ConditionsJacobian(pure, T, rho, Pure())
			require.NoError(t, err)

			for k := 0; k < 2; k++ {
				assert.InDelta(t, rPure.AtVec(k), rMix.AtVec(k), 1.e-12*(1+abs(rPure.AtVec(k))))
				for l := 0; l < 2; l++ {
					assert.InDelta(t, JPure.At(k, l), JMix.At(k, l), 1.e-12*(1+abs(JPure.At(k, l))))
				}
			}
		})
	}
}

func TestConditionsZeroDensityFails(t *testing.T) {
	tdx, _ := newVdWProvider(t)
	_, _, err := ConditionsJacobian(tdx, argonTc, 0, Pure())
	require.Error(t, err)
	assert.ErrorIs(t, err, derivs.ErrUndefinedDerivative)
}

func TestConditionsOutOfDomainFails(t *testing.T) {
	tdx, m := newVdWProvider(t)
	_, _, err := ConditionsJacobian(tdx, argonTc, 2/m.GetB(), Pure())
	assert.ErrorIs(t, err, derivs.ErrUndefinedDerivative)
	assert.ErrorIs(t, err, models.ErrOutOfDomain)
}

func TestConditionsBadSelection(t *testing.T) {
	tdx, _ := newVdWProvider(t)
	_, _, err := ConditionsJacobian(tdx, argonTc, 1.e4, Selection{Index: 2, Length: 2})
	assert.ErrorIs(t, err, ErrInvalidFlags)

	// vdW is a one-component model: a length-2 composition is rejected by the model
	_, _, err = ConditionsJacobian(tdx, argonTc, 1.e4, Selection{Index: 0, Length: 2})
	assert.ErrorIs(t, err, models.ErrComposition)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

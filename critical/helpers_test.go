package critical

import (
	"math"
	"testing"

	"github.com/notargets/critpure/autodiff"
	"github.com/notargets/critpure/derivs"
	"github.com/notargets/critpure/models"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Argon-like critical constants
const (
	argonTc = 150.687
	argonPc = 4.863e6
)

func newVdWProvider(t testing.TB) (*derivs.TDX, *models.VdW) {
	t.Helper()
	m, err := models.NewVdWFromCritical(argonTc, argonPc)
	require.NoError(t, err)
	tdx, err := derivs.New(m, derivs.Taylor)
	require.NoError(t, err)
	return tdx, m
}

func newCubicProvider(t testing.TB, kind models.Kind, Tc, pc, acentric []float64) (*derivs.TDX, *models.GenericCubic) {
	t.Helper()
	var (
		m   *models.GenericCubic
		err error
	)
	switch kind {
	case models.PengRobinson:
		m, err = models.NewPengRobinson(Tc, pc, acentric, nil)
	case models.SoaveRedlichKwong:
		m, err = models.NewSoaveRedlichKwong(Tc, pc, acentric, nil)
	default:
		t.Fatalf("no cubic of kind %v", kind)
	}
	require.NoError(t, err)
	tdx, err := derivs.New(m, derivs.Taylor)
	require.NoError(t, err)
	return tdx, m
}

func relErr(want, got float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

// countingProvider records how often the solver asks for derivatives
type countingProvider struct {
	DerivativeProvider
	ar0n, arxy, armatrix int
}

func (c *countingProvider) Ar0n(n int, T, rho float64, z []float64) ([]float64, error) {
	c.ar0n++
	return c.DerivativeProvider.Ar0n(n, T, rho, z)
}

func (c *countingProvider) Arxy(itau, idelta int, T, rho float64, z []float64) (float64, error) {
	c.arxy++
	return c.DerivativeProvider.Arxy(itau, idelta, T, rho, z)
}

func (c *countingProvider) ArMatrix(maxTau int, T, rho float64, z []float64) (*mat.Dense, error) {
	c.armatrix++
	return c.DerivativeProvider.ArMatrix(maxTau, T, rho, z)
}

// zeroProvider is an ideal gas: every residual derivative vanishes
type zeroProvider struct{}

func (zeroProvider) R(z []float64) float64 { return models.RGas }
func (zeroProvider) Ar0n(n int, T, rho float64, z []float64) ([]float64, error) {
	return make([]float64, n+1), nil
}
func (zeroProvider) Arxy(itau, idelta int, T, rho float64, z []float64) (float64, error) {
	return 0, nil
}
func (zeroProvider) ArMatrix(maxTau int, T, rho float64, z []float64) (*mat.Dense, error) {
	return mat.NewDense(maxTau+1, autodiff.MaxOrder+1, nil), nil
}

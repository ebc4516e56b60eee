package autodiff

import "math"

// MaxOrder is the highest total derivative order a Jet carries.
const MaxOrder = 4

// Direction selects which of the two independent variables a Jet is seeded in
type Direction uint8

const (
	Tau Direction = iota // reciprocal temperature
	Rho                  // molar density
)

// Jet is a bivariate Taylor polynomial truncated at total order MaxOrder.
//
//	f(τ0+dτ, ρ0+dρ) ≈ Σ c[i][j] dτ^i dρ^j,   i+j ≤ MaxOrder
//
// Coefficients with i+j > MaxOrder are always zero. Jets are values; every
// operation returns a new Jet.
type Jet struct {
	c [MaxOrder + 1][MaxOrder + 1]float64
}

// Constant returns a Jet with no dependence on either variable
func Constant(v float64) Jet {
	var j Jet
	j.c[0][0] = v
	return j
}

// Variable seeds v as the independent variable in direction dir with unit slope.
// Derivative(i, j) of any function of it is then the plain partial derivative.
func Variable(v float64, dir Direction) Jet {
	return seeded(v, 1, dir)
}

// Scaled seeds v with slope v, i.e. v·(1+ε). Derivative(i, j) of a function of
// scaled variables is τ^i ρ^j ∂^(i+j)f/∂τ^i∂ρ^j, the reduced form used for
// Helmholtz-energy derivatives.
func Scaled(v float64, dir Direction) Jet {
	return seeded(v, v, dir)
}

func seeded(v, slope float64, dir Direction) Jet {
	j := Constant(v)
	switch dir {
	case Tau:
		j.c[1][0] = slope
	case Rho:
		j.c[0][1] = slope
	default:
		panic("autodiff: unknown direction")
	}
	return j
}

// Value returns the zeroth-order coefficient
func (a Jet) Value() float64 {
	return a.c[0][0]
}

// Coeff returns the raw Taylor coefficient of dτ^i dρ^j
func (a Jet) Coeff(i, j int) float64 {
	checkOrder(i, j)
	return a.c[i][j]
}

// Derivative returns ∂^(i+j)f/∂τ^i∂ρ^j, i.e. the Taylor coefficient times i!·j!
func (a Jet) Derivative(i, j int) float64 {
	checkOrder(i, j)
	return a.c[i][j] * factorial[i] * factorial[j]
}

// IsFinite reports whether every coefficient is finite
func (a Jet) IsFinite() bool {
	for i := 0; i <= MaxOrder; i++ {
		for j := 0; j <= MaxOrder-i; j++ {
			if math.IsNaN(a.c[i][j]) || math.IsInf(a.c[i][j], 0) {
				return false
			}
		}
	}
	return true
}

func (a Jet) Add(b Jet) Jet {
	for i := 0; i <= MaxOrder; i++ {
		for j := 0; j <= MaxOrder-i; j++ {
			a.c[i][j] += b.c[i][j]
		}
	}
	return a
}

func (a Jet) Sub(b Jet) Jet {
	for i := 0; i <= MaxOrder; i++ {
		for j := 0; j <= MaxOrder-i; j++ {
			a.c[i][j] -= b.c[i][j]
		}
	}
	return a
}

// AddConst shifts the value of a by f
func (a Jet) AddConst(f float64) Jet {
	a.c[0][0] += f
	return a
}

// Scale multiplies every coefficient by f
func (a Jet) Scale(f float64) Jet {
	for i := 0; i <= MaxOrder; i++ {
		for j := 0; j <= MaxOrder-i; j++ {
			a.c[i][j] *= f
		}
	}
	return a
}

func (a Jet) Neg() Jet {
	return a.Scale(-1)
}

// Mul is the truncated Cauchy product of two Jets
func (a Jet) Mul(b Jet) Jet {
	var r Jet
	for i := 0; i <= MaxOrder; i++ {
		for j := 0; j <= MaxOrder-i; j++ {
			var s float64
			for k := 0; k <= i; k++ {
				for l := 0; l <= j; l++ {
					s += a.c[k][l] * b.c[i-k][j-l]
				}
			}
			r.c[i][j] = s
		}
	}
	return r
}

func (a Jet) Div(b Jet) Jet {
	return a.Mul(Inv(b))
}

var factorial = [MaxOrder + 1]float64{1, 1, 2, 6, 24}

func checkOrder(i, j int) {
	if i < 0 || j < 0 || i+j > MaxOrder {
		panic("autodiff: derivative order out of range")
	}
}

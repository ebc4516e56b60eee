package autodiff

import "math"

// compose evaluates f(a) given the derivatives f^(k)(a0), k = 0..MaxOrder,
// through the truncated series Σ f^(k)(a0)/k! · (a - a0)^k
func compose(a Jet, d [MaxOrder + 1]float64) Jet {
	h := a
	h.c[0][0] = 0
	r := Constant(d[0])
	p := Constant(1)
	for k := 1; k <= MaxOrder; k++ {
		p = p.Mul(h)
		r = r.Add(p.Scale(d[k] / factorial[k]))
	}
	return r
}

// Inv returns 1/a
func Inv(a Jet) Jet {
	x := a.Value()
	var d [MaxOrder + 1]float64
	d[0] = 1 / x
	for k := 1; k <= MaxOrder; k++ {
		d[k] = -float64(k) * d[k-1] / x
	}
	return compose(a, d)
}

// Log returns the natural logarithm of a. The value must be positive,
// otherwise the result carries NaN.
func Log(a Jet) Jet {
	x := a.Value()
	var d [MaxOrder + 1]float64
	d[0] = math.Log(x)
	// d^k/dx^k ln x = (-1)^(k-1) (k-1)! / x^k
	d[1] = 1 / x
	for k := 2; k <= MaxOrder; k++ {
		d[k] = -float64(k-1) * d[k-1] / x
	}
	return compose(a, d)
}

func Exp(a Jet) Jet {
	e := math.Exp(a.Value())
	var d [MaxOrder + 1]float64
	for k := range d {
		d[k] = e
	}
	return compose(a, d)
}

// Pow returns a^p for real p
func Pow(a Jet, p float64) Jet {
	x := a.Value()
	var d [MaxOrder + 1]float64
	coef := 1.0
	for k := 0; k <= MaxOrder; k++ {
		if coef != 0 {
			d[k] = coef * math.Pow(x, p-float64(k))
		}
		coef *= p - float64(k)
	}
	return compose(a, d)
}

func Sqrt(a Jet) Jet {
	return Pow(a, 0.5)
}

// Package autodiff implements forward-mode automatic differentiation in two
// variables with truncated Taylor polynomials ("jets").
//
// A model written once against Jet arithmetic yields every mixed partial
// derivative up to total order MaxOrder from a single evaluation:
//
//	tau := autodiff.Scaled(1/T, autodiff.Tau)
//	rho := autodiff.Scaled(rho0, autodiff.Rho)
//	f := autodiff.Log(rho.Scale(-b).AddConst(1)).Neg()
//	Ar02 := f.Derivative(0, 2) // ρ² ∂²f/∂ρ²
//
// Jets compose through Add, Sub, Mul, Div, Scale and the elementary functions
// Log, Exp, Pow, Sqrt and Inv.
package autodiff

// Package models holds the closed set of residual Helmholtz-energy models used
// with the critical-point solver. Each kind is its own type and exposes its
// model-specific quantities (covolume, attraction parameter, analytic
// critical point) directly.
package models

import (
	"fmt"

	"github.com/notargets/critpure/derivs"
)

// RGas is the molar gas constant in J/(mol K), CODATA 2017
const RGas = 8.31446261815324

// Kind tags the concrete model type
type Kind uint8

const (
	VanDerWaals Kind = iota
	PengRobinson
	SoaveRedlichKwong
)

func (k Kind) String() string {
	switch k {
	case VanDerWaals:
		return "vdW1"
	case PengRobinson:
		return "PR"
	case SoaveRedlichKwong:
		return "SRK"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind accepts the names printed by Kind.String, case-sensitively,
// plus the lower-case aliases "vdw", "pr" and "srk".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "vdW1", "vdw":
		return VanDerWaals, nil
	case "PR", "pr":
		return PengRobinson, nil
	case "SRK", "srk":
		return SoaveRedlichKwong, nil
	}
	return 0, fmt.Errorf("%w: unknown model kind %q", ErrInvalidParameters, s)
}

// Tagged is implemented by every model in this package
type Tagged interface {
	derivs.Model
	Kind() Kind
	NumComponents() int
}

var (
	_ Tagged = (*VdW)(nil)
	_ Tagged = (*GenericCubic)(nil)
)

func checkComposition(molefrac []float64, n int) error {
	if len(molefrac) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrComposition, len(molefrac), n)
	}
	return nil
}

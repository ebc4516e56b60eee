// Command critpure locates the critical point of a pure fluid described by a
// cubic equation of state and prints near-critical coexisting densities.
//
// Usage:
//
//	critpure -kind pr -Tc 369.89 -pc 4.2512e6 -acentric 0.1521 -extrap 0.99,0.995
//	critpure -kind vdw -a 0.1363 -b 3.219e-5 -flags '{"maxsteps": 20}'
//
// Without -T0/-rho0 the Newton iteration is seeded 5% away from the model's
// nominal critical point.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/critpure/critical"
	"github.com/notargets/critpure/derivs"
	"github.com/notargets/critpure/models"
)

type options struct {
	kind             string
	Tc, pc, acentric float64
	a, b             float64
	T0, rho0         float64
	flagsJSON        string
	backend          string
	extrap           string
	verbose          bool
}

func main() {
	var opts options
	flag.StringVar(&opts.kind, "kind", "pr", "model kind: vdw, pr or srk")
	flag.Float64Var(&opts.Tc, "Tc", 0, "critical temperature in K")
	flag.Float64Var(&opts.pc, "pc", 0, "critical pressure in Pa")
	flag.Float64Var(&opts.acentric, "acentric", 0, "acentric factor (pr, srk)")
	flag.Float64Var(&opts.a, "a", 0, "vdW attraction in Pa m^6/mol^2, instead of -Tc/-pc")
	flag.Float64Var(&opts.b, "b", 0, "vdW covolume in m^3/mol, instead of -Tc/-pc")
	flag.Float64Var(&opts.T0, "T0", 0, "initial temperature in K")
	flag.Float64Var(&opts.rho0, "rho0", 0, "initial molar density in mol/m^3")
	flag.StringVar(&opts.flagsJSON, "flags", "", `solver flags as JSON, e.g. '{"maxsteps": 10}'`)
	flag.StringVar(&opts.backend, "backend", "taylor", "derivative back end: taylor or fd")
	flag.StringVar(&opts.extrap, "extrap", "", "comma separated reduced temperatures T/Tc < 1 to extrapolate to")
	flag.BoolVar(&opts.verbose, "v", false, "log each Newton step")
	flag.Parse()

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("critpure: %v", err)
	}
}

func run(opts options, stdout, stderr io.Writer) error {
	kind, err := models.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	model, Tnom, rhonom, err := buildModel(kind, opts)
	if err != nil {
		return err
	}
	backend, err := parseBackend(opts.backend)
	if err != nil {
		return err
	}
	tdx, err := derivs.New(model, backend)
	if err != nil {
		return err
	}

	flags, err := critical.ParseFlags([]byte(opts.flagsJSON))
	if err != nil {
		return err
	}
	if opts.verbose {
		flags.Logger = log.New(stderr, "", log.Lmicroseconds)
	}

	T0, rho0 := opts.T0, opts.rho0
	if T0 == 0 {
		T0 = 0.95 * Tnom
	}
	if rho0 == 0 {
		rho0 = 1.05 * rhonom
	}

	sol, err := critical.SolvePureDetailed(tdx, T0, rho0, &flags)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "model:    %v (%v derivatives)\n", kind, backend)
	fmt.Fprintf(stdout, "start:    T0 = %.6f K, rho0 = %.6f mol/m^3\n", T0, rho0)
	fmt.Fprintf(stdout, "critical: Tc = %.10f K, rhoc = %.10f mol/m^3 (%d steps, last |dx| = %.3e)\n",
		sol.T, sol.Rho, sol.Iterations, sol.StepNorms[len(sol.StepNorms)-1])

	temps, err := parseReduced(opts.extrap)
	if err != nil {
		return err
	}
	if len(temps) == 0 {
		return nil
	}
	fmt.Fprintf(stdout, "%10s %14s %16s %16s\n", "T/Tc", "T [K]", "rhoL [mol/m^3]", "rhoV [mol/m^3]")
	for _, Tr := range temps {
		T := Tr * sol.T
		rhoL, rhoV, err := critical.ExtrapolateFromCritical(tdx, sol.T, sol.Rho, T)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%10.5f %14.6f %16.6f %16.6f\n", Tr, T, rhoL, rhoV)
	}
	return nil
}

// buildModel returns the model together with its nominal critical point,
// used to seed the iteration
func buildModel(kind models.Kind, opts options) (models.Tagged, float64, float64, error) {
	switch kind {
	case models.VanDerWaals:
		var (
			m   *models.VdW
			err error
		)
		if opts.a != 0 || opts.b != 0 {
			m, err = models.NewVdW(opts.a, opts.b)
		} else {
			m, err = models.NewVdWFromCritical(opts.Tc, opts.pc)
		}
		if err != nil {
			return nil, 0, 0, err
		}
		Tc, rhoc := m.CriticalPoint()
		return m, Tc, rhoc, nil

	default:
		build := models.NewPengRobinson
		if kind == models.SoaveRedlichKwong {
			build = models.NewSoaveRedlichKwong
		}
		m, err := build([]float64{opts.Tc}, []float64{opts.pc}, []float64{opts.acentric}, nil)
		if err != nil {
			return nil, 0, 0, err
		}
		return m, opts.Tc, m.CriticalDensity(0), nil
	}
}

func parseBackend(s string) (derivs.Backend, error) {
	switch strings.ToLower(s) {
	case "taylor":
		return derivs.Taylor, nil
	case "fd", "finitedifference":
		return derivs.FiniteDifference, nil
	}
	return 0, fmt.Errorf("%w: %q", derivs.ErrUnknownBackend, s)
}

var errReducedTemperature = errors.New("reduced temperature must lie in (0, 1)")

func parseReduced(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	temps := make([]float64, 0, len(fields))
	for _, f := range fields {
		Tr, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("-extrap: %w", err)
		}
		if !(Tr > 0 && Tr < 1) {
			return nil, fmt.Errorf("-extrap: %w, got %g", errReducedTemperature, Tr)
		}
		temps = append(temps, Tr)
	}
	return temps, nil
}

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/notargets/critpure/critical"
	"github.com/notargets/critpure/derivs"
	"github.com/notargets/critpure/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCubic(t *testing.T) {
	for _, kind := range []string{"pr", "srk", "SRK"} {
		t.Run(kind, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(options{
				kind: kind, Tc: 369.89, pc: 4251200, acentric: 0.1521,
				backend: "taylor", extrap: "0.99, 0.995",
			}, &stdout, &stderr)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
			require.Len(t, lines, 6)
			assert.True(t, strings.HasPrefix(lines[0], "model:"), lines[0])
			assert.True(t, strings.HasPrefix(lines[1], "start:"), lines[1])
			assert.True(t, strings.HasPrefix(lines[2], "critical:"), lines[2])
			assert.Contains(t, lines[2], "Tc = 369.8900000000 K")
			assert.Contains(t, lines[2], "(10 steps")
			assert.Contains(t, lines[3], "rhoL [mol/m^3]")
			for i, Tr := range []float64{0.99, 0.995} {
				fields := strings.Fields(lines[4+i])
				require.Len(t, fields, 4, lines[4+i])
				got, err := strconv.ParseFloat(fields[0], 64)
				require.NoError(t, err)
				assert.InDelta(t, Tr, got, 1.e-9)
				rhoL, err := strconv.ParseFloat(fields[2], 64)
				require.NoError(t, err)
				rhoV, err := strconv.ParseFloat(fields[3], 64)
				require.NoError(t, err)
				assert.Greater(t, rhoL, rhoV)
			}
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRunVdWVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(options{
		kind: "vdw", a: 0.1363, b: 3.219e-5,
		backend: "fd", flagsJSON: `{"maxsteps": 6}`, verbose: true,
	}, &stdout, &stderr)
	require.NoError(t, err)

	m, err := models.NewVdW(0.1363, 3.219e-5)
	require.NoError(t, err)
	Tc, _ := m.CriticalPoint()
	assert.Contains(t, stdout.String(), "FiniteDifference")
	assert.Contains(t, stdout.String(), "(6 steps")
	line := stdout.String()[strings.Index(stdout.String(), "Tc = ")+len("Tc = "):]
	got, err := strconv.ParseFloat(line[:strings.Index(line, " ")], 64)
	require.NoError(t, err)
	assert.InEpsilon(t, Tc, got, 1.e-6)
	assert.Equal(t, 6, strings.Count(stderr.String(), "critical: step"))
}

func TestRunErrors(t *testing.T) {
	base := options{kind: "pr", Tc: 369.89, pc: 4251200, acentric: 0.1521, backend: "taylor"}

	o := base
	o.kind = "lee-kesler"
	assert.ErrorIs(t, run(o, &bytes.Buffer{}, &bytes.Buffer{}), models.ErrInvalidParameters)

	o = base
	o.backend = "complex-step"
	assert.ErrorIs(t, run(o, &bytes.Buffer{}, &bytes.Buffer{}), derivs.ErrUnknownBackend)

	o = base
	o.flagsJSON = `{"maxsteps": -1}`
	assert.ErrorIs(t, run(o, &bytes.Buffer{}, &bytes.Buffer{}), critical.ErrInvalidFlags)

	o = base
	o.pc = 0
	assert.ErrorIs(t, run(o, &bytes.Buffer{}, &bytes.Buffer{}), models.ErrInvalidParameters)

	o = base
	o.extrap = "0.99,1.2"
	assert.ErrorIs(t, run(o, &bytes.Buffer{}, &bytes.Buffer{}), errReducedTemperature)

	o = base
	o.extrap = "0.99,x"
	assert.Error(t, run(o, &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestParseReduced(t *testing.T) {
	temps, err := parseReduced(" 0.9,0.95 ,0.999")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.95, 0.999}, temps)

	temps, err = parseReduced("  ")
	require.NoError(t, err)
	assert.Empty(t, temps)
}

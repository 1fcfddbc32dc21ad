package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/empic/internal/config"
)

func TestRunSimulationSavesDensityProfile(t *testing.T) {
	sim := config.Simulation{
		Cells:    6,
		CellSize: 0.5,
		TimeStep: 0.25,
		Steps:    3,
		Boundary: "periodic",
		Threads:  2,
		Species: []config.Species{
			{Name: "right", Charge: -1., ChargeMass: -1., PerCell: 2, Drift: []float64{0.2, 0., 0.}},
		},
	}
	dir := t.TempDir()
	on := true
	outputs := map[string]output{
		"density profile": {saveFlag: &on, fileSuffix: "density"},
	}

	err := runSimulation("smoke", &sim, dir, outputs)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "smoke_right_density.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "cell,count\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n"), 7)
}

func TestRunSimulationReportsCrossSectionFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.txt")
	sim := config.Simulation{
		Cells:    4,
		CellSize: 0.5,
		TimeStep: 0.1,
		Steps:    1,
		Boundary: "periodic",
		Threads:  1,
		Species: []config.Species{
			{Name: "electrons", Charge: -1., ChargeMass: -1., PerCell: 1},
		},
		Collisions: &config.Collisions{
			CrossSections:    missing,
			Pressure:         133.,
			Temperature:      300.,
			ReferenceDensity: 1e21,
			Scattering:       "isotropic",
		},
	}

	err := runSimulation("mcc", &sim, t.TempDir(), nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, "does-not-exist.txt")
	assert.ErrorContains(t, err, `simulation "mcc"`)
}

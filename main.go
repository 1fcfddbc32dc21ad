package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wildstyl3r/empic/internal/collide"
	"github.com/wildstyl3r/empic/internal/config"
	"github.com/wildstyl3r/empic/internal/current"
	"github.com/wildstyl3r/empic/internal/diag"
	"github.com/wildstyl3r/empic/internal/emf"
	"github.com/wildstyl3r/empic/internal/grid"
	"github.com/wildstyl3r/empic/internal/species"
	"github.com/wildstyl3r/empic/internal/utils"
)

type output struct {
	saveFlag   *bool
	fileSuffix string
}

func main() {
	outputs := map[string]output{
		"energy history": {
			saveFlag:   flag.Bool("hist", false, "save per-species energy history"),
			fileSuffix: "history",
		},
		"current profile": {
			saveFlag:   flag.Bool("j", false, "save the final current density profile"),
			fileSuffix: "current",
		},
		"charge profile": {
			saveFlag:   flag.Bool("rho", false, "save per-species charge density profiles"),
			fileSuffix: "charge",
		},
		"density profile": {
			saveFlag:   flag.Bool("n", false, "save per-species particle counts per cell"),
			fileSuffix: "density",
		},
	}
	var configFileNamePointer = flag.String("input", "twostream", "input deck in toml format")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")
	cfg, err := config.LoadConfig(configFileName + ".toml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = utils.GetFilename(configFileName) + "_output"
	}

	for simName, sim := range cfg.Simulations {
		fmt.Println("\n" + simName)
		if err := runSimulation(simName, &sim, outputDir, outputs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}

func runSimulation(simName string, sim *config.Simulation, outputDir string, outputs map[string]output) error {
	periodic := sim.Boundary == "periodic" && !sim.MovingWindow

	var fld species.FieldSampler
	if sim.MovingWindow {
		// the window shift leaves a uniform field unchanged, so no mesh
		fld = emf.Uniform{E0: vec3(sim.Field.E0), B0: vec3(sim.Field.B0)}
	} else {
		mesh := emf.NewField(sim.Cells, sim.CellSize)
		mesh.SetUniform(vec3(sim.Field.E0), vec3(sim.Field.B0))
		fld = mesh
	}
	cur := current.New(sim.Cells, sim.CellSize)

	specs := make([]*species.Species, 0, len(sim.Species))
	histories := make([]*diag.History, 0, len(sim.Species))
	for _, spc := range sim.Species {
		sp := species.New(spc.Name, spc.Charge, spc.ChargeMass, sim.Cells, sim.CellSize, sim.TimeStep)
		if sim.Boundary == "open" {
			sp.Boundary = species.Open
		}
		sp.MovingWindow = sim.MovingWindow
		sp.SortPeriod = sim.SortPeriod
		sp.Threads = sim.Threads
		seedUniform(sp, spc.PerCell, vec3(spc.Drift))
		specs = append(specs, sp)
		histories = append(histories, diag.NewHistory(sim.TimeStep))
	}

	var collider *collide.Collider
	if sim.Collisions != nil {
		var err error
		collider, err = collide.New(*sim.Collisions, sim.TimeStep)
		if err != nil {
			return fmt.Errorf("simulation %q: %w", simName, err)
		}
	}

	stats := make([]species.Stats, len(specs))
	for step := 1; step <= sim.Steps; step++ {
		cur.Zero()
		for i, sp := range specs {
			sp.Advance(fld, cur, &stats[i])
		}
		if periodic {
			cur.Fold()
		}
		if sim.Smooth > 0 {
			cur.Smooth(sim.Smooth)
		}
		if collider != nil {
			for _, sp := range specs {
				// electron-neutral kinematics; positive species pass through
				if sp.QM < 0 {
					collider.Apply(sp)
				}
			}
		}
		for i, sp := range specs {
			histories[i].Record(sp)
		}
		fmt.Printf("\rStep:[%d/%d]", step, sim.Steps)
	}
	println()

	for i, sp := range specs {
		mean, sigma := histories[i].EnergyStats()
		counts, busiest := diag.CellCounts(sp)
		fmt.Printf("%s: %d particles (peak %d in cell %d), energy %.6g (mean %.6g, sigma %.3g), %.3g pushes/s\n",
			sp.Name, sp.Np(), counts[busiest], busiest, sp.Energy, mean, sigma, stats[i].PushRate())
	}
	summary := diag.SummarizeCurrent(cur)
	fmt.Printf("current totals (%.6g, %.6g, %.6g), |jx| peak %.6g at cell %d\n",
		summary.TotalX, summary.TotalY, summary.TotalZ, summary.PeakX, summary.PeakCell)

	for name, output := range outputs {
		if !*output.saveFlag {
			continue
		}
		var err error
		switch output.fileSuffix {
		case "history":
			for i, sp := range specs {
				err = utils.WriteAsCSV(histories[i].Rows(), histories[i].Columns(),
					outputDir, simName+"_"+sp.Name+"_"+output.fileSuffix)
				if err != nil {
					break
				}
			}
		case "current":
			rows, columns := diag.CurrentProfile(cur)
			err = utils.WriteAsCSV(rows, columns, outputDir, simName+"_"+output.fileSuffix)
		case "charge":
			for _, sp := range specs {
				rows, columns := diag.ChargeProfile(diag.DepositCharge(sp, periodic))
				err = utils.WriteAsCSV(rows, columns, outputDir, simName+"_"+sp.Name+"_"+output.fileSuffix)
				if err != nil {
					break
				}
			}
		case "density":
			for _, sp := range specs {
				rows, columns := diag.DensityProfile(sp)
				err = utils.WriteAsCSV(rows, columns, outputDir, simName+"_"+sp.Name+"_"+output.fileSuffix)
				if err != nil {
					break
				}
			}
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to save "+name+": "+err.Error())
		} else {
			println(name + " saved")
		}
	}
	return nil
}

// seedUniform places perCell particles at even offsets in every cell, all
// sharing the drift momentum.
func seedUniform(sp *species.Species, perCell int, drift grid.Vec3) {
	for ix := 0; ix < sp.NX; ix++ {
		for k := 0; k < perCell; k++ {
			sp.Append(species.Particle{
				IX: ix,
				X:  (float64(k) + 0.5) / float64(perCell),
				UX: drift.X,
				UY: drift.Y,
				UZ: drift.Z,
			})
		}
	}
}

func vec3(v []float64) grid.Vec3 {
	if len(v) < 3 {
		return grid.Vec3{}
	}
	return grid.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

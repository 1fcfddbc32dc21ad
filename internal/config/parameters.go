package config

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/BurntSushi/toml"
)

// Field is the uniform external electromagnetic field of a run, in
// normalized units. Empty slices mean no field; otherwise three components.
type Field struct {
	E0 []float64
	B0 []float64
}

// Species describes one particle population of the deck.
type Species struct {
	Name       string
	Charge     float64   // macro-particle charge
	ChargeMass float64   // q/m
	PerCell    int       // particles seeded per cell
	Drift      []float64 // initial proper velocity [c]
}

// Collisions enables electron-neutral collisions against a background gas
// described by an LXCat cross-section file.
type Collisions struct {
	CrossSections    string
	Pressure         float64 // [Pa]
	Temperature      float64 // [K]
	ReferenceDensity float64 // plasma density defining ω_p [m^-3]
	Scattering       string  // "isotropic" or "surendra"
	Seed             int64
}

// Simulation is one run described by the deck.
type Simulation struct {
	Cells    int
	CellSize float64 // [c/ω_p]
	TimeStep float64 // [1/ω_p]
	Steps    int

	Boundary     string // "periodic" or "open"
	MovingWindow bool
	SortPeriod   int
	Smooth       int // binomial current smoothing passes
	Threads      int

	Field      Field
	Species    []Species
	Collisions *Collisions
}

// Config is a full input deck: named simulations plus the directory their
// outputs land in.
type Config struct {
	OutputDir   string
	Simulations map[string]Simulation
}

// LoadConfig reads a deck, fills defaults for the keys it leaves out and
// validates every simulation.
func LoadConfig(configFileName string) (Config, error) {
	var config Config
	meta, err := toml.DecodeFile(configFileName, &config)
	if err != nil {
		return Config{}, fmt.Errorf("reading deck: %w", err)
	}
	if len(config.Simulations) == 0 {
		return Config{}, fmt.Errorf("no simulations in deck")
	}

	for name, sim := range config.Simulations {
		if !meta.IsDefined("Simulations", name, "Boundary") {
			sim.Boundary = "periodic"
		}
		if !meta.IsDefined("Simulations", name, "SortPeriod") {
			sim.SortPeriod = 25
		}
		if !meta.IsDefined("Simulations", name, "Threads") {
			sim.Threads = runtime.NumCPU()
		}
		if sim.Collisions != nil {
			if !meta.IsDefined("Simulations", name, "Collisions", "Pressure") {
				sim.Collisions.Pressure = 101325. / 760.
			}
			if !meta.IsDefined("Simulations", name, "Collisions", "Temperature") {
				sim.Collisions.Temperature = 300.
			}
			if sim.Collisions.Scattering == "" {
				sim.Collisions.Scattering = "isotropic"
			}
		}
		if err := sim.validate(); err != nil {
			return Config{}, fmt.Errorf("simulation %q: %w", name, err)
		}
		config.Simulations[name] = sim
	}
	return config, nil
}

func (s *Simulation) validate() error {
	if s.Cells <= 0 {
		return fmt.Errorf("Cells must be positive")
	}
	if s.CellSize <= 0 || s.TimeStep <= 0 {
		return fmt.Errorf("CellSize and TimeStep must be positive")
	}
	if s.TimeStep > s.CellSize {
		// particles move below c, so dt <= dx keeps every step under one cell
		return fmt.Errorf("TimeStep %g exceeds CellSize %g", s.TimeStep, s.CellSize)
	}
	if s.Steps <= 0 {
		return fmt.Errorf("Steps must be positive")
	}
	if !slices.Contains([]string{"periodic", "open"}, s.Boundary) {
		return fmt.Errorf("unknown Boundary %q", s.Boundary)
	}
	if s.SortPeriod < 0 || s.Smooth < 0 {
		return fmt.Errorf("SortPeriod and Smooth must not be negative")
	}
	if s.Threads <= 0 {
		return fmt.Errorf("Threads must be positive")
	}

	if err := checkVec("Field.E0", s.Field.E0); err != nil {
		return err
	}
	if err := checkVec("Field.B0", s.Field.B0); err != nil {
		return err
	}

	if len(s.Species) == 0 {
		return fmt.Errorf("no species")
	}
	names := map[string]struct{}{}
	for i := range s.Species {
		sp := &s.Species[i]
		if sp.Name == "" {
			return fmt.Errorf("species %d has no Name", i)
		}
		if _, dup := names[sp.Name]; dup {
			return fmt.Errorf("duplicate species name %q", sp.Name)
		}
		names[sp.Name] = struct{}{}
		if sp.PerCell <= 0 {
			return fmt.Errorf("species %q: PerCell must be positive", sp.Name)
		}
		if sp.ChargeMass == 0 {
			return fmt.Errorf("species %q: ChargeMass must be non-zero", sp.Name)
		}
		if err := checkVec("Drift", sp.Drift); err != nil {
			return fmt.Errorf("species %q: %w", sp.Name, err)
		}
	}

	if c := s.Collisions; c != nil {
		if c.CrossSections == "" {
			return fmt.Errorf("Collisions.CrossSections file not set")
		}
		if c.Pressure <= 0 || c.Temperature <= 0 {
			return fmt.Errorf("Collisions gas state must be positive")
		}
		if c.ReferenceDensity <= 0 {
			return fmt.Errorf("Collisions.ReferenceDensity must be positive")
		}
		if !slices.Contains([]string{"isotropic", "surendra"}, c.Scattering) {
			return fmt.Errorf("unknown Collisions.Scattering %q", c.Scattering)
		}
		if !slices.ContainsFunc(s.Species, func(sp Species) bool { return sp.ChargeMass < 0 }) {
			return fmt.Errorf("Collisions require a species with negative ChargeMass")
		}
	}
	return nil
}

func checkVec(key string, v []float64) error {
	if len(v) != 0 && len(v) != 3 {
		return fmt.Errorf("%s needs exactly 3 components, got %d", key, len(v))
	}
	return nil
}

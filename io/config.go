package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/mcase/geom"
	"github.com/phil-mansfield/mcase/moves"
	"github.com/phil-mansfield/mcase/quantum"
)

const ExampleSamplerFile = `[Sampler]

#######################
# Required Parameters #
#######################

# Inverse temperature, 1 / kT, in the energy units of the pair table and of
# the external calculator.
Beta = 1.0

# Time step of the force-biased proposals. Proposals drift by Tau * Beta * F
# and are smeared by Gaussian noise with variance 2 * Tau / Beta.
Tau = 0.01

#######################
# Optional Parameters #
#######################

# Number of particles and external pressure used by cell moves. Pressure must
# share the units of the stresses reported by the external calculator.
# Particles = 64
# Pressure = 0.0

# Imaginary time step of the ring polymer springs. Defaults to Tau.
# ImaginaryTimeStep = 0.01

# Edge lengths of the periodic cell. Give one value for a cubic cell or three
# values, one per line, for an orthorhombic cell.
# CellLengths = 10.0

# Whether ring polymer spring displacements are wrapped to their minimum image
# in the cell. Requires CellLengths.
# MinimumImage = false

# Pair potential table.
# TableFile = path/to/pair.table`

// SamplerConfig holds the parameters shared by every move type.
type SamplerConfig struct {
	// Required
	Beta, Tau float64

	// Optional
	Particles         int
	Pressure          float64
	ImaginaryTimeStep float64
	CellLengths       []float64
	MinimumImage      bool
	TableFile         string
}

type SamplerWrapper struct {
	Sampler SamplerConfig
}

func DefaultSamplerWrapper() *SamplerWrapper {
	return &SamplerWrapper{ SamplerConfig{ Beta: 1, Tau: 0.01 } }
}

// ReadSamplerConfig reads and validates a [Sampler] configuration file.
func ReadSamplerConfig(fname string) (*SamplerConfig, error) {
	wrap := DefaultSamplerWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Sampler.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return &wrap.Sampler, nil
}

// ParseSamplerConfig is ReadSamplerConfig for an in-memory configuration.
func ParseSamplerConfig(text string) (*SamplerConfig, error) {
	wrap := DefaultSamplerWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil { return nil, err }
	if err := wrap.Sampler.CheckInit(); err != nil { return nil, err }
	return &wrap.Sampler, nil
}

func (con *SamplerConfig) ValidBeta() bool { return con.Beta > 0 }
func (con *SamplerConfig) ValidTau() bool { return con.Tau > 0 }
func (con *SamplerConfig) ValidParticles() bool { return con.Particles >= 0 }
func (con *SamplerConfig) ValidImaginaryTimeStep() bool {
	return con.ImaginaryTimeStep >= 0
}

func (con *SamplerConfig) ValidCellLengths() bool {
	switch len(con.CellLengths) {
	case 0:
		return true
	case 1, 3:
		for _, l := range con.CellLengths {
			if l <= 0 { return false }
		}
		return true
	}
	return false
}

func (con *SamplerConfig) ValidMinimumImage() bool {
	return !con.MinimumImage || len(con.CellLengths) > 0
}

// CheckInit validates the configuration. It may be called again after
// fields are overridden.
func (con *SamplerConfig) CheckInit() error {
	if !con.ValidBeta() {
		return fmt.Errorf("Beta must be positive, but is %g.", con.Beta)
	} else if !con.ValidTau() {
		return fmt.Errorf("Tau must be positive, but is %g.", con.Tau)
	} else if !con.ValidParticles() {
		return fmt.Errorf(
			"Particles must be non-negative, but is %d.", con.Particles,
		)
	} else if !con.ValidImaginaryTimeStep() {
		return fmt.Errorf(
			"ImaginaryTimeStep must be non-negative, but is %g.",
			con.ImaginaryTimeStep,
		)
	} else if !con.ValidCellLengths() {
		return fmt.Errorf(
			"CellLengths must be one or three positive values, but is %v.",
			con.CellLengths,
		)
	} else if !con.ValidMinimumImage() {
		return fmt.Errorf("MinimumImage is set, but CellLengths is not.")
	}

	return nil
}

// SpringTimeStep returns the imaginary time step of the ring polymer
// springs, which defaults to Tau.
func (con *SamplerConfig) SpringTimeStep() float64 {
	if con.ImaginaryTimeStep == 0 { return con.Tau }
	return con.ImaginaryTimeStep
}

// Cell returns the configured cell, or nil if no cell was given.
func (con *SamplerConfig) Cell() *geom.Cell {
	switch len(con.CellLengths) {
	case 1:
		return geom.Cubic(con.CellLengths[0])
	case 3:
		ls := con.CellLengths
		cell, err := geom.NewCell(ls[0], ls[1], ls[2])
		if err != nil { panic(err.Error()) }
		return cell
	}
	return nil
}

// Ensemble returns the cell move parameters.
func (con *SamplerConfig) Ensemble() moves.Ensemble {
	return moves.Ensemble{
		Particles: con.Particles, Pressure: con.Pressure, Beta: con.Beta,
	}
}

// Ring returns the spring coupling described by the configuration.
func (con *SamplerConfig) Ring() (*quantum.Ring, error) {
	return quantum.NewRing(
		con.Beta, con.SpringTimeStep(), con.Cell(), con.MinimumImage,
	)
}

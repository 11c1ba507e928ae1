package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/mcase/io"
	"github.com/phil-mansfield/mcase/moves"
)

type cellReport struct {
	Volume1 float64 `yaml:"volume1"`
	Volume2 float64 `yaml:"volume2"`
	Ratio   float64 `yaml:"ratio"`
}

// ensemble reads the cell move parameters from params, falling back to the
// sampler configuration for any which are missing.
func (opts *options) ensemble(params io.Parameters) (moves.Ensemble, error) {
	ens := opts.config.Ensemble()
	var err error
	if _, ok := params["particles"]; ok {
		if ens.Particles, err = params.Int("particles"); err != nil { return ens, err }
	}
	if _, ok := params["pressure"]; ok {
		if ens.Pressure, err = params.Float("pressure"); err != nil { return ens, err }
	}
	if _, ok := params["beta"]; ok {
		if ens.Beta, err = params.Float("beta"); err != nil { return ens, err }
	}
	return ens, nil
}

func newCellCommand(opts *options) *cobra.Command {
	var paramFile string

	cmd := &cobra.Command{
		Use:   "cell",
		Short: "Unbiased acceptance ratio of a cell move",
		Long: "Reads energy1, energy2, volume1, and volume2 (and optionally " +
			"particles, pressure, and beta) from a key/value parameter file " +
			"and prints the acceptance ratio of the cell move.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if paramFile == "" {
				return fmt.Errorf("No parameter file given. Use --params.")
			}

			params, err := io.ReadParameterFile(paramFile)
			if err != nil { return err }

			var vals [4]float64
			for i, key := range []string{ "energy1", "energy2", "volume1", "volume2" } {
				if vals[i], err = params.Float(key); err != nil { return err }
			}
			v1, v2, vol1, vol2 := vals[0], vals[1], vals[2], vals[3]
			if vol1 <= 0 || vol2 <= 0 {
				return fmt.Errorf(
					"Volumes must be positive, but are %g and %g.", vol1, vol2,
				)
			}

			ens, err := opts.ensemble(params)
			if err != nil { return err }

			ratio := moves.VolumeAcceptance(v1, v2, vol1, vol2, ens)
			return io.WriteReport(cmd.OutOrStdout(), cellReport{
				Volume1: vol1, Volume2: vol2,
				Ratio: ratio,
			})
		},
	}

	cmd.Flags().StringVar(&paramFile, "params", "", "Key/value parameter file")
	return cmd
}

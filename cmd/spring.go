package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/mcase/io"
)

type springReport struct {
	Slices       int           `yaml:"slices"`
	Particles    int           `yaml:"particles"`
	MinimumImage bool          `yaml:"minimum_image"`
	Energy       float64       `yaml:"energy"`
	Forces       [][]io.Vector `yaml:"forces"`
}

func newSpringCommand(opts *options) *cobra.Command {
	var (
		positions string
		slices    int
	)

	cmd := &cobra.Command{
		Use:   "spring",
		Short: "Spring energy and forces of a ring polymer path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if positions == "" {
				return fmt.Errorf("No path file given. Use --positions.")
			}

			ring, err := opts.config.Ring()
			if err != nil { return err }
			path, err := io.ReadPath(positions, slices)
			if err != nil { return err }

			rcs := ring.Centroids(path)
			forces := make([][]io.Vector, len(path))
			for k := range path {
				forces[k] = io.Vectors(ring.SpringForce(path[k], rcs[k]))
			}

			return io.WriteReport(cmd.OutOrStdout(), springReport{
				Slices: len(path), Particles: len(path[0]),
				MinimumImage: ring.MinimumImage,
				Energy: ring.SpringEnergy(path), Forces: forces,
			})
		},
	}

	cmd.Flags().StringVar(&positions, "positions", "", "File with x y z columns, slice-major")
	cmd.Flags().IntVar(&slices, "slices", 2, "Number of replica slices in the path")
	return cmd
}

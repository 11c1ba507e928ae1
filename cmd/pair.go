package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/mcase/geom"
	"github.com/phil-mansfield/mcase/io"
	"github.com/phil-mansfield/mcase/pair"
)

type pairReport struct {
	Particles int         `yaml:"particles"`
	Periodic  bool        `yaml:"periodic"`
	Energy    float64     `yaml:"energy"`
	Forces    []io.Vector `yaml:"forces"`
}

func newPairCommand(opts *options) *cobra.Command {
	var positions string

	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Pair energy and forces of a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if positions == "" {
				return fmt.Errorf("No positions file given. Use --positions.")
			}

			_, tab, err := opts.readTable(nil)
			if err != nil { return err }
			xs, err := io.ReadPositions(positions)
			if err != nil { return err }

			cell := opts.config.Cell()
			logrus.Infof(
				"Evaluating %d particles, periodic = %v.", len(xs), cell != nil,
			)

			e, fs := pair.Evaluate(geom.Displacements(xs, cell), tab)
			return io.WriteReport(cmd.OutOrStdout(), pairReport{
				Particles: len(xs), Periodic: cell != nil,
				Energy: e, Forces: io.Vectors(fs),
			})
		},
	}

	cmd.Flags().StringVar(&positions, "positions", "", "File with x y z columns, one particle per row")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/mcase/io"
	"github.com/phil-mansfield/mcase/pair"
)

type tablePoint struct {
	R      float64 `yaml:"r"`
	Energy float64 `yaml:"energy"`
	Force  float64 `yaml:"force"`
}

type tableReport struct {
	File   string       `yaml:"file"`
	Rows   int          `yaml:"rows"`
	Min    float64      `yaml:"min"`
	Max    float64      `yaml:"max"`
	Points []tablePoint `yaml:"points,omitempty"`
}

// readTable reads the table named on the command line or in the
// configuration.
func (opts *options) readTable(args []string) (string, *pair.Table, error) {
	fname := opts.config.TableFile
	if len(args) > 0 { fname = args[0] }
	if fname == "" {
		return "", nil, fmt.Errorf("No pair table given. Use --table or TableFile.")
	}
	tab, err := pair.ReadTableFile(fname)
	return fname, tab, err
}

func newTableCommand(opts *options) *cobra.Command {
	var at []float64

	cmd := &cobra.Command{
		Use:   "table [FILE]",
		Short: "Summarize a pair table and evaluate it at given distances",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fname, tab, err := opts.readTable(args)
			if err != nil { return err }

			report := tableReport{
				File: fname, Rows: len(tab.Distances),
				Min: tab.Min(), Max: tab.Max(),
			}
			for _, r := range at {
				report.Points = append(report.Points, tablePoint{
					R: r, Energy: tab.Energy(r), Force: tab.Force(r),
				})
			}
			return io.WriteReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Float64SliceVar(&at, "at", nil, "Comma-separated distances to evaluate the table at")
	return cmd
}

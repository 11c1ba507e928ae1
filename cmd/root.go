// Package cmd implements the mcase command line tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/mcase/io"
)

// options are the flags shared by every subcommand.
type options struct {
	configFile string
	logLevel   string

	beta, tau, pressure, imaginaryTimeStep float64
	particles                              int
	cellLengths                            []float64
	minimumImage                           bool
	tableFile                              string

	// config is the sampler configuration after flags have been applied.
	config *io.SamplerConfig
}

// NewRootCommand builds the mcase command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mcase",
		Short: "Score force-biased Monte Carlo moves and evaluate pair tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("Invalid log level: %s", opts.logLevel)
			}
			logrus.SetLevel(level)

			opts.config, err = opts.load(cmd)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "[Sampler] configuration file")
	flags.StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	flags.Float64Var(&opts.beta, "beta", 1, "Inverse temperature")
	flags.Float64Var(&opts.tau, "tau", 0.01, "Proposal time step")
	flags.Float64Var(&opts.pressure, "pressure", 0, "External pressure for cell moves")
	flags.IntVar(&opts.particles, "particles", 0, "Number of particles for cell moves")
	flags.Float64Var(&opts.imaginaryTimeStep, "imaginary-time-step", 0, "Ring polymer spring time step (defaults to tau)")
	flags.Float64SliceVar(&opts.cellLengths, "cell", nil, "Comma-separated periodic cell lengths (one value for a cubic cell)")
	flags.BoolVar(&opts.minimumImage, "minimum-image", false, "Wrap ring polymer springs to their minimum image")
	flags.StringVar(&opts.tableFile, "table", "", "Pair potential table file")

	root.AddCommand(
		newTableCommand(opts),
		newPairCommand(opts),
		newSpringCommand(opts),
		newCellCommand(opts),
		newExampleConfigCommand(),
	)
	return root
}

// load reads the configuration file, if any, and overrides it with every
// flag set on the command line.
func (opts *options) load(cmd *cobra.Command) (*io.SamplerConfig, error) {
	con := &io.DefaultSamplerWrapper().Sampler
	if opts.configFile != "" {
		var err error
		if con, err = io.ReadSamplerConfig(opts.configFile); err != nil {
			return nil, err
		}
		logrus.Debugf("Read sampler configuration from %s.", opts.configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("beta") { con.Beta = opts.beta }
	if flags.Changed("tau") { con.Tau = opts.tau }
	if flags.Changed("pressure") { con.Pressure = opts.pressure }
	if flags.Changed("particles") { con.Particles = opts.particles }
	if flags.Changed("imaginary-time-step") {
		con.ImaginaryTimeStep = opts.imaginaryTimeStep
	}
	if flags.Changed("cell") { con.CellLengths = opts.cellLengths }
	if flags.Changed("minimum-image") { con.MinimumImage = opts.minimumImage }
	if flags.Changed("table") { con.TableFile = opts.tableFile }

	if err := con.CheckInit(); err != nil { return nil, err }
	return con, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logrus.Error(err.Error())
		os.Exit(1)
	}
}

func newExampleConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print an example [Sampler] configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), io.ExampleSamplerFile)
			return err
		},
	}
}

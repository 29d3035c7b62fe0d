// Package main provides the opcoverage CLI.
//
// opcoverage classifies an operator catalog into quantization capability
// classes and renders the class member lists as source code:
//
//	opcoverage gen --catalog tfl_ops.yaml --format cpp --out op_quant_spec_getters.inc
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/opcoverage/internal/config"
)

const version = "v0.1.0"

// cli carries state shared by all subcommands of one invocation.
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "opcoverage",
		Short: "Classify operators by quantization capability",
		Long: `opcoverage reads an operator catalog and partitions it into capability
classes (dynamic-range, weight-only fallback, sparsity and static int8/uint8
per-axis/per-tensor quantization), then renders each class as a sorted list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newGenCmd(c),
		newClassifyCmd(c),
		newTypesCmd(),
		newConfigCmd(c),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "opcoverage %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

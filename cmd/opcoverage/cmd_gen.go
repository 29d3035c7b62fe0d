package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/opcoverage/internal/catalog"
	"github.com/born-ml/opcoverage/internal/classify"
	"github.com/born-ml/opcoverage/internal/emit"
)

type genFlags struct {
	catalog   string
	format    string
	output    string
	pkg       string
	baseClass string
}

func newGenCmd(c *cli) *cobra.Command {
	f := &genFlags{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate capability class getters from a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.apply(cmd, c)
			return c.runGen(cmd)
		},
	}

	cmd.Flags().StringVar(&f.catalog, "catalog", "", "Operator catalog file (.yaml, .yml, .json)")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: cpp, go, yaml (default from config, cpp)")
	cmd.Flags().StringVarP(&f.output, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&f.pkg, "package", "", "Go package name for --format go")
	cmd.Flags().StringVar(&f.baseClass, "base-class", "", "Only classify operators deriving from this class")

	return cmd
}

// apply overlays explicitly set flags onto the loaded configuration.
func (f *genFlags) apply(cmd *cobra.Command, c *cli) {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		c.cfg.Catalog = f.catalog
	}
	if flags.Changed("format") {
		c.cfg.Format = f.format
	}
	if flags.Changed("out") {
		c.cfg.Output = f.output
	}
	if flags.Changed("package") {
		c.cfg.Package = f.pkg
	}
	if flags.Changed("base-class") {
		c.cfg.BaseClass = f.baseClass
	}
}

func (c *cli) runGen(cmd *cobra.Command) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	opts, err := c.cfg.EmitOptions()
	if err != nil {
		return err
	}

	res, err := c.classify()
	if err != nil {
		return err
	}

	out, err := emit.Render(res, opts)
	if err != nil {
		return err
	}

	if c.cfg.Output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(c.cfg.Output, out, 0o644); err != nil { //nolint:gosec // Generated source is world-readable.
		return fmt.Errorf("failed to write output: %w", err)
	}

	c.logger.Info("Generated capability classes",
		zap.String("output", c.cfg.Output),
		zap.Stringer("format", opts.Format),
		zap.Int("bytes", len(out)))
	return nil
}

// classify loads the configured catalog and classifies it.
func (c *cli) classify() (*classify.Result, error) {
	cat, err := catalog.Load(c.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Catalog loaded", zap.String("path", c.cfg.Catalog), zap.Int("operators", cat.Len()))

	return classify.New(c.cfg.ClassifierConfig(c.logger)).Classify(cat)
}

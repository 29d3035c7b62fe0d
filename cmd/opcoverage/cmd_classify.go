package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/opcoverage/internal/typevocab"
)

func newClassifyCmd(c *cli) *cobra.Command {
	var catalogPath, baseClass string

	cmd := &cobra.Command{
		Use:   "classify OP...",
		Short: "Show the capability classes of individual operators",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("catalog") {
				c.cfg.Catalog = catalogPath
			}
			if cmd.Flags().Changed("base-class") {
				c.cfg.BaseClass = baseClass
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}

			res, err := c.classify()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, op := range args {
				classes := res.ClassesOf(op)
				if len(classes) == 0 {
					fmt.Fprintf(out, "%s: (none)\n", op)
					continue
				}
				fmt.Fprintf(out, "%s:\n", op)
				for _, class := range classes {
					fmt.Fprintf(out, "  %s\n", class)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Operator catalog file (.yaml, .yml, .json)")
	cmd.Flags().StringVar(&baseClass, "base-class", "", "Only classify operators deriving from this class")

	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, code := range typevocab.Codes() {
				desc, err := typevocab.Lookup(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", code, desc)
			}
			return tw.Flush()
		},
	}
}

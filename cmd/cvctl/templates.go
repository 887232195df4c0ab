package main

import (
	"fmt"

	"resume-builder/internal/layout"

	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range layout.Styles() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", s.Name, s.Label)
			}
			return nil
		},
	}
}

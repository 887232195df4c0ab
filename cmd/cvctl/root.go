package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cvctl",
		Short: "Render résumé profiles offline",
		Long: `cvctl renders a profile JSON file with any of the résumé templates,
without a database or a running server.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newTemplatesCmd())
	return root
}

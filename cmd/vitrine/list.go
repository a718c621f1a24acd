package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/vitrine/internal/app"
)

func newListCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of artefacts",
		Long: `Fetch the configured query and print one page of artefacts as a table.
Placeholder artefacts are listed when the collection cannot be reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.List(cmd.Context(), options(), page, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to print, 1-based")
	return cmd
}

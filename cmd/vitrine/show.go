package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/vitrine/internal/app"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print the details of one artefact",
		Long:  `Fetch the configured query and print the title, maker, date, image and description of the artefact with the given system number.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Show(cmd.Context(), options(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

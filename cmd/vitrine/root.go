package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/vitrine/internal/app"
)

// Persistent flags shared by every command.
var (
	configPath string
	prefsPath  string
	pageSize   int
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vitrine",
		Short: "Vitrine is a keyboard-first terminal gallery of museum artefacts",
		Long: `Vitrine fetches artefacts from the V&A collections API and shows them as a
paged grid of cards. Every card opens a detail view, page changes are announced,
and descriptions can be read aloud when a speech command is installed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), options())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "override config path (optional)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "override display preferences path (optional)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "artefacts per page (overrides gallery.page_size)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}

func options() app.Options {
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		PageSize:   pageSize,
	}
}

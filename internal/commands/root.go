package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Track personal expenses",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	defaultDir := os.Getenv("TALLY_DIR")
	if defaultDir == "" {
		defaultDir = "."
	}
	rootCmd.PersistentFlags().String("dir", defaultDir, "data directory (env TALLY_DIR)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(),
		newEditCommand(),
		newDeleteCommand(),
		newListCommand(),
		newTotalsCommand(),
		newSummaryCommand(),
		newCategoriesCommand(),
		newExportCommand(),
		newImportCommand(),
		newServeCommand(),
	)

	return rootCmd
}

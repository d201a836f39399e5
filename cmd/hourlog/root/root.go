package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hourlog/internal/ui"
)

const Version = "0.1.0"

// NewRootCmd builds the hourlog command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hourlog",
		Short:         "Log hours per person and place, totalled by week",
		Long:          "hourlog records hours worked by people at places and summarizes them per Monday to Sunday week.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newNamesCmd(personKind),
		newNamesCmd(placeKind),
		newAddCmd(),
		newEditCmd(),
		newRmCmd(),
		newListCmd(),
		newWeeksCmd(),
		newStatsCmd(),
		newClearCmd(),
		newExportCmd(),
		newWeekCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

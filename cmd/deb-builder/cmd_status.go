package main

import (
	"github.com/spf13/cobra"
	"github.com/spotify-downloader/deb-builder/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show input, staging and artifact state",
	Long: `Report which required input files are present, whether a staging
tree exists under the build directory, and whether the .deb artifact
has been built.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cli.NewBuildContext(nonInteractive)
	return cli.RunStatus(ctx)
}

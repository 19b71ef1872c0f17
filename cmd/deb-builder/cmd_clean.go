package main

import (
	"github.com/spf13/cobra"
	"github.com/spotify-downloader/deb-builder/internal/cli"
)

var assumeYes bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the build directory",
	Long: `Remove the build directory, including any staged tree and built
artifact. Prompts for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := cli.NewBuildContext(nonInteractive)
	return cli.RunClean(ctx, assumeYes)
}

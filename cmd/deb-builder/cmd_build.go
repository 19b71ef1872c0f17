package main

import (
	"github.com/spf13/cobra"
	"github.com/spotify-downloader/deb-builder/internal/cli"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Stage the package tree and build the .deb",
	Long: `Run the full packaging sequence:

  1. Pre-flight checks (input files, dpkg-deb availability)
  2. Staging (clean build dir, create tree, copy files, launcher, permissions)
  3. dpkg-deb invocation

The first failing step aborts the build.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cli.NewBuildContext(nonInteractive)
	return cli.RunBuild(ctx, verbose)
}

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spotify-downloader/deb-builder/pkg/version"
)

var (
	noColor        bool
	nonInteractive bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "deb-builder",
	Short: "Debian package builder for spotify-downloader-gui",
	Long: `Stages the spotify-downloader-gui application into a Debian binary
package tree and invokes dpkg-deb to produce the .deb artifact.

The build is a fixed sequence: pre-flight checks, staging (clean,
directories, file copies, launcher, permissions), then dpkg-deb.
Package name and version are fixed at compile time.

Run without arguments to build the package.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	RunE: runBuild,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt for input")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo external commands and their output")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

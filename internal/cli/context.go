// Package cli wires the packaging steps to the command-line commands.
// It bridges user commands to the underlying build, clean and status
// operations.
package cli

import (
	"fmt"

	"github.com/spotify-downloader/deb-builder/internal/deb"
	"github.com/spotify-downloader/deb-builder/internal/steps"
	"github.com/spotify-downloader/deb-builder/internal/system"
	"github.com/spotify-downloader/deb-builder/internal/ui"
)

// BuildContext holds all dependencies needed for packaging operations
type BuildContext struct {
	UI     *ui.UI
	FS     *system.FileSystem
	Runner system.CommandRunner
	Pkg    deb.Package
	Layout deb.Layout
}

// NewBuildContext creates a new BuildContext with all dependencies initialized
func NewBuildContext(nonInteractive bool) *BuildContext {
	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	pkg := deb.Default()

	return &BuildContext{
		UI:     uiInstance,
		FS:     system.NewFileSystem(),
		Runner: system.NewCommandRunner(),
		Pkg:    pkg,
		Layout: deb.NewLayout(pkg),
	}
}

// RunBuild executes the full packaging sequence, stopping at the first
// failure.
func RunBuild(ctx *BuildContext, verbose bool) error {
	ctx.UI.Header(fmt.Sprintf("Building %s", ctx.Pkg.Filename()))

	sequence := []struct {
		name string
		step interface{ Run() error }
	}{
		{"preflight", steps.NewPreflight(ctx.FS, ctx.Runner, ctx.UI, ctx.Pkg)},
		{"staging", steps.NewStaging(ctx.FS, ctx.UI, ctx.Pkg, ctx.Layout)},
		{"package", steps.NewPackager(ctx.FS, ctx.Runner, ctx.UI, ctx.Layout, verbose)},
	}

	for _, s := range sequence {
		if err := s.step.Run(); err != nil {
			return fmt.Errorf("step %s failed: %w", s.name, err)
		}
	}

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Successf("Package built: %s", ctx.Layout.Artifact)
	return nil
}

// RunClean removes the build directory after confirmation.
func RunClean(ctx *BuildContext, assumeYes bool) error {
	exists, err := ctx.FS.DirectoryExists(deb.BuildDir)
	if err != nil {
		return fmt.Errorf("failed to check build directory: %w", err)
	}
	if !exists {
		ctx.UI.Infof("Nothing to clean: %s does not exist", deb.BuildDir)
		return nil
	}

	if !assumeYes {
		confirm, err := ctx.UI.PromptYesNo(fmt.Sprintf("Remove %s and everything under it?", deb.BuildDir), false)
		if err != nil {
			return fmt.Errorf("failed to prompt: %w", err)
		}
		if !confirm {
			ctx.UI.Info("Clean aborted")
			return nil
		}
	}

	if err := ctx.FS.RemoveTree(deb.BuildDir); err != nil {
		return err
	}
	ctx.UI.Successf("Removed %s", deb.BuildDir)
	return nil
}

// RunStatus reports which inputs and outputs are present.
func RunStatus(ctx *BuildContext) error {
	ctx.UI.Header(fmt.Sprintf("Status: %s", ctx.Pkg.Filename()))

	ctx.UI.Info("Required inputs:")
	for _, input := range deb.RequiredInputs() {
		exists, err := ctx.FS.FileExists(input)
		if err != nil {
			return fmt.Errorf("failed to check input %s: %w", input, err)
		}
		if exists {
			ctx.UI.Successf("  ✓ %s", input)
		} else {
			ctx.UI.Errorf("  ✗ %s (missing)", input)
		}
	}

	ctx.UI.Print("")
	staged, err := ctx.FS.DirectoryExists(ctx.Layout.Root)
	if err != nil {
		return fmt.Errorf("failed to check staging directory: %w", err)
	}
	if staged {
		ctx.UI.Infof("Staging tree present: %s", ctx.Layout.Root)
	} else {
		ctx.UI.Info("No staging tree")
	}

	built, err := ctx.FS.FileExists(ctx.Layout.Artifact)
	if err != nil {
		return fmt.Errorf("failed to check artifact: %w", err)
	}
	if built {
		ctx.UI.Successf("Artifact present: %s", ctx.Layout.Artifact)
	} else {
		ctx.UI.Info("No artifact built")
	}

	return nil
}

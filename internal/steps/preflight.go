// Package steps implements the packaging pipeline: pre-flight checks,
// staging tree assembly, and the dpkg-deb invocation. Each step is run
// once per build, in order, and the first failure aborts the build.
package steps

import (
	"fmt"

	"github.com/spotify-downloader/deb-builder/internal/deb"
	"github.com/spotify-downloader/deb-builder/internal/system"
	"github.com/spotify-downloader/deb-builder/internal/ui"
)

// packagingTool is the external command that produces the .deb artifact.
const packagingTool = "dpkg-deb"

// Preflight verifies the build inputs and tooling before any staging
// happens, so a missing input never reaches the packaging tool.
type Preflight struct {
	fs     system.FileSystemManager
	runner system.CommandRunner
	ui     *ui.UI
	pkg    deb.Package
}

// NewPreflight creates a new Preflight step.
func NewPreflight(fs system.FileSystemManager, runner system.CommandRunner, ui *ui.UI, pkg deb.Package) *Preflight {
	return &Preflight{
		fs:     fs,
		runner: runner,
		ui:     ui,
		pkg:    pkg,
	}
}

// Run executes the pre-flight checks.
func (p *Preflight) Run() error {
	p.ui.Step("Pre-flight checks")

	if err := p.pkg.Validate(); err != nil {
		return err
	}
	p.ui.Successf("  ✓ package metadata: %s %s (%s)", p.pkg.Name, p.pkg.Version, p.pkg.Arch)

	for _, input := range deb.RequiredInputs() {
		exists, err := p.fs.FileExists(input)
		if err != nil {
			return fmt.Errorf("failed to check input %s: %w", input, err)
		}
		if !exists {
			return fmt.Errorf("required input file %s not found", input)
		}
		p.ui.Successf("  ✓ %s", input)
	}

	if _, err := p.runner.LookPath(packagingTool); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", packagingTool, err)
	}
	p.ui.Successf("  ✓ %s available", packagingTool)

	return nil
}

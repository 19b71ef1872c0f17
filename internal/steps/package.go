package steps

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/spotify-downloader/deb-builder/internal/deb"
	"github.com/spotify-downloader/deb-builder/internal/system"
	"github.com/spotify-downloader/deb-builder/internal/ui"
)

// Packager invokes dpkg-deb on the staged tree to produce the artifact.
type Packager struct {
	fs      system.FileSystemManager
	runner  system.CommandRunner
	ui      *ui.UI
	layout  deb.Layout
	verbose bool
}

// NewPackager creates a new Packager step.
func NewPackager(fs system.FileSystemManager, runner system.CommandRunner, ui *ui.UI, layout deb.Layout, verbose bool) *Packager {
	return &Packager{
		fs:      fs,
		runner:  runner,
		ui:      ui,
		layout:  layout,
		verbose: verbose,
	}
}

// Run executes the packaging step.
func (p *Packager) Run() error {
	p.ui.Step("Building package")

	args := []string{"--build", p.layout.Root, p.layout.Artifact}
	if p.verbose {
		p.ui.Infof("Running: %s", shellquote.Join(append([]string{packagingTool}, args...)...))
	}

	output, err := p.runner.Run(packagingTool, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", packagingTool, err, output)
	}
	if p.verbose && strings.TrimSpace(output) != "" {
		p.ui.Print(strings.TrimSpace(output))
	}

	exists, err := p.fs.FileExists(p.layout.Artifact)
	if err != nil {
		return fmt.Errorf("failed to check artifact: %w", err)
	}
	if !exists {
		return fmt.Errorf("%s reported success but %s was not created", packagingTool, p.layout.Artifact)
	}

	p.ui.Successf("  ✓ %s", p.layout.Artifact)
	return nil
}

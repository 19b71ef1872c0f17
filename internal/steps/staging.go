package steps

import (
	"fmt"

	"github.com/spotify-downloader/deb-builder/internal/deb"
	"github.com/spotify-downloader/deb-builder/internal/system"
	"github.com/spotify-downloader/deb-builder/internal/ui"
)

// Staging assembles the package directory tree under the build directory.
// Any tree left over from a previous run is removed first, so re-running
// produces an identical tree.
type Staging struct {
	fs     system.FileSystemManager
	ui     *ui.UI
	pkg    deb.Package
	layout deb.Layout
}

// NewStaging creates a new Staging step.
func NewStaging(fs system.FileSystemManager, ui *ui.UI, pkg deb.Package, layout deb.Layout) *Staging {
	return &Staging{
		fs:     fs,
		ui:     ui,
		pkg:    pkg,
		layout: layout,
	}
}

// Run executes the staging step.
func (s *Staging) Run() error {
	s.ui.Step("Staging package tree")

	if err := s.fs.RemoveTree(s.layout.Root); err != nil {
		return fmt.Errorf("failed to clean staging directory: %w", err)
	}

	for _, dir := range s.layout.Directories() {
		if err := s.fs.EnsureDirectory(dir, deb.PermDir); err != nil {
			return err
		}
	}
	s.ui.Successf("  ✓ created %s", s.layout.Root)

	for _, fc := range s.layout.Copies() {
		if err := s.fs.CopyFile(fc.Source, fc.Target); err != nil {
			return err
		}
		s.ui.Successf("  ✓ %s -> %s", fc.Source, fc.Target)
	}

	if err := s.fs.WriteFile(s.layout.Launcher, []byte(s.pkg.LauncherScript()), deb.PermExec); err != nil {
		return fmt.Errorf("failed to write launcher: %w", err)
	}
	s.ui.Successf("  ✓ wrote launcher %s", s.layout.Launcher)

	if err := s.fs.Chmod(s.layout.ControlFile, deb.PermControl); err != nil {
		return err
	}
	for _, dir := range s.layout.PermissionTargets() {
		if err := s.fs.Chmod(dir, deb.PermDir); err != nil {
			return err
		}
	}
	s.ui.Success("  ✓ permissions set")

	return nil
}

// Package deb holds the metadata and staging layout for the Debian binary
// package this tool assembles. The package identity is fixed at compile time;
// everything else (staging paths, artifact name, launcher contents) is
// derived from it.
package deb

import (
	"fmt"

	"github.com/spotify-downloader/deb-builder/internal/common"
)

// Package identifies a Debian binary package.
type Package struct {
	Name    string
	Version string
	Arch    string
}

// Default returns the package this tool is hard-wired to build.
func Default() Package {
	return Package{
		Name:    "spotify-downloader-gui",
		Version: "1.0",
		Arch:    "all",
	}
}

// StagingDirName returns the name of the staging directory,
// following the Debian name_version_arch convention.
func (p Package) StagingDirName() string {
	return fmt.Sprintf("%s_%s_%s", p.Name, p.Version, p.Arch)
}

// Filename returns the expected .deb filename for the package.
func (p Package) Filename() string {
	return p.StagingDirName() + ".deb"
}

// InstallDir returns the absolute path the application files are
// installed to on the target system.
func (p Package) InstallDir() string {
	return "/usr/share/" + p.Name
}

// LauncherScript returns the contents of the wrapper installed to
// usr/bin: a single line that starts the GUI entry point from the
// install path.
func (p Package) LauncherScript() string {
	return fmt.Sprintf("exec python3 %s/gui.py \"$@\"\n", p.InstallDir())
}

// Validate checks the package name and version against Debian naming
// rules. It inspects the two metadata constants only, never the
// package contents.
func (p Package) Validate() error {
	if err := common.ValidatePackageName(p.Name); err != nil {
		return fmt.Errorf("invalid package name: %w", err)
	}
	if err := common.ValidatePackageVersion(p.Version); err != nil {
		return fmt.Errorf("invalid package version: %w", err)
	}
	return nil
}

package deb

import (
	"os"
	"path/filepath"
)

// BuildDir is the directory, relative to the invocation directory, that
// the staging tree and the final artifact are written under.
const BuildDir = "build"

// Source files the staging step copies from, relative to the invocation
// directory. All of them must pre-exist.
const (
	ControlSource = "deb_resources/control"
	DesktopSource = "deb_resources/spotify-downloader.desktop"
	GuiSource     = "gui.py"
	MainSource    = "main.py"
)

// Permission bits applied during staging. The control file and the
// package directories are world-readable and world-executable, matching
// Debian packaging conventions.
const (
	PermDir     os.FileMode = 0755
	PermExec    os.FileMode = 0755
	PermControl os.FileMode = 0755
)

// FileCopy describes one static file placement in the staging tree.
type FileCopy struct {
	Source string
	Target string
}

// Layout holds the staging tree paths for a package. All paths are
// relative to the invocation directory.
type Layout struct {
	// Root is the top of the staging tree, build/<name>_<version>_<arch>.
	Root string

	ControlDir  string
	ControlFile string
	UsrDir      string
	BinDir      string
	Launcher    string
	ShareDir    string
	AppsDir     string
	DesktopFile string

	// Artifact is the path of the .deb produced by the packaging tool.
	Artifact string
}

// NewLayout derives the staging tree for a package.
func NewLayout(p Package) Layout {
	root := filepath.Join(BuildDir, p.StagingDirName())
	return Layout{
		Root:        root,
		ControlDir:  filepath.Join(root, "DEBIAN"),
		ControlFile: filepath.Join(root, "DEBIAN", "control"),
		UsrDir:      filepath.Join(root, "usr"),
		BinDir:      filepath.Join(root, "usr", "bin"),
		Launcher:    filepath.Join(root, "usr", "bin", p.Name),
		ShareDir:    filepath.Join(root, "usr", "share", p.Name),
		AppsDir:     filepath.Join(root, "usr", "share", "applications"),
		DesktopFile: filepath.Join(root, "usr", "share", "applications", "spotify-downloader.desktop"),
		Artifact:    filepath.Join(BuildDir, p.Filename()),
	}
}

// Directories returns the staging directories in creation order.
func (l Layout) Directories() []string {
	return []string{
		l.ControlDir,
		l.BinDir,
		l.ShareDir,
		l.AppsDir,
	}
}

// Copies returns the static file placements in staging order.
func (l Layout) Copies() []FileCopy {
	return []FileCopy{
		{Source: ControlSource, Target: l.ControlFile},
		{Source: DesktopSource, Target: l.DesktopFile},
		{Source: GuiSource, Target: filepath.Join(l.ShareDir, "gui.py")},
		{Source: MainSource, Target: filepath.Join(l.ShareDir, "main.py")},
	}
}

// PermissionTargets returns the directories whose permission bits are set
// explicitly after staging, top-down.
func (l Layout) PermissionTargets() []string {
	return []string{
		l.Root,
		l.ControlDir,
		l.UsrDir,
	}
}

// RequiredInputs returns the source files that must exist before staging.
func RequiredInputs() []string {
	return []string{
		ControlSource,
		DesktopSource,
		GuiSource,
		MainSource,
	}
}

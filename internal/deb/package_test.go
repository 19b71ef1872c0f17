package deb

import (
	"strings"
	"testing"
)

func TestDefaultPackage(t *testing.T) {
	pkg := Default()

	if pkg.Name != "spotify-downloader-gui" {
		t.Errorf("Name = %q, want spotify-downloader-gui", pkg.Name)
	}
	if pkg.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", pkg.Version)
	}
	if pkg.Arch != "all" {
		t.Errorf("Arch = %q, want all", pkg.Arch)
	}
	if err := pkg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestPackageDerivations(t *testing.T) {
	pkg := Default()

	if got := pkg.StagingDirName(); got != "spotify-downloader-gui_1.0_all" {
		t.Errorf("StagingDirName() = %q", got)
	}
	if got := pkg.Filename(); got != "spotify-downloader-gui_1.0_all.deb" {
		t.Errorf("Filename() = %q", got)
	}
	if got := pkg.InstallDir(); got != "/usr/share/spotify-downloader-gui" {
		t.Errorf("InstallDir() = %q", got)
	}
}

func TestLauncherScript(t *testing.T) {
	pkg := Default()
	script := pkg.LauncherScript()

	if got := strings.Count(script, "\n"); got != 1 {
		t.Errorf("LauncherScript() has %d lines, want exactly 1", got)
	}
	if !strings.HasSuffix(script, "\n") {
		t.Error("LauncherScript() must end with a newline")
	}
	if !strings.Contains(script, pkg.InstallDir()+"/gui.py") {
		t.Errorf("LauncherScript() = %q, does not invoke the entry point", script)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pkg     Package
		wantErr bool
	}{
		{"default", Default(), false},
		{"bad name", Package{Name: "Bad Name", Version: "1.0", Arch: "all"}, true},
		{"bad version", Package{Name: "good-name", Version: "beta", Arch: "all"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pkg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

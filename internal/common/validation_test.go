package common

import "testing"

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"valid name", "spotify-downloader-gui", false},
		{"valid with digits", "libfoo2", false},
		{"valid with plus", "g++", false},
		{"invalid - empty", "", true},
		{"invalid - uppercase", "Spotify", true},
		{"invalid - single char", "a", true},
		{"invalid - leading dash", "-foo", true},
		{"invalid - underscore", "foo_bar", true},
		{"invalid - spaces", "foo bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.pkg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePackageVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"valid version", "1.0", false},
		{"valid multi-part", "2.14.3", false},
		{"valid with tilde", "1.0~rc1", false},
		{"valid with dash", "1.0-1", false},
		{"invalid - empty", "", true},
		{"invalid - leading letter", "v1.0", true},
		{"invalid - spaces", "1.0 beta", true},
		{"invalid - underscore", "1_0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

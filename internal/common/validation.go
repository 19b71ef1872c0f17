package common

import (
	"fmt"
	"regexp"
)

// Debian policy: package names are lowercase alphanumerics plus '+', '-'
// and '.', at least two characters, starting with an alphanumeric.
var packageNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9+.-]+$`)

// Upstream version strings start with a digit and contain only
// alphanumerics, '.', '+', '~' and '-'.
var packageVersionRe = regexp.MustCompile(`^[0-9][A-Za-z0-9.+~-]*$`)

// ValidatePackageName validates a Debian binary package name
func ValidatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if !packageNameRe.MatchString(name) {
		return fmt.Errorf("invalid package name: %s", name)
	}
	return nil
}

// ValidatePackageVersion validates a Debian upstream version string
func ValidatePackageVersion(version string) error {
	if version == "" {
		return fmt.Errorf("package version cannot be empty")
	}
	if !packageVersionRe.MatchString(version) {
		return fmt.Errorf("invalid package version: %s", version)
	}
	return nil
}

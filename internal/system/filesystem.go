package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem handles file system operations. The packaging tool runs
// unprivileged and only touches its own staging tree, so everything here
// is a direct os call rather than an elevated command.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// EnsureDirectory creates a directory (and any missing parents) with the
// given permissions. An existing directory is re-chmodded, not an error.
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	if err := os.MkdirAll(path, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	// MkdirAll applies the umask; set the requested bits explicitly.
	if err := os.Chmod(path, perms); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return nil
}

// Chmod changes the permissions of a file or directory
func (fs *FileSystem) Chmod(path string, perms os.FileMode) error {
	if err := os.Chmod(path, perms); err != nil {
		return fmt.Errorf("failed to chmod %s to %o: %w", path, perms, err)
	}
	return nil
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// GetPermissions returns the permissions of a file or directory
func (fs *FileSystem) GetPermissions(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Mode().Perm(), nil
}

// RemoveTree removes a directory and all its contents. Removing a path
// that does not exist is not an error.
// Safety checks are in place to prevent accidental deletion of critical
// directories; the staging tree this tool removes is always a relative
// path under the build directory.
func (fs *FileSystem) RemoveTree(path string) error {
	if path == "" {
		return fmt.Errorf("refusing to remove empty path")
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("refusing to remove path outside the working directory: %s", path)
	}

	// Block critical system directories
	criticalPaths := []string{
		"/",
		"/bin",
		"/boot",
		"/dev",
		"/etc",
		"/home",
		"/lib",
		"/lib64",
		"/proc",
		"/root",
		"/sbin",
		"/sys",
		"/usr",
		"/var",
	}
	for _, critical := range criticalPaths {
		if cleaned == critical || strings.HasPrefix(cleaned, critical+"/") {
			return fmt.Errorf("refusing to remove critical system path: %s", path)
		}
	}

	if err := os.RemoveAll(cleaned); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", path, err)
	}
	return nil
}

// CopyFile copies a file from src to dst, preserving nothing but content.
func (fs *FileSystem) CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file %s: %w", dst, err)
	}
	return nil
}

// WriteFile writes content to a file with the given permissions.
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	if err := os.WriteFile(path, content, perms); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	// WriteFile applies the umask on creation; set the bits explicitly.
	if err := os.Chmod(path, perms); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return nil
}

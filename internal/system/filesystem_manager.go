package system

import "os"

// FileSystemManager defines the interface for the file system operations
// the staging steps use. This allows for mocking the file system in tests.
type FileSystemManager interface {
	EnsureDirectory(path string, perms os.FileMode) error
	CopyFile(src, dst string) error
	WriteFile(path string, content []byte, perms os.FileMode) error
	Chmod(path string, perms os.FileMode) error
	RemoveTree(path string) error
	FileExists(path string) (bool, error)
}

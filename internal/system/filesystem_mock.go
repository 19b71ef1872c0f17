package system

import (
	"os"
	"sync"
)

// MockFileSystem records operations in memory and implements
// FileSystemManager for tests.
type MockFileSystem struct {
	mu sync.Mutex

	CreatedDirs  []string
	CopiedFiles  map[string]string // dst -> src
	WrittenFiles map[string][]byte
	Modes        map[string]os.FileMode
	RemovedPaths []string

	// ExistingFiles controls what FileExists reports.
	ExistingFiles map[string]bool
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		CopiedFiles:   make(map[string]string),
		WrittenFiles:  make(map[string][]byte),
		Modes:         make(map[string]os.FileMode),
		ExistingFiles: make(map[string]bool),
	}
}

// EnsureDirectory records the directory creation.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatedDirs = append(m.CreatedDirs, path)
	m.Modes[path] = perms
	return nil
}

// CopyFile records the copy.
func (m *MockFileSystem) CopyFile(src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CopiedFiles[dst] = src
	return nil
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WrittenFiles[path] = content
	m.Modes[path] = perms
	return nil
}

// Chmod records the permission change.
func (m *MockFileSystem) Chmod(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Modes[path] = perms
	return nil
}

// RemoveTree records the removal.
func (m *MockFileSystem) RemoveTree(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovedPaths = append(m.RemovedPaths, path)
	return nil
}

// FileExists reports what the test configured via ExistingFiles.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ExistingFiles[path], nil
}

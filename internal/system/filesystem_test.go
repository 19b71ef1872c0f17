package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectory(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "a", "b", "c")
	if err := fs.EnsureDirectory(target, 0755); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("Expected a directory")
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("Expected permissions 0755, got %o", perm)
	}

	// Second call on an existing directory must succeed.
	if err := fs.EnsureDirectory(target, 0755); err != nil {
		t.Errorf("EnsureDirectory() on existing directory error = %v", err)
	}
}

func TestEnsureDirectoryOverFile(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := fs.EnsureDirectory(target, 0755); err == nil {
		t.Error("Expected error when path exists as a file")
	}
}

func TestCopyFile(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")
	content := []byte("package contents\n")

	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	if err := fs.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("Copied content = %q, want %q", got, content)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	err := fs.CopyFile(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dst"))
	if err == nil {
		t.Error("Expected error for missing source file")
	}
}

func TestWriteFile(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "launcher")
	if err := fs.WriteFile(target, []byte("exec app\n"), 0755); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	perm, err := fs.GetPermissions(target)
	if err != nil {
		t.Fatalf("GetPermissions() error = %v", err)
	}
	if perm != 0755 {
		t.Errorf("Expected permissions 0755, got %o", perm)
	}
}

func TestChmod(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := fs.Chmod(target, 0755); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}

	perm, err := fs.GetPermissions(target)
	if err != nil {
		t.Fatalf("GetPermissions() error = %v", err)
	}
	if perm != 0755 {
		t.Errorf("Expected permissions 0755, got %o", perm)
	}
}

func TestRemoveTree(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "tree", "nested")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatalf("Failed to create test tree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "f"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := fs.RemoveTree(filepath.Join(tmpDir, "tree")); err != nil {
		t.Fatalf("RemoveTree() error = %v", err)
	}

	exists, err := fs.DirectoryExists(filepath.Join(tmpDir, "tree"))
	if err != nil {
		t.Fatalf("DirectoryExists() error = %v", err)
	}
	if exists {
		t.Error("Expected tree to be removed")
	}

	// Removing a path that is already gone is not an error.
	if err := fs.RemoveTree(filepath.Join(tmpDir, "tree")); err != nil {
		t.Errorf("RemoveTree() on missing path error = %v", err)
	}
}

func TestRemoveTreeSafety(t *testing.T) {
	fs := NewFileSystem()

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"root", "/"},
		{"critical path", "/usr"},
		{"under critical path", "/etc/passwd"},
		{"current directory", "."},
		{"parent directory", ".."},
		{"escaping relative path", "../other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := fs.RemoveTree(tt.path); err == nil {
				t.Errorf("RemoveTree(%q) expected refusal, got nil", tt.path)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "present")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	exists, err := fs.FileExists(target)
	if err != nil {
		t.Fatalf("FileExists() error = %v", err)
	}
	if !exists {
		t.Error("Expected file to exist")
	}

	exists, err = fs.FileExists(filepath.Join(tmpDir, "absent"))
	if err != nil {
		t.Fatalf("FileExists() error = %v", err)
	}
	if exists {
		t.Error("Expected file to not exist")
	}
}

package pyproject

import (
	"os"
	"path/filepath"
	"testing"
)

const lockContent = `[[package]]
name = "requests"
version = "2.31.0"
description = "Python HTTP for Humans."
category = "main"
optional = false
python-versions = ">=3.7"

[package.dependencies]
certifi = ">=2017.4.17"
urllib3 = ">=1.21.1,<3"

[[package]]
name = "typing_extensions"
version = "4.9.0"
description = "Backported and Experimental Type Hints for Python 3.8+"
optional = false
python-versions = ">=3.8"

[metadata]
lock-version = "2.0"
python-versions = "^3.10"
content-hash = "abc123"
`

func TestManifest_LockPath(t *testing.T) {
	m := NewManifest(filepath.Join("backend", "pyproject.toml"))
	if got, want := m.LockPath(), filepath.Join("backend", "poetry.lock"); got != want {
		t.Errorf("LockPath() = %q, want %q", got, want)
	}

	if got := NewManifest("").LockPath(); got != "poetry.lock" {
		t.Errorf("LockPath() = %q, want %q", got, "poetry.lock")
	}
}

func TestReadLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), LockFileName)
	if err := os.WriteFile(path, []byte(lockContent), 0644); err != nil {
		t.Fatal(err)
	}

	lock, err := ReadLock(path)
	if err != nil {
		t.Fatalf("ReadLock() error = %v", err)
	}
	if len(lock.Packages) != 2 {
		t.Fatalf("len(Packages) = %d, want 2", len(lock.Packages))
	}
	if lock.Packages[0].Category != "main" {
		t.Errorf("Category = %q, want %q", lock.Packages[0].Category, "main")
	}

	tests := []struct {
		name string
		want string
	}{
		{"requests", "2.31.0"},
		{"Requests", "2.31.0"},
		{"typing-extensions", "4.9.0"},
		{"typing.extensions", "4.9.0"},
		{"httpx", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lock.Version(tt.name); got != tt.want {
				t.Errorf("Version(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestReadLock_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadLock(filepath.Join(dir, "missing.lock")); err == nil {
		t.Error("ReadLock() on missing file should fail")
	}

	bad := filepath.Join(dir, LockFileName)
	if err := os.WriteFile(bad, []byte("[[package]\nname ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadLock(bad); err == nil {
		t.Error("ReadLock() on invalid TOML should fail")
	}
}

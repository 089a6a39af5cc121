package pyproject

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LockFileName is the lock file Poetry writes next to pyproject.toml.
const LockFileName = "poetry.lock"

// Lock is the subset of poetry.lock that nocap reports on.
type Lock struct {
	Packages []LockedPackage `toml:"package"`
}

// LockedPackage is one [[package]] entry of poetry.lock.
type LockedPackage struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Category string `toml:"category"`
}

// LockPath returns the poetry.lock path belonging to the manifest.
func (m *Manifest) LockPath() string {
	return filepath.Join(filepath.Dir(m.Path), LockFileName)
}

// ReadLock parses the poetry.lock file at path.
func ReadLock(path string) (*Lock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lock Lock
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}

// Version returns the locked version of the named package, or "" if it is not
// locked.
func (l *Lock) Version(name string) string {
	want := normalize(name)
	for _, p := range l.Packages {
		if normalize(p.Name) == want {
			return p.Version
		}
	}
	return ""
}

// normalize folds a package name to its PEP 503 form so that "Typing_Extensions"
// and "typing-extensions" match.
func normalize(name string) string {
	return nameFolder.Replace(strings.ToLower(strings.TrimSpace(name)))
}

var nameFolder = strings.NewReplacer("_", "-", ".", "-")

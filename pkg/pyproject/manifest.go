package pyproject

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/nocap/pkg/errors"
)

// DefaultPath is the manifest location used when none is configured.
const DefaultPath = "pyproject.toml"

const defaultPerm fs.FileMode = 0o644

// Manifest is a pyproject.toml file on disk. It holds no contents; every
// operation reads the file afresh.
type Manifest struct {
	Path string
}

// NewManifest returns a Manifest for path, or for [DefaultPath] if path is
// empty.
func NewManifest(path string) *Manifest {
	if path == "" {
		path = DefaultPath
	}
	return &Manifest{Path: path}
}

// RecreateOptions controls [Manifest.Recreate].
type RecreateOptions struct {
	Pin    bool      // pin exact versions instead of using >=
	DryRun bool      // print the result instead of writing it
	Output string    // write here instead of over the manifest
	Stdout io.Writer // dry-run destination; os.Stdout if nil
}

// Read returns the full manifest contents.
func (m *Manifest) Read() (string, error) {
	data, err := os.ReadFile(m.Path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeManifestUnreadable, err, "could not read %s", m.Path)
	}
	return string(data), nil
}

// IsPoetryProject reports whether the manifest uses Poetry's tool.poetry
// sections.
func (m *Manifest) IsPoetryProject() (bool, error) {
	text, err := m.Read()
	if err != nil {
		return false, err
	}
	return IsPoetryProject(text), nil
}

// Name returns the project name from the manifest, or "" if it cannot be
// determined.
func (m *Manifest) Name() string {
	text, err := m.Read()
	if err != nil {
		return ""
	}
	return ProjectName(text)
}

// Recreate rewrites the manifest's constraints and persists the result, or
// prints it when opts.DryRun is set.
func (m *Manifest) Recreate(opts RecreateOptions) (*Result, error) {
	text, err := m.Read()
	if err != nil {
		return nil, err
	}

	res := Transform(text, opts.Pin)

	if opts.DryRun {
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := fmt.Fprintln(w, res.Text); err != nil {
			return nil, fmt.Errorf("print manifest: %w", err)
		}
		return &res, nil
	}

	out := opts.Output
	if out == "" {
		out = m.Path
	}
	// WriteFile keeps the mode of an existing file; defaultPerm only applies
	// when Output names a new one.
	if err := os.WriteFile(out, []byte(res.Text), defaultPerm); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestWriteFailed, err, "could not write %s", out)
	}
	return &res, nil
}

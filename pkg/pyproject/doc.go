// Package pyproject removes upper-bound caps from Poetry dependency
// constraints in pyproject.toml.
//
// # Overview
//
// Poetry writes new dependencies with the caret operator ("^1.2.0"), which
// allows minor and patch upgrades but forbids the next major version. This
// package rewrites those constraints either to an unbounded minimum
// (">=1.2.0") or to an exact pin ("1.2.0").
//
// The rewrite is a line-oriented text transform, not a TOML round-trip:
// every byte outside the rewritten tokens is preserved, including comments,
// key order and formatting. Only lines inside sections whose header contains
// "poetry" are touched, and the interpreter constraint ("python = ...") is
// always left alone because Poetry requires it to stay in caret form.
//
// # Rewriting Text
//
// [Rewrite] is a pure function over the manifest contents:
//
//	out := pyproject.Rewrite(text, false) // ^ becomes >=
//	out = pyproject.Rewrite(text, true)   // ^, >= and ~ are stripped
//
// [Transform] performs the same pass and also reports each changed line.
//
// # Rewriting Files
//
// [Manifest] wraps the file on disk:
//
//	m := pyproject.NewManifest("pyproject.toml")
//	if ok, err := m.IsPoetryProject(); err != nil || !ok {
//	    // refuse to touch the file
//	}
//	res, err := m.Recreate(pyproject.RecreateOptions{Pin: false})
package pyproject

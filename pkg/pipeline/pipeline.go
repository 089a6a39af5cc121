// Package pipeline sequences Poetry commands around the pyproject rewrite.
//
// Each command nocap exposes is a fixed sequence of steps:
//
//	Add:    verify → poetry add → rewrite → poetry lock --no-update
//	Fix:    verify → rewrite → poetry lock --no-update (skipped on dry run)
//	Update: verify → rewrite → poetry update → rewrite → poetry lock --no-update
//
// "verify" refuses to continue unless the manifest uses tool.poetry
// sections. Update rewrites twice: first so the update is not held back by
// stale caps, then again because poetry update writes caret constraints
// back.
//
// Steps run strictly in order. The first failing step aborts the sequence
// and its error is returned unchanged; nothing is retried or rolled back.
//
// # Usage
//
//	runner := pipeline.NewRunner(pyproject.NewManifest(""), &poetry.Exec{}, logger)
//	res, err := runner.Add(ctx, "requests httpx", false)
package pipeline

import (
	"github.com/matzehuels/nocap/pkg/pyproject"
)

// FixOptions configures [Runner.Fix].
type FixOptions struct {
	DryRun bool   // print the rewritten manifest; skip writing and locking
	Pin    bool   // pin exact versions instead of using >=
	Output string // write the rewritten manifest here instead of in place
}

// Result summarizes a completed command.
type Result struct {
	// Project is the project name from the manifest, if it declares one.
	Project string

	// Changes holds the lines changed by each rewrite, in order. Update
	// performs two rewrites; the other commands perform one.
	Changes [][]pyproject.Change

	// Locked reports whether poetry.lock was refreshed.
	Locked bool

	// Lock is the refreshed poetry.lock, or nil if it was not refreshed or
	// could not be parsed.
	Lock *pyproject.Lock
}

// Changed returns the number of lines changed across all rewrites.
func (r *Result) Changed() int {
	n := 0
	for _, c := range r.Changes {
		n += len(c)
	}
	return n
}

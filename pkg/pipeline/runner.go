package pipeline

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nocap/pkg/errors"
	"github.com/matzehuels/nocap/pkg/poetry"
	"github.com/matzehuels/nocap/pkg/pyproject"
)

// Runner executes nocap commands against one manifest.
//
// The Runner holds no state between calls. It is not safe to run two
// commands on the same manifest concurrently: the file is read and written
// whole with no locking.
type Runner struct {
	Manifest *pyproject.Manifest
	Poetry   poetry.Runner
	Logger   *log.Logger
	Stdout   io.Writer // dry-run output
}

// NewRunner creates a runner.
// If m is nil, the manifest at pyproject.DefaultPath is used.
// If p is nil, the poetry executable on PATH is used.
// If logger is nil, log.Default() is used.
func NewRunner(m *pyproject.Manifest, p poetry.Runner, logger *log.Logger) *Runner {
	if m == nil {
		m = pyproject.NewManifest("")
	}
	if p == nil {
		p = &poetry.Exec{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Manifest: m,
		Poetry:   p,
		Logger:   logger,
		Stdout:   os.Stdout,
	}
}

// Add runs "poetry add" with packages split on spaces, removes the caps
// Poetry just wrote, and relocks.
func (r *Runner) Add(ctx context.Context, packages string, pin bool) (*Result, error) {
	res, err := r.verify()
	if err != nil {
		return nil, err
	}
	if err := errors.ValidatePackageArgs(packages); err != nil {
		return nil, err
	}

	if err := r.poetry(ctx, poetry.AddArgs(packages)...); err != nil {
		return nil, err
	}
	if err := r.recreate(res, pyproject.RecreateOptions{Pin: pin}); err != nil {
		return nil, err
	}
	if err := r.lock(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Fix removes caps from the manifest without adding anything. On a dry run
// the result is printed instead of written and the lock step is skipped.
func (r *Runner) Fix(ctx context.Context, opts FixOptions) (*Result, error) {
	res, err := r.verify()
	if err != nil {
		return nil, err
	}

	err = r.recreate(res, pyproject.RecreateOptions{
		Pin:    opts.Pin,
		DryRun: opts.DryRun,
		Output: opts.Output,
		Stdout: r.Stdout,
	})
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		return res, nil
	}
	if err := r.lock(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Update removes caps, runs "poetry update", removes the caps the update
// wrote back, and relocks.
func (r *Runner) Update(ctx context.Context, pin bool) (*Result, error) {
	res, err := r.verify()
	if err != nil {
		return nil, err
	}

	r.Logger.Info("removing caps before update")
	if err := r.recreate(res, pyproject.RecreateOptions{Pin: pin}); err != nil {
		return nil, err
	}
	if err := r.poetry(ctx, poetry.UpdateArgs()...); err != nil {
		return nil, err
	}
	if err := r.recreate(res, pyproject.RecreateOptions{Pin: pin}); err != nil {
		return nil, err
	}
	if err := r.lock(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// verify fails unless the manifest is readable and managed by Poetry.
func (r *Runner) verify() (*Result, error) {
	text, err := r.Manifest.Read()
	if err != nil {
		return nil, err
	}
	if !pyproject.IsPoetryProject(text) {
		return nil, errors.New(errors.ErrCodeManifestNotPoetry,
			"%s does not appear to be using Poetry", r.Manifest.Path)
	}

	res := &Result{Project: pyproject.ProjectName(text)}
	r.Logger.Debug("verified manifest", "path", r.Manifest.Path, "project", res.Project)
	return res, nil
}

func (r *Runner) recreate(res *Result, opts pyproject.RecreateOptions) error {
	r.Logger.Info("removing caps", "path", r.Manifest.Path, "pin", opts.Pin, "dry_run", opts.DryRun)

	rr, err := r.Manifest.Recreate(opts)
	if err != nil {
		return err
	}
	for _, c := range rr.Changes {
		r.Logger.Debug("rewrote constraint", "line", c.Line, "before", c.Before, "after", c.After)
	}
	res.Changes = append(res.Changes, rr.Changes)
	return nil
}

func (r *Runner) lock(ctx context.Context, res *Result) error {
	if err := r.poetry(ctx, poetry.LockArgs()...); err != nil {
		return err
	}
	res.Locked = true

	path := r.Manifest.LockPath()
	lock, err := pyproject.ReadLock(path)
	if err != nil {
		r.Logger.Warn("could not read lock file", "path", path, "err", err)
		return nil
	}
	res.Lock = lock
	r.Logger.Debug("read lock file", "path", path, "packages", len(lock.Packages))
	return nil
}

func (r *Runner) poetry(ctx context.Context, args ...string) error {
	start := time.Now()
	r.Logger.Info("running poetry", "args", args)
	if err := r.Poetry.Run(ctx, args...); err != nil {
		return err
	}
	r.Logger.Info("poetry finished", "command", args[0], "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

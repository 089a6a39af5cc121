// Package poetry runs the Poetry executable.
//
// Poetry is treated as a black box: [Exec] starts it with an argument
// vector, streams its output straight to the terminal and reports only
// whether it exited cleanly. Callers depend on the [Runner] interface so
// tests can substitute a recorder.
//
//	var r poetry.Runner = &poetry.Exec{}
//	if err := r.Run(ctx, poetry.LockArgs()...); err != nil {
//	    return err
//	}
package poetry

package cli

import (
	"io"
	"strings"

	"github.com/matzehuels/nocap/pkg/pipeline"
)

// printSummary reports what a completed command changed.
func printSummary(w io.Writer, path string, res *pipeline.Result) {
	name := path
	if res.Project != "" {
		name = res.Project
	}

	if n := res.Changed(); n > 0 {
		printSuccess(w, "Removed caps from %d constraints in %s", n, StyleHighlight.Render(name))
	} else {
		printInfo(w, "No capped constraints in %s", name)
	}
	printFile(w, path)
	switch {
	case res.Lock != nil:
		printDetail(w, "poetry.lock refreshed (%d packages)", len(res.Lock.Packages))
	case res.Locked:
		printDetail(w, "poetry.lock refreshed")
	default:
		printWarning(w, "poetry.lock was not refreshed")
	}
}

// printLocked prints the locked version of each named package.
func printLocked(w io.Writer, res *pipeline.Result, packages string) {
	if res.Lock == nil {
		return
	}
	for _, arg := range strings.Split(packages, " ") {
		name := packageName(arg)
		if name == "" {
			continue
		}
		if v := res.Lock.Version(name); v != "" {
			printDetail(w, "%s %s", name, v)
		}
	}
}

// packageName extracts the distribution name from a "poetry add" argument
// such as "httpx@^0.24" or "uvicorn[standard]>=0.23". Flags, paths and
// URLs yield "".
func packageName(arg string) string {
	if arg == "" || strings.HasPrefix(arg, "-") || strings.ContainsAny(arg, "/:") {
		return ""
	}
	if i := strings.IndexAny(arg, "@=<>!~^[ "); i >= 0 {
		arg = arg[:i]
	}
	return arg
}

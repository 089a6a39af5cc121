package pyproject

import (
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	lineSep       = "\n"
	poetryMarker  = "poetry"
	pythonPrefix  = "python ="
	projectMarker = "tool.poetry"
)

// pinStripper removes every constraint operator from a line. ">=" is listed
// first so it is consumed as one token.
var pinStripper = strings.NewReplacer(">=", "", "^", "", "~", "")

// Change records a single rewritten line.
type Change struct {
	Line   int    // 1-based line number
	Before string // original line
	After  string // rewritten line
}

// Result is the outcome of a [Transform].
type Result struct {
	Text    string
	Changes []Change
}

// Rewrite removes caps from the dependency constraints in text.
//
// With pin false every "^" on a dependency line becomes ">="; existing ">="
// and "~" constraints are kept as they are. With pin true every "^", ">=" and
// "~" is stripped, leaving an exact version.
//
// The output has the same lines in the same order as text, except that one
// trailing newline is dropped.
func Rewrite(text string, pin bool) string {
	return Transform(text, pin).Text
}

// Transform is [Rewrite] with a record of which lines changed.
func Transform(text string, pin bool) Result {
	lines := strings.Split(text, lineSep)
	var changes []Change

	// section is the most recent header line; "" until the first one since a
	// header is never empty.
	var section string
	for i, line := range lines {
		if isHeader(line) {
			section = line
			continue
		}
		if !isDependencyLine(section, line) {
			continue
		}
		out := uncap(line, pin)
		if out != line {
			lines[i] = out
			changes = append(changes, Change{Line: i + 1, Before: line, After: out})
		}
	}

	return Result{
		Text:    strings.TrimSuffix(strings.Join(lines, lineSep), lineSep),
		Changes: changes,
	}
}

// isHeader reports whether line opens a new section, e.g. "[tool.poetry]"
// or "[[tool.mypy.overrides]]".
func isHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}

// isDependencyLine reports whether line, found under section, may carry a
// constraint to rewrite.
func isDependencyLine(section, line string) bool {
	if section == "" || !strings.Contains(section, poetryMarker) {
		return false
	}
	// Poetry rejects the lock if python is relaxed while other packages keep
	// their caret constraints.
	return !strings.HasPrefix(line, pythonPrefix)
}

func uncap(line string, pin bool) string {
	if pin {
		return pinStripper.Replace(line)
	}
	return strings.ReplaceAll(line, "^", ">=")
}

// IsPoetryProject reports whether text looks like a Poetry-managed manifest.
func IsPoetryProject(text string) bool {
	return strings.Contains(text, projectMarker)
}

// ProjectName returns the project name declared in text, preferring
// [tool.poetry] over [project]. It returns "" if text is not valid TOML or
// declares no name.
func ProjectName(text string) string {
	var doc struct {
		Tool struct {
			Poetry struct {
				Name string `toml:"name"`
			} `toml:"poetry"`
		} `toml:"tool"`
		Project struct {
			Name string `toml:"name"`
		} `toml:"project"`
	}
	if _, err := toml.Decode(text, &doc); err != nil {
		return ""
	}
	if doc.Tool.Poetry.Name != "" {
		return doc.Tool.Poetry.Name
	}
	return doc.Project.Name
}

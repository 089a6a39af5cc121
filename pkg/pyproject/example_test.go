package pyproject_test

import (
	"fmt"

	"github.com/matzehuels/nocap/pkg/pyproject"
)

func ExampleRewrite() {
	manifest := `[tool.poetry.dependencies]
python = "^3.8"
foo = "^1.2.0"
[tool.other]
bar = "^9.9.9"
`
	fmt.Println(pyproject.Rewrite(manifest, false))
	// Output:
	// [tool.poetry.dependencies]
	// python = "^3.8"
	// foo = ">=1.2.0"
	// [tool.other]
	// bar = "^9.9.9"
}

func ExampleRewrite_pin() {
	manifest := `[tool.poetry.group.dev.dependencies]
pytest = "^7.2.1"
ruff = ">=0.1.0"
mypy = "~1.0.0"
`
	fmt.Println(pyproject.Rewrite(manifest, true))
	// Output:
	// [tool.poetry.group.dev.dependencies]
	// pytest = "7.2.1"
	// ruff = "0.1.0"
	// mypy = "1.0.0"
}

func ExampleTransform() {
	res := pyproject.Transform("[tool.poetry.dependencies]\nrequests = \"^2.31\"\n", false)
	for _, c := range res.Changes {
		fmt.Printf("line %d: %s -> %s\n", c.Line, c.Before, c.After)
	}
	// Output:
	// line 2: requests = "^2.31" -> requests = ">=2.31"
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// addCommand creates the add command.
// Positional arguments are joined with spaces before being split again for
// poetry, so `nocap add "requests httpx"` and `nocap add requests httpx` are
// equivalent.
func (c *CLI) addCommand() *cobra.Command {
	var pin bool

	cmd := &cobra.Command{
		Use:   "add <packages>...",
		Short: "Add new dependencies without upper bound caps",
		Long: `Run poetry add, rewrite the caret constraints it wrote to pyproject.toml,
and refresh poetry.lock without upgrading anything else.

Examples:
  nocap add requests
  nocap add "httpx rich"
  nocap add --pin "pytest --group dev"
  nocap add -- pytest --group dev`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages := strings.Join(args, " ")
			res, err := c.newRunner(cmd).Add(cmd.Context(), packages, c.pinFlag(cmd, pin))
			if err != nil {
				return err
			}
			w := cmd.ErrOrStderr()
			printSuccess(w, "Added %s", StyleHighlight.Render(packages))
			printLocked(w, res, packages)
			printSummary(w, c.Config.Manifest, res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pin, "pin", "p", false, "pin exact versions instead of using >=")

	return cmd
}

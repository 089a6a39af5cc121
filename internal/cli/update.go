package cli

import (
	"github.com/spf13/cobra"
)

// updateCommand creates the update command.
func (c *CLI) updateCommand() *cobra.Command {
	var pin bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update installed dependencies without upper bound caps",
		Long: `Remove caps from pyproject.toml so nothing is held back, run poetry update,
remove the caps poetry update wrote back, and refresh poetry.lock.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.newRunner(cmd).Update(cmd.Context(), c.pinFlag(cmd, pin))
			if err != nil {
				return err
			}
			w := cmd.ErrOrStderr()
			printSuccess(w, "Updated dependencies")
			printSummary(w, c.Config.Manifest, res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pin, "pin", "p", false, "pin exact versions instead of using >=")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/nocap/pkg/pipeline"
)

// fixCommand creates the fix command.
func (c *CLI) fixCommand() *cobra.Command {
	var (
		opts pipeline.FixOptions
		pin  bool
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Remove upper bound caps from pyproject.toml without adding dependencies",
		Long: `Rewrite the caret constraints already in pyproject.toml and refresh
poetry.lock.

With --dry-run the rewritten manifest is printed to stdout and neither
pyproject.toml nor poetry.lock is touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Pin = c.pinFlag(cmd, pin)
			res, err := c.newRunner(cmd).Fix(cmd.Context(), opts)
			if err != nil {
				return err
			}
			w := cmd.ErrOrStderr()
			if opts.DryRun {
				printInfo(w, "Dry run: %s was not modified", c.Config.Manifest)
				printDetail(w, "%d constraints would change", res.Changed())
				return nil
			}
			path := c.Config.Manifest
			if opts.Output != "" {
				path = opts.Output
			}
			printSummary(w, path, res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "d", false, "print the rewritten pyproject.toml instead of saving it")
	cmd.Flags().BoolVarP(&pin, "pin", "p", false, "pin exact versions instead of using >=")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the rewritten manifest to this file instead")

	return cmd
}

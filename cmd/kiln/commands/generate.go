package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the benchmark suite build rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := manifestPath(cmd)
			if err != nil {
				return err
			}
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return err
			}
			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				ManifestPath: manifest,
				DryRun:       dryRun,
			})
		},
	}

	cmd.Flags().Bool("dry-run", false, "Print the generated rules instead of writing the output file")

	return cmd
}

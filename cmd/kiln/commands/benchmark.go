package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

func (c *CLI) newBenchmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchmark",
		Short: "Run the generated modules with the configured benchmark tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := manifestPath(cmd)
			if err != nil {
				return err
			}
			return c.app.Benchmark(cmd.Context(), app.BenchmarkOptions{
				ManifestPath: manifest,
			})
		},
	}
}

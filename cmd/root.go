package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zaki1905/kirchhoff/internal/problems"
)

var rootCmd = &cobra.Command{
	Use:   "kirchhoff",
	Short: "Homework checker for the two-loop Kirchhoff circuit",
	Long: "Kirchhoff checks PHY 132 homework submissions: the three circuit\n" +
		"equations, their independence, and the solved branch currents for\n" +
		"each assigned problem set.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("problems", "", "Path to a problems.json file (overrides KIRCHHOFF_PROBLEMS env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadTable returns the problem table using the --problems flag (highest
// priority), then the KIRCHHOFF_PROBLEMS env var, then the built-in sets.
func loadTable(cmd *cobra.Command) (*problems.Table, error) {
	if path, _ := cmd.Flags().GetString("problems"); path != "" {
		return problems.Load(path)
	}
	if path := os.Getenv("KIRCHHOFF_PROBLEMS"); path != "" {
		return problems.Load(path)
	}
	return problems.Default(), nil
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "Inspect the problem table",
}

var problemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every problem set and its circuit parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%-4s  %8s  %8s  %9s  %9s  %9s\n",
			"Set", "V1 (V)", "V2 (V)", "R1 (ohm)", "R2 (ohm)", "R3 (ohm)")
		fmt.Println(strings.Repeat("─", 56))
		for _, s := range table.Sets() {
			fmt.Printf("%-4d  %8.1f  %8.1f  %9.0f  %9.0f  %9.0f\n",
				s.ID, s.Params.V1, s.Params.V2, s.Params.R1, s.Params.R2, s.Params.R3)
		}
		return nil
	},
}

var problemsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every problem set is valid and solvable",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd)
		if err != nil {
			return err
		}
		if err := table.Verify(); err != nil {
			return err
		}
		fmt.Printf("All %d problem sets verified.\n", table.Len())
		return nil
	},
}

var problemsSolveCmd = &cobra.Command{
	Use:   "solve <set>",
	Short: "Print the expected branch currents for a problem set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid set number %q: %w", args[0], err)
		}

		table, err := loadTable(cmd)
		if err != nil {
			return err
		}
		set, err := table.Get(id)
		if err != nil {
			return err
		}
		solved, err := circuit.SolveCurrents(set.Params)
		if err != nil {
			return err
		}
		mA := solved.Milliamps()

		fmt.Printf("Set %d: V1=%.1f V  V2=%.1f V  R1=%.0f ohm  R2=%.0f ohm  R3=%.0f ohm\n",
			set.ID, set.Params.V1, set.Params.V2, set.Params.R1, set.Params.R2, set.Params.R3)
		fmt.Printf("  I1 = %9.4f mA\n", mA.I1)
		fmt.Printf("  I2 = %9.4f mA\n", mA.I2)
		fmt.Printf("  I3 = %9.4f mA\n", mA.I3)
		return nil
	},
}

func init() {
	problemsCmd.AddCommand(problemsListCmd)
	problemsCmd.AddCommand(problemsVerifyCmd)
	problemsCmd.AddCommand(problemsSolveCmd)
}

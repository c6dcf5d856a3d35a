// Package cli implements the sudoku command-line interface.
//
// Commands:
//   - solve: solve a puzzle read from a file or stdin
//   - generate: create a puzzle with a unique solution
//   - validate: report conflicting cells in a grid
//   - serve: run the JSON API server
//
// All commands support --verbose (-v) for debug-level logging; the logger is
// carried through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"svw.info/sudoku-dlx/internal/ports"
	"svw.info/sudoku-dlx/internal/solver"
)

// Execute runs the sudoku CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Sudoku solver built on Algorithm X with dancing links",
		Long:         `sudoku solves, generates, and validates 9x9 Sudoku puzzles. The default solver represents the puzzle as an exact-cover problem over a dancing-links matrix; backtracking and SAT backends are available for comparison.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(context.Background())
}

// newSolver maps a backend name to its implementation.
func newSolver(kind string) (ports.Solver, error) {
	switch kind {
	case "dlx", "":
		return solver.NewDLXSolver(), nil
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(), nil
	case "sat":
		return solver.NewSATSolver(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want dlx, backtrack, or sat)", kind)
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type solveOpts struct {
	solver  string
	unique  bool
	timeout time.Duration
	plain   bool
}

func newSolveCmd() *cobra.Command {
	opts := solveOpts{timeout: 10 * time.Second}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file or stdin",
		Long: `Solve reads a 9x9 grid (digits 1-9 for givens, 0 or . for empty
cells, whitespace ignored) and prints the completed grid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runSolve(cmd, path, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.solver, "solver", "s", "dlx", "solver backend: dlx, backtrack, or sat")
	cmd.Flags().BoolVarP(&opts.unique, "unique", "u", false, "also report whether the solution is unique")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "abort the search after this long")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the plain 9-line form instead of the framed grid")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, opts *solveOpts) error {
	logger := loggerFromContext(cmd.Context())

	b, err := readBoard(path)
	if err != nil {
		return err
	}
	logger.Debug("parsed board", "clues", b.Clues())
	s, err := newSolver(opts.solver)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	out, st, err := s.Solve(ctx, b)
	if err != nil {
		return err
	}
	logger.Debug("search finished", "solver", opts.solver, "nodes", st.Nodes, "dur", st.Duration)

	if opts.plain {
		fmt.Fprint(cmd.OutOrStdout(), FormatBoard(out))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), RenderBoard(out))
	}

	if opts.unique {
		unique, _, err := s.Unique(ctx, b)
		if err != nil {
			return err
		}
		if unique {
			logger.Info("solution is unique")
		} else {
			logger.Warn("puzzle has more than one solution")
		}
	}
	logger.Info("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Microsecond))
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-dlx/internal/domain"
	"svw.info/sudoku-dlx/internal/generator"
	"svw.info/sudoku-dlx/internal/infrastructure/storage"
)

type generateOpts struct {
	seed       int64
	difficulty string
	solver     string
	saveDir    string
	plain      bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVarP(&opts.difficulty, "difficulty", "d", "medium", "easy, medium, hard, or expert")
	cmd.Flags().StringVarP(&opts.solver, "solver", "s", "dlx", "solver used for uniqueness checks")
	cmd.Flags().StringVar(&opts.saveDir, "save", "", "persist the puzzle under this directory")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the plain 9-line form instead of the framed grid")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	diff, err := domain.ParseDifficulty(opts.difficulty)
	if err != nil {
		return err
	}
	s, err := newSolver(opts.solver)
	if err != nil {
		return err
	}
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p, st, err := generator.NewUniqueGenerator(s).Generate(cmd.Context(), seed, diff)
	if err != nil {
		return err
	}
	logger.Debug("carving finished", "nodes", st.Nodes, "dur", st.Duration)

	if opts.plain {
		fmt.Fprint(cmd.OutOrStdout(), FormatBoard(&p.Board))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), RenderBoard(&p.Board))
	}
	logger.Info("generated", "difficulty", opts.difficulty, "seed", seed, "id", p.ID)

	if opts.saveDir != "" {
		if err := storage.NewFS(opts.saveDir).Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("save puzzle: %w", err)
		}
		logger.Info("saved", "dir", opts.saveDir, "id", p.ID)
	}
	return nil
}

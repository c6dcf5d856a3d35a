package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-dlx/internal/validator"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Report conflicting cells in a grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			b, err := readBoard(path)
			if err != nil {
				return err
			}
			ok, conflicts, err := validator.New().Validate(cmd.Context(), b)
			if err != nil {
				return err
			}
			if ok {
				if b.Full() {
					fmt.Fprintln(cmd.OutOrStdout(), "solved")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "no conflicts")
				}
				return nil
			}
			for _, c := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", c.Row, c.Col)
			}
			return fmt.Errorf("%d conflicting cells", len(conflicts))
		},
	}
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/codetree/internal/cli/formatter"
	"github.com/alexanderramin/codetree/internal/tree"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check code consistency; exits non-zero when problems are found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			errs := app.Query.Validate(cmd.Context(), root)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(errs, tree.Count(root)))
			if len(errs) > 0 {
				return fmt.Errorf("%d structural problems (run \"codetree recode\" to renumber)", len(errs))
			}
			return nil
		},
	}
	return cmd
}

package cli

import (
	"github.com/alexanderramin/codetree/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRenameCmd(app *App) *cobra.Command {
	var o outputFlags

	cmd := &cobra.Command{
		Use:   "rename REF NAME",
		Short: "Rename a node; codes are unaffected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			res, err := app.Edit.Rename(cmd.Context(), root, args[0], args[1])
			if err != nil {
				return err
			}
			return emitEdit(cmd, app, &o, res, formatter.EditSummary{
				Action:  "Renamed",
				Name:    res.Node.Name,
				OldCode: res.OldCode,
				NewCode: res.Node.Code,
			})
		},
	}
	o.register(cmd)
	return cmd
}

func newMoveCmd(app *App) *cobra.Command {
	var o outputFlags

	cmd := &cobra.Command{
		Use:   "move REF PARENT",
		Short: "Move a subtree under PARENT as its last child and recompute codes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			res, err := app.Edit.Move(cmd.Context(), root, args[0], args[1])
			if err != nil {
				return err
			}
			return emitEdit(cmd, app, &o, res, formatter.EditSummary{
				Action:  "Moved",
				Name:    res.Node.Name,
				OldCode: res.OldCode,
				NewCode: res.Node.Code,
				Changed: res.Changed,
			})
		},
	}
	o.register(cmd)
	return cmd
}

func newReparentCmd(app *App) *cobra.Command {
	var o outputFlags

	cmd := &cobra.Command{
		Use:   "reparent REF CODE",
		Short: "Move a subtree so that it takes the explicit code CODE",
		Long: `Reparent places the node under the parent implied by CODE and assigns
CODE to it directly. Sibling codes are left as they are; run "codetree recode"
afterwards to renumber from position.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			res, err := app.Edit.Reparent(cmd.Context(), root, args[0], args[1])
			if err != nil {
				return err
			}
			return emitEdit(cmd, app, &o, res, formatter.EditSummary{
				Action:  "Reparented",
				Name:    res.Node.Name,
				OldCode: res.OldCode,
				NewCode: res.Node.Code,
				Changed: res.Changed,
			})
		},
	}
	o.register(cmd)
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var o outputFlags
	var typ string

	cmd := &cobra.Command{
		Use:   "add PARENT NAME",
		Short: "Append a new node under PARENT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			res, err := app.Edit.Add(cmd.Context(), root, args[0], args[1], typ)
			if err != nil {
				return err
			}
			return emitEdit(cmd, app, &o, res, formatter.EditSummary{
				Action:  "Added",
				Name:    res.Node.Name,
				NewCode: res.Node.Code,
			})
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "business_line", "Node type")
	o.register(cmd)
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	var o outputFlags

	cmd := &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a subtree and recompute codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			res, err := app.Edit.Remove(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}
			return emitEdit(cmd, app, &o, res, formatter.EditSummary{
				Action:  "Removed",
				Name:    res.Node.Name,
				OldCode: res.OldCode,
				Changed: res.Changed,
			})
		},
	}
	o.register(cmd)
	return cmd
}

func newRecodeCmd(app *App) *cobra.Command {
	var o outputFlags

	cmd := &cobra.Command{
		Use:   "recode",
		Short: "Recompute every code from position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			res, err := app.Edit.Recode(cmd.Context(), root)
			if err != nil {
				return err
			}
			return emitEdit(cmd, app, &o, res, formatter.EditSummary{
				Action:  "Recomputed codes",
				Changed: res.Changed,
			})
		},
	}
	o.register(cmd)
	return cmd
}

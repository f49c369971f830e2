package cli

import (
	"fmt"

	"github.com/alexanderramin/codetree/internal/cli/formatter"
	"github.com/alexanderramin/codetree/internal/snapshot"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var depth int
	var format, mark string

	cmd := &cobra.Command{
		Use:   "show [REF]",
		Short: "Render the tree, or the subtree at REF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			top := root
			if len(args) == 1 {
				if top, err = app.Query.Find(ctx, root, args[0]); err != nil {
					return err
				}
			}

			switch format {
			case "tree":
				opts := formatter.TreeOptions{MaxDepth: depth}
				if mark != "" {
					m, err := app.Query.Find(ctx, root, mark)
					if err != nil {
						return fmt.Errorf("--mark: %w", err)
					}
					opts.Mark = m.ID
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderNodeTree(top, opts))
				return nil
			case string(snapshot.FormatJSON), string(snapshot.FormatYAML):
				return app.Snapshots.Encode(ctx, cmd.OutOrStdout(), top, snapshot.Format(format))
			default:
				return fmt.Errorf("unknown --format %q (expected tree, json or yaml)", format)
			}
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Levels to show below the top node (0 = all)")
	cmd.Flags().StringVar(&format, "format", "tree", "Output format (tree|json|yaml)")
	cmd.Flags().StringVar(&mark, "mark", "", "Highlight the node at this code or id")

	return cmd
}

func newInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect REF",
		Short: "Show node details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			path, err := app.Query.Path(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}
			n := path[len(path)-1]
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNodeDetail(n, path, app.Config.Separator))
			return nil
		},
	}
	return cmd
}

func newPathCmd(app *App) *cobra.Command {
	var codes bool

	cmd := &cobra.Command{
		Use:   "path REF",
		Short: "Print the ancestor path from the root to REF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			path, err := app.Query.Path(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}
			if codes {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPathCodes(path))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBreadcrumb(path, app.Config.Separator))
			return nil
		},
	}

	cmd.Flags().BoolVar(&codes, "codes", false, "List one ancestor per line with its code")
	return cmd
}

func newIndexCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "List every node with its breadcrumb label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			entries := app.Query.Index(cmd.Context(), root, app.Config.Separator)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIndex(entries))
			return nil
		},
	}
	cmd.Flags().String("separator", "", "Breadcrumb separator (default \" → \")")
	return cmd
}

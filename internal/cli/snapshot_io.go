package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/codetree/internal/cli/formatter"
	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/service"
	"github.com/alexanderramin/codetree/internal/snapshot"
	"github.com/spf13/cobra"
)

// stdinPath selects standard input as the snapshot source.
const stdinPath = "-"

var errNoSnapshot = errors.New("no snapshot file: pass --file or set CODETREE_FILE")

// loadTree reads the tree named by --file. "-" reads a JSON snapshot from
// the command's input stream.
func loadTree(cmd *cobra.Command, app *App) (*domain.Node, error) {
	path := app.Config.SnapshotPath
	switch path {
	case "":
		return nil, errNoSnapshot
	case stdinPath:
		return app.Snapshots.Decode(cmd.Context(), cmd.InOrStdin(), snapshot.FormatJSON)
	default:
		return app.Snapshots.Load(cmd.Context(), path)
	}
}

// outputFlags selects where an edited tree goes.
type outputFlags struct {
	out    string
	write  bool
	format string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Write the edited tree to this snapshot file")
	cmd.Flags().BoolVarP(&o.write, "write", "w", false, "Write the edited tree back to --file")
	cmd.Flags().StringVar(&o.format, "format", "json", "Snapshot format for stdout (json|yaml)")
}

// emitEdit delivers the result of an edit. With --out or --write the tree
// is saved and the summary printed. Otherwise a terminal gets the summary
// and a rendered tree, and a pipe gets the snapshot itself.
func emitEdit(cmd *cobra.Command, app *App, o *outputFlags, res *service.EditResult, summary formatter.EditSummary) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	target := o.out
	if o.write {
		if o.out != "" {
			return fmt.Errorf("--write and --out are mutually exclusive")
		}
		target = app.Config.SnapshotPath
		if target == stdinPath {
			return fmt.Errorf("--write needs a snapshot file, not stdin")
		}
	}
	if target != "" {
		if err := app.Snapshots.Save(ctx, target, res.Root); err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatEditSummary(summary))
		fmt.Fprintf(out, "%s\n", formatter.Dim("Saved "+target))
		return nil
	}

	if app.interactive() {
		fmt.Fprint(out, formatter.FormatEditSummary(summary))
		fmt.Fprintln(out)
		mark := ""
		if res.Node != nil && summary.Action != "Removed" {
			mark = res.Node.ID
		}
		fmt.Fprint(out, formatter.RenderNodeTree(res.Root, formatter.TreeOptions{Mark: mark}))
		return nil
	}

	format := snapshot.Format(o.format)
	if format != snapshot.FormatJSON && format != snapshot.FormatYAML {
		return fmt.Errorf("unknown --format %q (expected json or yaml)", o.format)
	}
	fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatEditSummary(summary))
	return app.Snapshots.Encode(ctx, out, res.Root, format)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/codetree/internal/cli/formatter"
	"github.com/alexanderramin/codetree/internal/service"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var fuzzy bool

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Find nodes whose breadcrumb label matches QUERY",
		Long: `Search matches the query against each node's breadcrumb label
("Group → Markets → Rates"), ignoring case. With --fuzzy the query only needs
to appear as a subsequence and hits are ranked by match quality.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, app)
			if err != nil {
				return err
			}
			hits, err := app.Query.Search(cmd.Context(), root, service.SearchRequest{
				Query:     strings.Join(args, " "),
				Limit:     app.Config.SearchLimit,
				Separator: app.Config.Separator,
				Fuzzy:     fuzzy,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIndex(hits))
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 10, "Maximum number of hits")
	cmd.Flags().String("separator", "", "Breadcrumb separator (default \" → \")")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "Rank subsequence matches instead of substring matching")
	return cmd
}

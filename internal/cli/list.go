package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
)

type listItem struct {
	ID     string         `json:"id"`
	Kind   content.Kind   `json:"kind"`
	Family content.Family `json:"family"`
	Title  string         `json:"title,omitempty"`
	Path   string         `json:"path"`
}

func newListCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured templates in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.catalogResolver()
			if err != nil {
				return err
			}

			entries := res.Entries()
			if kind != "" {
				want, err := content.ParseKind(kind)
				if err != nil {
					return err
				}
				entries = lo.Filter(entries, func(entry catalog.Entry, _ int) bool {
					return entry.Kind() == want
				})
			}

			items := lo.Map(entries, func(entry catalog.Entry, _ int) listItem {
				return listItem{
					ID:     entry.Identity(),
					Kind:   entry.Kind(),
					Family: entry.Kind().Family(),
					Title:  entry.Title,
					Path:   entry.Path,
				}
			})

			if a.cfg.JSON() {
				return writeJSON(a.out, items)
			}
			rows := lo.Map(items, func(item listItem, _ int) []string {
				return []string{item.ID, string(item.Kind), item.Title, item.Path}
			})
			writeTable(a.out, []string{"ID", "Kind", "Title", "Path"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only list templates of this kind")
	return cmd
}

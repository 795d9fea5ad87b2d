package cli

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/showcase"
)

type themeItem struct {
	ID      string            `json:"id"`
	Tokens  map[string]string `json:"tokens,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
}

func newThemesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "Show the style tokens each template exposes to players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.catalogResolver()
			if err != nil {
				return err
			}
			if _, err := showcase.Themes(res); err != nil {
				return err
			}

			items := make([]themeItem, 0)
			for _, entry := range res.Entries() {
				items = append(items, newThemeItem(entry))
			}
			if a.cfg.JSON() {
				return writeJSON(a.out, items)
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				pairs := make([]string, 0, len(item.Tokens))
				keys := lo.Keys(item.Tokens)
				sort.Strings(keys)
				for _, key := range keys {
					pairs = append(pairs, key+"="+item.Tokens[key])
				}
				rows = append(rows, []string{item.ID, strings.Join(pairs, " ")})
			}
			writeTable(a.out, []string{"ID", "Tokens"}, rows)
			return nil
		},
	}
}

func newThemeItem(entry catalog.Entry) themeItem {
	cfg := showcase.ThemeConfig(entry)
	return themeItem{
		ID:      entry.Identity(),
		Tokens:  cfg.Tokens,
		CSSVars: cfg.CSSVars,
	}
}

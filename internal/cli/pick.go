package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-valentine/pkg/showcase"
)

func newPickCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a template interactively and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.catalogResolver()
			if err != nil {
				return err
			}

			cards := showcase.Cards(res)
			if len(cards) == 0 {
				return fmt.Errorf("pick: no templates configured")
			}
			options := make([]string, 0, len(cards))
			for _, card := range cards {
				options = append(options, fmt.Sprintf("%s %s (%s)", card.Icon, card.Title, card.ID))
			}

			idx, err := a.prompts.Select(cmd.Context(), SelectConfig{
				Message:  "Pick a template",
				Options:  options,
				PageSize: 12,
			})
			if err != nil {
				return err
			}
			if idx < 0 || idx >= len(cards) {
				return fmt.Errorf("pick: selection out of range")
			}

			entry, err := res.Entry(cards[idx].ID)
			if err != nil {
				return err
			}
			return a.printEntry(entry)
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/content"
)

type showPayload struct {
	ID          string         `json:"id"`
	Kind        content.Kind   `json:"kind"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Path        string         `json:"path"`
	Hints       content.Hints  `json:"hints,omitempty"`
	Content     content.Record `json:"content"`
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <identity>",
		Short: "Print the content of one template",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			if err := a.setup(); err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			res, err := a.catalogResolver()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return res.ListIdentities(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.catalogResolver()
			if err != nil {
				return err
			}
			entry, err := res.Entry(args[0])
			if err != nil {
				return err
			}
			return a.printEntry(entry)
		},
	}
}

func (a *app) printEntry(entry catalog.Entry) error {
	if a.cfg.JSON() {
		return writeJSON(a.out, showPayload{
			ID:          entry.Identity(),
			Kind:        entry.Kind(),
			Title:       entry.Title,
			Description: entry.Description,
			Icon:        entry.Icon,
			Path:        entry.Path,
			Hints:       entry.Hints,
			Content:     entry.Record,
		})
	}

	title := entry.Title
	if title == "" {
		title = entry.Identity()
	}
	fmt.Fprintln(a.out, headingStyle.Render(fmt.Sprintf("%s %s", entry.Icon, title)))
	fmt.Fprintln(a.out, mutedStyle.Render(fmt.Sprintf("%s · %s · %s", entry.Identity(), entry.Kind(), entry.Path)))
	if entry.Description != "" {
		fmt.Fprintln(a.out, entry.Description)
	}
	fmt.Fprintln(a.out)

	raw, err := yaml.Marshal(entry.Record)
	if err != nil {
		return fmt.Errorf("cli: encode %s: %w", entry.Identity(), err)
	}
	_, err = a.out.Write(raw)
	return err
}

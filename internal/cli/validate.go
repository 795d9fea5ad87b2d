package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-valentine/pkg/catalog"
)

type validateResult struct {
	Path      string `json:"path"`
	Templates int    `json:"templates"`
	Error     string `json:"error,omitempty"`
	Identity  string `json:"identity,omitempty"`
	Field     string `json:"field,omitempty"`
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path...]",
		Short: "Validate catalog files or directories",
		Long: "Validate catalog documents against the template schema and check that\n" +
			"overrides keep the kind of the built-in template they replace. Without\n" +
			"arguments the effective layered catalog is validated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []validateResult
			if len(args) == 0 {
				results = append(results, a.validateLayers())
			}
			for _, path := range args {
				results = append(results, validatePath(path))
			}

			failed := 0
			for _, result := range results {
				if result.Error != "" {
					failed++
				}
			}

			if a.cfg.JSON() {
				if err := writeJSON(a.out, results); err != nil {
					return err
				}
			} else {
				for _, result := range results {
					if result.Error != "" {
						fmt.Fprintf(a.out, "%s %s: %s\n", failStyle.Render("FAIL"), result.Path, result.Error)
						continue
					}
					fmt.Fprintf(a.out, "%s %s (%d templates)\n", okStyle.Render("ok"), result.Path, result.Templates)
				}
			}

			if failed > 0 {
				return fmt.Errorf("validate: %d of %d catalogs failed", failed, len(results))
			}
			return nil
		},
	}
}

func (a *app) validateLayers() validateResult {
	result := validateResult{Path: "(effective catalog)"}
	res, err := a.catalogResolver()
	if err != nil {
		return result.fail(err)
	}
	result.Templates = len(res.ListIdentities())
	return result
}

func validatePath(path string) validateResult {
	result := validateResult{Path: path}
	table, err := catalog.LoadPath(path)
	if err != nil {
		return result.fail(err)
	}
	base, err := catalog.Builtin()
	if err != nil {
		return result.fail(err)
	}
	if _, err := catalog.Overlay(base, table); err != nil {
		return result.fail(err)
	}
	result.Templates = table.Len()
	return result
}

func (r validateResult) fail(err error) validateResult {
	r.Error = err.Error()
	var bad *catalog.MalformedTemplateError
	if errors.As(err, &bad) {
		r.Identity = bad.Identity
		r.Field = bad.Field
	}
	return r
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-valentine/internal/logging"
	"github.com/goliatone/go-valentine/pkg/showcase"
)

func newShowcaseCommand(a *app) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Render the showcase index page as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.catalogResolver()
			if err != nil {
				return err
			}
			renderer, err := showcase.NewRenderer(res, showcase.WithLogger(logging.Component("showcase")))
			if err != nil {
				return err
			}

			if strings.TrimSpace(outFile) == "" {
				return renderer.RenderIndex(cmd.Context(), a.out)
			}

			file, err := os.Create(outFile)
			if err != nil {
				return fmt.Errorf("cli: create %s: %w", outFile, err)
			}
			w := bufio.NewWriter(file)
			if err := renderer.RenderIndex(cmd.Context(), w); err != nil {
				file.Close()
				return err
			}
			if err := w.Flush(); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(a.errOut, "Showcase written to %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (stdout if empty)")
	return cmd
}

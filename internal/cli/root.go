// Package cli implements the valentine command line: listing, showing and
// validating template catalogs and rendering the showcase index.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-valentine/internal/logging"
	"github.com/goliatone/go-valentine/pkg/catalog"
	"github.com/goliatone/go-valentine/pkg/resolver"
)

// Option customises the root command.
type Option func(*app)

// WithOutput redirects command output. Defaults to stdout.
func WithOutput(out io.Writer) Option {
	return func(a *app) {
		if out != nil {
			a.out = out
		}
	}
}

// WithErrorOutput redirects diagnostics and logs. Defaults to stderr.
func WithErrorOutput(out io.Writer) Option {
	return func(a *app) {
		if out != nil {
			a.errOut = out
		}
	}
}

// WithPromptDriver replaces the survey-backed prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(a *app) {
		if driver != nil {
			a.prompts = driver
		}
	}
}

type app struct {
	out     io.Writer
	errOut  io.Writer
	prompts PromptDriver

	viper      *viper.Viper
	configFile string
	jsonOutput bool
	cfg        Config

	resolver *resolver.Resolver
}

// NewRootCommand builds the valentine command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{
		out:     os.Stdout,
		errOut:  os.Stderr,
		prompts: surveyDriver{},
		viper:   viper.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	setDefaults(a.viper)

	root := &cobra.Command{
		Use:           "valentine",
		Short:         "Manage Valentine postcard and gallery templates",
		Long:          "Inspect, validate and showcase the postcard and gallery templates players resolve by identity.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./valentine.yaml or ~/.config/valentine/valentine.yaml)")
	flags.StringSlice("templates", nil, "extra catalog directories or files layered over the built-in templates")
	flags.String("project-dir", ".", "project directory searched for .valentine/templates")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.jsonOutput, "json", false, "write JSON output")

	_ = a.viper.BindPFlag("templates", flags.Lookup("templates"))
	_ = a.viper.BindPFlag("project_dir", flags.Lookup("project-dir"))
	_ = a.viper.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newValidateCommand(a),
		newShowcaseCommand(a),
		newPickCommand(a),
		newThemesCommand(a),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, options ...Option) error {
	return NewRootCommand(options...).ExecuteContext(ctx)
}

func (a *app) setup() error {
	cfg, err := loadConfig(a.viper, a.configFile)
	if err != nil {
		return err
	}
	if a.jsonOutput {
		cfg.Output = outputJSON
	}
	a.cfg = cfg

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: a.errOut,
	})
	logging.Component("cli").Debug().
		Str("config", a.viper.ConfigFileUsed()).
		Str("project_dir", cfg.ProjectDir).
		Strs("templates", cfg.Templates).
		Msg("configuration loaded")
	return nil
}

// catalogResolver loads the layered catalog once per invocation.
func (a *app) catalogResolver() (*resolver.Resolver, error) {
	if a.resolver != nil {
		return a.resolver, nil
	}
	table, err := catalog.LoadLayers(a.cfg.ProjectDir, a.cfg.Templates...)
	if err != nil {
		return nil, err
	}
	a.resolver = resolver.New(table, resolver.WithLogger(logging.Component("resolver")))
	return a.resolver, nil
}

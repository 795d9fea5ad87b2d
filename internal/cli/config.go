package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "valentine"
	envPrefix  = "VALENTINE"

	outputText = "text"
	outputJSON = "json"
)

// Config is the resolved CLI configuration: defaults, then config file, then
// VALENTINE_* environment variables, then flags.
type Config struct {
	ProjectDir string   `mapstructure:"project_dir"`
	Templates  []string `mapstructure:"templates"`
	LogLevel   string   `mapstructure:"log_level"`
	LogFormat  string   `mapstructure:"log_format"`
	Output     string   `mapstructure:"output"`
}

// JSON reports whether command output should be JSON.
func (c Config) JSON() bool {
	return strings.EqualFold(strings.TrimSpace(c.Output), outputJSON)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("project_dir", ".")
	v.SetDefault("templates", []string{})
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("output", outputText)
}

// loadConfig reads the optional config file into v and decodes the merged
// result. An explicit file that is missing is an error; a missing default
// file is not.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(file) != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "valentine"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if strings.TrimSpace(file) != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cli: read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("cli: decode config: %w", err)
	}
	cfg.Templates = cleanPaths(cfg.Templates)
	switch strings.ToLower(strings.TrimSpace(cfg.Output)) {
	case "", outputText:
		cfg.Output = outputText
	case outputJSON:
		cfg.Output = outputJSON
	default:
		return Config{}, fmt.Errorf("cli: unsupported output %q (want text or json)", cfg.Output)
	}
	return cfg, nil
}

func cleanPaths(in []string) []string {
	out := make([]string, 0, len(in))
	for _, path := range in {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

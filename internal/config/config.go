package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/poki/predicate-to-sql/filter"
)

// AppFs is the filesystem configuration and .env files are read from.
var AppFs = afero.NewOsFs()

const envPrefix = "PREDSQL"

var keys = []string{
	"dialect",
	"empty_condition",
	"strict_operators",
	"allow_columns",
	"disallow_columns",
	"log_level",
	"format",
}

// Config holds the settings shared by every command.
type Config struct {
	Dialect         string
	EmptyCondition  string
	StrictOperators bool
	AllowColumns    []string
	DisallowColumns []string
	LogLevel        string
	Format          string

	// File is the configuration file that was read, if any.
	File string
}

// Load reads the configuration. Values are taken from, in order of
// precedence: changed flags, PREDSQL_* environment variables, a .env file in
// the working directory, the configuration file and defaults.
//
// Without file, .predsql.yaml is searched in the working directory, the home
// directory and ~/.config/predsql.
func Load(fs afero.Fs, file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault("dialect", "textual")
	v.SetDefault("empty_condition", "")
	v.SetDefault("strict_operators", false)
	v.SetDefault("allow_columns", []string{})
	v.SetDefault("disallow_columns", []string{})
	v.SetDefault("log_level", "info")
	v.SetDefault("format", "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range keys {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(".predsql")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(filepath.Join(home, ".config", "predsql"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	dotenv, err := loadDotenv(fs, ".env")
	if err != nil {
		return nil, err
	}
	if len(dotenv) > 0 {
		if err := v.MergeConfigMap(dotenv); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Dialect:         v.GetString("dialect"),
		EmptyCondition:  v.GetString("empty_condition"),
		StrictOperators: v.GetBool("strict_operators"),
		AllowColumns:    v.GetStringSlice("allow_columns"),
		DisallowColumns: v.GetStringSlice("disallow_columns"),
		LogLevel:        v.GetString("log_level"),
		Format:          v.GetString("format"),
		File:            v.ConfigFileUsed(),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotenv returns the PREDSQL_* entries of a .env file as configuration
// keys. A missing file is not an error.
func loadDotenv(fs afero.Fs, name string) (map[string]any, error) {
	f, err := fs.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	out := map[string]any{}
	for variable, value := range env {
		key, ok := strings.CutPrefix(variable, envPrefix+"_")
		if !ok {
			continue
		}
		out[strings.ToLower(key)] = value
	}
	return out, nil
}

func (c *Config) validate() error {
	if _, err := filter.LookupDialect(c.Dialect); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// ConverterOptions returns the filter options described by the configuration.
func (c *Config) ConverterOptions() ([]filter.Option, error) {
	dialect, err := filter.LookupDialect(c.Dialect)
	if err != nil {
		return nil, err
	}

	options := []filter.Option{filter.WithDialect(dialect)}
	if c.EmptyCondition != "" {
		options = append(options, filter.WithEmptyCondition(c.EmptyCondition))
	}
	if c.StrictOperators {
		options = append(options, filter.WithStrictOperators())
	}
	if len(c.AllowColumns) > 0 {
		options = append(options, filter.WithAllowColumns(c.AllowColumns...))
	}
	if len(c.DisallowColumns) > 0 {
		options = append(options, filter.WithDisallowColumns(c.DisallowColumns...))
	}
	return options, nil
}

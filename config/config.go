// Package config loads the generator settings from defaults, an optional
// configuration file, PATHCASES_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kuleuven/pathcases"
	"github.com/kuleuven/pathcases/fixture"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

var ErrInvalidSeparator = errors.New("separator must be a single byte")

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "PATHCASES"

// Config holds all runtime settings.
type Config struct {
	Grammar   pathcases.Grammar `mapstructure:"grammar"`
	Format    string            `mapstructure:"format"`
	Output    string            `mapstructure:"output"` // Empty or "-" for stdout.
	Separator string            `mapstructure:"separator"`
	Digest    bool              `mapstructure:"digest"`
	Verbose   bool              `mapstructure:"verbose"`
}

// Flag names bound to configuration keys.
var flagKeys = map[string]string{
	"format":      "format",
	"output":      "output",
	"separator":   "separator",
	"digest":      "digest",
	"verbose":     "verbose",
	"max-depth":   "grammar.max_depth",
	"max-leading": "grammar.max_leading",
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Grammar:   pathcases.DefaultGrammar(),
		Format:    string(fixture.Literal),
		Separator: pathcases.Posix.String(),
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("grammar.segments", d.Grammar.Segments)
	v.SetDefault("grammar.separators", d.Grammar.Separators)
	v.SetDefault("grammar.roots", d.Grammar.Roots)
	v.SetDefault("grammar.file_bodies", d.Grammar.FileBodies)
	v.SetDefault("grammar.extensions", d.Grammar.Extensions)
	v.SetDefault("grammar.stems", d.Grammar.Stems)
	v.SetDefault("grammar.name", d.Grammar.Name)
	v.SetDefault("grammar.max_leading", d.Grammar.MaxLeading)
	v.SetDefault("grammar.max_depth", d.Grammar.MaxDepth)
	v.SetDefault("format", d.Format)
	v.SetDefault("output", d.Output)
	v.SetDefault("separator", d.Separator)
	v.SetDefault("digest", d.Digest)
	v.SetDefault("verbose", d.Verbose)
}

// Load reads the configuration. The file is read from fs and may be empty to use
// defaults only; its type is derived from the extension (yaml, json, toml).
// Flags may be nil; flags that were not set on the command line do not override.
func Load(fs afero.Fs, file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetFs(fs)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, err
				}
			}
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks all settings and reports all problems at once.
func (c Config) Validate() error {
	err := c.Grammar.Validate()

	if _, ferr := fixture.ParseFormat(c.Format); ferr != nil {
		err = multierr.Append(err, ferr)
	}

	if len(c.Separator) != 1 {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidSeparator, c.Separator))
	}

	return err
}

// Convention returns the separator convention paths are evaluated with.
func (c Config) Convention() pathcases.Convention {
	if len(c.Separator) != 1 {
		return pathcases.Posix
	}

	return pathcases.Convention{Separator: c.Separator[0]}
}

// FixtureFormat returns the parsed output format, Literal if it is invalid.
func (c Config) FixtureFormat() fixture.Format {
	f, err := fixture.ParseFormat(c.Format)
	if err != nil {
		return fixture.Literal
	}

	return f
}

// Stdout reports whether output goes to standard output.
func (c Config) Stdout() bool {
	return c.Output == "" || c.Output == "-"
}

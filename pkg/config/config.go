// Package config resolves codechunk settings from defaults, a config file, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codechunk/pkg/export"
	"codechunk/pkg/ignore"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment variable, e.g. CODECHUNK_MAX_DEPTH.
const EnvPrefix = "CODECHUNK"

// Keys
const (
	KeyOutput           = "output"
	KeyOutputDir        = "output_dir"
	KeyMaxChunkChars    = "max_chunk_chars"
	KeyMaxFilePartChars = "max_file_part_chars"
	KeyMaxDepth         = "max_depth"
	KeyIgnoreDirs       = "ignore_dirs"
	KeyIgnoreFiles      = "ignore_files"
	KeyDebug            = "debug"
)

// Config is the resolved configuration of a run.
type Config struct {
	OutputBase       string
	OutputDir        string
	MaxChunkChars    int
	MaxFilePartChars int
	MaxDepth         int
	IgnoreDirs       []string
	IgnoreFiles      []string
	Debug            bool
}

// NewViper returns a viper instance with defaults and environment binding. The config file
// "codechunk.<ext>" is searched in paths, or in $HOME/.config/codechunk and the current
// directory when no paths are given.
func NewViper(paths ...string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyOutput, export.DefaultOutputBase)
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyMaxChunkChars, export.DefaultMaxChunkChars)
	v.SetDefault(KeyMaxFilePartChars, export.DefaultMaxFilePartChars)
	v.SetDefault(KeyMaxDepth, export.DefaultMaxDepth)
	v.SetDefault(KeyIgnoreDirs, ignore.DefaultDirs)
	v.SetDefault(KeyIgnoreFiles, ignore.DefaultFiles)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("codechunk")
	if len(paths) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".config", "codechunk"))
		}
		paths = append(paths, ".")
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return v
}

// Load reads the config file if one exists and returns the validated configuration.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		OutputBase:       v.GetString(KeyOutput),
		OutputDir:        v.GetString(KeyOutputDir),
		MaxChunkChars:    v.GetInt(KeyMaxChunkChars),
		MaxFilePartChars: v.GetInt(KeyMaxFilePartChars),
		MaxDepth:         v.GetInt(KeyMaxDepth),
		IgnoreDirs:       v.GetStringSlice(KeyIgnoreDirs),
		IgnoreFiles:      v.GetStringSlice(KeyIgnoreFiles),
		Debug:            v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the budgets and names.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputBase) == "" {
		return fmt.Errorf("%s must not be empty", KeyOutput)
	}
	if c.MaxChunkChars <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyMaxChunkChars, c.MaxChunkChars)
	}
	if c.MaxFilePartChars <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyMaxFilePartChars, c.MaxFilePartChars)
	}
	if c.MaxFilePartChars > c.MaxChunkChars {
		return fmt.Errorf("%s (%d) must not exceed %s (%d)",
			KeyMaxFilePartChars, c.MaxFilePartChars, KeyMaxChunkChars, c.MaxChunkChars)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%s must not be negative, got %d", KeyMaxDepth, c.MaxDepth)
	}
	return nil
}

// IgnoreSet builds the path filter for this configuration.
func (c Config) IgnoreSet(logger *zap.Logger) *ignore.Set {
	return ignore.New(c.IgnoreDirs, c.IgnoreFiles, logger)
}

// Arguments converts the configuration into export arguments for root.
func (c Config) Arguments(root string, logger *zap.Logger) export.Arguments {
	return export.Arguments{
		Root:             root,
		OutputBase:       c.OutputBase,
		OutputDir:        c.OutputDir,
		MaxChunkChars:    c.MaxChunkChars,
		MaxFilePartChars: c.MaxFilePartChars,
		MaxDepth:         c.MaxDepth,
		Ignore:           c.IgnoreSet(logger),
	}
}

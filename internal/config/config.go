// Package config loads the per-project crudgen configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/example/crudgen/internal/scaffold"
)

// FileName is the config file looked up in the project root.
const FileName = ".crudgen.yaml"

// Environment variable prefix: CRUDGEN_PAGE_SIZE overrides page_size.
const envPrefix = "CRUDGEN"

// DefaultDatabase is the SQLite file used when none is configured.
const DefaultDatabase = "storage/app.db"

// Config represents the crudgen configuration of a target project.
type Config struct {
	Database      string `mapstructure:"database" yaml:"database"`
	ModulePath    string `mapstructure:"module_path" yaml:"module_path,omitempty"` // read from go.mod when empty
	AdminPrefix   string `mapstructure:"admin_prefix" yaml:"admin_prefix"`
	PageSize      int    `mapstructure:"page_size" yaml:"page_size"`
	MigrationsDir string `mapstructure:"migrations_dir" yaml:"migrations_dir"`
	ModelsDir     string `mapstructure:"models_dir" yaml:"models_dir"`
	HandlersDir   string `mapstructure:"handlers_dir" yaml:"handlers_dir"`
	ViewsDir      string `mapstructure:"views_dir" yaml:"views_dir"`
	RoutesFile    string `mapstructure:"routes_file" yaml:"routes_file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	opts := scaffold.DefaultOptions()
	return &Config{
		Database:      DefaultDatabase,
		AdminPrefix:   opts.AdminPrefix,
		PageSize:      opts.PageSize,
		MigrationsDir: opts.MigrationsDir,
		ModelsDir:     opts.ModelsDir,
		HandlersDir:   opts.HandlersDir,
		ViewsDir:      opts.ViewsDir,
		RoutesFile:    opts.RoutesFile,
	}
}

// WithDefaults returns a copy with empty values replaced by defaults.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()
	out := *c
	if out.Database == "" {
		out.Database = def.Database
	}
	if out.AdminPrefix == "" {
		out.AdminPrefix = def.AdminPrefix
	}
	out.AdminPrefix = strings.Trim(out.AdminPrefix, "/")
	if out.PageSize <= 0 {
		out.PageSize = def.PageSize
	}
	if out.MigrationsDir == "" {
		out.MigrationsDir = def.MigrationsDir
	}
	if out.ModelsDir == "" {
		out.ModelsDir = def.ModelsDir
	}
	if out.HandlersDir == "" {
		out.HandlersDir = def.HandlersDir
	}
	if out.ViewsDir == "" {
		out.ViewsDir = def.ViewsDir
	}
	if out.RoutesFile == "" {
		out.RoutesFile = def.RoutesFile
	}
	return &out
}

// Options returns the scaffold layout described by the config.
func (c *Config) Options() scaffold.Options {
	opts := scaffold.DefaultOptions()
	if c.ModulePath != "" {
		opts.ModulePath = c.ModulePath
	}
	opts.AdminPrefix = c.AdminPrefix
	opts.PageSize = c.PageSize
	opts.MigrationsDir = c.MigrationsDir
	opts.ModelsDir = c.ModelsDir
	opts.HandlersDir = c.HandlersDir
	opts.ViewsDir = c.ViewsDir
	opts.RoutesFile = c.RoutesFile
	return opts
}

// DatabasePath resolves the database file against the project root.
func (c *Config) DatabasePath(root string) string {
	if filepath.IsAbs(c.Database) {
		return c.Database
	}
	return filepath.Join(root, c.Database)
}

// LoadConfig reads .crudgen.yaml from dir. A missing file is not an error:
// defaults and CRUDGEN_* environment variables apply. When no module path is
// configured it is read from dir's go.mod.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper knows about.
	def := DefaultConfig()
	v.SetDefault("database", def.Database)
	v.SetDefault("module_path", "")
	v.SetDefault("admin_prefix", def.AdminPrefix)
	v.SetDefault("page_size", def.PageSize)
	v.SetDefault("migrations_dir", def.MigrationsDir)
	v.SetDefault("models_dir", def.ModelsDir)
	v.SetDefault("handlers_dir", def.HandlersDir)
	v.SetDefault("views_dir", def.ViewsDir)
	v.SetDefault("routes_file", def.RoutesFile)

	v.SetConfigFile(filepath.Join(dir, FileName))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ModulePath == "" {
		modulePath, err := DetectModulePath(dir)
		if err != nil {
			return nil, err
		}
		cfg.ModulePath = modulePath
	}

	return cfg.WithDefaults(), nil
}

// SaveConfig writes .crudgen.yaml to dir.
func SaveConfig(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DetectModulePath returns the module path declared in dir's go.mod, or an
// empty string when there is no go.mod.
func DetectModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("go.mod in %s has no module directive", dir)
	}
	return modulePath, nil
}

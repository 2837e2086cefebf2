package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/xmazu/envload/internal/storage"
)

const ConfigFileName = ".envload.yaml"

var (
	DefaultInclude = []string{"**/.env", "**/.env.*"}
	DefaultExclude = []string{"**/node_modules/**", "**/.git/**", "**/vendor/**"}
)

type CheckConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

type Config struct {
	File  string      `yaml:"file,omitempty"`
	Check CheckConfig `yaml:"check,omitempty"`
}

// EnvFile is the configured env file name, ".env" by default.
func (c *Config) EnvFile() string {
	if c.File == "" {
		return ".env"
	}
	return c.File
}

func (c *Config) Include() []string {
	if len(c.Check.Include) == 0 {
		return DefaultInclude
	}
	return c.Check.Include
}

func (c *Config) Exclude() []string {
	return append(append([]string{}, DefaultExclude...), c.Check.Exclude...)
}

// ReadConfig loads the project config from root. A missing file yields the
// defaults.
func ReadConfig(root string) (*Config, error) {
	file := storage.NewYAMLFile(filepath.Join(root, ConfigFileName))

	var cfg Config
	if err := file.LoadOrCreate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

func WriteConfig(root string, cfg *Config) error {
	return storage.NewYAMLFile(filepath.Join(root, ConfigFileName)).SaveWithPerm(cfg, 0644)
}

func ConfigExists(root string) bool {
	return storage.NewYAMLFile(filepath.Join(root, ConfigFileName)).Exists()
}

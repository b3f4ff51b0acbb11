package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds defaults for options not given on the command line.
type Config struct {
	Path     string `yaml:"path"`
	CSV      bool   `yaml:"csv"`
	Header   bool   `yaml:"header"`
	Offsets  bool   `yaml:"offsets"`
	JSON     bool   `yaml:"json"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wad-info", "config.yaml")
}

// LoadConfig reads the config file at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if path == "" {
			return Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, `LoadConfig error reading "%s"`, path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, `LoadConfig error parsing "%s"`, path)
	}
	return cfg, nil
}

func (c Config) outputs() Outputs {
	return Outputs{
		CSV:     c.CSV,
		Header:  c.Header,
		Offsets: c.Offsets,
		JSON:    c.JSON,
	}
}

// Apply fills unset options of args from the config. Output switches can only
// be turned on by the config.
func (c Config) Apply(args *Args) {
	if args.LogLevel == "" {
		args.LogLevel = c.LogLevel
	}
	if args.Info != nil {
		args.Info.Outputs = args.Info.Outputs.merge(c.outputs())
	}
	if args.Batch != nil {
		args.Batch.Outputs = args.Batch.Outputs.merge(c.outputs())
		args.Batch.Path = firstNonEmpty(args.Batch.Path, c.Path, DefaultPath)
	}
	if args.Interactive != nil {
		args.Interactive.Path = firstNonEmpty(args.Interactive.Path, c.Path, DefaultPath)
	}
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

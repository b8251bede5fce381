package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/platform"
)

// Environment variables recognised by the CLI
const (
	EnvOutputDir = "CODEGEN_OUTPUT_DIR"
	EnvKind      = "CODEGEN_KIND"
	EnvVerbose   = "CODEGEN_VERBOSE"
)

// DefaultEnvFile is loaded, if present, before environment overrides apply
const DefaultEnvFile = ".env"

// FileConfig is the headless configuration used by the command line tool.
// The desktop app keeps the same values in Fyne preferences instead.
type FileConfig struct {
	OutputDir string         `yaml:"output_dir"`
	Kind      model.CodeKind `yaml:"kind"`
	Verbose   bool           `yaml:"verbose"`
}

// defaultFileConfig returns a FileConfig populated with default values.
func defaultFileConfig() *FileConfig {
	return &FileConfig{
		OutputDir: platform.DefaultOutputDirName,
		Kind:      DefaultKind,
	}
}

// Load reads the YAML file at path, falling back to defaults when path is
// empty or the file does not exist. Variables from .env and the process
// environment (CODEGEN_*) override file values.
func Load(path string) (*FileConfig, error) {
	cfg := defaultFileConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Missing .env is fine; existing variables are never overwritten.
	_ = godotenv.Load(DefaultEnvFile)

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if cfg.Kind == "" {
		cfg.Kind = DefaultKind
	}
	if !cfg.Kind.IsValid() {
		return nil, fmt.Errorf("invalid kind in config: %q", cfg.Kind)
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = platform.DefaultOutputDirName
	}
	return cfg, nil
}

// applyEnvOverrides applies CODEGEN_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *FileConfig) error {
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvKind); v != "" {
		kind, err := model.ParseCodeKind(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvKind, err)
		}
		cfg.Kind = kind
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			cfg.Verbose = true
		case "false", "0", "no":
			cfg.Verbose = false
		}
	}
	return nil
}

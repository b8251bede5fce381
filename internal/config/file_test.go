package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/platform"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvOutputDir, EnvKind, EnvVerbose} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != platform.DefaultOutputDirName {
		t.Errorf("Expected output dir %s, got %s", platform.DefaultOutputDirName, cfg.OutputDir)
	}
	if cfg.Kind != model.KindQR {
		t.Errorf("Expected kind qr, got %s", cfg.Kind)
	}
	if cfg.Verbose {
		t.Error("Expected verbose to be off")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Kind != DefaultKind {
		t.Errorf("Expected default kind, got %s", cfg.Kind)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "codegen.yaml")
	content := "output_dir: /srv/codes\nkind: barcode\nverbose: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "/srv/codes" {
		t.Errorf("Expected /srv/codes, got %s", cfg.OutputDir)
	}
	if cfg.Kind != model.KindBarcode {
		t.Errorf("Expected barcode, got %s", cfg.Kind)
	}
	if !cfg.Verbose {
		t.Error("Expected verbose to be on")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("kind: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error, got nil")
	}
}

func TestLoad_InvalidKindInFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "kind.yaml")
	if err := os.WriteFile(path, []byte("kind: ean13\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid kind, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "codegen.yaml")
	if err := os.WriteFile(path, []byte("output_dir: /from/file\nkind: qr\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv(EnvOutputDir, "/from/env")
	t.Setenv(EnvKind, "BARCODE")
	t.Setenv(EnvVerbose, "yes")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "/from/env" {
		t.Errorf("Expected env output dir, got %s", cfg.OutputDir)
	}
	if cfg.Kind != model.KindBarcode {
		t.Errorf("Expected env kind barcode, got %s", cfg.Kind)
	}
	if !cfg.Verbose {
		t.Error("Expected env verbose")
	}

	t.Setenv(EnvKind, "hologram")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid env kind, got nil")
	}
}

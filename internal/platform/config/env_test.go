package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"HRO_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("HRO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvSkipsMissingFile(t *testing.T) {
	loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("loaded = %v, want none", loaded)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "HRO_TEST_DOTENV_NEW=from-file\nHRO_TEST_DOTENV_SET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HRO_TEST_DOTENV_SET", "from-env")
	t.Setenv("HRO_TEST_DOTENV_NEW", "")
	if err := os.Unsetenv("HRO_TEST_DOTENV_NEW"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	loaded, err := LoadDotEnv(path)
	if err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != path {
		t.Fatalf("loaded = %v, want [%s]", loaded, path)
	}
	if got := os.Getenv("HRO_TEST_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("HRO_TEST_DOTENV_NEW = %q, want %q", got, "from-file")
	}
	if got := os.Getenv("HRO_TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("HRO_TEST_DOTENV_SET = %q, want %q", got, "from-env")
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
	if cfg.Facts.MaxPerRequest != 20 {
		t.Fatalf("expected default cap 20, got %d", cfg.Facts.MaxPerRequest)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		`output_dir = "` + filepath.Join(dir, "out") + `"`,
		"",
		"[facts]",
		"max_per_request = 5",
		"",
		"[scripts]",
		`default_format = "Entertaining"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be detected")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Facts.MaxPerRequest != 5 {
		t.Fatalf("expected overridden cap 5, got %d", cfg.Facts.MaxPerRequest)
	}
	if cfg.Scripts.DefaultFormat != "Entertaining" {
		t.Fatalf("expected overridden format, got %q", cfg.Scripts.DefaultFormat)
	}
	// Untouched sections keep their defaults.
	if cfg.Render.DefaultResolution != "1080p" {
		t.Fatalf("expected default resolution, got %q", cfg.Render.DefaultResolution)
	}
	if cfg.Platform.DefaultPrivacy != "Public" {
		t.Fatalf("expected default privacy, got %q", cfg.Platform.DefaultPrivacy)
	}
}

func TestLoadRejectsBadPrivacy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[platform]\ndefault_privacy = \"Secret\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown privacy")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}

	got, err := ExpandPath("~/reel/data")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "reel", "data") {
		t.Fatalf("unexpected expansion %q", got)
	}

	if got, err = ExpandPath(""); err != nil || got != "" {
		t.Fatalf("expected empty expansion, got %q err %v", got, err)
	}
}

func TestWriteSampleRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	// The sample must itself be loadable.
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}

func TestPlatformAPIKeyFromEnv(t *testing.T) {
	t.Setenv("REEL_PLATFORM_API_KEY", "env-key")

	cfg := Default()
	cfg.Platform.APIKey = ""
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Platform.APIKey != "env-key" {
		t.Fatalf("expected api key from environment, got %q", cfg.Platform.APIKey)
	}
}

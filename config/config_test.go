package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "empty output dir",
			mutate: func(cfg *Config) {
				cfg.OutputDir = ""
			},
			wantErr: "output directory",
		},
		{
			name: "empty user agent",
			mutate: func(cfg *Config) {
				cfg.UserAgent = ""
			},
			wantErr: "user agent",
		},
		{
			name: "negative timeout",
			mutate: func(cfg *Config) {
				cfg.Timeout = -1 * time.Second
			},
			wantErr: "timeout",
		},
		{
			name: "empty translate endpoint",
			mutate: func(cfg *Config) {
				cfg.TranslateEndpoint = ""
			},
			wantErr: "translate endpoint",
		},
		{
			name: "endpoint without host",
			mutate: func(cfg *Config) {
				cfg.TranslateEndpoint = "http://"
			},
			wantErr: "translate endpoint",
		},
		{
			name: "bogus target language",
			mutate: func(cfg *Config) {
				cfg.TranslateTarget = "not-a-language"
			},
			wantErr: "language code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := strings.Join([]string{
		"directory: /tmp/my-recipes",
		"yield: false",
		"translate_target: fr",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputDir != "/tmp/my-recipes" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/my-recipes")
	}
	if cfg.ShowYield {
		t.Errorf("ShowYield = true, want false")
	}
	if cfg.TranslateTarget != "fr" {
		t.Errorf("TranslateTarget = %q, want %q", cfg.TranslateTarget, "fr")
	}
	// untouched settings keep their defaults
	if !cfg.ShowTotalTime {
		t.Errorf("ShowTotalTime = false, want default true")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config should validate, got %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
defaults:
  format: json
  verbose: true
profiles:
  review:
    format: text
    no_color: true
  batch:
    output: reports/
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fir-scan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Defaults.Format != "json" || !cfg.Defaults.Verbose {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if len(cfg.Profiles) != 2 {
		t.Errorf("profiles = %+v", cfg.Profiles)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "defaults: [not a map")); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveProfile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("no profile", func(t *testing.T) {
		s, err := cfg.Resolve("")
		if err != nil {
			t.Fatal(err)
		}
		if s.Format != "json" || !s.Verbose {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("profile overrides format", func(t *testing.T) {
		s, err := cfg.Resolve("review")
		if err != nil {
			t.Fatal(err)
		}
		if s.Format != "text" || !s.NoColor || !s.Verbose {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("profile keeps unset fields", func(t *testing.T) {
		s, err := cfg.Resolve("batch")
		if err != nil {
			t.Fatal(err)
		}
		if s.Format != "json" || s.Output != "reports/" {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		if _, err := cfg.Resolve("missing"); err == nil {
			t.Error("expected error for unknown profile")
		}
	})
}

func TestLoadConfigOrDefault(t *testing.T) {
	t.Run("missing file falls back", func(t *testing.T) {
		cfg, err := LoadConfigOrDefault("")
		if err != nil {
			t.Fatalf("LoadConfigOrDefault: %v", err)
		}
		if cfg.Defaults.Format != "text" {
			t.Errorf("defaults = %+v", cfg.Defaults)
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		cfg, err := LoadConfigOrDefault(writeConfig(t, sampleConfig))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Defaults.Format != "json" {
			t.Errorf("defaults = %+v", cfg.Defaults)
		}
	})
}

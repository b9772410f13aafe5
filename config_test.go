package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shreejitmurthy/meta-parser/parser"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") failed: %v", err)
	}
	if cfg.Limits.MaxObjects != parser.DefaultMaxObjects || cfg.Limits.MaxFields != parser.DefaultMaxFields {
		t.Errorf("unexpected default limits: %+v", cfg.Limits)
	}
	if cfg.Generator.Suffix != "Data" {
		t.Errorf("default suffix = %q, want Data", cfg.Generator.Suffix)
	}
	if cfg.Generator.HeaderComment == "" {
		t.Error("default header comment should not be empty")
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.yaml")
	content := `limits:
  max_fields: 8
generator:
  suffix: Struct
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Limits.MaxFields != 8 {
		t.Errorf("max_fields = %d, want 8", cfg.Limits.MaxFields)
	}
	if cfg.Limits.MaxObjects != parser.DefaultMaxObjects {
		t.Errorf("unset max_objects should keep the default, got %d", cfg.Limits.MaxObjects)
	}
	if cfg.Generator.Suffix != "Struct" {
		t.Errorf("suffix = %q, want Struct", cfg.Generator.Suffix)
	}

	limits := cfg.limits()
	if limits.MaxFields != 8 || limits.MaxObjects != parser.DefaultMaxObjects {
		t.Errorf("limits() mapping wrong: %+v", limits)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

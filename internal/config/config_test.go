package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Filter != "" {
		t.Errorf("default Filter = %q, want empty (disabled)", cfg.Filter)
	}
	if cfg.Sink != "stderr" {
		t.Errorf("default Sink = %q, want %q", cfg.Sink, "stderr")
	}
	if cfg.Color {
		t.Error("default Color should be false")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.Sink != "stderr" {
		t.Errorf("Sink = %q, want default", cfg.Sink)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debuglog.toml")
	content := `filter = "parser"
sink = "console"
color = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Filter != "parser" {
		t.Errorf("Filter = %q, want %q", cfg.Filter, "parser")
	}
	if cfg.Sink != "console" {
		t.Errorf("Sink = %q, want %q", cfg.Sink, "console")
	}
	if !cfg.Color {
		t.Error("Color = false, want true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("filter = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of invalid TOML should fail")
	}
}

func TestLoadUnknownSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debuglog.toml")
	if err := os.WriteFile(path, []byte(`sink = "syslog"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with unknown sink should fail")
	}
}

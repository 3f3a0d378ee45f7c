package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.ShowDefinitions {
		t.Errorf("show_definitions default = false, want true")
	}
	if cfg.CopyMode {
		t.Errorf("copy_mode default = true, want false")
	}
	if cfg.WordDict == "" || cfg.LogsDir == "" {
		t.Errorf("path defaults missing: %+v", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "word_dict: /data/words\ncopy_mode: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WordDict != "/data/words" {
		t.Errorf("word_dict = %q", cfg.WordDict)
	}
	if !cfg.CopyMode {
		t.Errorf("copy_mode not overridden")
	}
	// Untouched fields keep their defaults.
	if cfg.NameDict != "dict/names.edict" {
		t.Errorf("name_dict = %q, want default", cfg.NameDict)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("word_dict: [unterminated"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load parsed malformed yaml")
	}
}

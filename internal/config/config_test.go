package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGlobalMissingFileUsesDefaults(t *testing.T) {
	if err := LoadGlobal(filepath.Join(t.TempDir(), "config")); err != nil {
		t.Fatalf("expected a missing config file to be tolerated, got: %v", err)
	}
}

func TestLoadGlobalReadsBackendUrl(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte("backendUrl: http://localhost:11633\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if err := LoadGlobal(path); err != nil {
		t.Fatalf("LoadGlobal returned error: %v", err)
	}
	if Global.BackendUrl != "http://localhost:11633" {
		t.Errorf("expected the configured backend url, got %q", Global.BackendUrl)
	}
	if !Global.IsGlobalConfigExists() {
		t.Errorf("expected the source path to be recorded")
	}
}

func TestLoadGlobalStatFailureIsAnError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(blocker, []byte{}, 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	// a path nested under a regular file fails os.Stat with ENOTDIR
	if err := LoadGlobal(filepath.Join(blocker, "config")); err == nil {
		t.Fatalf("expected an error when the config path cannot be inspected")
	}
}

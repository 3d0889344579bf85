package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if config != DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 16, "height": 16, "max_generations": 50, "headless": true}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Width != 16 || config.Height != 16 {
		t.Fatalf("dimensions = %dx%d", config.Width, config.Height)
	}
	if config.MaxGenerations != 50 {
		t.Fatalf("max generations = %d", config.MaxGenerations)
	}
	if !config.Headless {
		t.Fatal("headless not set")
	}
	// Untouched fields keep their defaults
	if config.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatalf("random density = %v", config.RandomDensity)
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": `), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	bad := DefaultConfig()
	bad.RandomDensity = 1.5
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for density > 1")
	}
}

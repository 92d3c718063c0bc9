package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Entry != "src/main.ts" {
		t.Fatalf("expected default entry 'src/main.ts', got %q", cfg.Entry)
	}
	if cfg.OpenAPI.Output != "dist/openapi.json" {
		t.Fatalf("expected default openapi output 'dist/openapi.json', got %q", cfg.OpenAPI.Output)
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "routemark.config.json")
	content := `{
		"entry": "src/api/entry.ts",
		"tsconfig": "tsconfig.json",
		"openapi": {
			"output": "dist/api/openapi.yaml",
			"title": "Widgets API",
			"version": "2.1.0",
			"servers": [{"url": "https://api.example.com", "description": "prod"}]
		}
	}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Entry != "src/api/entry.ts" {
		t.Fatalf("unexpected entry: %q", cfg.Entry)
	}
	if cfg.Tsconfig != "tsconfig.json" {
		t.Fatalf("unexpected tsconfig: %q", cfg.Tsconfig)
	}
	if cfg.OpenAPI.Output != "dist/api/openapi.yaml" {
		t.Fatalf("unexpected openapi output: %q", cfg.OpenAPI.Output)
	}
	if cfg.OpenAPI.Title != "Widgets API" || cfg.OpenAPI.Version != "2.1.0" {
		t.Fatalf("unexpected title/version: %q %q", cfg.OpenAPI.Title, cfg.OpenAPI.Version)
	}
	if len(cfg.OpenAPI.Servers) != 1 || cfg.OpenAPI.Servers[0].URL != "https://api.example.com" {
		t.Fatalf("unexpected servers: %+v", cfg.OpenAPI.Servers)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "routemark.config.json")
	content := `{"entry": "src/main.ts"}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// openapi.output should fall back to the default since it wasn't set.
	if cfg.OpenAPI.Output != "dist/openapi.json" {
		t.Fatalf("expected default openapi output, got %q", cfg.OpenAPI.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/routemark.config.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "routemark.config.json")
	if err := os.WriteFile(configPath, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestValidateEmptyEntry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entry = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty entry")
	}
}

func TestValidateEmptyOpenAPIOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAPI.Output = ""

	// Empty openapi.output is valid — it means "no document written".
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error for empty openapi output: %v", err)
	}
}

func TestValidateUnsupportedOpenAPIOutputExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAPI.Output = "dist/openapi.txt"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unsupported openapi.output extension")
	}
}

func TestValidateYAMLOpenAPIOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAPI.Output = "dist/openapi.yaml"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error for .yaml output: %v", err)
	}
}

func TestValidateValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	if result := Discover(dir); result != "" {
		t.Fatalf("expected empty string for no config, got %q", result)
	}

	path := filepath.Join(dir, "routemark.config.json")
	if err := os.WriteFile(path, []byte(`{"entry":"src/main.ts","openapi":{"output":"dist/openapi.json"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := Discover(dir); result != path {
		t.Fatalf("expected %q, got %q", path, result)
	}
}

package config

import (
	"testing"
)

func TestValidateDetailed_Valid(t *testing.T) {
	cfg := DefaultConfig()
	result := cfg.ValidateDetailed()
	if !result.IsValid() {
		t.Errorf("expected valid config, got errors: %v", result.Errors)
	}
}

func TestValidateDetailed_MissingEntry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entry = ""
	result := cfg.ValidateDetailed()
	if result.IsValid() {
		t.Error("expected invalid config")
	}
}

func TestValidateDetailed_NonTSEntryWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entry = "src/main.js"
	result := cfg.ValidateDetailed()
	if len(result.Warnings) == 0 {
		t.Error("expected warning about non-TypeScript entry")
	}
}

func TestValidateDetailed_EmptyOpenAPIOutputWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAPI.Output = ""
	result := cfg.ValidateDetailed()
	if len(result.Warnings) == 0 {
		t.Error("expected warning about empty openapi.output")
	}
	if !result.IsValid() {
		t.Error("empty openapi.output should not itself be an error")
	}
}

func TestValidateDetailed_UnsupportedOutputExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAPI.Output = "dist/openapi.txt"
	result := cfg.ValidateDetailed()
	if result.IsValid() {
		t.Error("expected error for unsupported openapi.output extension")
	}
}

func TestValidateDetailed_EmptyServerURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAPI.Servers = []Server{{URL: ""}}
	result := cfg.ValidateDetailed()
	if result.IsValid() {
		t.Error("expected error for empty server url")
	}
}

func TestValidateDetailed_WeirdTsconfigWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tsconfig = "weird-file"
	result := cfg.ValidateDetailed()
	if len(result.Warnings) == 0 {
		t.Error("expected warning for tsconfig path that isn't a JSON file")
	}
}

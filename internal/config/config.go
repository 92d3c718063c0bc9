// Package config loads routemark.config.json: the entry file, module
// resolution aliases, and OpenAPI document metadata a build needs beyond
// what engine.Generate takes as direct arguments.
//
// A Discover/Load/Validate shape, same as other Go CLI tools that load a
// project-root config file from a working directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the parsed contents of routemark.config.json.
type Config struct {
	// Entry is the absolute-or-relative path to the TypeScript file
	// engine.Generate starts walking from.
	Entry string `json:"entry"`

	// Tsconfig is the path to the tsconfig.json whose "paths" compilerOption
	// seeds pathalias's wildcard resolver. Optional — an empty value means
	// only relative ./ and ../ specifiers and absolute paths resolve.
	Tsconfig string `json:"tsconfig,omitempty"`

	OpenAPI OpenAPIConfig `json:"openapi"`
}

// OpenAPIConfig controls the generated document's `info` object, its
// `servers` array, and where/how the result is written.
type OpenAPIConfig struct {
	// Output is the file the document is serialized to. Its extension
	// (.json/.yaml/.yml) selects the serializer; see Validate.
	Output string `json:"output"`

	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version,omitempty"`
	Servers     []Server `json:"servers,omitempty"`

	// Validate runs the generated document through kin-openapi's validator
	// before writing it out; a validation failure aborts the build.
	Validate bool `json:"validate,omitempty"`
}

// Server is one entry of the document's `servers` array.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// DefaultConfig returns a config with sensible defaults for a project whose
// entry file is src/main.ts.
func DefaultConfig() Config {
	return Config{
		Entry: "src/main.ts",
		OpenAPI: OpenAPIConfig{
			Output: "dist/openapi.json",
		},
	}
}

// Discover searches dir for a routemark config file, returning its full
// path or "" if none is present.
func Discover(dir string) string {
	p := filepath.Join(dir, "routemark.config.json")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Load reads and validates a routemark.config.json file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if c.Entry == "" {
		return fmt.Errorf("entry must name a TypeScript entry file")
	}

	if c.OpenAPI.Output != "" {
		switch filepath.Ext(c.OpenAPI.Output) {
		case ".json", ".yaml", ".yml":
			// ok
		default:
			return fmt.Errorf("openapi.output must have a .json, .yaml, or .yml extension, got %q", c.OpenAPI.Output)
		}
	}

	return nil
}

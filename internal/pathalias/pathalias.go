// Package pathalias is routemark's module resolver
// (`resolve: (specifier, importer) -> absolutePath`): it turns a bare
// tsconfig path-alias specifier or a relative/absolute specifier into an
// absolute TypeScript source path the engine can parse.
//
// Uses the same longest-prefix-wins wildcard matching algorithm as
// TypeScript's own tryLoadModuleUsingPaths() (itself adapted from esbuild's
// resolver, MIT licensed), but re-pointed at source files directly instead
// of rewriting already-emitted JavaScript, since routemark never compiles
// anything.
package pathalias

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver resolves tsconfig "paths" aliases against TypeScript source
// files. Path targets are resolved relative to the paths base directory
// (tsconfig dir, or an explicit baseUrl if set).
type PathResolver struct {
	pathsBaseDir string
	aliases      map[string][]string // pattern → fallback paths (e.g., "@app/*" → ["src/*"])
}

// Config holds the resolved tsconfig values needed for path alias resolution.
type Config struct {
	PathsBaseDir string              // absolute dir to resolve path targets against
	Paths        map[string][]string // alias pattern → target paths
}

// NewPathResolver creates a resolver from pre-resolved tsconfig values.
func NewPathResolver(cfg Config) *PathResolver {
	return &PathResolver{
		pathsBaseDir: cfg.PathsBaseDir,
		aliases:      cfg.Paths,
	}
}

// HasAliases reports whether the resolver has any path aliases to resolve.
func (r *PathResolver) HasAliases() bool {
	return len(r.aliases) > 0
}

// tsconfigShape is the minimal subset of tsconfig.json this package reads.
type tsconfigShape struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// LoadTSConfigPaths reads a tsconfig.json's compilerOptions.baseUrl/paths and
// returns a ready-to-use Config. tsconfig.json's permissive JSONC dialect
// (comments, trailing commas) is out of scope: routemark expects a plain
// JSON paths block, the common case for generated/CI tsconfigs.
func LoadTSConfigPaths(tsconfigPath string) (Config, error) {
	data, err := os.ReadFile(tsconfigPath)
	if err != nil {
		return Config{}, fmt.Errorf("reading tsconfig %q: %w", tsconfigPath, err)
	}

	var shape tsconfigShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return Config{}, fmt.Errorf("parsing tsconfig %q: %w", tsconfigPath, err)
	}

	dir := filepath.Dir(tsconfigPath)
	baseDir := dir
	if shape.CompilerOptions.BaseURL != "" {
		baseDir = filepath.Join(dir, shape.CompilerOptions.BaseURL)
	}

	return Config{
		PathsBaseDir: baseDir,
		Paths:        shape.CompilerOptions.Paths,
	}, nil
}

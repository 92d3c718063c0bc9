package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/routemark/routemark/internal/config"
	"github.com/routemark/routemark/internal/diagnostic"
	"github.com/routemark/routemark/internal/engine"
	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/pathalias"
	"github.com/routemark/routemark/internal/tsscan"
)

// buildFlags holds the parsed flags for the build command.
type buildFlags struct {
	ConfigPath string
	Entry      string
	Out        string
	Strict     bool
	Quiet      bool
}

func parseBuildArgs(args []string) buildFlags {
	var f buildFlags
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				i++
				f.ConfigPath = args[i]
			}
		case "--entry":
			if i+1 < len(args) {
				i++
				f.Entry = args[i]
			}
		case "--out":
			if i+1 < len(args) {
				i++
				f.Out = args[i]
			}
		case "--strict":
			f.Strict = true
		case "--quiet":
			f.Quiet = true
		}
	}
	return f
}

// runBuild loads routemark.config.json, walks the entry file's import graph
// discovering Path()/Response() endpoints (engine.Generate), and writes the
// resulting OpenAPI document to the configured output path.
//
// Exit codes (matching the tsc-style convention of distinguishing "ran with
// diagnostics" from "could not run at all"):
//
//	0 = success, no errors
//	1 = errors present (output still written on a best-effort basis), warnings
//	    present under --strict, or the document failed validation or could
//	    not be written (nothing written)
//	2 = could not even load a config / locate an entry file
func runBuild(args []string) int {
	flags := parseBuildArgs(args)

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 2
	}

	cfg, err := loadEffectiveConfig(cwd, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	entryAbs, err := filepath.Abs(cfg.Entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not resolve entry path %q: %v\n", cfg.Entry, err)
		return 2
	}
	if _, err := os.Stat(entryAbs); err != nil {
		fmt.Fprintf(os.Stderr, "error: entry file %q does not exist\n", entryAbs)
		return 2
	}

	resolver, err := buildResolver(cfg, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	cache := tsscan.NewCache()
	result := engine.Generate(entryAbs, cache.Scan, resolver.Resolve, engine.Options{
		Title:       cfg.OpenAPI.Title,
		Description: cfg.OpenAPI.Description,
		Version:     cfg.OpenAPI.Version,
	})
	for _, s := range cfg.OpenAPI.Servers {
		result.Document.Servers = append(result.Document.Servers, openapi.Server{
			URL:         s.URL,
			Description: s.Description,
		})
	}

	for _, d := range result.Diagnostics.Diagnostics() {
		if flags.Quiet && d.Severity != diagnostic.SeverityError {
			continue
		}
		fmt.Fprintln(os.Stderr, d.String())
	}
	fmt.Fprintf(os.Stderr, "routemark: %s\n", result.Diagnostics.Summary())

	if cfg.OpenAPI.Validate {
		if err := openapi.Validate(result.Document); err != nil {
			fmt.Fprintf(os.Stderr, "error: generated document failed validation: %v\n", err)
			return 1
		}
	}

	if cfg.OpenAPI.Output != "" {
		if err := writeDocument(result.Document, cfg.OpenAPI.Output, cwd); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "routemark: wrote %s\n", cfg.OpenAPI.Output)
	}

	if result.Diagnostics.HasErrors() {
		return 1
	}
	if flags.Strict && result.Diagnostics.WarningCount() > 0 {
		return 1
	}
	return 0
}

// loadEffectiveConfig discovers/loads routemark.config.json and applies
// any --entry/--out CLI overrides on top of it.
func loadEffectiveConfig(cwd string, flags buildFlags) (*config.Config, error) {
	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = config.Discover(cwd)
	}

	var cfg config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	} else {
		cfg = config.DefaultConfig()
	}

	if flags.Entry != "" {
		cfg.Entry = flags.Entry
	}
	if flags.Out != "" {
		cfg.OpenAPI.Output = flags.Out
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// buildResolver constructs the module resolver external collaborator,
// seeded with tsconfig.json's compilerOptions.paths when cfg names one.
func buildResolver(cfg *config.Config, cwd string) (*pathalias.PathResolver, error) {
	if cfg.Tsconfig == "" {
		return pathalias.NewPathResolver(pathalias.Config{PathsBaseDir: cwd}), nil
	}

	tsconfigPath := cfg.Tsconfig
	if !filepath.IsAbs(tsconfigPath) {
		tsconfigPath = filepath.Join(cwd, tsconfigPath)
	}
	pc, err := pathalias.LoadTSConfigPaths(tsconfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading tsconfig %q: %w", cfg.Tsconfig, err)
	}
	return pathalias.NewPathResolver(pc), nil
}

// writeDocument serializes doc according to outputPath's extension
// (.json, or .yaml/.yml) and writes it, creating parent directories as
// needed.
func writeDocument(doc *openapi.Document, outputPath, cwd string) error {
	abs := outputPath
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(cwd, abs)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var data []byte
	var err error
	switch filepath.Ext(abs) {
	case ".yaml", ".yml":
		data, err = doc.ToYAML()
	default:
		data, err = doc.MarshalJSON()
	}
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}

	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", abs, err)
	}
	return nil
}

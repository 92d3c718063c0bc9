package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/routemark/routemark/internal/engine"
	"github.com/routemark/routemark/internal/tsscan"
)

// runDump is a debug aid: it runs the same discovery pipeline as build but
// prints the in-memory document (pretty-printed) and every diagnostic to
// stdout/stderr instead of writing a configured output file, so a developer
// can inspect what a single Path()/Response() call produced without wiring
// up a routemark.config.json first.
func runDump(args []string) int {
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

	raw, err := result.Document.MarshalJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not marshal document: %v\n", err)
		return 1
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Println(indented.String())

	if msg := result.Diagnostics.FormatAll(); msg != "" {
		fmt.Fprint(os.Stderr, msg)
	}
	fmt.Fprintf(os.Stderr, "routemark: %s\n", result.Diagnostics.Summary())

	if result.Diagnostics.HasErrors() {
		return 1
	}
	return 0
}

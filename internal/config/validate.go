package config

import (
	"fmt"
	"path/filepath"
)

// ValidationResult holds config validation results, distinguishing hard
// errors from advisory warnings (teacher-style: Validate alone only catches
// what would make a build impossible to run).
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// ValidateDetailed performs thorough config validation with suggestions,
// returning hard errors and advisory warnings separately.
func (c *Config) ValidateDetailed() *ValidationResult {
	result := &ValidationResult{}

	if c.Entry == "" {
		result.Errors = append(result.Errors, "entry: must name a TypeScript entry file")
	} else if filepath.Ext(c.Entry) != ".ts" && filepath.Ext(c.Entry) != ".tsx" {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("entry: %q doesn't look like a TypeScript file (.ts/.tsx)", c.Entry))
	}

	if c.OpenAPI.Output == "" {
		result.Warnings = append(result.Warnings, "openapi.output: empty — no document will be written")
	} else {
		switch filepath.Ext(c.OpenAPI.Output) {
		case ".json", ".yaml", ".yml":
			// ok
		default:
			result.Errors = append(result.Errors,
				fmt.Sprintf("openapi.output: extension %q is unsupported — expected .json, .yaml, or .yml", filepath.Ext(c.OpenAPI.Output)))
		}
	}

	for i, s := range c.OpenAPI.Servers {
		if s.URL == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("openapi.servers[%d]: url must not be empty", i))
		}
	}

	if c.Tsconfig != "" && filepath.Base(c.Tsconfig) != "tsconfig.json" && filepath.Ext(c.Tsconfig) != ".json" {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("tsconfig: %q doesn't look like a tsconfig JSON file", c.Tsconfig))
	}

	return result
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

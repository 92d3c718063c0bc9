package pathalias

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tsExtensions are tried in order when a specifier omits its extension,
// mirroring Node's/TypeScript's module resolution order.
var tsExtensions = []string{".ts", ".tsx", "/index.ts", "/index.tsx"}

// Resolve maps an import specifier to an absolute file path
// (`resolve: (specifier, importer) -> absolutePath`), reusing this
// package's wildcard path-alias matching for bare specifiers and plain
// relative-path resolution otherwise.
//
// Resolve targets TypeScript source files directly: routemark never emits
// or compiles anything, it walks the AST in place.
func (r *PathResolver) Resolve(specifier, importer string) (string, error) {
	if strings.HasPrefix(specifier, ".") {
		base := filepath.Join(filepath.Dir(importer), specifier)
		if p, ok := tryExtensions(base); ok {
			return p, nil
		}
		return "", fmt.Errorf("cannot resolve relative specifier %q from %q", specifier, importer)
	}

	if strings.HasPrefix(specifier, "/") {
		if p, ok := tryExtensions(specifier); ok {
			return p, nil
		}
		return "", fmt.Errorf("cannot resolve absolute specifier %q", specifier)
	}

	if target, ok := r.matchAlias(specifier); ok {
		abs := filepath.Join(r.pathsBaseDir, target)
		if p, ok := tryExtensions(abs); ok {
			return p, nil
		}
		return "", fmt.Errorf("path alias %q resolved to %q, but no source file exists there", specifier, abs)
	}

	return "", fmt.Errorf("cannot resolve module specifier %q: not a relative path and no matching path alias", specifier)
}

func tryExtensions(base string) (string, bool) {
	if strings.HasSuffix(base, ".ts") || strings.HasSuffix(base, ".tsx") {
		if fileExists(base) {
			return base, true
		}
		return "", false
	}
	for _, ext := range tsExtensions {
		candidate := base + ext
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// matchAlias resolves specifier against the configured path aliases only
// (no relative/absolute handling, no output-directory mapping), returning
// the matched target with its wildcard substituted in.
func (r *PathResolver) matchAlias(specifier string) (string, bool) {
	for key, targets := range r.aliases {
		if !strings.Contains(key, "*") && key == specifier && len(targets) > 0 {
			return strings.TrimPrefix(targets[0], "./"), true
		}
	}

	longestPrefixLen, longestSuffixLen := -1, -1
	var bestPrefix, bestSuffix string
	var bestTargets []string

	for key, targets := range r.aliases {
		starIdx := strings.IndexByte(key, '*')
		if starIdx < 0 {
			continue
		}
		prefix, suffix := key[:starIdx], key[starIdx+1:]
		if strings.HasPrefix(specifier, prefix) && strings.HasSuffix(specifier, suffix) &&
			len(specifier) >= len(prefix)+len(suffix) {
			if len(prefix) > longestPrefixLen || (len(prefix) == longestPrefixLen && len(suffix) > longestSuffixLen) {
				longestPrefixLen, longestSuffixLen = len(prefix), len(suffix)
				bestPrefix, bestSuffix, bestTargets = prefix, suffix, targets
			}
		}
	}

	if longestPrefixLen < 0 || len(bestTargets) == 0 {
		return "", false
	}
	matched := specifier[len(bestPrefix) : len(specifier)-len(bestSuffix)]
	target := strings.TrimPrefix(bestTargets[0], "./")
	return strings.Replace(target, "*", matched, 1), true
}

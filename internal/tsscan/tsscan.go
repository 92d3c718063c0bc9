package tsscan

import (
	"fmt"
	"os"
	"sync"

	"github.com/routemark/routemark/internal/tsast"
)

// Scan reads and parses the file at absolutePath, satisfying engine.Parser
// directly. Each call re-reads the file from disk; callers that parse the
// same path repeatedly across a single run should go through Cache instead.
func Scan(absolutePath string) (*tsast.SourceFile, error) {
	data, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("tsscan: %w", err)
	}
	f, err := Parse(absolutePath, string(data))
	if err != nil {
		return nil, fmt.Errorf("tsscan: %s: %w", absolutePath, err)
	}
	return f, nil
}

// Cache wraps Scan with parse-at-most-once memoization: the entry file and
// every file reachable through import/export specifiers is parsed at most
// once, regardless of how many times it is imported. Safe for concurrent
// use, though the engine itself drives it single-threaded.
type Cache struct {
	mu    sync.Mutex
	files map[string]*tsast.SourceFile
	errs  map[string]error
}

// NewCache returns an empty module cache.
func NewCache() *Cache {
	return &Cache{
		files: make(map[string]*tsast.SourceFile),
		errs:  make(map[string]error),
	}
}

// Scan satisfies engine.Parser, serving a memoized result for a path already
// seen (success or failure alike — a file that failed to parse once stays
// failed for the lifetime of the cache rather than being retried).
func (c *Cache) Scan(absolutePath string) (*tsast.SourceFile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.files[absolutePath]; ok {
		return f, nil
	}
	if err, ok := c.errs[absolutePath]; ok {
		return nil, err
	}

	f, err := Scan(absolutePath)
	if err != nil {
		c.errs[absolutePath] = err
		return nil, err
	}
	c.files[absolutePath] = f
	return f, nil
}

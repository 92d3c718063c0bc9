package pathalias

import (
	"os"
	"path/filepath"
	"testing"
)

func touchBench(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("export const x = 1;\n"), 0o644)
}

func BenchmarkResolve(b *testing.B) {
	dir := b.TempDir()
	for _, rel := range []string{"src/services/user.ts", "src/lib/logger.ts", "src/config.ts"} {
		p := filepath.Join(dir, rel)
		if err := touchBench(p); err != nil {
			b.Fatal(err)
		}
	}

	r := makeResolver(dir, map[string][]string{
		"@app/*":  {"src/*"},
		"@lib/*":  {"src/lib/*"},
		"@config": {"src/config"},
	})
	importer := filepath.Join(dir, "src", "index.ts")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve("@app/services/user", importer)
		r.Resolve("@lib/logger", importer)
		r.Resolve("@config", importer)
	}
}

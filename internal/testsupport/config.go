package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cng2jpg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithMerge enables spread merging.
func WithMerge() ConfigOption {
	return func(c *config.Config) { c.Convert.Merge = true }
}

// WithRemove enables deletion of converted sources.
func WithRemove() ConfigOption {
	return func(c *config.Config) { c.Convert.Remove = true }
}

// WriteConfig writes a TOML config seeded with defaults into a temp directory
// and returns its path.
func WriteConfig(t testing.TB, opts ...ConfigOption) string {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

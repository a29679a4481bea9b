package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "sharvard.txt", cfg.Corpus)
	assert.Equal(t, filepath.Join("tests", "golden_data.json"), cfg.Golden)
	assert.Equal(t, "fonemas", cfg.Engine.Command)
	assert.Equal(t, 1, cfg.Engine.Exceptions)
	assert.Equal(t, `"`, cfg.Engine.Stress)
	assert.Equal(t, 1, cfg.Run.Jobs)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `corpus: corpus/frases.txt
golden: baseline/golden.json
engine:
  command: /usr/local/bin/fonemas
  mono: true
  exceptions: 2
  stress: "'"
run:
  jobs: 4
  verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "corpus/frases.txt", cfg.Corpus)
	assert.Equal(t, "baseline/golden.json", cfg.Golden)
	assert.Equal(t, "/usr/local/bin/fonemas", cfg.Engine.Command)
	assert.True(t, cfg.Engine.Mono)
	assert.Equal(t, 2, cfg.Engine.Exceptions)
	assert.Equal(t, "'", cfg.Engine.Stress)
	assert.Equal(t, 4, cfg.Run.Jobs)
	assert.True(t, cfg.Run.Verbose)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus: other.txt\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.txt", cfg.Corpus)
	assert.Equal(t, "fonemas", cfg.Engine.Command)
	assert.Equal(t, 1, cfg.Engine.Exceptions)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Corpus = "x/corpus.txt"
	cfg.Engine.Epenthesis = true
	cfg.Run.Jobs = 8

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Corpus, loaded.Corpus)
	assert.Equal(t, cfg.Golden, loaded.Golden)
	assert.Equal(t, cfg.Engine.Command, loaded.Engine.Command)
	assert.True(t, loaded.Engine.Epenthesis)
	assert.Equal(t, 8, loaded.Run.Jobs)
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Mono = true
	cfg.Engine.Rehash = true

	opts := cfg.Options()
	assert.True(t, opts.Mono)
	assert.True(t, opts.Rehash)
	assert.Equal(t, 1, opts.Exceptions)
	assert.Equal(t, `"`, opts.Stress)
}

func TestLoadWithFallback_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus: explicit.txt\n"), 0o644))

	cfg, err := LoadWithFallback(path)
	require.NoError(t, err)
	assert.Equal(t, "explicit.txt", cfg.Corpus)
}

func TestLoadWithFallback_ExplicitMissingFails(t *testing.T) {
	_, err := LoadWithFallback(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

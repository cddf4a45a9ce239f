package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Solver.Workers)
	assert.Equal(t, 0.0, cfg.Solver.Heuristic)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balas.yaml")
	contents := "solver:\n  workers: 4\n  heuristic: 12.5\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Solver.Workers)
	assert.Equal(t, 12.5, cfg.Solver.Heuristic)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  workers: 2\n"), 0o644))

	t.Setenv("BALAS_SOLVER_WORKERS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Solver.Workers)
}

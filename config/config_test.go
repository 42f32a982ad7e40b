package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathview/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, config.DefaultGraph, cfg.Graph)
	assert.Equal(t, "0", cfg.Query.Start)
	assert.Equal(t, "5", cfg.Query.End)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoadAppliesDefaultsAndResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph: maps/city.hcl
lenient: true
watch: true
query:
  start: depot
output:
  dot: out/route.dot
log:
  format: json
metrics:
  addr: ":9090"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	assert.Equal(t, filepath.Join(dir, "maps", "city.hcl"), cfg.Graph)
	assert.Equal(t, filepath.Join(dir, "out", "route.dot"), cfg.Output.DOT)
	assert.True(t, cfg.Lenient)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "depot", cfg.Query.Start)
	assert.Equal(t, config.DefaultEnd, cfg.Query.End)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoadKeepsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "g.json")
	path := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph: "+abs+"\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Graph)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query: [\n"), 0o644))
	_, err = config.Load(path)
	require.Error(t, err)
}

func TestValidateAggregates(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "xml"
	cfg.Query.End = ""
	cfg.Log.Level = "trace"
	cfg.Log.Format = "logfmt"
	cfg.Metrics.Addr = "9090"

	err := config.Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"format:", "query.end:", "log.level:", "log.format:", "metrics.addr:"} {
		assert.Contains(t, msg, want)
	}
	assert.NotContains(t, msg, "query.start:")
}

func TestValidateMetricsRequireWatch(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Addr = "127.0.0.1:9090"

	err := config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics.addr: requires watch")

	cfg.Watch = true
	require.NoError(t, config.Validate(cfg))
}

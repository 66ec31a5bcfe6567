package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/lambdadb/pkg/errors"
	"github.com/ajitpratap0/lambdadb/pkg/testutil"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "text", cfg.Render.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := testutil.WriteFile(t, "lambdadb.yaml", `
log:
  level: debug
  encoding: json
render:
  format: json
metrics:
  enabled: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "json", cfg.Render.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LAMBDADB_LOG_LEVEL", "error")
	t.Setenv("LAMBDADB_TRACING_ENABLED", "true")

	path := testutil.WriteFile(t, "lambdadb.yaml", "log:\n  level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoadIgnoresCase(t *testing.T) {
	t.Setenv("LAMBDADB_RENDER_FORMAT", "JSON")

	path := testutil.WriteFile(t, "lambdadb.yaml", "log:\n  level: Debug\n  encoding: CONSOLE\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Render.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad encoding", "log:\n  encoding: xml\n", "log.encoding"},
		{"bad format", "render:\n  format: csv\n", "render.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(testutil.WriteFile(t, "lambdadb.yaml", tt.content))
			var e *errors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, errors.ErrorTypeConfig, e.Type)
			assert.Equal(t, tt.field, e.Details[errors.DetailField])
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestLoggerConfig(t *testing.T) {
	lc := LogConfig{Level: "debug", Encoding: "console", Development: true}.LoggerConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "console", lc.Encoding)
	assert.True(t, lc.Development)
	assert.Equal(t, []string{"stderr"}, lc.OutputPaths)
}

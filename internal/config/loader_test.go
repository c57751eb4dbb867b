package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kompetencia.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, config.FormatHTML, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1400, cfg.PNGWidth)
	assert.Equal(t, 950, cfg.PNGHeight)
	assert.Equal(t, 2.0, cfg.PNGScale)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.Equal(t, "Személyes és társas kompetencia", cfg.TitlePrefix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KOMPETENCIA_FORMAT", "png")
	t.Setenv("KOMPETENCIA_PNG_WIDTH", "800")
	t.Setenv("KOMPETENCIA_LOG_LEVEL", "debug")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, config.FormatPNG, cfg.Format)
	assert.Equal(t, 800, cfg.PNGWidth)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfigFile(t, `
format: png
png_height: 600
render_timeout: 5s
footer_text: "Teszt iskola"
`)
	t.Setenv(config.EnvConfigFile, path)
	t.Setenv("KOMPETENCIA_PNG_HEIGHT", "700")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, config.FormatPNG, cfg.Format)
	assert.Equal(t, 700, cfg.PNGHeight)
	assert.Equal(t, 5*time.Second, cfg.RenderTimeout)
	assert.Equal(t, "Teszt iskola", cfg.FooterText)
	assert.Equal(t, 1400, cfg.PNGWidth)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(config.EnvConfigFile, filepath.Join(t.TempDir(), "nincs.yaml"))

	_, err := config.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadConfig)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown format", "KOMPETENCIA_FORMAT", "pdf"},
		{"zero width", "KOMPETENCIA_PNG_WIDTH", "0"},
		{"bad level", "KOMPETENCIA_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

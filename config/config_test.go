package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scriptor-ai/scriptor/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_TOKEN", "sk-test")

	path := writeConfig(t, `
origins:
  - http://localhost:8000

recognizers:
  vision:
    type: openai
    url: http://localhost:9999/v1/
    token: ${TEST_TOKEN}
    model: gpt-4o
    timeout: 30s
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, []string{"http://localhost:8000"}, cfg.Origins)

	require.True(t, cfg.RecognizerConfigured())

	client, err := cfg.Recognizer("vision")
	require.NoError(t, err)
	require.NotNil(t, client)

	fallback, err := cfg.Recognizer("")
	require.NoError(t, err)
	require.Equal(t, client, fallback)

	_, err = cfg.Recognizer("missing")
	require.Error(t, err)
}

func TestParseDefaultOrigins(t *testing.T) {
	path := writeConfig(t, `
recognizers:
  vision:
    type: openai
    model: gpt-4o
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Origins)
}

func TestParseUnknownField(t *testing.T) {
	path := writeConfig(t, `
recognizers: {}
databases: {}
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseInvalidType(t *testing.T) {
	path := writeConfig(t, `
recognizers:
  vision:
    type: tesseract
    model: eng
`)

	_, err := config.Parse(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid recognizer type")
}

func TestNew(t *testing.T) {
	cfg := config.New()

	require.Equal(t, ":8080", cfg.Address)
	require.False(t, cfg.RecognizerConfigured())

	_, err := cfg.Recognizer("")
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.Kakao.APIKey)
	assert.False(t, cfg.Home.IsSet())
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepquest.toml")
	body := `
db_path = "/tmp/sq.db"

[log]
level = "debug"
development = true

[kakao]
api_key = "kakao-key"
base_url = "http://localhost:9999"

[ai]
api_key = "genai-key"
model = "gemini-2.0-flash"

[home]
latitude = 37.5665
longitude = 126.978
address = "서울 중구"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sq.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "kakao-key", cfg.Kakao.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.Kakao.BaseURL)
	assert.Equal(t, "genai-key", cfg.AI.APIKey)
	assert.True(t, cfg.Home.IsSet())
	assert.Equal(t, "서울 중구", cfg.Home.Address)
}

func TestLoadPartialFileKeepsLevelDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepquest.toml")
	require.NoError(t, os.WriteFile(path, []byte(`db_path = "/tmp/x.db"`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepquest.toml")
	require.NoError(t, os.WriteFile(path, []byte(`db_path = [broken`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger(LogConfig{Level: "nope"})
	require.Error(t, err)
}

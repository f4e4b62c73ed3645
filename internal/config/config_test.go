package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, dir, name string, values map[string]any) {
	t.Helper()
	data, err := yaml.Marshal(values)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8460", cfg.Port)
	assert.Equal(t, "gamer_forum", cfg.DBName)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfig_ProfileOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yml", map[string]any{
		"APP_ENV": "test",
	})
	writeConfigFile(t, dir, "config.test.yml", map[string]any{
		"DB_NAME": "gamer_forum_test",
		"PORT":    "9001",
	})

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gamer_forum_test", cfg.DBName)
	assert.Equal(t, "9001", cfg.Port)
}

func TestLoadConfig_MissingProfileFails(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yml", map[string]any{
		"APP_ENV": "staging",
	})

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestValidate_Production(t *testing.T) {
	cfg := &Config{
		Port:      "8460",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "production",
	}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-sufficiently-long-production-secret-value"
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())

	cfg.DBPassword = "str0ng-and-unique"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Port = "8460"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "dev-secret"
	assert.NoError(t, cfg.Validate())
}

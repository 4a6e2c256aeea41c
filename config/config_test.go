package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nosuch.yml"))
	assert.Equal(t, 5000, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
}

func TestLoadConfig_FromYaml(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "xmlcatalog.yml")
	content := `
system:
  appid: xmlcatalog
  location: UTC
  workdir: /tmp/xmlcatalog
web:
  host: 127.0.0.1
  port: 8080
database:
  type: sqlite
  name: catalog
logger:
  mode: development
  file_enable: false
`
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.False(t, cfg.Logger.FileEnable)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("XMLCATALOG_WEB_PORT", "6000")
	t.Setenv("XMLCATALOG_DB_TYPE", "sqlite")
	t.Setenv("XMLCATALOG_DB_DEBUG", "on")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "nosuch.yml"))
	assert.Equal(t, 6000, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.True(t, cfg.Database.Debug)
}

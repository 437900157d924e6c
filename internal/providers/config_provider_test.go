package providers

import (
	"os"
	"path/filepath"
	"presence/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
webServer:
  host: 127.0.0.1
  port: 5000
logger:
  level: info
  mode: 0644
  dir: /tmp
data:
  csv: /tmp/sample_data.csv
  xml: /tmp/users.xml
  remoteXml: http://example.com/users.xml
cache:
  ttl: 30s
  responseCache: true
  responseCacheSize: 4
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_ReadsFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "PresenceAnalyzer", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, 5000, conf.WebServer.Port)
	assert.Equal(t, "/tmp/sample_data.csv", conf.Data.CsvPath)
	assert.Equal(t, "/tmp/users.xml", conf.Data.XmlPath)
	assert.Equal(t, "http://example.com/users.xml", conf.Data.RemoteXml)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.True(t, conf.Cache.ResponseCache)
	assert.Equal(t, defaultFetchTimeout, conf.Fetch.Timeout)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("PRESENCE_DATA_CSV", "/data/other.csv")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "/data/other.csv", conf.Data.CsvPath)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: "/nonexistent/config.yaml"})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "webServer:\n  host: ''\n")
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonUnmarshal(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_base_url": "http://portal:9090",
		"request_timeout": "30s",
		"state_db_path": "/tmp/state.db"
	}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://portal:9090", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/state.db", cfg.StateDBPath)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"server_base_url": "http://portal:9090"}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://portal:9090", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "careerdesk.db", cfg.StateDBPath)
}

func TestParseJson_NoFlag_NoOp(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
}

func TestParseJson_MalformedFile_Panics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, jsonUnmarshal(`{"request_timeout": "45s"}`, &jc))
	assert.Equal(t, 45*time.Second, jc.RequestTimeout.Duration)

	require.NoError(t, jsonUnmarshal(`{"request_timeout": 1000000000}`, &jc))
	assert.Equal(t, time.Second, jc.RequestTimeout.Duration)

	assert.Error(t, jsonUnmarshal(`{"request_timeout": "not-a-duration"}`, &jc))
	assert.Error(t, jsonUnmarshal(`{"request_timeout": true}`, &jc))
}

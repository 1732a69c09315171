package providers

import (
	"os"
	"path/filepath"
	"testing"
	"ticketcounter/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigProvider_DefaultsWhenFileMissing(t *testing.T) {
	flags := &structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "config.yaml")}

	conf, err := NewConfigProvider(flags)
	require.NoError(t, err)
	assert.Equal(t, 15, conf.Goals.Messages)
	assert.Equal(t, 8, conf.Goals.Conversations)
	assert.Equal(t, "support_tracker.json", conf.Persistence.FilePath)
	assert.Equal(t, "support_activity_report_{start}_to_{end}.csv", conf.Export.PathTemplate)
	assert.Equal(t, "warn", conf.Logger.Level)
	assert.Equal(t, uint32(0644), conf.Logger.Mode)
	assert.False(t, conf.Metrics.Enabled)
	assert.Equal(t, AppName, conf.AppName)
}

func TestNewConfigProvider_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `goals:
  messages: 20
  conversations: 5
persistence:
  filePath: /data/tracker.json
  archiveDir: /data/archive
export:
  pathTemplate: /data/reports/{start}_{end}.csv
logger:
  level: info
  dir: ` + dir + `
metrics:
  enabled: true
  textfile: /var/lib/node_exporter/ticketcounter.prom
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, 20, conf.Goals.Messages)
	assert.Equal(t, 5, conf.Goals.Conversations)
	assert.Equal(t, "/data/tracker.json", conf.Persistence.FilePath)
	assert.Equal(t, "/data/archive", conf.Persistence.ArchiveDir)
	assert.Equal(t, "/data/reports/{start}_{end}.csv", conf.Export.PathTemplate)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.Equal(t, dir, conf.Logger.Dir)
	assert.True(t, conf.Metrics.Enabled)
	assert.Equal(t, path, conf.Path)
}

func TestNewConfigProvider_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goals:\n  messages: 0\n"), 0644))

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goals: [unclosed\n"), 0644))

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_DebugForcesLevel(t *testing.T) {
	flags := &structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "none.yaml"), DebugMode: true}
	conf, err := NewConfigProvider(flags)
	require.NoError(t, err)
	assert.True(t, conf.Debug)
	assert.Equal(t, "debug", conf.Logger.Level)
}

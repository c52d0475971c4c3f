package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DataSourceMemory, cfg.DataSource.Type)
	assert.Equal(t, uint(1), cfg.Auth.DefaultUserID)
	assert.Equal(t, DefaultDesignScore, cfg.SkillGraph.DesignScore)
	assert.Equal(t, DefaultRadar(), cfg.SkillGraph.Radar)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
data_source:
  type: mysql
database:
  host: db
  port: 3307
  dbname: graph
cache:
  enabled: true
  ttl_seconds: 5
skill_graph:
  design_score: 70
  radar:
    - { subject: Research, score: 80 }
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DataSourceMySQL, cfg.DataSource.Type)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, int64(5), int64(cfg.Cache.TTL().Seconds()))
	assert.Equal(t, 70, cfg.SkillGraph.DesignScore)
	require.Len(t, cfg.SkillGraph.Radar, 1)
	assert.Equal(t, RadarSubject{Subject: "Research", Score: 80, Max: 100}, cfg.SkillGraph.Radar[0])
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown data source",
			body: "data_source:\n  type: mongo\n",
		},
		{
			name: "radar score above max",
			body: "skill_graph:\n  radar:\n    - { subject: Research, score: 120, max: 100 }\n",
		},
		{
			name: "short secret in release mode",
			body: "server:\n  mode: release\njwt:\n  secret: short\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

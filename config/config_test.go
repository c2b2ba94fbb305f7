package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevSystem)
	assert.Equal(t, "test.db", cfg.Database.Path)
	assert.Equal(t, "select * from table1", cfg.Database.ProbeQuery)
	assert.Equal(t, []string{"Q1"}, cfg.Database.ProbeQuestions)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, "public", cfg.Static.Dir)
	assert.Equal(t, "assets/Test0.html", cfg.Static.LandingPage)
	assert.Equal(t, "http://localhost:7000", cfg.BaseURL())
	assert.Equal(t, "/", cfg.DocsBasePath())
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("IS_DEV_SYSTEM", "false")
	t.Setenv("DATABASE_PROBE_QUESTIONS", "Q1 Q5")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevSystem)
	assert.Equal(t, []string{"Q1", "Q5"}, cfg.Database.ProbeQuestions)
	assert.Equal(t, "https://kgrc4si.home.kg/score", cfg.BaseURL())
	assert.Equal(t, "/score", cfg.DocsBasePath())
}

func TestNewConfigRejectsEmptyPool(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "0")

	_, err := NewConfig()
	assert.Error(t, err)
}

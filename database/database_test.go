package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kgrc4si/ikgrcscore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{Database: config.Database{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 2,
	}}
}

func TestOpenConfiguresPool(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg.Database)
	require.NoError(t, err)
	defer func() { assert.NoError(t, Close(db)) }()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 2, sqlDB.Stats().MaxOpenConnections)

	var one int
	require.NoError(t, db.Raw("select 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestNewDatabaseLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	db, err := NewDatabase(lc, testConfig(t))
	require.NoError(t, err)

	require.NoError(t, lc.Start(context.Background()))
	require.NoError(t, lc.Stop(context.Background()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "pool must be closed after stop")
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade_queue/internal/config"
	"arcade_queue/internal/models"
)

func TestConnectDatabase_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.db")
	db, err := ConnectDatabase(config.Database{Driver: "sqlite", Path: path})
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Cabinet{}))
	assert.True(t, db.Migrator().HasTable("queue_items"))
	assert.NoError(t, Ping(context.Background(), db))
}

func TestConnectDatabase_UnknownDriver(t *testing.T) {
	_, err := ConnectDatabase(config.Database{Driver: "oracle"})
	assert.Error(t, err)
}

func TestForeignKeyCascade(t *testing.T) {
	db, err := ConnectDatabase(config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "fk.db")})
	require.NoError(t, err)

	cab := models.Cabinet{Name: "Galaga"}
	require.NoError(t, db.Create(&cab).Error)
	entry := models.QueueEntry{CabinetID: cab.ID, Type: models.EntryTypeSolo, Players: []string{"Alice"}, Position: 1}
	require.NoError(t, db.Create(&entry).Error)

	require.NoError(t, db.Delete(&models.Cabinet{}, cab.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.QueueEntry{}).Count(&count).Error)
	assert.Zero(t, count, "queue items must be removed with their cabinet")
}

func TestInitRedis(t *testing.T) {
	client, err := InitRedis(context.Background(), config.Redis{})
	assert.NoError(t, err)
	assert.Nil(t, client, "no address means no client")

	mr := miniredis.RunT(t)
	client, err = InitRedis(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()
	assert.NotNil(t, client)
}

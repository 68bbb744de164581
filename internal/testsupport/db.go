// Package testsupport holds shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"arcade_queue/internal/models"
	"arcade_queue/internal/storage"
)

// NewDB returns a migrated sqlite store in a temp dir, closed at cleanup.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queue.db")
	db, err := storage.OpenSQLite(path, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedCabinet inserts a cabinet directly, bypassing the service.
func SeedCabinet(t testing.TB, db *gorm.DB, name string) models.Cabinet {
	t.Helper()
	c := models.Cabinet{Name: name}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed cabinet %q: %v", name, err)
	}
	return c
}

// SeedEntry inserts an entry at an explicit position.
func SeedEntry(t testing.TB, db *gorm.DB, cabinetID uint, position int, players ...string) models.QueueEntry {
	t.Helper()
	typ := models.EntryTypeSolo
	if len(players) == 2 {
		typ = models.EntryTypeDuo
	}
	e := models.QueueEntry{
		CabinetID: cabinetID,
		Type:      typ,
		Players:   players,
		Position:  position,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed entry %v: %v", players, err)
	}
	return e
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salas-backend/models"
)

func openTestDB(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db
}

func TestMigrate_FreshDatabase(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "rooms.db"))
	require.NoError(t, Migrate(db))

	m := db.Migrator()
	assert.True(t, m.HasTable("room_names"))
	assert.True(t, m.HasTable("rooms"))
	for _, col := range []string{"unidade", "curso", "periodo", "disciplina", "docente"} {
		assert.True(t, m.HasColumn(&models.Room{}, col), "missing column %s", col)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.db")
	db := openTestDB(t, path)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	// Reopening the same file and migrating again must also be a no-op.
	db2 := openTestDB(t, path)
	require.NoError(t, Migrate(db2))
}

// A rooms.db created under the pre-metadata schema must gain the new
// columns without losing data.
func TestMigrate_UpgradesLegacySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.db")
	db := openTestDB(t, path)

	require.NoError(t, db.Exec(`
		CREATE TABLE room_names (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`).Error)
	require.NoError(t, db.Exec(`
		CREATE TABLE rooms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_name_id INTEGER NOT NULL,
			days TEXT NOT NULL,
			shift TEXT NOT NULL,
			status TEXT DEFAULT 'closed' NOT NULL,
			FOREIGN KEY (room_name_id) REFERENCES room_names(id)
		)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO room_names (name) VALUES ('Lab 1')`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO rooms (room_name_id, days, shift) VALUES (1, 'Segunda', 'matutino')`).Error)

	require.NoError(t, Migrate(db))

	for _, col := range []string{"unidade", "curso", "periodo", "disciplina", "docente"} {
		assert.True(t, db.Migrator().HasColumn(&models.Room{}, col), "missing column %s", col)
	}

	// The pre-existing row survived with its defaulted status.
	var room models.Room
	require.NoError(t, db.First(&room, 1).Error)
	assert.Equal(t, "Segunda", room.Days)
	assert.Equal(t, models.StatusClosed, room.Status)
	assert.Nil(t, room.Unidade)

	// And the new columns are writable.
	docente := "Prof. Silva"
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", 1).
		Update("docente", &docente).Error)
}

func TestSeedDemoData(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "rooms.db"))
	require.NoError(t, Migrate(db))

	SeedDemoData(db)
	var names, rooms int64
	db.Model(&models.RoomName{}).Count(&names)
	db.Model(&models.Room{}).Count(&rooms)
	assert.EqualValues(t, 3, names)
	assert.EqualValues(t, 3, rooms)

	// Second run must not duplicate.
	SeedDemoData(db)
	db.Model(&models.RoomName{}).Count(&names)
	assert.EqualValues(t, 3, names)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salas-backend/models"
)

func TestRoomNameCreate_TrimsBeforeStoring(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomNameService(db)

	rn, err := svc.Create("  Lab 1  ")
	require.NoError(t, err)
	assert.NotZero(t, rn.ID)
	assert.Equal(t, "Lab 1", rn.Name)
}

func TestRoomNameCreate_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomNameService(db)

	_, err := svc.Create("Lab 1")
	require.NoError(t, err)

	// Same trimmed name collides with the unique index.
	_, err = svc.Create(" Lab 1 ")
	assert.ErrorIs(t, err, ErrRoomNameTaken)

	var count int64
	db.Model(&models.RoomName{}).Count(&count)
	assert.EqualValues(t, 1, count, "exactly one row must exist after the conflict")
}

func TestRoomNameGetAll_OrderedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomNameService(db)

	for _, name := range []string{"Sala C", "Sala A", "Sala B"} {
		_, err := svc.Create(name)
		require.NoError(t, err)
	}

	names, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "Sala A", names[0].Name)
	assert.Equal(t, "Sala B", names[1].Name)
	assert.Equal(t, "Sala C", names[2].Name)
}

func TestRoomNameGetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomNameService(db)

	rn, err := svc.Create("Lab 1")
	require.NoError(t, err)

	got, err := svc.GetByID(rn.ID)
	require.NoError(t, err)
	assert.Equal(t, rn.Name, got.Name)

	_, err = svc.GetByID(99)
	assert.ErrorIs(t, err, ErrRoomNameNotFound)
}

package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade_queue/internal/models"
)

func entry(id uint, pos int, players ...string) models.QueueEntry {
	return models.QueueEntry{ID: id, Position: pos, Players: players}
}

func TestDerive_Empty(t *testing.T) {
	s := Derive(nil)
	assert.Nil(t, s.Current)
	assert.NotNil(t, s.Waiting)
	assert.Empty(t, s.Waiting)
}

func TestDerive_SingleEntry(t *testing.T) {
	s := Derive([]models.QueueEntry{entry(1, 1, "Alice")})
	require.NotNil(t, s.Current)
	assert.Equal(t, uint(1), s.Current.ID)
	assert.Empty(t, s.Waiting)
}

func TestDerive_CurrentAndWaiting(t *testing.T) {
	s := Derive([]models.QueueEntry{
		entry(1, 1, "Alice"),
		entry(2, 2, "Bob", "Cara"),
		entry(3, 5, "Dan"),
	})
	require.NotNil(t, s.Current)
	assert.Equal(t, uint(1), s.Current.ID)
	require.Len(t, s.Waiting, 2)
	assert.Equal(t, uint(2), s.Waiting[0].ID)
	assert.Equal(t, uint(3), s.Waiting[1].ID)
}

func TestDerive_ResortsAndBreaksTiesByID(t *testing.T) {
	in := []models.QueueEntry{
		entry(7, 4, "late"),
		entry(5, 2, "tie-high-id"),
		entry(3, 2, "tie-low-id"),
	}
	s := Derive(in)
	require.NotNil(t, s.Current)
	assert.Equal(t, uint(3), s.Current.ID)
	assert.Equal(t, []uint{5, 7}, []uint{s.Waiting[0].ID, s.Waiting[1].ID})

	assert.Equal(t, uint(7), in[0].ID, "input must not be reordered in place")
}

func TestForCabinet(t *testing.T) {
	c := models.Cabinet{
		ID:   9,
		Name: "Pac-Man",
		QueueItems: []models.QueueEntry{
			entry(2, 2, "Bob", "Cara"),
			entry(1, 1, "Alice"),
		},
	}
	v := ForCabinet(c)
	assert.Equal(t, "Pac-Man", v.Name)
	require.Len(t, v.QueueItems, 2)
	assert.Equal(t, uint(1), v.QueueItems[0].ID)
	require.NotNil(t, v.CurrentSession)
	assert.Equal(t, "Alice", v.CurrentSession.PlayerNames())
	require.Len(t, v.WaitingQueue, 1)
	assert.Equal(t, "Bob & Cara", v.WaitingQueue[0].PlayerNames())

	empty := ForCabinet(models.Cabinet{ID: 1, Name: "Empty"})
	assert.NotNil(t, empty.QueueItems)
	assert.Nil(t, empty.CurrentSession)

	found, ok := Find([]CabinetView{empty, v}, 9)
	assert.True(t, ok)
	assert.Equal(t, "Pac-Man", found.Name)
	_, ok = Find(nil, 9)
	assert.False(t, ok)
}

// Package snapshot derives what a cabinet screen shows: who is playing now
// and who is waiting. It keeps no state of its own.
package snapshot

import (
	"sort"
	"time"

	"arcade_queue/internal/models"
)

type Snapshot struct {
	Current *models.QueueEntry  `json:"current_session"`
	Waiting []models.QueueEntry `json:"waiting_queue"`
}

// Derive splits a cabinet's entries into the current session (the smallest
// position) and the waiting queue. Entries arrive sorted by position; they
// are re-sorted by (position, id) anyway so equal positions, which a create
// racing a cycle can produce, still give one stable order.
func Derive(entries []models.QueueEntry) Snapshot {
	sorted := Sorted(entries)
	if len(sorted) == 0 {
		return Snapshot{Waiting: []models.QueueEntry{}}
	}
	current := sorted[0]
	return Snapshot{
		Current: &current,
		Waiting: sorted[1:],
	}
}

// Sorted returns a copy of entries in queue order.
func Sorted(entries []models.QueueEntry) []models.QueueEntry {
	out := make([]models.QueueEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CabinetView is a cabinet as served by GET /cabinets.
type CabinetView struct {
	ID             uint                `json:"id"`
	Name           string              `json:"name"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	QueueItems     []models.QueueEntry `json:"queue_items"`
	CurrentSession *models.QueueEntry  `json:"current_session"`
	WaitingQueue   []models.QueueEntry `json:"waiting_queue"`
}

func ForCabinet(c models.Cabinet) CabinetView {
	items := Sorted(c.QueueItems)
	snap := Derive(items)
	return CabinetView{
		ID:             c.ID,
		Name:           c.Name,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		QueueItems:     items,
		CurrentSession: snap.Current,
		WaitingQueue:   snap.Waiting,
	}
}

func ForCabinets(cabinets []models.Cabinet) []CabinetView {
	out := make([]CabinetView, 0, len(cabinets))
	for _, c := range cabinets {
		out = append(out, ForCabinet(c))
	}
	return out
}

// Find returns the view with the given id.
func Find(views []CabinetView, id uint) (CabinetView, bool) {
	for _, v := range views {
		if v.ID == id {
			return v, true
		}
	}
	return CabinetView{}, false
}

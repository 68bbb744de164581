package queue

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"arcade_queue/internal/models"
)

// Reorder puts the named entries into the front-to-back order given by
// newOrder. The entries keep the set of positions they held between them;
// those values are sorted and dealt out in newOrder's sequence. Entries not
// named keep their positions, and no position outside the named set is used.
//
// Callers are expected to pass the full waiting queue of cabinetID. Entries
// from other cabinets are not rejected; they take part in the redistribution
// like any other named entry.
//
// The read and the writes run in one transaction with the named rows locked,
// so concurrent reorders over the same entries serialize. An unknown id
// aborts the call before anything is written.
func (s *Service) Reorder(ctx context.Context, cabinetID uint, newOrder []uint) error {
	if len(newOrder) == 0 {
		return invalid("new_order", "is required")
	}
	seen := make(map[uint]struct{}, len(newOrder))
	for _, id := range newOrder {
		if _, dup := seen[id]; dup {
			return invalid("new_order", "entry %d is listed more than once", id)
		}
		seen[id] = struct{}{}
	}

	db := s.db.WithContext(ctx)
	exists, err := cabinetExists(db, cabinetID)
	if err != nil {
		return fmt.Errorf("look up cabinet %d: %w", cabinetID, err)
	}
	if !exists {
		return fmt.Errorf("%w: %d", ErrCabinetNotFound, cabinetID)
	}

	var touched []uint
	err = db.Transaction(func(tx *gorm.DB) error {
		var entries []models.QueueEntry
		// Lock in id order so two overlapping reorders cannot deadlock.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", newOrder).
			Order("id ASC").
			Find(&entries).Error; err != nil {
			return fmt.Errorf("load entries: %w", err)
		}

		current := make(map[uint]int, len(entries))
		for _, e := range entries {
			current[e.ID] = e.Position
		}
		for _, id := range newOrder {
			if _, ok := current[id]; !ok {
				return invalid("new_order", "queue entry %d does not exist", id)
			}
		}

		positions := redistribute(entries, newOrder)
		for i, id := range newOrder {
			if current[id] == positions[i] {
				continue
			}
			if err := tx.Model(&models.QueueEntry{}).
				Where("id = ?", id).
				Update("position", positions[i]).Error; err != nil {
				return fmt.Errorf("update entry %d: %w", id, err)
			}
		}

		touched = cabinetsOf(entries)
		return nil
	})
	if err != nil {
		if IsValidation(err) {
			return err
		}
		return fmt.Errorf("reorder cabinet %d: %w", cabinetID, err)
	}

	log.WithFields(log.Fields{"cabinet_id": cabinetID, "entries": len(newOrder)}).Info("queue reordered")
	s.notifier.Notify(ctx, EventReordered, touched...)
	return nil
}

// redistribute returns the sorted positions held by entries; index i is the
// new position of newOrder[i].
func redistribute(entries []models.QueueEntry, newOrder []uint) []int {
	positions := make([]int, 0, len(entries))
	for _, e := range entries {
		positions = append(positions, e.Position)
	}
	sort.Ints(positions)
	return positions[:len(newOrder)]
}

func cabinetsOf(entries []models.QueueEntry) []uint {
	seen := make(map[uint]struct{})
	var ids []uint
	for _, e := range entries {
		if _, ok := seen[e.CabinetID]; ok {
			continue
		}
		seen[e.CabinetID] = struct{}{}
		ids = append(ids, e.CabinetID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

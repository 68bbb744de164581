// Package queue owns cabinet queues: adding entries, ordering them by
// position and moving them around.
//
// Missing ids: DeleteEntry, DeleteCabinet, Cycle and Move treat an absent id as success,
// while RenameCabinet and UpdatePlayers return ErrNotFound. Reorder and
// CreateEntry reject unknown referenced ids with a ValidationError.
package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"arcade_queue/internal/models"
)

// Event kinds passed to the Notifier.
const (
	EventEntryCreated   = "entry_created"
	EventEntryUpdated   = "entry_updated"
	EventEntryDeleted   = "entry_deleted"
	EventEntryCycled    = "entry_cycled"
	EventEntryMoved     = "entry_moved"
	EventReordered      = "queue_reordered"
	EventCabinetChanged = "cabinet_changed"
	EventCabinetDeleted = "cabinet_deleted"
	EventQueuesReset    = "queues_reset"
)

// Notifier is told after every successful mutation which cabinets changed.
type Notifier interface {
	Notify(ctx context.Context, kind string, cabinetIDs ...uint)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, ...uint) {}

type Service struct {
	db       *gorm.DB
	notifier Notifier
}

// NewService returns a Service over db. A nil notifier discards events.
func NewService(db *gorm.DB, notifier Notifier) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{db: db, notifier: notifier}
}

type CreateEntryInput struct {
	CabinetID uint
	Type      models.EntryType
	Players   []string
}

// CreateEntry appends a new entry to the back of its cabinet's queue.
func (s *Service) CreateEntry(ctx context.Context, in CreateEntryInput) (*models.QueueEntry, error) {
	if !in.Type.Valid() {
		return nil, invalid("type", "must be %q or %q", models.EntryTypeSolo, models.EntryTypeDuo)
	}
	players, err := normalizePlayers(in.Type, in.Players)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	exists, err := cabinetExists(db, in.CabinetID)
	if err != nil {
		return nil, fmt.Errorf("look up cabinet %d: %w", in.CabinetID, err)
	}
	if !exists {
		return nil, invalid("cabinet_id", "cabinet %d does not exist", in.CabinetID)
	}

	maxPosition, err := maxPosition(db, in.CabinetID)
	if err != nil {
		return nil, err
	}

	entry := models.QueueEntry{
		CabinetID: in.CabinetID,
		Type:      in.Type,
		Players:   players,
		Position:  maxPosition + 1,
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	log.WithFields(log.Fields{"cabinet_id": entry.CabinetID, "entry_id": entry.ID, "position": entry.Position}).
		Info("queue entry created")
	s.notifier.Notify(ctx, EventEntryCreated, entry.CabinetID)
	return &entry, nil
}

// Cycle sends an entry to the back of its own cabinet's queue. A missing
// entry is not an error: it was most likely deleted by another operator.
func (s *Service) Cycle(ctx context.Context, entryID uint) error {
	db := s.db.WithContext(ctx)

	entry, err := findEntry(db, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		log.WithField("entry_id", entryID).Debug("cycle: entry gone, ignoring")
		return nil
	}

	maxPosition, err := maxPosition(db, entry.CabinetID)
	if err != nil {
		return err
	}
	if err := db.Model(entry).Update("position", maxPosition+1).Error; err != nil {
		return fmt.Errorf("cycle entry %d: %w", entryID, err)
	}

	s.notifier.Notify(ctx, EventEntryCycled, entry.CabinetID)
	return nil
}

// Move reassigns an entry to the back of another cabinet's queue. Like Cycle
// it quietly does nothing when the entry or the target cabinet is missing.
func (s *Service) Move(ctx context.Context, entryID, targetCabinetID uint) error {
	db := s.db.WithContext(ctx)

	entry, err := findEntry(db, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		log.WithField("entry_id", entryID).Debug("move: entry gone, ignoring")
		return nil
	}
	exists, err := cabinetExists(db, targetCabinetID)
	if err != nil {
		return fmt.Errorf("look up cabinet %d: %w", targetCabinetID, err)
	}
	if !exists {
		log.WithField("cabinet_id", targetCabinetID).Debug("move: target cabinet gone, ignoring")
		return nil
	}

	maxPosition, err := maxPosition(db, targetCabinetID)
	if err != nil {
		return err
	}
	from := entry.CabinetID
	if err := db.Model(entry).Updates(map[string]interface{}{
		"cabinet_id": targetCabinetID,
		"position":   maxPosition + 1,
	}).Error; err != nil {
		return fmt.Errorf("move entry %d: %w", entryID, err)
	}

	if from == targetCabinetID {
		s.notifier.Notify(ctx, EventEntryMoved, from)
	} else {
		s.notifier.Notify(ctx, EventEntryMoved, from, targetCabinetID)
	}
	return nil
}

// UpdatePlayers renames the players of an entry. The entry type is fixed, so
// the number of names must still match it.
func (s *Service) UpdatePlayers(ctx context.Context, entryID uint, players []string) (*models.QueueEntry, error) {
	db := s.db.WithContext(ctx)

	entry, err := findEntry(db, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %d", ErrEntryNotFound, entryID)
	}

	names, err := normalizePlayers(entry.Type, players)
	if err != nil {
		return nil, err
	}
	if err := db.Model(entry).Update("players", datatypes.JSONSlice[string](names)).Error; err != nil {
		return nil, fmt.Errorf("update entry %d: %w", entryID, err)
	}
	entry.Players = names

	s.notifier.Notify(ctx, EventEntryUpdated, entry.CabinetID)
	return entry, nil
}

// DeleteEntry removes an entry. Deleting an absent id succeeds.
func (s *Service) DeleteEntry(ctx context.Context, entryID uint) error {
	db := s.db.WithContext(ctx)

	entry, err := findEntry(db, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	if err := db.Delete(&models.QueueEntry{}, entryID).Error; err != nil {
		return fmt.Errorf("delete entry %d: %w", entryID, err)
	}

	s.notifier.Notify(ctx, EventEntryDeleted, entry.CabinetID)
	return nil
}

// ListEntries returns every entry with its cabinet, in queue order.
func (s *Service) ListEntries(ctx context.Context) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	if err := s.db.WithContext(ctx).
		Preload("Cabinet").
		Order("position ASC").
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ResetAll empties every queue but keeps the cabinets.
func (s *Service) ResetAll(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.QueueEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("reset queues: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		s.notifier.Notify(ctx, EventQueuesReset)
	}
	return res.RowsAffected, nil
}

func normalizePlayers(t models.EntryType, players []string) ([]string, error) {
	want := t.PlayerCount()
	if len(players) != want {
		return nil, invalid("players", "%s entry needs %d player name(s), got %d", t, want, len(players))
	}
	out := make([]string, len(players))
	for i, p := range players {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, invalid("players", "player name %d is empty", i+1)
		}
		if utf8.RuneCountInString(p) > maxNameLength {
			return nil, invalid("players", "player name %d is longer than %d characters", i+1, maxNameLength)
		}
		out[i] = p
	}
	return out, nil
}

// findEntry returns nil, nil when the entry does not exist.
func findEntry(db *gorm.DB, id uint) (*models.QueueEntry, error) {
	var entry models.QueueEntry
	err := db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("look up entry %d: %w", id, err)
	}
	return &entry, nil
}

func maxPosition(db *gorm.DB, cabinetID uint) (int, error) {
	var max int
	err := db.Model(&models.QueueEntry{}).
		Where("cabinet_id = ?", cabinetID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("max position for cabinet %d: %w", cabinetID, err)
	}
	return max, nil
}

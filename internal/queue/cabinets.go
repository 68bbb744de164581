package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"arcade_queue/internal/models"
)

const maxNameLength = 255

// ListCabinets returns all cabinets with their entries in queue order.
func (s *Service) ListCabinets(ctx context.Context) ([]models.Cabinet, error) {
	var cabinets []models.Cabinet
	if err := s.db.WithContext(ctx).
		Preload("QueueItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		Order("id ASC").
		Find(&cabinets).Error; err != nil {
		return nil, fmt.Errorf("list cabinets: %w", err)
	}
	return cabinets, nil
}

func (s *Service) CreateCabinet(ctx context.Context, name string) (*models.Cabinet, error) {
	name, err := normalizeCabinetName(name)
	if err != nil {
		return nil, err
	}
	cabinet := models.Cabinet{Name: name}
	if err := s.db.WithContext(ctx).Create(&cabinet).Error; err != nil {
		return nil, fmt.Errorf("create cabinet: %w", err)
	}
	log.WithFields(log.Fields{"cabinet_id": cabinet.ID, "name": cabinet.Name}).Info("cabinet created")
	s.notifier.Notify(ctx, EventCabinetChanged, cabinet.ID)
	return &cabinet, nil
}

// RenameCabinet returns ErrCabinetNotFound when id does not exist.
func (s *Service) RenameCabinet(ctx context.Context, id uint, name string) (*models.Cabinet, error) {
	name, err := normalizeCabinetName(name)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var cabinet models.Cabinet
	if err := db.First(&cabinet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCabinetNotFound, id)
		}
		return nil, fmt.Errorf("look up cabinet %d: %w", id, err)
	}
	if err := db.Model(&cabinet).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("rename cabinet %d: %w", id, err)
	}
	cabinet.Name = name

	s.notifier.Notify(ctx, EventCabinetChanged, cabinet.ID)
	return &cabinet, nil
}

// DeleteCabinet removes a cabinet and every entry queued on it. The entries
// are deleted explicitly so the cascade holds even where the store does not
// enforce foreign keys.
func (s *Service) DeleteCabinet(ctx context.Context, id uint) error {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cabinet_id = ?", id).Delete(&models.QueueEntry{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Cabinet{}, id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return fmt.Errorf("delete cabinet %d: %w", id, err)
	}
	if deleted > 0 {
		log.WithField("cabinet_id", id).Info("cabinet deleted")
		s.notifier.Notify(ctx, EventCabinetDeleted, id)
	}
	return nil
}

func normalizeCabinetName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", invalid("name", "must be at most %d characters", maxNameLength)
	}
	return name, nil
}

func cabinetExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Cabinet{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

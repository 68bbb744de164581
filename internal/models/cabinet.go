package models

import "time"

type Cabinet struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	Name       string       `gorm:"size:255;not null" json:"name"`
	QueueItems []QueueEntry `gorm:"foreignKey:CabinetID;constraint:OnDelete:CASCADE" json:"queue_items,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// All lists every model managed by AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{&Cabinet{}, &QueueEntry{}}
}

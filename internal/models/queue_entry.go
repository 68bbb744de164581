package models

import (
	"time"

	"gorm.io/datatypes"
)

// EntryType is the kind of queue entry: a single player or a pair.
type EntryType string

const (
	EntryTypeSolo EntryType = "solo"
	EntryTypeDuo  EntryType = "duo"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == EntryTypeSolo || t == EntryTypeDuo
}

// PlayerCount returns how many player names an entry of type t carries.
func (t EntryType) PlayerCount() int {
	switch t {
	case EntryTypeSolo:
		return 1
	case EntryTypeDuo:
		return 2
	default:
		return 0
	}
}

// QueueEntry is one slot in a cabinet's queue. Entries of a cabinet are
// ordered by Position ascending; the smallest one is the current session.
type QueueEntry struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	CabinetID uint                        `gorm:"index;not null" json:"cabinet_id"`
	Cabinet   *Cabinet                    `gorm:"foreignKey:CabinetID" json:"cabinet,omitempty"`
	Type      EntryType                   `gorm:"size:16;not null" json:"type"`
	Players   datatypes.JSONSlice[string] `gorm:"not null" json:"players"`
	Position  int                         `gorm:"index;not null;default:0" json:"position"` // relative order only, gaps allowed
	IsPlaying bool                        `gorm:"not null;default:false" json:"is_playing"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (QueueEntry) TableName() string {
	return "queue_items"
}

// PlayerNames joins the entry's players for display, e.g. "Bob & Cara".
func (e QueueEntry) PlayerNames() string {
	switch len(e.Players) {
	case 0:
		return ""
	case 1:
		return e.Players[0]
	default:
		out := e.Players[0]
		for _, p := range e.Players[1:] {
			out += " & " + p
		}
		return out
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Log is one exercise entry. UserID is a weak reference to User.ID: it is
// checked for existence when the log is written, not enforced by the store.
type Log struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"index;not null"`
	Description string    `gorm:"not null"`
	Duration    float64   `gorm:"not null"`
	Date        time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
}

func (l *Log) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

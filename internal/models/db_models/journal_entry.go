package db_models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry belongs to exactly one user. UserID is set at creation and
// never patched afterwards.
type JournalEntry struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Date    time.Time `gorm:"type:date;not null"`
	Title   string    `gorm:"size:100;not null"`
	Content string    `gorm:"type:text;not null"`
}

package db_models

import "github.com/google/uuid"

type BucketListItem struct {
	BaseModel
	// Position is a database-assigned serial. CreatedAt only has second
	// resolution, so it alone cannot order items inserted back to back.
	Position    int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Completed   bool      `gorm:"default:false"`
}

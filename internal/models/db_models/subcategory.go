package db_models

import "github.com/google/uuid"

// Subcategory type tags. Rows with any other tag are kept in the table but
// never shown in a grouped destination view.
const (
	SubcategoryTypeCafe    = "cafe"
	SubcategoryTypeHotel   = "hotel"
	SubcategoryTypeTourist = "tourist_destination"
)

type Subcategory struct {
	BaseModel
	DestinationID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name          string    `gorm:"size:100;not null"`
	Type          string    `gorm:"size:50;not null"`
	Description   string    `gorm:"type:text"`
	ImageURL      string    `gorm:"size:500"`
}

package db_models

// Destination is catalog data, not tied to any user.
type Destination struct {
	BaseModel
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`
	Location    string `gorm:"size:100"`
	ImageURL    string `gorm:"size:500"`

	Subcategories []Subcategory `gorm:"foreignKey:DestinationID"`
}

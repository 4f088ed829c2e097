package db_models

// User is the credential record. PasswordHash never leaves this layer: it is
// excluded from JSON and no response model carries it. Verification goes
// through the account service only.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:80;not null"`
	Email        string `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`

	JournalEntries  []JournalEntry   `gorm:"foreignKey:UserID"`
	BucketListItems []BucketListItem `gorm:"foreignKey:UserID"`
}

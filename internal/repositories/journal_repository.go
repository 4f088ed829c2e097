package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "wanderlog/internal/models/db_models"
)

type JournalRepository interface {
	InsertTx(entry *dbm.JournalEntry, ctx context.Context) error
	FindById(ctx context.Context, entryId string) (*dbm.JournalEntry, error)
	ListByUserId(ctx context.Context, userId string) ([]dbm.JournalEntry, error)
	UpdateTx(entry *dbm.JournalEntry, ctx context.Context) error
	DeleteTx(entry *dbm.JournalEntry, ctx context.Context) error
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) InsertTx(entry *dbm.JournalEntry, ctx context.Context) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) FindById(ctx context.Context, entryId string) (*dbm.JournalEntry, error) {
	var entry dbm.JournalEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", entryId).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

// ListByUserId returns the owner's entries newest-date first.
func (r *journalRepository) ListByUserId(ctx context.Context, userId string) ([]dbm.JournalEntry, error) {
	var entries []dbm.JournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("date DESC").
		Find(&entries).Error

	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) UpdateTx(entry *dbm.JournalEntry, ctx context.Context) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) DeleteTx(entry *dbm.JournalEntry, ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(entry).Error
}

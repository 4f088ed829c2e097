package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "wanderlog/internal/models/db_models"
)

type BucketListRepository interface {
	InsertTx(item *dbm.BucketListItem, ctx context.Context) error
	FindById(ctx context.Context, itemId string) (*dbm.BucketListItem, error)
	ListByUserId(ctx context.Context, userId string) ([]dbm.BucketListItem, error)
	UpdateTx(item *dbm.BucketListItem, ctx context.Context) error
	DeleteTx(item *dbm.BucketListItem, ctx context.Context) error
}

type bucketListRepository struct {
	db *gorm.DB
}

func NewBucketListRepository(db *gorm.DB) BucketListRepository {
	return &bucketListRepository{db: db}
}

func (r *bucketListRepository) InsertTx(item *dbm.BucketListItem, ctx context.Context) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *bucketListRepository) FindById(ctx context.Context, itemId string) (*dbm.BucketListItem, error) {
	var item dbm.BucketListItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemId).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

// ListByUserId keeps insertion order. Ordering goes by the serial position
// column, not created_at, which ties for rows inserted in the same second.
func (r *bucketListRepository) ListByUserId(ctx context.Context, userId string) ([]dbm.BucketListItem, error) {
	var items []dbm.BucketListItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("position ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *bucketListRepository) UpdateTx(item *dbm.BucketListItem, ctx context.Context) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *bucketListRepository) DeleteTx(item *dbm.BucketListItem, ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wanderlog/internal/infra"
	dbm "wanderlog/internal/models/db_models"
)

type DestinationRepository interface {
	InsertTx(destination *dbm.Destination, ctx context.Context) error
	FindById(ctx context.Context, destinationId string) (*dbm.Destination, error)
	ListAll(ctx context.Context) ([]dbm.Destination, error)
	DeleteTx(destination *dbm.Destination, ctx context.Context) error
	CountAll(ctx context.Context) (int64, error)
	SeedTx(ctx context.Context, destinations []dbm.Destination) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) InsertTx(destination *dbm.Destination, ctx context.Context) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

// FindById loads the destination together with its subcategories so the
// service can partition them in one round trip.
func (r *destinationRepository) FindById(ctx context.Context, destinationId string) (*dbm.Destination, error) {
	var destination dbm.Destination
	err := r.db.WithContext(ctx).
		Preload("Subcategories").
		First(&destination, "id = ?", destinationId).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) ListAll(ctx context.Context) ([]dbm.Destination, error) {
	var destinations []dbm.Destination
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&destinations).Error

	if err != nil {
		return nil, err
	}

	return destinations, nil
}

func (r *destinationRepository) DeleteTx(destination *dbm.Destination, ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(destination).Error
}

func (r *destinationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbm.Destination{}).Count(&count).Error
	return count, err
}

// SeedTx inserts the fixture catalog in one transaction so a half-loaded
// catalog never becomes visible.
func (r *destinationRepository) SeedTx(ctx context.Context, destinations []dbm.Destination) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		infra.ReleaseTransaction(tx, err)
	}()

	for i := range destinations {
		if err = tx.Create(&destinations[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

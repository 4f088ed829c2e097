package services

import (
	"context"

	"github.com/google/uuid"
	"wanderlog/internal/models/db_models"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/models/response_models"
	"wanderlog/internal/repositories"
	"wanderlog/pkg/utils"
)

type BucketListServiceInterface interface {
	CreateItem(ctx context.Context, userId string, request request_models.AddBucketListItemRequest) (*response_models.BucketListItemResponse, error)
	ListItems(ctx context.Context, userId string) ([]response_models.BucketListItemResponse, error)
	UpdateItem(ctx context.Context, itemId string, userId string, request request_models.UpdateBucketListItemRequest) error
	DeleteItem(ctx context.Context, itemId string, userId string) error
}

type BucketListService struct {
	bucketListRepo repositories.BucketListRepository
}

func NewBucketListService(bucketListRepo repositories.BucketListRepository) BucketListServiceInterface {
	return &BucketListService{
		bucketListRepo: bucketListRepo,
	}
}

func (b *BucketListService) CreateItem(ctx context.Context, userId string, request request_models.AddBucketListItemRequest) (*response_models.BucketListItemResponse, error) {

	ownerID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	item := &db_models.BucketListItem{
		UserID:      ownerID,
		Title:       request.Title,
		Description: request.Description,
		Completed:   false,
	}

	if err := b.bucketListRepo.InsertTx(item, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := response_models.FromBucketListItem(*item)
	return &response, nil
}

func (b *BucketListService) ListItems(ctx context.Context, userId string) ([]response_models.BucketListItemResponse, error) {

	items, err := b.bucketListRepo.ListByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BucketListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, response_models.FromBucketListItem(item))
	}
	return out, nil
}

// UpdateItem takes one of two patch shapes, never both at once: a completed
// toggle leaves title and description alone, a title/description replacement
// leaves the flag alone.
func (b *BucketListService) UpdateItem(ctx context.Context, itemId string, userId string, request request_models.UpdateBucketListItemRequest) error {

	item, err := b.fetchOwned(ctx, itemId, userId)
	if err != nil {
		return err
	}

	if request.Completed != nil {
		if request.Title != nil || request.Description != nil {
			return utils.ErrInvalidInput
		}
		item.Completed = *request.Completed
	} else {
		if request.Title == nil || *request.Title == "" {
			return utils.ErrInvalidInput
		}
		item.Title = *request.Title
		if request.Description != nil {
			item.Description = *request.Description
		} else {
			item.Description = ""
		}
	}

	if err := b.bucketListRepo.UpdateTx(item, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BucketListService) DeleteItem(ctx context.Context, itemId string, userId string) error {

	item, err := b.fetchOwned(ctx, itemId, userId)
	if err != nil {
		return err
	}

	if err := b.bucketListRepo.DeleteTx(item, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BucketListService) fetchOwned(ctx context.Context, itemId string, userId string) (*db_models.BucketListItem, error) {
	if _, err := uuid.Parse(itemId); err != nil {
		return nil, utils.ErrItemNotFound
	}

	item, err := b.bucketListRepo.FindById(ctx, itemId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}
	if item.UserID.String() != userId {
		return nil, utils.ErrForbidden
	}
	return item, nil
}

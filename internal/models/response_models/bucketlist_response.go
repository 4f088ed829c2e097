package response_models

import "wanderlog/internal/models/db_models"

type BucketListItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func FromBucketListItem(item db_models.BucketListItem) BucketListItemResponse {
	return BucketListItemResponse{
		ID:          item.ID.String(),
		Title:       item.Title,
		Description: item.Description,
		Completed:   item.Completed,
	}
}

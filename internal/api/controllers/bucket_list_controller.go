package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type BucketListController struct {
	bucketListService services.BucketListServiceInterface
}

func NewBucketListController(bucketListService services.BucketListServiceInterface) *BucketListController {
	return &BucketListController{
		bucketListService: bucketListService,
	}
}

// ListItems godoc
// @Summary List bucket list items
// @Description Fetch the authenticated user's bucket list in insertion order
// @Tags BucketList
// @Produce json
// @Success 200 {array} response_models.BucketListItemResponse
// @Security BearerAuth
// @Router /bucketlist [get]
func (b *BucketListController) ListItems(c *gin.Context) {
	userId := c.GetString("user_id")

	items, err := b.bucketListService.ListItems(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Bucket list fetched successfully")
}

// AddItem godoc
// @Summary Add a bucket list item
// @Description Create an item with title and optional description, pending by default
// @Tags BucketList
// @Accept json
// @Produce json
// @Param request body request_models.AddBucketListItemRequest true "Item payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /add_bucket_list_item [post]
func (b *BucketListController) AddItem(c *gin.Context) {
	var req request_models.AddBucketListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	userId := c.GetString("user_id")

	item, err := b.bucketListService.CreateItem(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Bucket list item added")
}

// UpdateItem godoc
// @Summary Update a bucket list item
// @Description Either toggle the completed flag or replace title and description, never both
// @Tags BucketList
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body request_models.UpdateBucketListItemRequest true "Patch payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /update_bucket_list_item/{id} [post]
func (b *BucketListController) UpdateItem(c *gin.Context) {
	itemId := c.Param("id")
	if itemId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Item ID is required")
		return
	}

	var req request_models.UpdateBucketListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	if err := b.bucketListService.UpdateItem(c.Request.Context(), itemId, userId, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Bucket list item updated successfully")
}

// DeleteItem godoc
// @Summary Delete a bucket list item
// @Description Remove an item owned by the authenticated user
// @Tags BucketList
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /delete_bucket_list_item/{id} [post]
func (b *BucketListController) DeleteItem(c *gin.Context) {
	itemId := c.Param("id")
	if itemId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Item ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := b.bucketListService.DeleteItem(c.Request.Context(), itemId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Bucket list item deleted successfully")
}

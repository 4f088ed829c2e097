package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Description Fetch the destination catalog
// @Tags Destinations
// @Produce json
// @Success 200 {array} response_models.DestinationResponse
// @Security BearerAuth
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	destinations, err := d.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// GetDestination godoc
// @Summary Get destination details
// @Description Fetch a destination with its subcategories grouped into cafes, hotels and tourist spots
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response_models.DestinationDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destination/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	destinationId := c.Param("id")
	if destinationId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	detail, err := d.destinationService.GetDestinationDetail(c.Request.Context(), destinationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Destination details fetched successfully")
}

// CreateDestination godoc
// @Summary Add a destination
// @Description Create a catalog destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.CreateDestinationRequest true "Destination payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/destination [post]
func (d *DestinationController) CreateDestination(c *gin.Context) {
	var req request_models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and description are required")
		return
	}

	destination, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, destination, "Destination added successfully")
}

// DeleteDestination godoc
// @Summary Delete a destination
// @Description Remove a catalog destination by id
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/destination/{id} [delete]
func (d *DestinationController) DeleteDestination(c *gin.Context) {
	destinationId := c.Param("id")
	if destinationId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	if err := d.destinationService.DeleteDestination(c.Request.Context(), destinationId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination deleted successfully")
}

// SeedCatalog godoc
// @Summary Seed the catalog
// @Description Load the fixture destinations with their subcategories; a non-empty catalog is left as is
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /seed [get]
func (d *DestinationController) SeedCatalog(c *gin.Context) {
	if err := d.destinationService.SeedCatalog(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Seeded destinations")
}

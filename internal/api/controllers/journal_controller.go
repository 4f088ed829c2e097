package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type JournalController struct {
	journalService services.JournalServiceInterface
}

func NewJournalController(journalService services.JournalServiceInterface) *JournalController {
	return &JournalController{
		journalService: journalService,
	}
}

// ListEntries godoc
// @Summary List journal entries
// @Description Fetch the authenticated user's entries, newest date first
// @Tags Journal
// @Produce json
// @Success 200 {array} response_models.JournalEntryResponse
// @Security BearerAuth
// @Router /journal [get]
func (j *JournalController) ListEntries(c *gin.Context) {
	userId := c.GetString("user_id")

	entries, err := j.journalService.ListEntries(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Journal entries fetched successfully")
}

// AddEntry godoc
// @Summary Add a journal entry
// @Description Create an entry with date, title and content for the authenticated user
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.AddJournalEntryRequest true "Entry payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /add_journal_entry [post]
func (j *JournalController) AddEntry(c *gin.Context) {
	var req request_models.AddJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Date, title and content are required")
		return
	}

	userId := c.GetString("user_id")

	entry, err := j.journalService.CreateEntry(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Journal entry added successfully")
}

// EditEntry godoc
// @Summary Edit a journal entry
// @Description Replace date, title and content of an entry owned by the authenticated user
// @Tags Journal
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body request_models.EditJournalEntryRequest true "Entry payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /edit_journal_entry/{id} [post]
func (j *JournalController) EditEntry(c *gin.Context) {
	entryId := c.Param("id")
	if entryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	var req request_models.EditJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Date, title and content are required")
		return
	}

	userId := c.GetString("user_id")

	if err := j.journalService.UpdateEntry(c.Request.Context(), entryId, userId, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal entry updated successfully")
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Description Remove an entry owned by the authenticated user
// @Tags Journal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /delete_journal_entry/{id} [post]
func (j *JournalController) DeleteEntry(c *gin.Context) {
	entryId := c.Param("id")
	if entryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := j.journalService.DeleteEntry(c.Request.Context(), entryId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal entry deleted successfully")
}

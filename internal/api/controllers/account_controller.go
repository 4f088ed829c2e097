package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/models/response_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	sessionService services.SessionServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface, sessionService services.SessionServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
		sessionService: sessionService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account with username, email and password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Registration successful")
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and open a session
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Logged in successfully")
}

// Logout godoc
// @Summary Log out
// @Description Revoke the current session
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /logout [get]
func (a *AccountController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := a.sessionService.Revoke(token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out successfully")
}

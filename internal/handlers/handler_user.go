package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/middleware"
	s3platform "github.com/elitecrew/elite-crew-backend/internal/platform/s3"
)

// UserHandler handles requests on the authenticated user's own account.
type UserHandler struct {
	userService portssvc.UserSvcFacade
	s3Client    *s3platform.Client
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService portssvc.UserSvcFacade, s3Client *s3platform.Client) *UserHandler {
	return &UserHandler{userService: userService, s3Client: s3Client}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, s3Client *s3platform.Client) {
	h := NewUserHandler(userService, s3Client)

	me := rg.Group("/users/me")
	{
		me.GET("", h.GetMe)
		me.PUT("", h.UpdateProfile)
		me.DELETE("", h.DeleteMe)
		me.GET("/notifications", h.GetNotificationPreferences)
		me.PUT("/notifications", h.UpdateNotificationPreferences)
		me.GET("/export", h.ExportData)
	}
}

// GetMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Updates name, email and/or password; accepts an optional multipart profile image.
// @Tags users
// @Accept mpfd
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "profiles")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteMe godoc
// @Summary Delete own account
// @Description Removes the account. Order and ledger records are retained.
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// GetNotificationPreferences godoc
// @Summary Get notification preferences
// @Tags users
// @Produce json
// @Success 200 {object} domain.NotificationPreferences
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/notifications [get]
func (h *UserHandler) GetNotificationPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	prefs, err := h.userService.GetNotificationPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdateNotificationPreferences godoc
// @Summary Update notification preferences
// @Description Updates only the channels present in the body.
// @Tags users
// @Accept json
// @Produce json
// @Param preferences body dto.NotificationPreferencesRequest true "Preference changes"
// @Success 200 {object} domain.NotificationPreferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/notifications [put]
func (h *UserHandler) UpdateNotificationPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.NotificationPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	prefs, err := h.userService.UpdateNotificationPreferences(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// ExportData godoc
// @Summary Export own data
// @Description Returns profile, orders and wallet ledger as one JSON document.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserDataExport
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/export [get]
func (h *UserHandler) ExportData(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	export, err := h.userService.ExportUserData(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="account-export.json"`)
	c.JSON(http.StatusOK, export)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/shift-schedule-api/internal/dto"
	apierrors "github.com/yukikurage/shift-schedule-api/internal/errors"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/services"
)

// UserHandler serves registration and staff administration.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a user when the request carries the shared registration code.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		TelegramID string            `json:"telegram_id"`
		FirstName  string            `json:"first_name"`
		LastName   string            `json:"last_name"`
		Department models.Department `json:"department"`
		Position   string            `json:"position"`
		SecretCode string            `json:"secret_code"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		TelegramID: req.TelegramID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
		SecretCode: req.SecretCode,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    dto.ToUserDTO(*user),
	})
}

// ListUsers returns all users ordered by position and last name.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   dto.ToUserDTOs(users),
	})
}

// GetUser returns one user with its recent schedules.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.ToUserDetailDTO(*user),
	})
}

// ChangeDepartment moves a user to another department.
func (h *UserHandler) ChangeDepartment(c *gin.Context) {
	type ChangeDepartmentRequest struct {
		Department models.Department `json:"department" binding:"required"`
	}

	var req ChangeDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "department is required")
		return
	}

	user, err := h.userService.ChangeDepartment(c.Param("id"), req.Department)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.ToUserDTO(*user),
	})
}

// DeleteUser removes a user together with its schedules.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}

// ClearDatabase wipes every user and schedule.
func (h *UserHandler) ClearDatabase(c *gin.Context) {
	if err := h.userService.ClearDatabase(); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database cleared successfully",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingRegistrationFields),
		errors.Is(err, services.ErrInvalidDepartment):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidSecretCode):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTelegramIDTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, err.Error())
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadely/academia-api/internal/repository"
	appErrors "github.com/acadely/academia-api/pkg/errors"
	"github.com/acadely/academia-api/pkg/response"
)

// UserHandler exposes account management. All routes are admin-only.
type UserHandler struct {
	users *repository.UserRepository
}

// NewUserHandler creates a new handler.
func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every account. Password hashes are not serialized.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.AllUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, nil)
}

// Create registers a new account.
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=100"`
		Role     string `json:"role" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid user payload"))
		return
	}

	exists, err := h.users.Exists(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	if exists {
		response.Error(c, appErrors.Clone(appErrors.ErrConflict, "username already taken"))
		return
	}

	if err := h.users.CreateUser(c.Request.Context(), req.Username, req.Role, req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"username": req.Username, "role": req.Role})
}

// UpdateRole changes an account's role.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	username := c.Param("username")

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid role payload"))
		return
	}

	n, err := h.users.UpdateRole(c.Request.Context(), username, req.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	if n == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "user not found"))
		return
	}
	response.NoContent(c)
}

// Delete removes an account.
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")

	n, err := h.users.DeleteUser(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	if n == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "user not found"))
		return
	}
	response.NoContent(c)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadely/academia-api/internal/models"
	"github.com/acadely/academia-api/internal/service"
	appErrors "github.com/acadely/academia-api/pkg/errors"
	"github.com/acadely/academia-api/pkg/response"
)

// EnrollmentHandler wires HTTP endpoints to the enrollment service.
type EnrollmentHandler struct {
	service *service.EnrollmentService
}

// NewEnrollmentHandler creates a new handler.
func NewEnrollmentHandler(svc *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc}
}

type enrollRequest struct {
	Inscription models.Inscription `json:"inscription" binding:"required"`
	Payment     models.Payment     `json:"payment" binding:"required"`
}

// Enroll creates an inscription together with its first payment. Both rows
// are written in one transaction; a failure on either side leaves nothing
// behind.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}

	result, err := h.service.Enroll(c.Request.Context(), &req.Inscription, &req.Payment)
	if err != nil {
		if result != nil {
			response.JSON(c, http.StatusInternalServerError, result, nil)
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Get returns the inscription with its payments and totals.
func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bundle, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle, nil)
}

// Delete removes the inscription and its payments.
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "inscription not found"))
		return
	}
	response.NoContent(c)
}

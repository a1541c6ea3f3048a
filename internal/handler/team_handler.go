package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadely/academia-api/internal/models"
	"github.com/acadely/academia-api/internal/service"
	appErrors "github.com/acadely/academia-api/pkg/errors"
	"github.com/acadely/academia-api/pkg/response"
)

// TeamHandler wires HTTP endpoints to the team service.
type TeamHandler struct {
	service *service.TeamService
}

// NewTeamHandler creates a new handler.
func NewTeamHandler(svc *service.TeamService) *TeamHandler {
	return &TeamHandler{service: svc}
}

// Create stores a new team.
func (h *TeamHandler) Create(c *gin.Context) {
	var team models.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid team payload"))
		return
	}
	team.ID = 0

	if err := h.service.Create(c.Request.Context(), &team); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, team)
}

// Update replaces a team's state.
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var team models.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid team payload"))
		return
	}
	team.ID = id

	if err := h.service.Update(c.Request.Context(), &team); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, team, nil)
}

// Delete removes a team.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Get returns a single team.
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	team, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, team, nil)
}

// List returns all teams, optionally filtered.
//
// Query parameters: search (fuzzy name match), gender (exact), and
// min_age/max_age together (band overlap). Filters are mutually exclusive
// and checked in that order.
func (h *TeamHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if gender := c.Query("gender"); gender != "" {
		teams, err := h.service.ByGender(ctx, models.TeamGender(gender))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, teams, nil)
		return
	}

	if c.Query("min_age") != "" || c.Query("max_age") != "" {
		minAge, err1 := strconv.Atoi(c.DefaultQuery("min_age", "0"))
		maxAge, err2 := strconv.Atoi(c.DefaultQuery("max_age", "100"))
		if err1 != nil || err2 != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "min_age and max_age must be integers"))
			return
		}
		teams, err := h.service.Overlapping(ctx, minAge, maxAge)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, teams, nil)
		return
	}

	teams, err := h.service.List(ctx, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teams, nil)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid id"))
		return 0, false
	}
	return id, true
}

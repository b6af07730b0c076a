package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

// ActivityHandler serves the chore activity feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /v1/activity, the acting user's recent chore activity,
// newest first.
//
// @Summary      Recent chore activity for the current user
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 50)"
// @Success      200    {array}   domain.Activity
// @Failure      401    {object}  errorResponse
// @Router       /v1/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.service.RecentForActor(c.Request().Context(), actor.ID, limit)
	if err != nil {
		return err
	}

	if entries == nil {
		entries = []*domain.Activity{}
	}
	return c.JSON(http.StatusOK, entries)
}

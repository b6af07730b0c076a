package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/api/metrics"
	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

// ChoreHandler handles HTTP requests for chore operations.
type ChoreHandler struct {
	service ports.ChoreService
}

func NewChoreHandler(service ports.ChoreService) *ChoreHandler {
	return &ChoreHandler{service: service}
}

type createChoreRequest struct {
	ChildID      string `json:"child_id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	RewardAmount int    `json:"reward_amount" validate:"gte=0"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles POST /v1/chores.
//
// @Summary      Create a chore for a child
// @Tags         chores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChoreRequest  true  "Chore details"
// @Success      201   {object}  domain.Chore
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/chores [post]
func (h *ChoreHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createChoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	chore, err := h.service.CreateChore(c.Request().Context(), actor, ports.CreateChoreInput{
		ChildID:      req.ChildID,
		Title:        req.Title,
		Description:  req.Description,
		RewardAmount: req.RewardAmount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOnlyParentsCreate) {
			metrics.ForbiddenTotal.WithLabelValues("create_chore").Inc()
		}
		return err
	}

	metrics.ChoresCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, chore)
}

// UpdateStatus handles PATCH /v1/chores/:id/status.
//
// @Summary      Update a chore's status
// @Tags         chores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Chore id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Chore
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/chores/{id}/status [patch]
func (h *ChoreHandler) UpdateStatus(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	chore, err := h.service.UpdateChoreStatus(c.Request().Context(), actor, c.Param("id"), domain.ChoreStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrOnlyParentsUpdate) || errors.Is(err, domain.ErrNotChoreOwner) {
			metrics.ForbiddenTotal.WithLabelValues("update_status").Inc()
		}
		return err
	}

	metrics.ChoreStatusUpdatesTotal.WithLabelValues(string(chore.Status)).Inc()
	return c.JSON(http.StatusOK, chore)
}

// ListMine handles GET /v1/chores/mine, returning the chores assigned to the
// acting child.
//
// @Summary      List chores for the current child
// @Tags         chores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Chore
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/chores/mine [get]
func (h *ChoreHandler) ListMine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	chores, err := h.service.ListChoresForCurrentChild(c.Request().Context(), actor)
	if err != nil {
		if errors.Is(err, domain.ErrOnlyChildrenList) {
			metrics.ForbiddenTotal.WithLabelValues("list_chores").Inc()
		}
		return err
	}

	if chores == nil {
		chores = []*domain.Chore{}
	}
	return c.JSON(http.StatusOK, chores)
}

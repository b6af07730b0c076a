package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/api/metrics"
	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

// ChildHandler handles HTTP requests for child registration.
type ChildHandler struct {
	service ports.ChildService
}

func NewChildHandler(service ports.ChildService) *ChildHandler {
	return &ChildHandler{service: service}
}

type registerChildRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// Register handles POST /v1/children. It links a CHILD identity to the acting
// parent.
//
// @Summary      Register a child under the current parent
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerChildRequest  true  "Child identity to link"
// @Success      201   {object}  domain.Child
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/children [post]
func (h *ChildHandler) Register(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req registerChildRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	child, err := h.service.RegisterChild(c.Request().Context(), actor, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrOnlyParentsRegister) {
			metrics.ForbiddenTotal.WithLabelValues("register_child").Inc()
		}
		return err
	}

	return c.JSON(http.StatusCreated, child)
}

package rest

import (
	"context"
	"net/http"
	"strconv"

	"myMarketHub/domain"
	"myMarketHub/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	ActivityHandler struct {
		validate        *validator.Validate
		activityService ActivityService
	}

	ActivityService interface {
		LogEvent(ctx context.Context, event *domain.ActivityEvent) error
		GetHistory(ctx context.Context, userID uint, limit int) ([]domain.ActivityEvent, error)
	}

	LogActivityRequest struct {
		ProductID string         `json:"productId"`
		Action    string         `json:"action"`
		Type      string         `json:"type"`
		Context   map[string]any `json:"context"`
	}
)

func NewActivityHandler(activityService ActivityService) *ActivityHandler {
	return &ActivityHandler{
		validate:        validator.New(),
		activityService: activityService,
	}
}

// POST /api/v1/activity
func (h *ActivityHandler) LogActivity(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var request LogActivityRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	action := request.Action
	if action == "" {
		action = request.Type
	}
	if action == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "action or type is required"})
	}

	eventContext := datatypes.JSONMap{}
	for k, v := range request.Context {
		eventContext[k] = v
	}
	if request.Type != "" {
		eventContext["type"] = request.Type
	}

	event := &domain.ActivityEvent{
		UserID:    userID,
		ProductID: request.ProductID,
		Action:    action,
		Context:   eventContext,
	}

	if err := h.activityService.LogEvent(c.Request().Context(), event); err != nil {
		logger.Error("Failed to log activity event", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(event))
}

// GET /api/v1/activity?limit=200
func (h *ActivityHandler) GetHistory(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.activityService.GetHistory(c.Request().Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to get activity history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

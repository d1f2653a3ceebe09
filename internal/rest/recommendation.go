package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"myMarketHub/domain"
	"myMarketHub/pkg/logger"
	"myMarketHub/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recoService RecommendationService
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID string, limit int) ([]string, error)
		RecommendScored(ctx context.Context, userID string, limit int) ([]domain.ProductRecommendation, error)
	}

	RecommendQuery struct {
		N int `query:"n"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:    validator.New(),
		recoService: svc,
	}
}

// GET /api/v1/recommendations?n=10
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Invalid request query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.RecommendHTTPRequests.Inc()
	start := time.Now()

	productIDs, err := h.recoService.Recommend(
		c.Request().Context(),
		strconv.FormatUint(uint64(userID), 10),
		q.N,
	)

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Error("Failed to build recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(productIDs))
}

// GET /api/v1/recommendations/debug?n=10
func (h *RecommendationHandler) DebugRecommend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Invalid request query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	recs, err := h.recoService.RecommendScored(
		c.Request().Context(),
		strconv.FormatUint(uint64(userID), 10),
		q.N,
	)
	if err != nil {
		logger.Error("Failed to build scored recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

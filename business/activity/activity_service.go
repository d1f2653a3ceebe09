package activity

import (
	"context"
	"errors"
	"fmt"

	"myMarketHub/domain"
	"myMarketHub/pkg/logger"
)

// ActivityRepository contract interface
type ActivityRepository interface {
	SaveEvent(ctx context.Context, event *domain.ActivityEvent) error
	FindByUserID(ctx context.Context, userID uint, limit int) ([]domain.ActivityEvent, error)
}

type Service struct {
	activityRepo ActivityRepository
}

func NewService(activityRepo ActivityRepository) *Service {
	return &Service{activityRepo: activityRepo}
}

const defaultHistoryLimit = 200

// LogEvent stores one raw storefront action for a user. The label is
// stored verbatim; normalization happens at scoring time.
func (s *Service) LogEvent(ctx context.Context, event *domain.ActivityEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if event.Action == "" {
		return errors.New("action is required")
	}

	if err := s.activityRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("Failed to save activity event", err)
		return fmt.Errorf("failed to save activity event: %w", err)
	}

	return nil
}

// GetHistory returns the user's most recent activity events.
func (s *Service) GetHistory(ctx context.Context, userID uint, limit int) ([]domain.ActivityEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	events, err := s.activityRepo.FindByUserID(ctx, userID, limit)
	if err != nil {
		logger.Error("Failed to load activity history", err)
		return nil, fmt.Errorf("failed to load activity history: %w", err)
	}

	return events, nil
}

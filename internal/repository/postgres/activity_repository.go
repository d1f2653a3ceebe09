package postgres

import (
	"context"
	"fmt"
	"strconv"

	"myMarketHub/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) SaveEvent(ctx context.Context, event *domain.ActivityEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save activity event: %w", err)
	}

	return nil
}

func (r *ActivityRepository) FindByUserID(ctx context.Context, userID uint, limit int) ([]domain.ActivityEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.ActivityEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query activity_events: %w", err)
	}

	return events, nil
}

// FindRawActionsByUser adapts stored events into the raw-action shape
// the scorer consumes. A "type" key in the event context is surfaced as
// the fallback label field. Returns an empty slice, never nil.
func (r *ActivityRepository) FindRawActionsByUser(ctx context.Context, userID string) ([]domain.RawAction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	uid, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	var events []domain.ActivityEvent
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", uint(uid)).
		Order("created_at ASC").
		Find(&events).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to query activity_events: %w", err)
	}

	actions := make([]domain.RawAction, 0, len(events))
	for _, ev := range events {
		raw := domain.RawAction{
			ProductID: ev.ProductID,
			Action:    ev.Action,
		}
		if ev.Context != nil {
			if t, ok := ev.Context["type"].(string); ok {
				raw.Type = t
			}
		}
		actions = append(actions, raw)
	}

	return actions, nil
}

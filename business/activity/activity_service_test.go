package activity

import (
	"context"
	"testing"

	"myMarketHub/domain"
)

type fakeActivityRepo struct {
	saved  []domain.ActivityEvent
	events []domain.ActivityEvent
}

func (f *fakeActivityRepo) SaveEvent(_ context.Context, event *domain.ActivityEvent) error {
	f.saved = append(f.saved, *event)
	return nil
}

func (f *fakeActivityRepo) FindByUserID(_ context.Context, _ uint, limit int) ([]domain.ActivityEvent, error) {
	if len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func TestLogEventRequiresAction(t *testing.T) {
	svc := NewService(&fakeActivityRepo{})

	err := svc.LogEvent(context.Background(), &domain.ActivityEvent{UserID: 1, ProductID: "p1"})
	if err == nil {
		t.Fatal("expected error for missing action")
	}
}

func TestLogEventStoresVerbatimLabel(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewService(repo)

	event := &domain.ActivityEvent{UserID: 1, ProductID: "p1", Action: "SOME_CUSTOM_LABEL"}
	if err := svc.LogEvent(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.saved) != 1 || repo.saved[0].Action != "SOME_CUSTOM_LABEL" {
		t.Fatalf("label not stored verbatim: %+v", repo.saved)
	}
}

func TestGetHistoryDefaultLimit(t *testing.T) {
	repo := &fakeActivityRepo{}
	for i := 0; i < defaultHistoryLimit+50; i++ {
		repo.events = append(repo.events, domain.ActivityEvent{UserID: 1, ProductID: "p1", Action: "PRODUCT_VIEW"})
	}
	svc := NewService(repo)

	events, err := svc.GetHistory(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != defaultHistoryLimit {
		t.Fatalf("expected default limit %d, got %d", defaultHistoryLimit, len(events))
	}
}

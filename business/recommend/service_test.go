package recommend

import (
	"context"
	"errors"
	"testing"

	"myMarketHub/domain"
)

type fakeActivityRepo struct {
	actions []domain.RawAction
	err     error
	calls   int
}

func (f *fakeActivityRepo) FindRawActionsByUser(_ context.Context, _ string) ([]domain.RawAction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.actions, nil
}

type fakeCatalogRepo struct {
	products []domain.Product
	err      error
	calls    int
}

func (f *fakeCatalogRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func newTestService(activity *fakeActivityRepo, catalog *fakeCatalogRepo) *Service {
	cfg := DefaultConfig()
	cfg.Seed = 11
	return NewService(activity, catalog, cfg)
}

func TestRecommendEmptyActivityReturnsEmpty(t *testing.T) {
	activity := &fakeActivityRepo{}
	catalog := &fakeCatalogRepo{products: []domain.Product{{ProductID: "p1"}}}
	svc := newTestService(activity, catalog)

	got, err := svc.Recommend(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if catalog.calls != 0 {
		t.Fatal("catalog should not be read when activity is empty")
	}
}

func TestRecommendAllActionsMissingProductID(t *testing.T) {
	activity := &fakeActivityRepo{actions: []domain.RawAction{
		{Action: "PRODUCT_VIEW"},
		{Action: "PURCHASE"},
		{Action: "ADD_TO_CART"},
	}}
	catalog := &fakeCatalogRepo{products: []domain.Product{{ProductID: "p1"}}}
	svc := newTestService(activity, catalog)

	got, err := svc.Recommend(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

// A populated catalog alongside valid interactions must never trigger
// the empty-history exit.
func TestRecommendEmptyCatalogDoesNotExitEarly(t *testing.T) {
	activity := &fakeActivityRepo{actions: []domain.RawAction{
		{ProductID: "p1", Action: "PRODUCT_VIEW"},
		{ProductID: "p2", Action: "PURCHASE"},
	}}
	catalog := &fakeCatalogRepo{}
	svc := newTestService(activity, catalog)

	got, err := svc.Recommend(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", got)
	}
}

func TestRecommendScenarioTwoProducts(t *testing.T) {
	activity := &fakeActivityRepo{actions: []domain.RawAction{
		{ProductID: "p1", Action: "PRODUCT_VIEW"},
		{ProductID: "p2", Action: "PURCHASE"},
	}}
	catalog := &fakeCatalogRepo{products: []domain.Product{
		{ProductID: "p1"}, {ProductID: "p2"}, {ProductID: "p3"},
	}}
	svc := newTestService(activity, catalog)

	scored, err := svc.RecommendScored(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only products with interaction history are scored, never the
	// full catalog.
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored products, got %d", len(scored))
	}

	seen := map[string]bool{}
	for _, rec := range scored {
		seen[rec.ProductID] = true
	}
	if !seen["p1"] || !seen["p2"] {
		t.Fatalf("result %v is not a permutation of p1,p2", scored)
	}

	for i := 1; i < len(scored); i++ {
		if scored[i-1].Score < scored[i].Score {
			t.Fatalf("scores not descending: %v", scored)
		}
	}
}

func TestRecommendTopNBound(t *testing.T) {
	var actions []domain.RawAction
	for i := 0; i < 15; i++ {
		actions = append(actions, domain.RawAction{
			ProductID: string(rune('a' + i)),
			Action:    "PRODUCT_VIEW",
		})
	}
	activity := &fakeActivityRepo{actions: actions}
	svc := newTestService(activity, &fakeCatalogRepo{})

	got, err := svc.Recommend(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != DefaultConfig().TopN {
		t.Fatalf("expected top-%d truncation, got %d results", DefaultConfig().TopN, len(got))
	}

	got, err = svc.Recommend(context.Background(), "u1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
}

func TestRecommendUnknownLabelsAreScoredNotDropped(t *testing.T) {
	activity := &fakeActivityRepo{actions: []domain.RawAction{
		{ProductID: "p1", Action: "UNKNOWN_TYPE"},
	}}
	svc := newTestService(activity, &fakeCatalogRepo{})

	got, err := svc.Recommend(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "p1" {
		t.Fatalf("unknown-label interaction should still rank its product, got %v", got)
	}
}

func TestRecommendPropagatesRepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection refused")
	activity := &fakeActivityRepo{err: repoErr}
	svc := newTestService(activity, &fakeCatalogRepo{})

	_, err := svc.Recommend(context.Background(), "u1", 10)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(&fakeActivityRepo{}, &fakeCatalogRepo{})
	if _, err := svc.Recommend(ctx, "u1", 10); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

package recommend

import (
	"context"
	"fmt"
	"sort"

	"myMarketHub/domain"
	"myMarketHub/pkg/logger"
)

// ---- Repository interfaces ----

// ActivityRepository is the activity-log collaborator. Implementations
// return an empty slice, never nil, when the user has no recorded actions.
type ActivityRepository interface {
	FindRawActionsByUser(ctx context.Context, userID string) ([]domain.RawAction, error)
}

// CatalogRepository supplies the product catalog. Scoring only ranks
// products with interaction history; the catalog is passed through for
// interface compatibility only.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// ---- Service ----

type Service struct {
	activityRepo ActivityRepository
	catalogRepo  CatalogRepository
	cfg          Config
}

func NewService(activityRepo ActivityRepository, catalogRepo CatalogRepository, cfg Config) *Service {
	return &Service{
		activityRepo: activityRepo,
		catalogRepo:  catalogRepo,
		cfg:          cfg,
	}
}

// Recommend returns up to limit product ids ordered by descending
// predicted affinity, or an empty slice when the user has no usable
// interaction history.
func (s *Service) Recommend(ctx context.Context, userID string, limit int) ([]string, error) {
	scored, err := s.RecommendScored(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(scored))
	for _, rec := range scored {
		ids = append(ids, rec.ProductID)
	}
	return ids, nil
}

// RecommendScored is Recommend with scores attached, used by the debug
// endpoint.
//
// Pipeline: fetch activity -> preprocess -> early exit on empty ->
// index -> encode -> train -> score every known product -> rank.
// The model is scoped to this call; no state survives it.
func (s *Service) RecommendScored(ctx context.Context, userID string, limit int) ([]domain.ProductRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	RecommendRequestsTotal.Inc()

	if limit <= 0 || limit > s.cfg.TopN {
		limit = s.cfg.TopN
	}

	rawActions, err := s.activityRepo.FindRawActionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user activity: %w", err)
	}
	if len(rawActions) == 0 {
		RecommendEmptyHistoryTotal.Inc()
		return []domain.ProductRecommendation{}, nil
	}

	allProducts, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	processed := Normalize(rawActions, allProducts, userID)

	// The only correct early-exit guard is an empty interaction list.
	// The catalog passthrough has no say here.
	if len(processed.Interactions) == 0 {
		RecommendEmptyHistoryTotal.Inc()
		return []domain.ProductRecommendation{}, nil
	}

	users, products := buildIndexes(processed.Interactions)
	examples := encodeExamples(processed.Interactions, users, products)
	RecommendTrainingExamples.Observe(float64(len(examples)))

	model := newModel(users.Len(), products.Len(), s.cfg)
	loss := model.Train(examples)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend_scored",
		"trace_id", tid,
		"user_id", userID,
		"interactions", len(processed.Interactions),
		"user_count", users.Len(),
		"product_count", products.Len(),
		"final_loss", loss,
	)

	userIdx, ok := users.Lookup(userID)
	if !ok {
		// Unreachable: every interaction carries userID, so a non-empty
		// list always indexes the caller.
		return []domain.ProductRecommendation{}, nil
	}

	scored := make([]domain.ProductRecommendation, 0, products.Len())
	for pIdx := 0; pIdx < products.Len(); pIdx++ {
		scored = append(scored, domain.ProductRecommendation{
			ProductID: products.IDAt(pIdx),
			Score:     model.Score(userIdx, pIdx),
		})
	}

	// Descending by score; ties keep first-appearance order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored, nil
}

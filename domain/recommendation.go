package domain

type ProductRecommendation struct {
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
}

package recommend

// Canonical action labels after normalization.
const (
	ActionProductView   = "product_view"
	ActionPurchase      = "purchase"
	ActionAddToCart     = "add_to_cart"
	ActionAddToWishlist = "add_to_wishlist"
)

type Config struct {
	// EmbeddingDim is the latent vector size per user/product.
	EmbeddingDim int
	Epochs       int
	BatchSize    int
	TopN         int

	// Adam optimizer parameters.
	LearningRate float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64

	// InitScale bounds the uniform embedding initialization.
	InitScale float64

	// Seed makes training runs reproducible; 0 falls back to a
	// time-based seed.
	Seed int64
}

const (
	defaultEmbeddingDim = 50
	defaultEpochs       = 5
	defaultBatchSize    = 32
	defaultTopN         = 10
	defaultLearningRate = 0.001
	defaultBeta1        = 0.9
	defaultBeta2        = 0.999
	defaultEpsilon      = 1e-8
	defaultInitScale    = 0.05
)

func DefaultConfig() Config {
	return Config{
		EmbeddingDim: defaultEmbeddingDim,
		Epochs:       defaultEpochs,
		BatchSize:    defaultBatchSize,
		TopN:         defaultTopN,
		LearningRate: defaultLearningRate,
		Beta1:        defaultBeta1,
		Beta2:        defaultBeta2,
		Epsilon:      defaultEpsilon,
		InitScale:    defaultInitScale,
	}
}

// engagementWeight is the supervised training target for a canonical
// action label. Unknown labels contribute a zero target.
func engagementWeight(actionType string) float64 {
	switch actionType {
	case ActionProductView:
		return 0.1
	case ActionAddToCart:
		return 0.7
	case ActionAddToWishlist:
		return 0.5
	case ActionPurchase:
		return 1.0
	default:
		return 0.0
	}
}

package recommend

import (
	"myMarketHub/domain"
)

// Interaction is one normalized engagement record. UserID is always the
// caller-supplied id, never one embedded in the raw record.
type Interaction struct {
	UserID     string
	ProductID  string
	ActionType string
}

// PreprocessResult wraps the interaction list. Products is a catalog
// passthrough kept for interface compatibility with the catalog
// collaborator; scoring never reads it.
type PreprocessResult struct {
	Interactions []Interaction
	Products     []domain.Product
}

// rawLabel resolves the action label of a raw record: "action" wins,
// "type" is the fallback.
func rawLabel(raw domain.RawAction) string {
	if raw.Action != "" {
		return raw.Action
	}
	return raw.Type
}

// normalizeLabel maps a raw storefront label to its canonical form.
// Unknown labels pass through unchanged; they are kept as zero-weight
// signal rather than dropped.
func normalizeLabel(label string) string {
	switch label {
	case "PRODUCT_VIEW":
		return ActionProductView
	case "PURCHASE":
		return ActionPurchase
	case "ADD_TO_CART":
		return ActionAddToCart
	case "WISHLIST_ADD":
		return ActionAddToWishlist
	default:
		return label
	}
}

// Normalize turns untrusted raw actions into canonical interactions
// tagged with userID. Records without a product id are dropped.
// Duplicates are preserved; repetition is the model's frequency signal.
func Normalize(rawActions []domain.RawAction, products []domain.Product, userID string) PreprocessResult {
	interactions := make([]Interaction, 0, len(rawActions))

	for _, raw := range rawActions {
		if raw.ProductID == "" {
			continue
		}

		interactions = append(interactions, Interaction{
			UserID:     userID,
			ProductID:  raw.ProductID,
			ActionType: normalizeLabel(rawLabel(raw)),
		})
	}

	return PreprocessResult{
		Interactions: interactions,
		Products:     products,
	}
}

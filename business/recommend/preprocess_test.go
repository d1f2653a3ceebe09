package recommend

import (
	"testing"

	"myMarketHub/domain"
)

func TestNormalizeDropsRecordsWithoutProductID(t *testing.T) {
	raws := []domain.RawAction{
		{ProductID: "p1", Action: "PRODUCT_VIEW"},
		{Action: "PRODUCT_VIEW"},
		{ProductID: "", Action: "PURCHASE"},
	}

	got := Normalize(raws, nil, "u1")

	if len(got.Interactions) != 1 {
		t.Fatalf("expected 1 interaction, got %d", len(got.Interactions))
	}
	want := Interaction{UserID: "u1", ProductID: "p1", ActionType: ActionProductView}
	if got.Interactions[0] != want {
		t.Fatalf("interaction = %+v, want %+v", got.Interactions[0], want)
	}
}

func TestNormalizeLabelTable(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"PRODUCT_VIEW", ActionProductView},
		{"PURCHASE", ActionPurchase},
		{"ADD_TO_CART", ActionAddToCart},
		{"WISHLIST_ADD", ActionAddToWishlist},
		{"UNKNOWN_TYPE", "UNKNOWN_TYPE"},
		{"product_view", "product_view"},
	}

	for _, tc := range cases {
		got := Normalize([]domain.RawAction{{ProductID: "p1", Action: tc.raw}}, nil, "u1")
		if len(got.Interactions) != 1 {
			t.Fatalf("label %q: expected 1 interaction", tc.raw)
		}
		if got.Interactions[0].ActionType != tc.want {
			t.Errorf("label %q -> %q, want %q", tc.raw, got.Interactions[0].ActionType, tc.want)
		}
	}
}

func TestNormalizeActionFieldWinsOverType(t *testing.T) {
	raws := []domain.RawAction{
		{ProductID: "p1", Action: "PURCHASE", Type: "PRODUCT_VIEW"},
		{ProductID: "p2", Type: "ADD_TO_CART"},
	}

	got := Normalize(raws, nil, "u1")

	if got.Interactions[0].ActionType != ActionPurchase {
		t.Errorf("action should take precedence, got %q", got.Interactions[0].ActionType)
	}
	if got.Interactions[1].ActionType != ActionAddToCart {
		t.Errorf("type fallback failed, got %q", got.Interactions[1].ActionType)
	}
}

func TestNormalizeCallerUserIDWins(t *testing.T) {
	raws := []domain.RawAction{
		{ProductID: "p1", Action: "PRODUCT_VIEW"},
		{ProductID: "p2", Action: "PURCHASE"},
	}

	got := Normalize(raws, nil, "user-42")

	for i, it := range got.Interactions {
		if it.UserID != "user-42" {
			t.Errorf("interaction %d user id = %q, want user-42", i, it.UserID)
		}
	}
}

func TestNormalizeKeepsDuplicates(t *testing.T) {
	raws := []domain.RawAction{
		{ProductID: "p1", Action: "PRODUCT_VIEW"},
		{ProductID: "p1", Action: "PRODUCT_VIEW"},
		{ProductID: "p1", Action: "PURCHASE"},
	}

	got := Normalize(raws, nil, "u1")

	if len(got.Interactions) != 3 {
		t.Fatalf("duplicates must be preserved, got %d interactions", len(got.Interactions))
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	got := Normalize(nil, nil, "u1")
	if len(got.Interactions) != 0 {
		t.Fatalf("expected no interactions, got %d", len(got.Interactions))
	}
}

func TestNormalizeCatalogPassthrough(t *testing.T) {
	products := []domain.Product{{ProductID: "p9"}}
	got := Normalize(nil, products, "u1")

	if len(got.Products) != 1 || got.Products[0].ProductID != "p9" {
		t.Fatalf("catalog passthrough altered: %+v", got.Products)
	}
}

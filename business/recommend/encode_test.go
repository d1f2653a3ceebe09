package recommend

import "testing"

func TestEngagementWeightTable(t *testing.T) {
	cases := []struct {
		actionType string
		want       float64
	}{
		{ActionProductView, 0.1},
		{ActionAddToCart, 0.7},
		{ActionAddToWishlist, 0.5},
		{ActionPurchase, 1.0},
		{"UNKNOWN_TYPE", 0.0},
		{"", 0.0},
	}

	for _, tc := range cases {
		if got := engagementWeight(tc.actionType); got != tc.want {
			t.Errorf("engagementWeight(%q) = %v, want %v", tc.actionType, got, tc.want)
		}
	}
}

func TestEncodeExamplesOneToOne(t *testing.T) {
	interactions := []Interaction{
		{UserID: "u1", ProductID: "p1", ActionType: ActionProductView},
		{UserID: "u1", ProductID: "p2", ActionType: ActionPurchase},
		{UserID: "u1", ProductID: "p1", ActionType: ActionPurchase},
	}

	users, products := buildIndexes(interactions)
	examples := encodeExamples(interactions, users, products)

	if len(examples) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(examples))
	}

	want := []TrainingExample{
		{UserIndex: 0, ProductIndex: 0, Weight: 0.1},
		{UserIndex: 0, ProductIndex: 1, Weight: 1.0},
		{UserIndex: 0, ProductIndex: 0, Weight: 1.0},
	}
	for i := range want {
		if examples[i] != want[i] {
			t.Errorf("example %d = %+v, want %+v", i, examples[i], want[i])
		}
	}
}

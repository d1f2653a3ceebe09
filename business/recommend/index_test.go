package recommend

import "testing"

func TestBuildIndexesFirstOccurrenceOrder(t *testing.T) {
	interactions := []Interaction{
		{UserID: "u1", ProductID: "p2", ActionType: ActionProductView},
		{UserID: "u1", ProductID: "p1", ActionType: ActionPurchase},
		{UserID: "u2", ProductID: "p2", ActionType: ActionAddToCart},
		{UserID: "u1", ProductID: "p3", ActionType: ActionProductView},
	}

	users, products := buildIndexes(interactions)

	if users.Len() != 2 {
		t.Fatalf("user count = %d, want 2", users.Len())
	}
	if products.Len() != 3 {
		t.Fatalf("product count = %d, want 3", products.Len())
	}

	wantProducts := []string{"p2", "p1", "p3"}
	for i, id := range wantProducts {
		idx, ok := products.Lookup(id)
		if !ok || idx != i {
			t.Errorf("product %q index = %d (found %v), want %d", id, idx, ok, i)
		}
		if products.IDAt(i) != id {
			t.Errorf("IDAt(%d) = %q, want %q", i, products.IDAt(i), id)
		}
	}

	if idx, _ := users.Lookup("u1"); idx != 0 {
		t.Errorf("u1 index = %d, want 0", idx)
	}
	if idx, _ := users.Lookup("u2"); idx != 1 {
		t.Errorf("u2 index = %d, want 1", idx)
	}
}

func TestIdentifierIndexAddIsIdempotent(t *testing.T) {
	ix := newIdentifierIndex()

	first := ix.Add("p1")
	second := ix.Add("p1")

	if first != second {
		t.Fatalf("repeated Add returned %d then %d", first, second)
	}
	if ix.Len() != 1 {
		t.Fatalf("len = %d, want 1", ix.Len())
	}
}

package recommend

// identifierIndex maps raw string ids to dense zero-based integers in
// first-occurrence order. Built fresh per scoring call, discarded after.
type identifierIndex struct {
	byID  map[string]int
	order []string
}

func newIdentifierIndex() *identifierIndex {
	return &identifierIndex{byID: make(map[string]int)}
}

// Add returns the dense index for id, assigning the next one on first
// sight.
func (ix *identifierIndex) Add(id string) int {
	if idx, ok := ix.byID[id]; ok {
		return idx
	}
	idx := len(ix.order)
	ix.byID[id] = idx
	ix.order = append(ix.order, id)
	return idx
}

func (ix *identifierIndex) Lookup(id string) (int, bool) {
	idx, ok := ix.byID[id]
	return idx, ok
}

// IDAt returns the raw id for a dense index.
func (ix *identifierIndex) IDAt(idx int) string {
	return ix.order[idx]
}

func (ix *identifierIndex) Len() int {
	return len(ix.order)
}

// buildIndexes walks the interactions once and assigns dense user and
// product indexes independently.
func buildIndexes(interactions []Interaction) (users, products *identifierIndex) {
	users = newIdentifierIndex()
	products = newIdentifierIndex()

	for _, it := range interactions {
		users.Add(it.UserID)
		products.Add(it.ProductID)
	}

	return users, products
}

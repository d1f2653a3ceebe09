package recommend

// TrainingExample is one supervised triple derived from an interaction.
// Weight is the engagement target in [0,1].
type TrainingExample struct {
	UserIndex    int
	ProductIndex int
	Weight       float64
}

// encodeExamples maps interactions one-to-one onto training triples
// using the dense indexes and the engagement weight table.
func encodeExamples(interactions []Interaction, users, products *identifierIndex) []TrainingExample {
	examples := make([]TrainingExample, 0, len(interactions))

	for _, it := range interactions {
		uIdx, ok := users.Lookup(it.UserID)
		if !ok {
			continue
		}
		pIdx, ok := products.Lookup(it.ProductID)
		if !ok {
			continue
		}

		examples = append(examples, TrainingExample{
			UserIndex:    uIdx,
			ProductIndex: pIdx,
			Weight:       engagementWeight(it.ActionType),
		})
	}

	return examples
}

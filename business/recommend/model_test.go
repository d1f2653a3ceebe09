package recommend

import (
	"math"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	return cfg
}

func TestNewModelShapes(t *testing.T) {
	cfg := testConfig()
	m := newModel(1, 3, cfg)

	if len(m.userVecs) != 1 || len(m.prodVecs) != 3 {
		t.Fatalf("embedding table sizes = %d/%d, want 1/3", len(m.userVecs), len(m.prodVecs))
	}
	for _, vec := range m.prodVecs {
		if len(vec) != cfg.EmbeddingDim {
			t.Fatalf("embedding dim = %d, want %d", len(vec), cfg.EmbeddingDim)
		}
	}
}

func TestScoreIsAProbability(t *testing.T) {
	m := newModel(2, 5, testConfig())

	for u := 0; u < 2; u++ {
		for p := 0; p < 5; p++ {
			score := m.Score(u, p)
			if score <= 0 || score >= 1 || math.IsNaN(score) {
				t.Fatalf("Score(%d,%d) = %v, want a value in (0,1)", u, p, score)
			}
		}
	}
}

func TestTrainUpdatesParameters(t *testing.T) {
	m := newModel(1, 2, testConfig())
	before := m.Score(0, 0)

	examples := []TrainingExample{
		{UserIndex: 0, ProductIndex: 0, Weight: 1.0},
		{UserIndex: 0, ProductIndex: 1, Weight: 0.1},
	}
	loss := m.Train(examples)

	if loss <= 0 || math.IsNaN(loss) {
		t.Fatalf("final loss = %v, want a positive finite value", loss)
	}
	if m.Score(0, 0) == before {
		t.Fatal("training left the model unchanged")
	}
}

func TestTrainIsDeterministicForSeed(t *testing.T) {
	examples := []TrainingExample{
		{UserIndex: 0, ProductIndex: 0, Weight: 1.0},
		{UserIndex: 0, ProductIndex: 1, Weight: 0.7},
		{UserIndex: 0, ProductIndex: 2, Weight: 0.1},
		{UserIndex: 0, ProductIndex: 1, Weight: 0.0},
	}

	a := newModel(1, 3, testConfig())
	b := newModel(1, 3, testConfig())
	a.Train(examples)
	b.Train(examples)

	for p := 0; p < 3; p++ {
		if a.Score(0, p) != b.Score(0, p) {
			t.Fatalf("same seed diverged at product %d: %v vs %v", p, a.Score(0, p), b.Score(0, p))
		}
	}
}

func TestTrainEmptyExampleSet(t *testing.T) {
	m := newModel(1, 1, testConfig())
	if loss := m.Train(nil); loss != 0 {
		t.Fatalf("Train(nil) loss = %v, want 0", loss)
	}
}

func TestScoresRemainFiniteAfterTraining(t *testing.T) {
	cfg := testConfig()
	m := newModel(1, 4, cfg)

	// Heavily duplicated signal to push many optimizer steps.
	var examples []TrainingExample
	for i := 0; i < 200; i++ {
		examples = append(examples,
			TrainingExample{UserIndex: 0, ProductIndex: i % 4, Weight: engagementWeight(ActionPurchase)},
			TrainingExample{UserIndex: 0, ProductIndex: (i + 1) % 4, Weight: engagementWeight(ActionProductView)},
		)
	}
	m.Train(examples)

	for p := 0; p < 4; p++ {
		score := m.Score(0, p)
		if math.IsNaN(score) || math.IsInf(score, 0) || score <= 0 || score >= 1 {
			t.Fatalf("Score(0,%d) = %v after training", p, score)
		}
	}
}

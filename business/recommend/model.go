package recommend

import (
	"math"
	"math/rand"
	"time"
)

// Model is a dual-embedding dot-product scorer. A user vector and a
// product vector are combined as sigmoid(w * dot(u, p) + b), trained
// against engagement weights with binary cross-entropy.
//
// The model lives for a single scoring call: built, trained, queried,
// discarded. Nothing is shared across calls.
type Model struct {
	cfg Config

	userVecs [][]float64
	prodVecs [][]float64
	outW     float64
	outB     float64

	// Adam first/second moments, same shapes as the parameters.
	mUser, vUser [][]float64
	mProd, vProd [][]float64
	mW, vW       float64
	mB, vB       float64
	step         int

	rng *rand.Rand
}

func newModel(userCount, productCount int, cfg Config) *Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m := &Model{
		cfg:      cfg,
		userVecs: randomMatrix(rng, userCount, cfg.EmbeddingDim, cfg.InitScale),
		prodVecs: randomMatrix(rng, productCount, cfg.EmbeddingDim, cfg.InitScale),
		outW:     1.0,
		outB:     0.0,
		mUser:    zeroMatrix(userCount, cfg.EmbeddingDim),
		vUser:    zeroMatrix(userCount, cfg.EmbeddingDim),
		mProd:    zeroMatrix(productCount, cfg.EmbeddingDim),
		vProd:    zeroMatrix(productCount, cfg.EmbeddingDim),
		rng:      rng,
	}

	return m
}

func randomMatrix(rng *rand.Rand, rows, cols int, scale float64) [][]float64 {
	mat := make([][]float64, rows)
	for i := range mat {
		row := make([]float64, cols)
		for j := range row {
			row[j] = (rng.Float64()*2 - 1) * scale
		}
		mat[i] = row
	}
	return mat
}

func zeroMatrix(rows, cols int) [][]float64 {
	mat := make([][]float64, rows)
	for i := range mat {
		mat[i] = make([]float64, cols)
	}
	return mat
}

// Score predicts the engagement probability for a user/product index pair.
func (m *Model) Score(userIdx, productIdx int) float64 {
	s := dot(m.userVecs[userIdx], m.prodVecs[productIdx])
	return sigmoid(m.outW*s + m.outB)
}

// Train runs the fixed epoch/batch schedule over the full example set.
// No validation split, no early stopping. Returns the mean loss of the
// final epoch.
func (m *Model) Train(examples []TrainingExample) float64 {
	if len(examples) == 0 {
		return 0
	}

	perm := make([]int, len(examples))
	for i := range perm {
		perm[i] = i
	}

	lastLoss := 0.0
	for epoch := 0; epoch < m.cfg.Epochs; epoch++ {
		m.rng.Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})

		epochLoss := 0.0
		for start := 0; start < len(perm); start += m.cfg.BatchSize {
			end := start + m.cfg.BatchSize
			if end > len(perm) {
				end = len(perm)
			}
			epochLoss += m.trainBatch(examples, perm[start:end])
		}
		lastLoss = epochLoss / float64(len(examples))
	}

	return lastLoss
}

// trainBatch accumulates the mean gradient over one batch and applies a
// single Adam step. Embedding gradients are sparse: only rows touched by
// the batch are updated. Returns the summed loss over the batch.
func (m *Model) trainBatch(examples []TrainingExample, batch []int) float64 {
	dim := m.cfg.EmbeddingDim
	inv := 1.0 / float64(len(batch))

	gradUser := make(map[int][]float64)
	gradProd := make(map[int][]float64)
	gradW := 0.0
	gradB := 0.0
	loss := 0.0

	for _, idx := range batch {
		ex := examples[idx]
		u := m.userVecs[ex.UserIndex]
		p := m.prodVecs[ex.ProductIndex]

		s := dot(u, p)
		pred := sigmoid(m.outW*s + m.outB)
		loss += binaryCrossEntropy(ex.Weight, pred)

		// d(bce(sigmoid(z)))/dz = pred - target
		dz := (pred - ex.Weight) * inv

		gradW += dz * s
		gradB += dz

		gu, ok := gradUser[ex.UserIndex]
		if !ok {
			gu = make([]float64, dim)
			gradUser[ex.UserIndex] = gu
		}
		addScaled(gu, p, dz*m.outW)

		gp, ok := gradProd[ex.ProductIndex]
		if !ok {
			gp = make([]float64, dim)
			gradProd[ex.ProductIndex] = gp
		}
		addScaled(gp, u, dz*m.outW)
	}

	m.step++
	for row, grad := range gradUser {
		m.adamUpdateRow(m.userVecs[row], m.mUser[row], m.vUser[row], grad)
	}
	for row, grad := range gradProd {
		m.adamUpdateRow(m.prodVecs[row], m.mProd[row], m.vProd[row], grad)
	}
	m.outW = m.adamUpdateScalar(m.outW, &m.mW, &m.vW, gradW)
	m.outB = m.adamUpdateScalar(m.outB, &m.mB, &m.vB, gradB)

	return loss
}

func (m *Model) adamUpdateRow(param, mom, vel, grad []float64) {
	cfg := m.cfg
	t := float64(m.step)
	for i := range param {
		mom[i] = cfg.Beta1*mom[i] + (1-cfg.Beta1)*grad[i]
		vel[i] = cfg.Beta2*vel[i] + (1-cfg.Beta2)*grad[i]*grad[i]
		mHat := mom[i] / (1 - math.Pow(cfg.Beta1, t))
		vHat := vel[i] / (1 - math.Pow(cfg.Beta2, t))
		param[i] -= cfg.LearningRate * mHat / (math.Sqrt(vHat) + cfg.Epsilon)
	}
}

func (m *Model) adamUpdateScalar(param float64, mom, vel *float64, grad float64) float64 {
	cfg := m.cfg
	t := float64(m.step)
	*mom = cfg.Beta1*(*mom) + (1-cfg.Beta1)*grad
	*vel = cfg.Beta2*(*vel) + (1-cfg.Beta2)*grad*grad
	mHat := *mom / (1 - math.Pow(cfg.Beta1, t))
	vHat := *vel / (1 - math.Pow(cfg.Beta2, t))
	return param - cfg.LearningRate*mHat/(math.Sqrt(vHat)+cfg.Epsilon)
}

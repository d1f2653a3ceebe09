package recommend

import "math"

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// b := b + s * a
func addScaled(b, a []float64, s float64) {
	for i := range b {
		b[i] += s * a[i]
	}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// binaryCrossEntropy for a target y in [0,1] and prediction p in (0,1).
func binaryCrossEntropy(y, p float64) float64 {
	const eps = 1e-12
	if p < eps {
		p = eps
	}
	if p > 1-eps {
		p = 1 - eps
	}
	return -(y*math.Log(p) + (1-y)*math.Log(1-p))
}

package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	LabelLow  = 0
	LabelHigh = 1

	// Degraded-mode constants returned when no trained artifacts are
	// available. Callers must surface the model-unavailable flag so this
	// is never mistaken for a real inference.
	FallbackProb  = 0.85
	FallbackLabel = LabelHigh
)

// Classifier is a pre-trained binary logistic model over the selected
// feature subset.
type Classifier struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Predict returns the discrete label and the positive-class probability.
func (c *Classifier) Predict(x []float64) (int, float64, error) {
	if len(x) != len(c.Weights) {
		return 0, 0, fmt.Errorf("classifier expects %d features, got %d", len(c.Weights), len(x))
	}
	score := c.Intercept + floats.Dot(c.Weights, x)
	prob := 1 / (1 + math.Exp(-score))
	label := LabelLow
	if prob >= 0.5 {
		label = LabelHigh
	}
	return label, prob, nil
}

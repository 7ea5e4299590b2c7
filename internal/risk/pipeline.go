package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Scaler is a pre-fit affine transform: (x - mean) / scale per feature.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) || len(x) != len(s.Scale) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(x))
	}
	out := make([]float64, len(x))
	for i := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (x[i] - s.Mean[i]) / scale
	}
	return out, nil
}

// Pipeline applies the preprocessing steps in their training order:
// impute, scale, select.
type Pipeline struct {
	Scaler   *Scaler
	Selected []int
}

func (p *Pipeline) Apply(x []float64) ([]float64, error) {
	imputed := MeanImpute(x)

	scaled, err := p.Scaler.Transform(imputed)
	if err != nil {
		return nil, err
	}

	return SelectColumns(scaled, p.Selected)
}

// MeanImpute replaces NaN slots with the mean of the present values.
// On a fully absent row the result is all zeros.
func MeanImpute(x []float64) []float64 {
	present := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == len(x) {
		return x
	}

	fill := 0.0
	if len(present) > 0 {
		fill = stat.Mean(present, nil)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		if math.IsNaN(v) {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}

// SelectColumns restricts the vector to the trained column subset.
func SelectColumns(x []float64, indices []int) ([]float64, error) {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(x) {
			return nil, fmt.Errorf("selected feature index %d out of range [0,%d)", idx, len(x))
		}
		out[i] = x[idx]
	}
	return out, nil
}

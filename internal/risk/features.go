package risk

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// BuildVector maps named clinical fields onto the fixed feature order.
// Missing or unparseable values degrade to 0.0 so the inference path is
// always executable; malformed input never fails here.
func BuildVector(input map[string]interface{}, featureNames []string) []float64 {
	vec := make([]float64, len(featureNames))
	for i, name := range featureNames {
		vec[i] = coerceFloat(input[name])
	}
	return vec
}

func coerceFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0.0
		}
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0.0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0.0
		}
		return f
	default:
		return 0.0
	}
}

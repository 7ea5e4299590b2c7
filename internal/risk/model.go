package risk

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultFeatureNames keeps the UI exercisable when no trained artifacts
// are present.
var DefaultFeatureNames = []string{
	"Age",
	"Smokes (years)",
	"Hormonal Contraceptives (years)",
	"IUD (years)",
	"STDs (number)",
}

// Model bundles the preprocessing pipeline and the classifier, loaded
// from the artifacts an external training process produced.
type Model struct {
	Loaded       bool
	FeatureNames []string

	pipeline   *Pipeline
	classifier *Classifier
}

// Result of a single inference. ModelLoaded distinguishes a genuine
// prediction from the degraded-mode constant.
type Result struct {
	Label       int
	Probability float64
	ModelLoaded bool
}

func (r Result) StatusText() string {
	if r.Label == LabelHigh {
		return "High Risk"
	}
	return "Low Risk"
}

// Load reads the serialized artifacts from dir. Any failure yields a
// degraded model rather than an error: predictions fall back to the
// constant high-risk result with ModelLoaded=false.
func Load(dir string) *Model {
	var (
		names      []string
		scaler     Scaler
		selected   []int
		classifier Classifier
	)

	err := firstErr(
		readJSON(filepath.Join(dir, "feature_names.json"), &names),
		readJSON(filepath.Join(dir, "scaler.json"), &scaler),
		readJSON(filepath.Join(dir, "selected_features.json"), &selected),
		readJSON(filepath.Join(dir, "model.json"), &classifier),
	)
	if err == nil {
		err = validateArtifacts(names, &scaler, selected, &classifier)
	}
	if err != nil {
		log.Printf("model artifacts not loaded, running in fallback mode: %v", err)
		return &Model{Loaded: false, FeatureNames: DefaultFeatureNames}
	}

	return &Model{
		Loaded:       true,
		FeatureNames: names,
		pipeline:     &Pipeline{Scaler: &scaler, Selected: selected},
		classifier:   &classifier,
	}
}

// Predict runs the full inference path: vector build, preprocessing,
// classification. Deterministic for identical inputs.
func (m *Model) Predict(input map[string]interface{}) (Result, error) {
	if !m.Loaded {
		return Result{Label: FallbackLabel, Probability: FallbackProb, ModelLoaded: false}, nil
	}

	vec := BuildVector(input, m.FeatureNames)

	reduced, err := m.pipeline.Apply(vec)
	if err != nil {
		return Result{}, err
	}

	label, prob, err := m.classifier.Predict(reduced)
	if err != nil {
		return Result{}, err
	}

	return Result{Label: label, Probability: prob, ModelLoaded: true}, nil
}

func validateArtifacts(names []string, s *Scaler, selected []int, c *Classifier) error {
	if len(names) == 0 {
		return fmt.Errorf("empty feature name list")
	}
	if len(s.Mean) != len(names) || len(s.Scale) != len(names) {
		return fmt.Errorf("scaler shape %d/%d does not match %d features",
			len(s.Mean), len(s.Scale), len(names))
	}
	for _, idx := range selected {
		if idx < 0 || idx >= len(names) {
			return fmt.Errorf("selected feature index %d out of range [0,%d)", idx, len(names))
		}
	}
	if len(c.Weights) != len(selected) {
		return fmt.Errorf("classifier has %d weights for %d selected features",
			len(c.Weights), len(selected))
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

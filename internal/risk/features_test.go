package risk

import "testing"

var testFeatures = []string{"Age", "Smokes (years)", "STDs (number)"}

func TestBuildVector_Ordering(t *testing.T) {
	input := map[string]interface{}{
		"STDs (number)":  1.0,
		"Age":            34.0,
		"Smokes (years)": 5.0,
	}
	vec := BuildVector(input, testFeatures)

	want := []float64{34, 5, 1}
	for i := range want {
		if vec[i] != want[i] {
			t.Errorf("vec[%d] = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestBuildVector_MissingDefaultsToZero(t *testing.T) {
	vec := BuildVector(map[string]interface{}{"Age": 34.0}, testFeatures)
	if vec[1] != 0 || vec[2] != 0 {
		t.Errorf("missing features = %v, %v, want 0, 0", vec[1], vec[2])
	}
}

func TestBuildVector_StringCoercion(t *testing.T) {
	input := map[string]interface{}{
		"Age":            "34",
		"Smokes (years)": " 5.5 ",
		"STDs (number)":  "not a number",
	}
	vec := BuildVector(input, testFeatures)

	if vec[0] != 34 {
		t.Errorf("vec[0] = %v, want 34", vec[0])
	}
	if vec[1] != 5.5 {
		t.Errorf("vec[1] = %v, want 5.5", vec[1])
	}
	if vec[2] != 0 {
		t.Errorf("unparseable value = %v, want 0", vec[2])
	}
}

func TestBuildVector_NeverFails(t *testing.T) {
	input := map[string]interface{}{
		"Age":            map[string]interface{}{"nested": true},
		"Smokes (years)": nil,
		"STDs (number)":  []interface{}{1, 2},
	}
	vec := BuildVector(input, testFeatures)
	for i, v := range vec {
		if v != 0 {
			t.Errorf("vec[%d] = %v, want 0", i, v)
		}
	}
}

func TestBuildVector_IntAndNumber(t *testing.T) {
	vec := BuildVector(map[string]interface{}{"Age": 34}, testFeatures)
	if vec[0] != 34 {
		t.Errorf("vec[0] = %v, want 34", vec[0])
	}
}

package predict

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Model predicts a class from an encoded feature row.
type Model interface {
	Predict(features []float64) (int, error)
	Width() int
}

// LinearModel is a fitted logistic model: class 1 when
// sigmoid(bias + weights·x) >= threshold, class 0 otherwise.
type LinearModel struct {
	Bias      float64   `hcl:"bias"`
	Threshold float64   `hcl:"threshold,optional"`
	Weights   []float64 `hcl:"weights"`
}

// LoadLinearModel reads coefficients from an HCL file and checks the weight
// count against the expected feature width.
func LoadLinearModel(filename string, width int) (*LinearModel, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse model %s: %s", filename, diags.Error())
	}

	var m LinearModel
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode model %s: %s", filename, diags.Error())
	}
	if m.Threshold == 0 {
		m.Threshold = 0.5
	}
	if err := m.validate(width); err != nil {
		return nil, fmt.Errorf("model %s: %w", filename, err)
	}
	return &m, nil
}

func (m *LinearModel) validate(width int) error {
	if len(m.Weights) != width {
		return fmt.Errorf("has %d weights, want %d", len(m.Weights), width)
	}
	if m.Threshold <= 0 || m.Threshold >= 1 {
		return fmt.Errorf("threshold %v outside (0, 1)", m.Threshold)
	}
	return nil
}

// Width returns the number of features the model expects.
func (m *LinearModel) Width() int {
	return len(m.Weights)
}

// Probability returns the class 1 probability for a feature row.
func (m *LinearModel) Probability(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("got %d features, model expects %d", len(features), len(m.Weights))
	}
	z := m.Bias
	for i, x := range features {
		z += m.Weights[i] * x
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Predict implements Model.
func (m *LinearModel) Predict(features []float64) (int, error) {
	p, err := m.Probability(features)
	if err != nil {
		return 0, err
	}
	if p >= m.Threshold {
		return 1, nil
	}
	return 0, nil
}

package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeHyperbolic represents the hyperbolic model: BPB = a + b / BPD
	ModelTypeHyperbolic ModelType = iota
	// ModelTypeLogarithmic represents the logarithmic model: BPB = a + b * ln(BPD)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: BPB = a * BPD^b
	ModelTypePower
	// ModelTypeExponential represents the exponential model: BPB = a * e^(b * BPD)
	ModelTypeExponential
	// ModelTypePolynomial represents the polynomial model: BPB = a + b*BPD + c*BPD²
	ModelTypePolynomial
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypePolynomial:  "polynomial",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"hyperbolic":  ModelTypeHyperbolic,
	"logarithmic": ModelTypeLogarithmic,
	"power":       ModelTypePower,
	"exponential": ModelTypeExponential,
	"polynomial":  ModelTypePolynomial,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1) // Invalid ModelType
}

// curveShape describes one candidate model's math: how many coefficients it
// takes, how to evaluate it at a given BPD, and how to render it as a
// human-readable formula. Both estimation (this file) and fitting
// (analyzer.go's fitLinearizable/fitPolynomial) key off this table instead
// of each model getting its own hand-written type.
type curveShape struct {
	numCoeffs int
	eval      func(coeffs []float64, bpd float64) float64
	formula   func(coeffs []float64) string
}

var curveShapes = map[ModelType]curveShape{
	ModelTypeHyperbolic: {
		numCoeffs: 2,
		eval:      func(c []float64, bpd float64) float64 { return c[0] + c[1]/bpd },
		formula:   func(c []float64) string { return fmt.Sprintf("BPB = %.4f + %.4f / BPD", c[0], c[1]) },
	},
	ModelTypeLogarithmic: {
		numCoeffs: 2,
		eval:      func(c []float64, bpd float64) float64 { return c[0] + c[1]*math.Log(bpd) },
		formula:   func(c []float64) string { return fmt.Sprintf("BPB = %.4f + %.4f * ln(BPD)", c[0], c[1]) },
	},
	ModelTypePower: {
		numCoeffs: 2,
		eval:      func(c []float64, bpd float64) float64 { return c[0] * math.Pow(bpd, c[1]) },
		formula:   func(c []float64) string { return fmt.Sprintf("BPB = %.4f * BPD^%.4f", c[0], c[1]) },
	},
	ModelTypeExponential: {
		numCoeffs: 2,
		eval:      func(c []float64, bpd float64) float64 { return c[0] * math.Exp(c[1]*bpd) },
		formula:   func(c []float64) string { return fmt.Sprintf("BPB = %.4f * e^(%.4f * BPD)", c[0], c[1]) },
	},
	ModelTypePolynomial: {
		numCoeffs: 3,
		eval:      func(c []float64, bpd float64) float64 { return c[0] + c[1]*bpd + c[2]*bpd*bpd },
		formula: func(c []float64) string {
			return fmt.Sprintf("BPB = %.4f + %.4f*BPD + %.4f*BPD²", c[0], c[1], c[2])
		},
	},
}

// Estimator makes BPB predictions for a fitted model. Its behavior is
// entirely driven by curveShapes[Type()]; there is one Estimator type for
// every model rather than one hand-written struct per model.
type Estimator struct {
	modelType ModelType
	coeffs    []float64
}

// newEstimator builds an Estimator for modelType from already-fitted
// coefficients, without validating their count (callers within this
// package have already sized them correctly).
func newEstimator(modelType ModelType, coeffs []float64) *Estimator {
	return &Estimator{modelType: modelType, coeffs: slices.Clone(coeffs)}
}

// Estimate calculates the bytes-per-bin (BPB) for a given bins-per-day (BPD).
func (e *Estimator) Estimate(bpd float64) float64 {
	if bpd <= 0 {
		return math.Inf(1)
	}

	return curveShapes[e.modelType].eval(e.coeffs, bpd)
}

// Type returns the model type.
func (e *Estimator) Type() ModelType { return e.modelType }

// Coefficients returns the model's fitted coefficients.
func (e *Estimator) Coefficients() []float64 { return slices.Clone(e.coeffs) }

// SetCoefficients replaces the estimator's coefficients. The slice length
// must match the model type's expected coefficient count (2 for
// hyperbolic/logarithmic/power/exponential, 3 for polynomial).
func (e *Estimator) SetCoefficients(coeffs []float64) error {
	shape := curveShapes[e.modelType]
	if len(coeffs) != shape.numCoeffs {
		return fmt.Errorf("%s model expects exactly %d coefficients, got %d", e.modelType, shape.numCoeffs, len(coeffs))
	}

	e.coeffs = slices.Clone(coeffs)

	return nil
}

// NewEstimator creates a new estimator by model name and coefficients.
//
// Parameters:
//   - name: The model name (case-insensitive): "hyperbolic", "logarithmic",
//     "power", "exponential" (each expects 2 coefficients), or "polynomial"
//     (expects 3 coefficients).
//   - coeffs: The model coefficients.
//
// Example:
//
//	estimator, err := NewEstimator("hyperbolic", []float64{10.0, 5.0})
//	bytesPerBin := estimator.Estimate(96.0) // BPD = 96 (15-minute resolution)
func NewEstimator(name string, coeffs []float64) (*Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		var supportedTypes []string
		for _, modelTypeName := range modelTypeNames {
			supportedTypes = append(supportedTypes, modelTypeName)
		}
		slices.Sort(supportedTypes)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supportedTypes, ", "))
	}

	shape := curveShapes[modelType]
	if len(coeffs) != shape.numCoeffs {
		return nil, fmt.Errorf("%s model expects exactly %d coefficients, got %d", modelType, shape.numCoeffs, len(coeffs))
	}

	return newEstimator(modelType, coeffs), nil
}

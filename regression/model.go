package regression

import "fmt"

// Model represents a regression model with metadata and the concrete estimator.
//
// A Model contains all the information needed to understand and use a fitted
// regression model for blob size estimation. It includes the mathematical
// formula, statistical metrics, and a concrete estimator for making predictions.
//
// Fields:
//   - Type: The mathematical model type (hyperbolic, logarithmic, power, ...)
//   - Coefficients: The fitted parameters of the model
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error (lower is better)
//   - Formula: Human-readable mathematical formula
//   - Estimator: Concrete implementation for making predictions
type Model struct {
	// Type is the model type (hyperbolic, logarithmic, power, exponential, polynomial).
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator makes BPB predictions using the fitted Coefficients.
	Estimator *Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result represents the result of a regression analysis relating a profile's
// time resolution (bins per day, BPD) to its encoded size (bytes per bin, BPB).
//
// Fields:
//   - BestFit: The model with the highest R² value (automatically selected)
//   - AllModels: All fitted models ranked by R² (best first)
//   - Resolutions: Time resolutions (minutes) sampled to build the (BPD, BPB) points
type Result struct {
	// BestFit is the best-fit model (highest R²).
	BestFit *Model
	// AllModels contains all candidate models ranked by R² (best first).
	AllModels []*Model
	// Resolutions holds the time resolutions (in minutes) that were sampled
	// to produce the (BPD, BPB) data points, for transparency.
	Resolutions []int
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}",
		r.BestFit, len(r.AllModels))
}

package regression

import (
	"fmt"
	"math"

	"github.com/speedgraph/psp/blob"
	"github.com/speedgraph/psp/format"
)

// Sample is one (bins-per-day, encoded-bytes) measurement taken by encoding
// a profile at a given time resolution.
type Sample struct {
	// TimeResolutionMinutes is the width of one time bin, in minutes.
	TimeResolutionMinutes int
	// TotalBins is the number of relevant-day bins that were encoded.
	TotalBins int
	// EncodedBytes is the length of the encoded blob.
	EncodedBytes int
}

// binsPerDay returns how many bins format.MinutesPerDay divides into at the
// given resolution.
func binsPerDay(timeResolutionMinutes int) float64 {
	return float64(format.MinutesPerDay) / float64(timeResolutionMinutes)
}

// bytesPerBin returns the sample's encoded size normalized by its total bin
// count, the dependent variable fitted by Analyze.
func (s Sample) bytesPerBin() float64 {
	if s.TotalBins == 0 {
		return 0
	}

	return float64(s.EncodedBytes) / float64(s.TotalBins)
}

// Measure encodes data with codec and records the resulting (bins-per-day,
// bytes-per-bin) data point. data must carry at least one relevant day; a
// means-only BlobData yields a Sample with TotalBins 0, which Analyze skips.
func Measure(codec *blob.BlobCodec, data blob.BlobData) (Sample, error) {
	encoded, err := codec.Encode(data)
	if err != nil {
		return Sample{}, fmt.Errorf("encode profile for measurement: %w", err)
	}

	totalBins := 0
	for day := 0; day < format.DayCount; day++ {
		if accessor, ok := data.DaySpeeds(day); ok {
			totalBins += accessor.TotalBins()
		}
	}

	return Sample{
		TimeResolutionMinutes: data.TimeResolutionMinutes,
		TotalBins:             totalBins,
		EncodedBytes:          len(encoded),
	}, nil
}

// MeasureResolutions builds one full-week BlobData per resolution in
// resolutions by sampling speeds from speedAt, encodes each with codec, and
// returns one Sample per resolution. speedAt is called with the bin index
// (0-based) within a day at the given resolution and returns a speed in
// km/h; the resulting profile is used for all seven days.
func MeasureResolutions(codec *blob.BlobCodec, weekDaySpeed, weekendSpeed uint8, speedAt func(bin int) float64, resolutions []int) ([]Sample, error) {
	samples := make([]Sample, 0, len(resolutions))

	for _, resolution := range resolutions {
		bins := format.MinutesPerDay / resolution
		if bins*resolution != format.MinutesPerDay {
			return nil, fmt.Errorf("time resolution %d does not evenly divide %d minutes", resolution, format.MinutesPerDay)
		}

		speeds := make([]float64, bins)
		for i := range speeds {
			speeds[i] = speedAt(i)
		}

		dayToSpeeds := make([][]float64, format.DayCount)
		for day := range dayToSpeeds {
			dayToSpeeds[day] = speeds
		}

		data := blob.NewBlobDataFromArrays(weekDaySpeed, weekendSpeed, dayToSpeeds, resolution)

		sample, err := Measure(codec, data)
		if err != nil {
			return nil, fmt.Errorf("measure resolution %d: %w", resolution, err)
		}

		samples = append(samples, sample)
	}

	return samples, nil
}

// Analyze fits candidate regression models relating a profile's time
// resolution, expressed as bins per day (BPD), to its encoded size,
// expressed as bytes per bin (BPB). It returns an error if fewer than two
// usable samples are provided.
//
// Samples with zero TotalBins (means-only profiles) are skipped, since BPB
// is undefined for them.
func Analyze(samples []Sample) (*Result, error) {
	var bpdValues, bpbValues []float64
	var resolutions []int

	for _, s := range samples {
		if s.TotalBins == 0 {
			continue
		}

		bpdValues = append(bpdValues, binsPerDay(s.TimeResolutionMinutes))
		bpbValues = append(bpbValues, s.bytesPerBin())
		resolutions = append(resolutions, s.TimeResolutionMinutes)
	}

	if len(bpdValues) < 2 {
		return nil, fmt.Errorf("regression analysis requires at least 2 usable samples, got %d", len(bpdValues))
	}

	result := performRegression(bpdValues, bpbValues)
	result.Resolutions = resolutions

	return result, nil
}

// AnalyzeResolutions is a convenience wrapper that combines
// MeasureResolutions and Analyze.
func AnalyzeResolutions(codec *blob.BlobCodec, weekDaySpeed, weekendSpeed uint8, speedAt func(bin int) float64, resolutions []int) (*Result, error) {
	samples, err := MeasureResolutions(codec, weekDaySpeed, weekendSpeed, speedAt, resolutions)
	if err != nil {
		return nil, err
	}

	return Analyze(samples)
}

// performRegression fits all candidate models to the (x, y) data and
// returns a Result with models ranked by R² (best first).
func performRegression(x, y []float64) *Result {
	models := []*Model{
		fitLinearizable(ModelTypeHyperbolic, x, y),
		fitLinearizable(ModelTypeLogarithmic, x, y),
		fitLinearizable(ModelTypePower, x, y),
		fitLinearizable(ModelTypeExponential, x, y),
		fitPolynomial(x, y),
	}

	// Sort by R² descending (best fit first) using insertion sort, since
	// the candidate set is always small and fixed in size.
	for i := 1; i < len(models); i++ {
		for j := i; j > 0 && models[j].RSquared > models[j-1].RSquared; j-- {
			models[j], models[j-1] = models[j-1], models[j]
		}
	}

	return &Result{
		BestFit:   models[0],
		AllModels: models,
	}
}

// linearization describes how to reduce a curve fit to ordinary linear
// regression: transformX/transformY map (BPD, BPB) into a space where the
// relationship is a line, and coeffsFromFit maps the fitted line back into
// the model's own coefficients.
type linearization struct {
	transformX    func(bpd float64) float64
	transformY    func(bpb float64) float64
	coeffsFromFit func(intercept, slope float64) []float64
}

func identity(v float64) float64 { return v }

func sameCoeffs(intercept, slope float64) []float64 { return []float64{intercept, slope} }

func expIntercept(intercept, slope float64) []float64 { return []float64{math.Exp(intercept), slope} }

// linearizations covers the four models whose fit reduces to a single
// linear regression on a transformed variable. Polynomial does not belong
// here since it needs a second regressor (BPD²) and is fit by fitPolynomial
// instead.
var linearizations = map[ModelType]linearization{
	ModelTypeHyperbolic:  {transformX: func(bpd float64) float64 { return 1 / bpd }, transformY: identity, coeffsFromFit: sameCoeffs},
	ModelTypeLogarithmic: {transformX: math.Log, transformY: identity, coeffsFromFit: sameCoeffs},
	ModelTypePower:       {transformX: math.Log, transformY: math.Log, coeffsFromFit: expIntercept},
	ModelTypeExponential: {transformX: identity, transformY: math.Log, coeffsFromFit: expIntercept},
}

// fitLinearizable fits modelType by transforming (x, y) into a space where
// ordinary least squares applies, then mapping the result back through
// curveShapes to get coefficients, a formula, and an Estimator.
func fitLinearizable(modelType ModelType, x, y []float64) *Model {
	shape := curveShapes[modelType]

	n := len(x)
	if n == 0 {
		coeffs := make([]float64, shape.numCoeffs)
		return &Model{Type: modelType, Coefficients: coeffs, Formula: shape.formula(coeffs), Estimator: newEstimator(modelType, coeffs)}
	}

	lin := linearizations[modelType]
	xt := make([]float64, n)
	yt := make([]float64, n)
	for i := range x {
		xt[i] = lin.transformX(x[i])
		yt[i] = lin.transformY(y[i])
	}

	intercept, slope := leastSquares(xt, yt)
	coeffs := lin.coeffsFromFit(intercept, slope)

	predicted := make([]float64, n)
	for i := range x {
		predicted[i] = shape.eval(coeffs, x[i])
	}
	r2, rmse := fitStats(y, predicted)

	return &Model{
		Type:         modelType,
		Coefficients: coeffs,
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      shape.formula(coeffs),
		Estimator:    newEstimator(modelType, coeffs),
	}
}

// leastSquares fits y = intercept + slope*x by ordinary least squares.
func leastSquares(x, y []float64) (intercept, slope float64) {
	n := len(x)

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	slope = (sumXY - float64(n)*meanX*meanY) / (sumX2 - float64(n)*meanX*meanX)
	intercept = meanY - slope*meanX

	return intercept, slope
}

// fitPolynomial fits the quadratic model: BPB = a + b*BPD + c*BPD², by
// solving its normal equations as a general 3x3 linear system. Falls back
// to fitLinear when fewer than 3 points are available or the system is
// singular.
func fitPolynomial(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		coeffs := []float64{0, 0, 0}
		return &Model{Type: ModelTypePolynomial, Coefficients: coeffs, Formula: curveShapes[ModelTypePolynomial].formula(coeffs), Estimator: newEstimator(ModelTypePolynomial, coeffs)}
	}

	if n < 3 {
		return fitLinear(x, y)
	}

	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for i := range x {
		xi := x[i]
		xi2 := xi * xi

		sumX += xi
		sumX2 += xi2
		sumX3 += xi2 * xi
		sumX4 += xi2 * xi2
		sumY += y[i]
		sumXY += xi * y[i]
		sumX2Y += xi2 * y[i]
	}

	// Normal equations for a + b*BPD + c*BPD² fitted by least squares.
	coeffs, ok := solve3x3(
		[3][3]float64{
			{float64(n), sumX, sumX2},
			{sumX, sumX2, sumX3},
			{sumX2, sumX3, sumX4},
		},
		[3]float64{sumY, sumXY, sumX2Y},
	)
	if !ok {
		return fitLinear(x, y)
	}

	c := coeffs[:]
	predicted := make([]float64, n)
	for i := range x {
		predicted[i] = curveShapes[ModelTypePolynomial].eval(c, x[i])
	}
	r2, rmse := fitStats(y, predicted)

	return &Model{
		Type:         ModelTypePolynomial,
		Coefficients: c,
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      curveShapes[ModelTypePolynomial].formula(c),
		Estimator:    newEstimator(ModelTypePolynomial, c),
	}
}

// fitLinear fits BPB = a + b*BPD, used as a fallback for fitPolynomial when
// there's insufficient or degenerate data. The result carries
// ModelTypePolynomial with a zero quadratic coefficient, so it still slots
// into performRegression's candidate list.
func fitLinear(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		coeffs := []float64{0, 0, 0}
		return &Model{Type: ModelTypePolynomial, Coefficients: coeffs, Formula: "BPB = 0 + 0*BPD", Estimator: newEstimator(ModelTypePolynomial, coeffs)}
	}

	intercept, slope := leastSquares(x, y)
	coeffs := []float64{intercept, slope, 0}

	predicted := make([]float64, n)
	for i := range x {
		predicted[i] = intercept + slope*x[i]
	}
	r2, rmse := fitStats(y, predicted)

	return &Model{
		Type:         ModelTypePolynomial,
		Coefficients: coeffs,
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      fmt.Sprintf("BPB = %.4f + %.4f*BPD", intercept, slope),
		Estimator:    newEstimator(ModelTypePolynomial, coeffs),
	}
}

// solve3x3 solves the 3x3 linear system a*x = b via Cramer's rule. ok is
// false when a is singular (determinant near zero), in which case x is the
// zero vector and callers should fall back to a lower-order fit.
func solve3x3(a [3][3]float64, b [3]float64) (x [3]float64, ok bool) {
	det := det3(a)
	if math.Abs(det) < 1e-10 {
		return x, false
	}

	for col := 0; col < 3; col++ {
		m := a
		m[0][col], m[1][col], m[2][col] = b[0], b[1], b[2]
		x[col] = det3(m) / det
	}

	return x, true
}

// det3 computes the determinant of a 3x3 matrix by cofactor expansion along
// the first row.
func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// fitStats computes R² (coefficient of determination) and RMSE for a set
// of observed/predicted pairs in a single pass.
func fitStats(observed, predicted []float64) (r2, rmse float64) {
	n := len(observed)
	if n == 0 {
		return 0, 0
	}

	var mean float64
	for _, v := range observed {
		mean += v
	}
	mean /= float64(n)

	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		diff := observed[i] - predicted[i]
		ssRes += diff * diff
	}

	if ssTot != 0 {
		r2 = 1.0 - ssRes/ssTot
	}
	rmse = math.Sqrt(ssRes / float64(n))

	return r2, rmse
}

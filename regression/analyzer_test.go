package regression_test

import (
	"math"
	"testing"

	"github.com/speedgraph/psp/blob"
	"github.com/speedgraph/psp/regression"
	"github.com/stretchr/testify/require"
)

func sineSpeed(bin int) float64 {
	return 40 + 10*math.Sin(float64(bin)*0.1)
}

func TestAnalyzeResolutions_ReturnsBestFitWithPositiveRSquared(t *testing.T) {
	codec := blob.NewBlobCodec()
	resolutions := []int{60, 90, 120, 180, 240, 1440}

	result, err := regression.AnalyzeResolutions(codec, 40, 35, sineSpeed, resolutions)
	require.NoError(t, err)
	require.NotNil(t, result.BestFit)
	require.Greater(t, result.BestFit.RSquared, 0.0)
	require.Len(t, result.AllModels, 5)
	require.Equal(t, resolutions, result.Resolutions)

	// Models should be ranked best-first.
	for i := 1; i < len(result.AllModels); i++ {
		require.GreaterOrEqual(t, result.AllModels[i-1].RSquared, result.AllModels[i].RSquared)
	}
}

func TestMeasure_CountsOnlyRelevantDayBins(t *testing.T) {
	codec := blob.NewBlobCodec()
	dayToSpeeds := make([][]float64, 7)
	dayToSpeeds[0] = []float64{10, 20, 30, 40, 50, 60}
	dayToSpeeds[3] = []float64{40, 50, 60, 70, 80, 90}

	data := blob.NewBlobDataFromArrays(0, 0, dayToSpeeds, 240)

	sample, err := regression.Measure(codec, data)
	require.NoError(t, err)
	require.Equal(t, 240, sample.TimeResolutionMinutes)
	require.Equal(t, 12, sample.TotalBins)
	require.Greater(t, sample.EncodedBytes, 0)
}

func TestMeasure_MeansOnlyProfileHasZeroBins(t *testing.T) {
	codec := blob.NewBlobCodec()
	sample, err := regression.Measure(codec, blob.NewBlobData(10, 20))
	require.NoError(t, err)
	require.Equal(t, 0, sample.TotalBins)
}

func TestAnalyze_SkipsMeansOnlySamples(t *testing.T) {
	samples := []regression.Sample{
		{TimeResolutionMinutes: 1440, TotalBins: 0, EncodedBytes: 3},
		{TimeResolutionMinutes: 240, TotalBins: 6, EncodedBytes: 12},
		{TimeResolutionMinutes: 60, TotalBins: 24, EncodedBytes: 30},
	}

	result, err := regression.Analyze(samples)
	require.NoError(t, err)
	require.Len(t, result.Resolutions, 2)
}

func TestAnalyze_TooFewSamplesFails(t *testing.T) {
	samples := []regression.Sample{
		{TimeResolutionMinutes: 240, TotalBins: 6, EncodedBytes: 12},
	}

	_, err := regression.Analyze(samples)
	require.Error(t, err)
}

func TestMeasureResolutions_RejectsNonDivisorResolution(t *testing.T) {
	codec := blob.NewBlobCodec()
	_, err := regression.MeasureResolutions(codec, 0, 0, sineSpeed, []int{100})
	require.Error(t, err)
}

func TestAnalyze_BestFitEstimatorPredictsWithinReason(t *testing.T) {
	codec := blob.NewBlobCodec()
	resolutions := []int{60, 120, 180, 240, 1440}

	samples, err := regression.MeasureResolutions(codec, 0, 0, sineSpeed, resolutions)
	require.NoError(t, err)

	result, err := regression.Analyze(samples)
	require.NoError(t, err)

	for _, s := range samples {
		bpd := float64(1440) / float64(s.TimeResolutionMinutes)
		predicted := result.BestFit.Estimator.Estimate(bpd)
		require.Greater(t, predicted, 0.0)
	}
}

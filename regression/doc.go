// Package regression provides blob size estimation through regression
// analysis of encoded PSP blobs.
//
// It fits mathematical models relating a profile's time resolution,
// expressed as bins per day (BPD), to its encoded size, expressed as
// bytes per bin (BPB). This lets a caller predict roughly how large an
// encoded blob will be at a candidate resolution before committing to it,
// or understand how header overhead and compression amortize as
// resolution increases.
//
// # Basic usage
//
//	codec := blob.NewBlobCodec()
//	samples, err := regression.MeasureResolutions(codec, 0, 0, func(bin int) float64 {
//	    return 40 + 10*math.Sin(float64(bin))
//	}, []int{60, 120, 180, 240, 1440})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := regression.Analyze(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	estimator := result.BestFit.Estimator
//	bytesPerBin := estimator.Estimate(24) // BPD = 24 (60-minute resolution)
//
// AnalyzeResolutions combines both steps.
//
// # Model types
//
// Five candidate models are fit and ranked by R² (best first):
//
//   - Hyperbolic:  BPB = a + b / BPD
//   - Logarithmic: BPB = a + b * ln(BPD)
//   - Power:       BPB = a * BPD^b
//   - Exponential: BPB = a * e^(b * BPD)
//   - Polynomial:  BPB = a + b*BPD + c*BPD²
//
// The hyperbolic model is typically the best fit, since zlib-compressed
// per-bin overhead (varint and zigzag framing, header bytes) amortizes
// roughly as 1/BPD while the underlying entropy per bin stays constant.
package regression

package blob

import "github.com/speedgraph/psp/format"

// DaySpeedsAccessor provides bin-wise access to one day's speed profile,
// letting the caller's own data structures stand in for a dense array.
type DaySpeedsAccessor interface {
	// TotalBins returns the number of time bins in the profile.
	TotalBins() int
	// SpeedAt returns the speed, in km/h, at the given bin index.
	SpeedAt(bin int) float64
}

// arraySpeedsAccessor adapts a plain []float64 to DaySpeedsAccessor.
type arraySpeedsAccessor struct {
	speeds []float64
}

func (a arraySpeedsAccessor) TotalBins() int          { return len(a.speeds) }
func (a arraySpeedsAccessor) SpeedAt(bin int) float64 { return a.speeds[bin] }

// BlobData is the in-memory representation of a PSP blob's contents: the
// two mandatory mean speeds and, optionally, per-day speed profiles at a
// shared time resolution.
//
// BlobData is immutable once constructed; the zero value represents a
// blob with zero mean speeds and no profiles.
type BlobData struct {
	WeekDaySpeed          uint8
	WeekendSpeed          uint8
	TimeResolutionMinutes int

	daySpeeds [format.DayCount]DaySpeedsAccessor
}

// NewBlobData constructs a BlobData carrying only the two mean speeds and
// no daily profiles.
func NewBlobData(weekDaySpeed, weekendSpeed uint8) BlobData {
	return BlobData{WeekDaySpeed: weekDaySpeed, WeekendSpeed: weekendSpeed}
}

// NewBlobDataFromArrays constructs a BlobData from a dense day-to-speeds
// array. dayToSpeeds is indexed 0 (Sunday) through 6 (Saturday); a nil or
// empty entry means that day has no profile.
func NewBlobDataFromArrays(weekDaySpeed, weekendSpeed uint8, dayToSpeeds [][]float64, timeResolutionMinutes int) BlobData {
	return NewBlobDataFromAccessor(weekDaySpeed, weekendSpeed, func(day int) DaySpeedsAccessor {
		if day >= len(dayToSpeeds) || len(dayToSpeeds[day]) == 0 {
			return nil
		}

		return arraySpeedsAccessor{speeds: dayToSpeeds[day]}
	}, timeResolutionMinutes)
}

// NewBlobDataFromAccessor constructs a BlobData from a caller-supplied
// per-day accessor function, mirroring the original converter's
// IntFunction<DaySpeedsAccessor>. accessor may return nil for an absent
// day; a non-nil accessor with zero bins is also treated as absent.
func NewBlobDataFromAccessor(weekDaySpeed, weekendSpeed uint8, accessor func(day int) DaySpeedsAccessor, timeResolutionMinutes int) BlobData {
	data := BlobData{
		WeekDaySpeed:          weekDaySpeed,
		WeekendSpeed:          weekendSpeed,
		TimeResolutionMinutes: timeResolutionMinutes,
	}

	for day := 0; day < format.DayCount; day++ {
		a := accessor(day)
		if a != nil && a.TotalBins() > 0 {
			data.daySpeeds[day] = a
		}
	}

	return data
}

// HasDailySpeeds reports whether at least one day carries a profile.
func (b BlobData) HasDailySpeeds() bool {
	for _, a := range b.daySpeeds {
		if a != nil {
			return true
		}
	}

	return false
}

// HasDaySpeeds reports whether the given day (0 = Sunday, 6 = Saturday)
// carries a profile.
func (b BlobData) HasDaySpeeds(day int) bool {
	return day >= 0 && day < format.DayCount && b.daySpeeds[day] != nil
}

// DaySpeeds returns the accessor for the given day, if present.
func (b BlobData) DaySpeeds(day int) (DaySpeedsAccessor, bool) {
	if !b.HasDaySpeeds(day) {
		return nil, false
	}

	return b.daySpeeds[day], true
}

// DaySpeedsAsSlice materializes the given day's profile into a freshly
// allocated []float64, for callers that want a dense array rather than
// the accessor interface.
func (b BlobData) DaySpeedsAsSlice(day int) ([]float64, bool) {
	a, ok := b.DaySpeeds(day)
	if !ok {
		return nil, false
	}

	out := make([]float64, a.TotalBins())
	for i := range out {
		out[i] = a.SpeedAt(i)
	}

	return out, true
}

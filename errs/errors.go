// Package errs centralizes the sentinel errors returned by the psp codec.
//
// Call sites wrap these with fmt.Errorf("%w: ...", errs.ErrXxx, ...) to add
// the offending byte, day, or bin, while keeping the sentinel identity
// available to callers via errors.Is.
package errs

import "errors"

var (
	// ErrUnsupportedVersion is returned when a blob's version byte is
	// greater than format.Version.
	ErrUnsupportedVersion = errors.New("unsupported premium profile blob version")

	// ErrNegativeSpeed is returned by Encode when a profile bin speed is
	// negative.
	ErrNegativeSpeed = errors.New("negative speed value")

	// ErrSpeedTooLarge is returned by Encode when a profile bin speed
	// exceeds format.MaxSpeed.
	ErrSpeedTooLarge = errors.New("speed value exceeds maximum of 255 km/h")

	// ErrBinCountMismatch is returned by Encode when a day's speed
	// sequence length does not match 1440/timeResolutionMinutes.
	ErrBinCountMismatch = errors.New("day bin count does not match time resolution")

	// ErrResolutionTooLarge is returned by Encode when the time
	// resolution, after the 1440->0 substitution, does not fit in one
	// byte.
	ErrResolutionTooLarge = errors.New("time resolution does not fit in one byte")

	// ErrInvalidResolution is returned by Encode when the time
	// resolution does not evenly divide 1440 minutes, or is out of
	// [1, 1440].
	ErrInvalidResolution = errors.New("time resolution must divide 1440 minutes")

	// ErrTruncatedVarInt is returned by Decode when a VarInt16 value
	// spans more than three bytes.
	ErrTruncatedVarInt = errors.New("varint exceeds three bytes")

	// ErrTruncatedProfile is returned by Decode when the payload ends
	// before all expected profile bins have been read.
	ErrTruncatedProfile = errors.New("profile payload ends before all bins were decoded")

	// ErrTruncatedBlob is returned by Decode when the blob is shorter
	// than the minimum required for its declared structure.
	ErrTruncatedBlob = errors.New("blob is truncated")

	// ErrInflate is returned by Decode when the zlib payload fails to
	// inflate.
	ErrInflate = errors.New("failed to inflate profile payload")
)
